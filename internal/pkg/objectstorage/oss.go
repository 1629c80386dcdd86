package objectstorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// OSSStorage stores documents in an OSS bucket.
type OSSStorage struct {
	client     *oss.Client
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
}

// NewOSSStorage connects to the bucket and verifies it is reachable.
func NewOSSStorage(endpoint, accessKey, secretKey, bucketName string) (*OSSStorage, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("object storage requires endpoint, access key, secret key and bucket name")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", bucketName, err)
	}

	if _, err := client.GetBucketLocation(bucketName); err != nil {
		// Restricted credentials may not allow the location call; the
		// bucket can still be usable for object operations.
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == http.StatusForbidden {
			logger.Warn().Str("bucket", bucketName).Msg("Skipping bucket location check: access denied")
		} else {
			return nil, fmt.Errorf("verify bucket %s: %w", bucketName, err)
		}
	}

	return &OSSStorage{
		client:     client,
		bucket:     bucket,
		endpoint:   endpoint,
		bucketName: bucketName,
	}, nil
}

func (s *OSSStorage) Put(ctx context.Context, fileHeader *multipart.FileHeader, keyPrefix string) (string, string, error) {
	if fileHeader == nil {
		return "", "", fmt.Errorf("nil file header")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	key := buildObjectKey(keyPrefix, fileHeader.Filename)

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentDisposition("inline"),
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		opts = append(opts, oss.ContentType(ct))
	}

	if err := s.bucket.PutObject(key, src, opts...); err != nil {
		return "", "", fmt.Errorf("put object %s: %w", key, err)
	}

	logger.Debug().Str("key", key).Str("bucket", s.bucketName).Msg("Stored object")
	return key, s.publicURL(key), nil
}

func (s *OSSStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (s *OSSStorage) publicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, host, key)
}
