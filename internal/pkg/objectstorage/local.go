package objectstorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// LocalStorage stores documents under a directory on the local filesystem.
// It exists for development and tests so the service can run without bucket
// credentials.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage ensures basePath exists and returns a store rooted there.
// baseURL is prepended to keys when building public URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (ls *LocalStorage) Put(_ context.Context, fileHeader *multipart.FileHeader, keyPrefix string) (string, string, error) {
	if fileHeader == nil {
		return "", "", fmt.Errorf("nil file header")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	key := buildObjectKey(keyPrefix, fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return "", "", fmt.Errorf("create subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", "", fmt.Errorf("create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", "", fmt.Errorf("write destination file: %w", err)
	}

	return key, ls.baseURL + "/" + key, nil
}

func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(ls.basePath, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file %s: %w", key, err)
	}
	return nil
}
