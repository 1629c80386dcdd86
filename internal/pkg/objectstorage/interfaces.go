// Package objectstorage stores uploaded student documents. Callers only see
// opaque keys and public URLs; the backing store is either an OSS bucket or,
// for development, a directory on the local filesystem.
package objectstorage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage is the interface for document uploads.
type ObjectStorage interface {
	// Put stores the uploaded file under keyPrefix and returns the object
	// key and a URL the object can be fetched from.
	Put(ctx context.Context, fileHeader *multipart.FileHeader, keyPrefix string) (key string, url string, err error)

	// Delete removes a stored object. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// buildObjectKey produces a collision-free key that still carries the
// original filename for traceability.
func buildObjectKey(keyPrefix, filename string) string {
	name := sanitizeFilename(filename)
	key := uuid.New().String() + "_" + name
	if p := strings.Trim(keyPrefix, "/"); p != "" {
		key = p + "/" + key
	}
	return key
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
