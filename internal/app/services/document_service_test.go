package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

type fakeDocumentMetaStore struct {
	docs      map[int64]*models.StudentDocument
	nextID    int64
	createErr error
}

func newFakeDocumentMetaStore() *fakeDocumentMetaStore {
	return &fakeDocumentMetaStore{docs: map[int64]*models.StudentDocument{}, nextID: 1}
}

func (f *fakeDocumentMetaStore) Create(_ context.Context, d *models.StudentDocument) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	d.ID = f.nextID
	f.nextID++
	f.docs[d.ID] = d
	return d.ID, nil
}

func (f *fakeDocumentMetaStore) GetByID(_ context.Context, id int64) (*models.StudentDocument, error) {
	d, ok := f.docs[id]
	if !ok || d.IsDeleted {
		return nil, apperrors.ErrDocumentNotFound
	}
	return d, nil
}

func (f *fakeDocumentMetaStore) FindByStudentID(_ context.Context, studentID int64) ([]*models.StudentDocument, error) {
	var out []*models.StudentDocument
	for _, d := range f.docs {
		if d.StudentID == studentID && !d.IsDeleted {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentMetaStore) SoftDelete(_ context.Context, id int64) error {
	d, ok := f.docs[id]
	if !ok || d.IsDeleted {
		return apperrors.ErrDocumentNotFound
	}
	d.IsDeleted = true
	return nil
}

type fakeObjectStorage struct {
	stored  map[string]bool
	putErr  error
	deleted []string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{stored: map[string]bool{}}
}

func (f *fakeObjectStorage) Put(_ context.Context, fh *multipart.FileHeader, keyPrefix string) (string, string, error) {
	if f.putErr != nil {
		return "", "", f.putErr
	}
	key := keyPrefix + "/" + fh.Filename
	f.stored[key] = true
	return key, "https://bucket.example.com/" + key, nil
}

func (f *fakeObjectStorage) Delete(_ context.Context, key string) error {
	delete(f.stored, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func uploadFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("content"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["files"][0]
}

func TestUploadDocuments_StoresObjectAndMetadata(t *testing.T) {
	store := newFakeDocumentMetaStore()
	storage := newFakeObjectStorage()
	svc := NewDocumentService(store, storage)

	docs, err := svc.UploadDocuments(context.Background(), []DocumentUpload{{
		StudentID:    42,
		DocumentType: "BIRTH_CERTIFICATE",
		File:         uploadFileHeader(t, "birth.pdf"),
	}})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, int64(42), docs[0].StudentID)
	assert.Equal(t, "birth.pdf", docs[0].DocumentName)
	assert.True(t, strings.HasPrefix(docs[0].StorageKey, "students/42/"))
	assert.True(t, storage.stored[docs[0].StorageKey])
}

func TestUploadDocuments_MetadataFailureRemovesObject(t *testing.T) {
	store := newFakeDocumentMetaStore()
	store.createErr = errors.New("insert failed")
	storage := newFakeObjectStorage()
	svc := NewDocumentService(store, storage)

	_, err := svc.UploadDocuments(context.Background(), []DocumentUpload{{
		StudentID: 42,
		File:      uploadFileHeader(t, "birth.pdf"),
	}})
	require.Error(t, err)

	assert.Empty(t, storage.stored, "uploaded object must be removed when metadata insert fails")
	assert.Len(t, storage.deleted, 1)
}

func TestUploadDocuments_StorageFailure(t *testing.T) {
	store := newFakeDocumentMetaStore()
	storage := newFakeObjectStorage()
	storage.putErr = fmt.Errorf("bucket unavailable")
	svc := NewDocumentService(store, storage)

	_, err := svc.UploadDocuments(context.Background(), []DocumentUpload{{
		StudentID: 42,
		File:      uploadFileHeader(t, "birth.pdf"),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	assert.Empty(t, store.docs)
}

func TestUploadDocuments_RequiresStudentID(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentMetaStore(), newFakeObjectStorage())

	_, err := svc.UploadDocuments(context.Background(), []DocumentUpload{{
		File: uploadFileHeader(t, "birth.pdf"),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteDocument(t *testing.T) {
	store := newFakeDocumentMetaStore()
	storage := newFakeObjectStorage()
	svc := NewDocumentService(store, storage)

	docs, err := svc.UploadDocuments(context.Background(), []DocumentUpload{{
		StudentID: 42,
		File:      uploadFileHeader(t, "birth.pdf"),
	}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(context.Background(), docs[0].ID))

	remaining, err := svc.GetDocumentsByStudentID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// The stored object stays in place after a soft delete.
	assert.True(t, storage.stored[docs[0].StorageKey])

	assert.ErrorIs(t, svc.DeleteDocument(context.Background(), docs[0].ID), apperrors.ErrDocumentNotFound)
}
