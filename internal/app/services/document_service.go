package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logger"
	"github.com/schoolerp/student-service/internal/pkg/objectstorage"
)

// DocumentUpload pairs an uploaded file with its metadata.
type DocumentUpload struct {
	StudentID    int64
	DocumentType string
	File         *multipart.FileHeader
}

// DocumentMetaStore is the persistence surface the document service needs.
type DocumentMetaStore interface {
	Create(ctx context.Context, d *models.StudentDocument) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudentDocument, error)
	FindByStudentID(ctx context.Context, studentID int64) ([]*models.StudentDocument, error)
	SoftDelete(ctx context.Context, id int64) error
}

// DocumentService stores uploaded files in object storage and their
// metadata in the database.
type DocumentService struct {
	docStore DocumentMetaStore
	storage  objectstorage.ObjectStorage
}

// NewDocumentService creates a new document service instance.
func NewDocumentService(docStore DocumentMetaStore, storage objectstorage.ObjectStorage) *DocumentService {
	return &DocumentService{docStore: docStore, storage: storage}
}

// UploadDocuments stores each upload and records its metadata. When the
// metadata insert fails after a successful upload, the stored object is
// removed again so storage and database stay consistent.
func (s *DocumentService) UploadDocuments(ctx context.Context, uploads []DocumentUpload) ([]*models.StudentDocument, error) {
	log := logger.FromContext(ctx)

	if len(uploads) == 0 {
		return nil, apperrors.NewBadRequestError("At least one document is required")
	}

	var result []*models.StudentDocument
	for _, up := range uploads {
		if up.StudentID == 0 {
			return nil, apperrors.NewBadRequestError("studentId is required for the document")
		}
		if up.File == nil || up.File.Size == 0 {
			return nil, apperrors.NewBadRequestError("File is required for each document upload")
		}

		keyPrefix := fmt.Sprintf("students/%d", up.StudentID)
		key, url, err := s.storage.Put(ctx, up.File, keyPrefix)
		if err != nil {
			log.Error().Err(err).Int64("studentId", up.StudentID).Msg("Object upload failed")
			return nil, apperrors.NewCustomError(apperrors.ErrStorageFailure,
				"Upload failed: "+err.Error()).WithCode(apperrors.CodeStorageError)
		}

		doc := &models.StudentDocument{
			StudentID:    up.StudentID,
			DocumentType: up.DocumentType,
			DocumentName: up.File.Filename,
			StorageKey:   key,
			StorageURL:   url,
		}
		if _, err := s.docStore.Create(ctx, doc); err != nil {
			if delErr := s.storage.Delete(ctx, key); delErr != nil {
				log.Error().Err(delErr).Str("key", key).Msg("Failed to remove orphaned object")
			}
			log.Error().Err(err).Int64("studentId", up.StudentID).Msg("Failed to record document metadata")
			return nil, err
		}

		log.Info().Int64("studentId", up.StudentID).Str("key", key).Msg("Uploaded student document")
		result = append(result, doc)
	}

	return result, nil
}

// GetDocumentsByStudentID lists the documents of one student.
func (s *DocumentService) GetDocumentsByStudentID(ctx context.Context, studentID int64) ([]*models.StudentDocument, error) {
	return s.docStore.FindByStudentID(ctx, studentID)
}

// DeleteDocument soft deletes a document. The stored object is kept so the
// row can be restored.
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.docStore.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.docStore.SoftDelete(ctx, id); err != nil {
		log.Error().Err(err).Int64("documentId", id).Msg("Failed to delete document")
		return err
	}

	log.Info().Int64("documentId", id).Msg("Soft deleted document")
	return nil
}
