package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

// StudentDocumentRepository handles database operations for uploaded
// document metadata. The binaries live in object storage.
type StudentDocumentRepository struct {
	db *pgxpool.Pool
}

// NewStudentDocumentRepository creates a new StudentDocumentRepository.
func NewStudentDocumentRepository(db *pgxpool.Pool) *StudentDocumentRepository {
	return &StudentDocumentRepository{db: db}
}

// Create inserts a document metadata row and fills in the generated id.
func (r *StudentDocumentRepository) Create(ctx context.Context, d *models.StudentDocument) (int64, error) {
	query := `
		INSERT INTO student_documents (
			student_id, document_type, document_name, storage_key, storage_url
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	var id int64
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		d.StudentID,
		d.DocumentType,
		d.DocumentName,
		d.StorageKey,
		d.StorageURL,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating student document: %w", err)
	}

	d.ID = id
	d.CreatedAt = models.Timestamp(createdAt)
	d.UpdatedAt = models.Timestamp(updatedAt)
	return id, nil
}

// GetByID retrieves a non-deleted document by id.
func (r *StudentDocumentRepository) GetByID(ctx context.Context, id int64) (*models.StudentDocument, error) {
	query := `
		SELECT id, student_id, document_type, document_name, storage_key,
		       storage_url, created_at, updated_at
		FROM student_documents
		WHERE id = $1 AND is_deleted = FALSE
	`

	d, err := scanStudentDocument(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document %d: %w", id, err)
	}
	return d, nil
}

// FindByStudentID lists the non-deleted documents of one student, newest
// first.
func (r *StudentDocumentRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*models.StudentDocument, error) {
	query := `
		SELECT id, student_id, document_type, document_name, storage_key,
		       storage_url, created_at, updated_at
		FROM student_documents
		WHERE student_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents for student %d: %w", studentID, err)
	}
	defer rows.Close()

	var docs []*models.StudentDocument
	for rows.Next() {
		d, err := scanStudentDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SoftDelete hides a document from lookups while keeping its row and the
// stored object.
func (r *StudentDocumentRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE student_documents SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting document %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

func scanStudentDocument(row rowScanner) (*models.StudentDocument, error) {
	var d models.StudentDocument
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&d.ID,
		&d.StudentID,
		&d.DocumentType,
		&d.DocumentName,
		&d.StorageKey,
		&d.StorageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt = models.Timestamp(createdAt)
	d.UpdatedAt = models.Timestamp(updatedAt)
	return &d, nil
}
