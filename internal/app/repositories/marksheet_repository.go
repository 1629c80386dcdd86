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

// MarksheetRepository handles database operations for exam marksheets.
type MarksheetRepository struct {
	db *pgxpool.Pool
}

// NewMarksheetRepository creates a new MarksheetRepository.
func NewMarksheetRepository(db *pgxpool.Pool) *MarksheetRepository {
	return &MarksheetRepository{db: db}
}

// Create inserts a marksheet and fills in the generated id.
func (r *MarksheetRepository) Create(ctx context.Context, m *models.Marksheet) (int64, error) {
	query := `
		INSERT INTO marksheets (
			student_id, exam_type, academic_year, class_name, section,
			subjects, total_marks, max_total_marks, percentage, grade,
			rank, result, status, publish_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	var id int64
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		m.StudentID,
		m.ExamType,
		m.AcademicYear,
		m.ClassName,
		m.Section,
		m.Subjects,
		m.TotalMarks,
		m.MaxTotalMarks,
		m.Percentage,
		m.Grade,
		m.Rank,
		m.Result,
		string(m.Status),
		nullDate(m.PublishDate),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating marksheet: %w", err)
	}

	m.ID = id
	m.CreatedAt = models.Timestamp(createdAt)
	m.UpdatedAt = models.Timestamp(updatedAt)
	return id, nil
}

// GetByID retrieves a marksheet by id.
func (r *MarksheetRepository) GetByID(ctx context.Context, id int64) (*models.Marksheet, error) {
	query := marksheetSelect + ` WHERE id = $1`

	m, err := scanMarksheet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksheetNotFound
		}
		return nil, fmt.Errorf("error retrieving marksheet %d: %w", id, err)
	}
	return m, nil
}

// FindByStudentID lists the marksheets of one student, newest first.
func (r *MarksheetRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Marksheet, error) {
	query := marksheetSelect + ` WHERE student_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing marksheets for student %s: %w", studentID, err)
	}
	defer rows.Close()

	var sheets []*models.Marksheet
	for rows.Next() {
		m, err := scanMarksheet(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning marksheet row: %w", err)
		}
		sheets = append(sheets, m)
	}
	return sheets, rows.Err()
}

// List returns a page of marksheets plus the total count.
func (r *MarksheetRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Marksheet, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM marksheets`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting marksheets: %w", err)
	}

	query := marksheetSelect + ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing marksheets: %w", err)
	}
	defer rows.Close()

	var sheets []*models.Marksheet
	for rows.Next() {
		m, err := scanMarksheet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning marksheet row: %w", err)
		}
		sheets = append(sheets, m)
	}
	return sheets, total, rows.Err()
}

const marksheetSelect = `
	SELECT id, student_id, exam_type, academic_year, class_name, section,
	       subjects, total_marks, max_total_marks, percentage, grade, rank,
	       result, status, publish_date, created_at, updated_at
	FROM marksheets`

func scanMarksheet(row rowScanner) (*models.Marksheet, error) {
	var m models.Marksheet
	var publishDate *time.Time
	var createdAt, updatedAt time.Time
	var status string

	err := row.Scan(
		&m.ID,
		&m.StudentID,
		&m.ExamType,
		&m.AcademicYear,
		&m.ClassName,
		&m.Section,
		&m.Subjects,
		&m.TotalMarks,
		&m.MaxTotalMarks,
		&m.Percentage,
		&m.Grade,
		&m.Rank,
		&m.Result,
		&status,
		&publishDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if publishDate != nil {
		m.PublishDate = models.NewDate(*publishDate)
	}
	m.Status = models.MarksheetStatus(status)
	m.CreatedAt = models.Timestamp(createdAt)
	m.UpdatedAt = models.Timestamp(updatedAt)
	return &m, nil
}
