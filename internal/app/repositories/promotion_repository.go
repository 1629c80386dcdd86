package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/schoolerp/student-service/internal/app/models"
)

// PromotionRepository handles the append-only promotion audit rows.
type PromotionRepository struct {
	db *pgxpool.Pool
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(db *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// CreateTx inserts one audit row inside the caller's transaction so the
// audit trail commits together with the student updates.
func (r *PromotionRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *models.StudentPromotion) (int64, error) {
	query := `
		INSERT INTO student_promotions (
			student_id, from_class, from_section, to_class, to_section,
			academic_year, promotion_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		p.StudentID,
		p.FromClass,
		p.FromSection,
		p.ToClass,
		p.ToSection,
		p.AcademicYear,
		p.PromotionDate.Time(),
		p.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating promotion record: %w", err)
	}

	p.ID = id
	return id, nil
}

// FindByStudentID lists the promotion history of one student, newest first.
func (r *PromotionRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*models.StudentPromotion, error) {
	query := `
		SELECT id, student_id, from_class, from_section, to_class,
		       to_section, academic_year, promotion_date, status
		FROM student_promotions
		WHERE student_id = $1
		ORDER BY promotion_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing promotions for student %d: %w", studentID, err)
	}
	defer rows.Close()

	var promotions []*models.StudentPromotion
	for rows.Next() {
		var p models.StudentPromotion
		var promotionDate time.Time
		err := rows.Scan(
			&p.ID,
			&p.StudentID,
			&p.FromClass,
			&p.FromSection,
			&p.ToClass,
			&p.ToSection,
			&p.AcademicYear,
			&promotionDate,
			&p.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning promotion row: %w", err)
		}
		p.PromotionDate = models.Timestamp(promotionDate)
		promotions = append(promotions, &p)
	}
	return promotions, rows.Err()
}
