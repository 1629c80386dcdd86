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

// IdCardRepository handles database operations for issued identity cards.
type IdCardRepository struct {
	db *pgxpool.Pool
}

// NewIdCardRepository creates a new IdCardRepository.
func NewIdCardRepository(db *pgxpool.Pool) *IdCardRepository {
	return &IdCardRepository{db: db}
}

// Create inserts an issued card and fills in the generated id.
func (r *IdCardRepository) Create(ctx context.Context, card *models.IdCard) (int64, error) {
	query := `
		INSERT INTO id_cards (
			student_id, card_number, issue_date, valid_from, valid_to,
			status, photo_url, qr_code, issue_reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	var id int64
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		card.StudentID,
		card.CardNumber,
		nullDate(card.IssueDate),
		nullDate(card.ValidFrom),
		nullDate(card.ValidTo),
		string(card.Status),
		card.PhotoURL,
		card.QRCode,
		card.IssueReason,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating id card: %w", err)
	}

	card.ID = id
	card.CreatedAt = models.Timestamp(createdAt)
	card.UpdatedAt = models.Timestamp(updatedAt)
	return id, nil
}

// GetByID retrieves a card by id.
func (r *IdCardRepository) GetByID(ctx context.Context, id int64) (*models.IdCard, error) {
	query := idCardSelect + ` WHERE id = $1`

	card, err := scanIdCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving id card %d: %w", id, err)
	}
	return card, nil
}

// FindByStudentID lists the cards issued to one student, newest first.
func (r *IdCardRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.IdCard, error) {
	query := idCardSelect + ` WHERE student_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing id cards for student %s: %w", studentID, err)
	}
	defer rows.Close()

	var cards []*models.IdCard
	for rows.Next() {
		card, err := scanIdCard(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning id card row: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// List returns a page of cards plus the total count.
func (r *IdCardRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.IdCard, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM id_cards`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting id cards: %w", err)
	}

	query := idCardSelect + ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing id cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.IdCard
	for rows.Next() {
		card, err := scanIdCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning id card row: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, total, rows.Err()
}

const idCardSelect = `
	SELECT id, student_id, card_number, issue_date, valid_from, valid_to,
	       status, photo_url, qr_code, issue_reason, created_at, updated_at
	FROM id_cards`

func scanIdCard(row rowScanner) (*models.IdCard, error) {
	var card models.IdCard
	var issueDate, validFrom, validTo *time.Time
	var createdAt, updatedAt time.Time
	var status string

	err := row.Scan(
		&card.ID,
		&card.StudentID,
		&card.CardNumber,
		&issueDate,
		&validFrom,
		&validTo,
		&status,
		&card.PhotoURL,
		&card.QRCode,
		&card.IssueReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if issueDate != nil {
		card.IssueDate = models.NewDate(*issueDate)
	}
	if validFrom != nil {
		card.ValidFrom = models.NewDate(*validFrom)
	}
	if validTo != nil {
		card.ValidTo = models.NewDate(*validTo)
	}
	card.Status = models.CardStatus(status)
	card.CreatedAt = models.Timestamp(createdAt)
	card.UpdatedAt = models.Timestamp(updatedAt)
	return &card, nil
}
