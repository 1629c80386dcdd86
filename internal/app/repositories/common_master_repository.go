package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

// CommonMasterRepository resolves human-readable lookup values (for example
// key "STATUS", data "ALUMNI") to their configured numeric codes.
type CommonMasterRepository struct {
	db *pgxpool.Pool
}

// NewCommonMasterRepository creates a new CommonMasterRepository.
func NewCommonMasterRepository(db *pgxpool.Pool) *CommonMasterRepository {
	return &CommonMasterRepository{db: db}
}

// FindActiveByKeyAndValue returns the active lookup row for key/data, or
// apperrors.ErrStatusNotConfigured when no such row exists.
func (r *CommonMasterRepository) FindActiveByKeyAndValue(ctx context.Context, key, data string) (*models.CommonMaster, error) {
	query := `
		SELECT id, common_master_key, data, status
		FROM common_master
		WHERE common_master_key = $1 AND data = $2 AND status = TRUE
	`

	var m models.CommonMaster
	err := r.db.QueryRow(ctx, query, key, data).Scan(&m.ID, &m.Key, &m.Data, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStatusNotConfigured
		}
		return nil, fmt.Errorf("error resolving lookup %s/%s: %w", key, data, err)
	}
	return &m, nil
}

// FindActiveByKey lists every active row under one lookup key.
func (r *CommonMasterRepository) FindActiveByKey(ctx context.Context, key string) ([]*models.CommonMaster, error) {
	query := `
		SELECT id, common_master_key, data, status
		FROM common_master
		WHERE common_master_key = $1 AND status = TRUE
		ORDER BY data
	`

	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("error listing lookup key %s: %w", key, err)
	}
	defer rows.Close()

	var entries []*models.CommonMaster
	for rows.Next() {
		var m models.CommonMaster
		if err := rows.Scan(&m.ID, &m.Key, &m.Data, &m.Active); err != nil {
			return nil, fmt.Errorf("error scanning lookup row: %w", err)
		}
		entries = append(entries, &m)
	}
	return entries, rows.Err()
}
