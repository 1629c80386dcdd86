package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/schoolerp/student-service/internal/app/models"
)

// statusValues are the student status lookup rows the promotion workflow
// resolves against. Missing rows make promotions fail, so they are seeded
// on every startup.
var statusValues = []string{
	"ACTIVE",
	appModels.StatusPromoted,
	appModels.StatusAlumni,
	"INACTIVE",
	"TRANSFERRED",
}

// CreateDefaultData inserts the common_master lookup rows the service
// depends on. Inserts are idempotent; existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default lookup data (common_master)...")

	var finalErr error
	for _, value := range statusValues {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO common_master (common_master_key, data, status)
			VALUES ($1, $2, TRUE)
			ON CONFLICT (common_master_key, data) DO NOTHING`,
			appModels.MasterKeyStatus, value)
		if err != nil {
			lgr.Error().Err(err).Str("value", value).Msg("Error seeding status lookup row")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("values", len(statusValues)).Msg("Status lookup rows present")
	}
	return finalErr
}
