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

// FeeStructureRepository reads the fee structures maintained by the fees
// service. This service never writes them.
type FeeStructureRepository struct {
	db *pgxpool.Pool
}

// NewFeeStructureRepository creates a new FeeStructureRepository.
func NewFeeStructureRepository(db *pgxpool.Pool) *FeeStructureRepository {
	return &FeeStructureRepository{db: db}
}

// GetByID retrieves a non-deleted fee structure by id.
func (r *FeeStructureRepository) GetByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	query := feeStructureSelect + ` WHERE f.id = $1 AND f.is_deleted = FALSE`

	fs, err := scanFeeStructure(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving fee structure %d: %w", id, err)
	}
	return fs, nil
}

// List returns a page of non-deleted fee structures plus the total count.
// Non-zero classID and sectionID narrow the listing.
func (r *FeeStructureRepository) List(ctx context.Context, classID, sectionID int64, offset uint64, limit int) ([]*models.FeeStructure, int64, error) {
	countQuery := `SELECT COUNT(*) FROM fee_structures WHERE is_deleted = FALSE`
	listQuery := feeStructureSelect + ` WHERE f.is_deleted = FALSE`
	args := []any{}

	if classID != 0 {
		args = append(args, classID)
		countQuery += fmt.Sprintf(` AND class_id = $%d`, len(args))
		listQuery += fmt.Sprintf(` AND f.class_id = $%d`, len(args))
	}
	if sectionID != 0 {
		args = append(args, sectionID)
		countQuery += fmt.Sprintf(` AND section_id = $%d`, len(args))
		listQuery += fmt.Sprintf(` AND f.section_id = $%d`, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting fee structures: %w", err)
	}

	listQuery += fmt.Sprintf(` ORDER BY f.effective_from DESC NULLS LAST OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing fee structures: %w", err)
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		fs, err := scanFeeStructure(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning fee structure row: %w", err)
		}
		structures = append(structures, fs)
	}
	return structures, total, rows.Err()
}

// feeStructureSelect resolves the common_master lookup ids to their
// human-readable names in the same query.
const feeStructureSelect = `
	SELECT f.id, f.class_id, f.section_id, f.academic_year_id, f.name,
	       f.payment_frequency, cm_class.data, cm_section.data, cm_year.data,
	       cm_freq.data, f.tuition_fee, f.admission_fee, f.transport_fee,
	       f.library_fee, f.exam_fee, f.sports_fee, f.lab_fee,
	       f.development_fee, f.total_fee, f.max_discount, f.late_fee_penalty,
	       f.effective_from, f.due_date
	FROM fee_structures f
	LEFT JOIN common_master cm_class ON cm_class.id = f.class_id
	LEFT JOIN common_master cm_section ON cm_section.id = f.section_id
	LEFT JOIN common_master cm_year ON cm_year.id = f.academic_year_id
	LEFT JOIN common_master cm_freq ON cm_freq.id = f.payment_frequency`

func scanFeeStructure(row rowScanner) (*models.FeeStructure, error) {
	var fs models.FeeStructure
	var effectiveFrom, dueDate *time.Time
	var className, sectionName, yearName, freqName *string

	err := row.Scan(
		&fs.ID,
		&fs.ClassID,
		&fs.SectionID,
		&fs.AcademicYearID,
		&fs.Name,
		&fs.PaymentFrequency,
		&className,
		&sectionName,
		&yearName,
		&freqName,
		&fs.TuitionFee,
		&fs.AdmissionFee,
		&fs.TransportFee,
		&fs.LibraryFee,
		&fs.ExamFee,
		&fs.SportsFee,
		&fs.LabFee,
		&fs.DevelopmentFee,
		&fs.TotalFee,
		&fs.MaxDiscount,
		&fs.LateFeePenalty,
		&effectiveFrom,
		&dueDate,
	)
	if err != nil {
		return nil, err
	}

	if className != nil {
		fs.ClassName = *className
	}
	if sectionName != nil {
		fs.SectionName = *sectionName
	}
	if yearName != nil {
		fs.AcademicYearName = *yearName
	}
	if freqName != nil {
		fs.PaymentFrequencyName = *freqName
	}
	if effectiveFrom != nil {
		fs.EffectiveFrom = models.NewDate(*effectiveFrom)
	}
	if dueDate != nil {
		fs.DueDate = models.NewDate(*dueDate)
	}
	return &fs, nil
}
