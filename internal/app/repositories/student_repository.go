package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/dberrors"
)

// studentColumns is the scan order shared by every student query.
const studentColumns = `
	id, admission_no, admission_date, first_name, middle_name, last_name,
	date_of_birth, gender, blood_group, aadhar_number, caste, religion,
	nationality, mother_tongue, current_address, permanent_address, city,
	state, pincode, mobile_number, alternate_contact, email_id, father_name,
	mother_name, guardian_name, father_occupation, mother_occupation,
	annual_income, class_applying_for, section, academic_year,
	previous_school_name, transfer_certificate_no, previous_class_passed,
	board, medium_of_instruction, status, fees_status, created_at, updated_at`

// StudentFilter narrows the student listing.
type StudentFilter struct {
	Search string // matches name or admission number
	Status int64  // 0 means any
	Class  int    // 0 means any
}

// StudentRepository handles database operations for student records.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and fills in the generated id and timestamps.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	query := `
		INSERT INTO students (
			admission_no, admission_date, first_name, middle_name, last_name,
			date_of_birth, gender, blood_group, aadhar_number, caste, religion,
			nationality, mother_tongue, current_address, permanent_address,
			city, state, pincode, mobile_number, alternate_contact, email_id,
			father_name, mother_name, guardian_name, father_occupation,
			mother_occupation, annual_income, class_applying_for, section,
			academic_year, previous_school_name, transfer_certificate_no,
			previous_class_passed, board, medium_of_instruction, status,
			fees_status
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34, $35, $36, $37
		)
		RETURNING id, created_at, updated_at
	`

	var id int64
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		s.AdmissionNo,
		nullDate(s.AdmissionDate),
		s.FirstName,
		s.MiddleName,
		s.LastName,
		nullDate(s.DateOfBirth),
		s.Gender,
		s.BloodGroup,
		s.AadharNumber,
		s.Caste,
		s.Religion,
		s.Nationality,
		s.MotherTongue,
		s.CurrentAddress,
		s.PermanentAddress,
		s.City,
		s.State,
		s.Pincode,
		s.MobileNumber,
		s.AlternateContact,
		s.EmailID,
		s.FatherName,
		s.MotherName,
		s.GuardianName,
		s.FatherOccupation,
		s.MotherOccupation,
		s.AnnualIncome,
		s.ClassApplyingFor,
		s.Section,
		s.AcademicYear,
		s.PreviousSchoolName,
		s.TransferCertificateNo,
		s.PreviousClassPassed,
		s.Board,
		s.MediumOfInstruction,
		s.Status,
		string(s.FeesStatus),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		// The service pre-checks the admission number, but a concurrent
		// insert can still trip the unique index.
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateAdmissionNo
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	s.ID = id
	s.CreatedAt = models.Timestamp(createdAt)
	s.UpdatedAt = models.Timestamp(updatedAt)
	return id, nil
}

// GetByID retrieves a non-deleted student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE id = $1 AND is_deleted = FALSE`

	s, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student %d: %w", id, err)
	}
	return s, nil
}

// ExistsByAdmissionNo reports whether a non-deleted student already holds
// the admission number.
func (r *StudentRepository) ExistsByAdmissionNo(ctx context.Context, admissionNo string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM students WHERE admission_no = $1 AND is_deleted = FALSE
	)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, admissionNo).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking admission number: %w", err)
	}
	return exists, nil
}

// List returns a page of non-deleted students plus the total matching count.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	base := squirrel.Select().
		From("students").
		Where("is_deleted = FALSE").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(
			"(first_name ILIKE ? OR last_name ILIKE ? OR admission_no ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != 0 {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Class != 0 {
		base = base.Where("class_applying_for = ?", filter.Class)
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns(studentColumns).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating students: %w", err)
	}

	return students, total, nil
}

// Update rewrites every mutable column of an existing student.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	query := `
		UPDATE students SET
			first_name = $1, middle_name = $2, last_name = $3,
			date_of_birth = $4, gender = $5, blood_group = $6,
			aadhar_number = $7, caste = $8, religion = $9, nationality = $10,
			mother_tongue = $11, current_address = $12,
			permanent_address = $13, city = $14, state = $15, pincode = $16,
			mobile_number = $17, alternate_contact = $18, email_id = $19,
			father_name = $20, mother_name = $21, guardian_name = $22,
			father_occupation = $23, mother_occupation = $24,
			annual_income = $25, class_applying_for = $26, section = $27,
			academic_year = $28, previous_school_name = $29,
			transfer_certificate_no = $30, previous_class_passed = $31,
			board = $32, medium_of_instruction = $33, status = $34,
			fees_status = $35, updated_at = NOW()
		WHERE id = $36 AND is_deleted = FALSE
	`

	tag, err := r.db.Exec(ctx, query,
		s.FirstName,
		s.MiddleName,
		s.LastName,
		nullDate(s.DateOfBirth),
		s.Gender,
		s.BloodGroup,
		s.AadharNumber,
		s.Caste,
		s.Religion,
		s.Nationality,
		s.MotherTongue,
		s.CurrentAddress,
		s.PermanentAddress,
		s.City,
		s.State,
		s.Pincode,
		s.MobileNumber,
		s.AlternateContact,
		s.EmailID,
		s.FatherName,
		s.MotherName,
		s.GuardianName,
		s.FatherOccupation,
		s.MotherOccupation,
		s.AnnualIncome,
		s.ClassApplyingFor,
		s.Section,
		s.AcademicYear,
		s.PreviousSchoolName,
		s.TransferCertificateNo,
		s.PreviousClassPassed,
		s.Board,
		s.MediumOfInstruction,
		s.Status,
		string(s.FeesStatus),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student %d: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// SoftDelete hides a student from all lookups while keeping the row.
func (r *StudentRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE students SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// FindAllByIDs returns the non-deleted students among ids. Missing ids are
// silently absent from the result.
func (r *StudentRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT` + studentColumns + `
		FROM students
		WHERE id = ANY($1) AND is_deleted = FALSE`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading students by ids: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// FindByClassAndSection lists the non-deleted students of one class/section.
func (r *StudentRepository) FindByClassAndSection(ctx context.Context, class, section int) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE class_applying_for = $1 AND section = $2 AND is_deleted = FALSE
		ORDER BY first_name, last_name`

	rows, err := r.db.Query(ctx, query, class, section)
	if err != nil {
		return nil, fmt.Errorf("error loading class %d section %d: %w", class, section, err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdatePromotionBatch moves every student to the target class, section,
// academic year and status inside the caller's transaction. One batched
// round trip covers the whole cohort.
func (r *StudentRepository) UpdatePromotionBatch(ctx context.Context, tx pgx.Tx, studentIDs []int64, toClass, toSection int, academicYear string, status int64) error {
	query := `
		UPDATE students SET
			class_applying_for = $1, section = $2, academic_year = $3,
			status = $4, updated_at = NOW()
		WHERE id = $5 AND is_deleted = FALSE
	`

	batch := &pgx.Batch{}
	for _, id := range studentIDs {
		batch.Queue(query, toClass, toSection, academicYear, status, id)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, id := range studentIDs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error promoting student %d: %w", id, err)
		}
	}
	return nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var s models.Student
	var admissionDate, dateOfBirth *time.Time
	var createdAt, updatedAt time.Time
	var feesStatus string

	err := row.Scan(
		&s.ID,
		&s.AdmissionNo,
		&admissionDate,
		&s.FirstName,
		&s.MiddleName,
		&s.LastName,
		&dateOfBirth,
		&s.Gender,
		&s.BloodGroup,
		&s.AadharNumber,
		&s.Caste,
		&s.Religion,
		&s.Nationality,
		&s.MotherTongue,
		&s.CurrentAddress,
		&s.PermanentAddress,
		&s.City,
		&s.State,
		&s.Pincode,
		&s.MobileNumber,
		&s.AlternateContact,
		&s.EmailID,
		&s.FatherName,
		&s.MotherName,
		&s.GuardianName,
		&s.FatherOccupation,
		&s.MotherOccupation,
		&s.AnnualIncome,
		&s.ClassApplyingFor,
		&s.Section,
		&s.AcademicYear,
		&s.PreviousSchoolName,
		&s.TransferCertificateNo,
		&s.PreviousClassPassed,
		&s.Board,
		&s.MediumOfInstruction,
		&s.Status,
		&feesStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if admissionDate != nil {
		s.AdmissionDate = models.NewDate(*admissionDate)
	}
	if dateOfBirth != nil {
		s.DateOfBirth = models.NewDate(*dateOfBirth)
	}
	s.FeesStatus = models.FeesStatus(feesStatus)
	s.CreatedAt = models.Timestamp(createdAt)
	s.UpdatedAt = models.Timestamp(updatedAt)
	return &s, nil
}

// nullDate maps the zero date to SQL NULL.
func nullDate(d models.Date) *time.Time {
	if d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
