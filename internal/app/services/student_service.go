package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/schoolerp/student-service/internal/app/mappers"
	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/app/repositories"
	"github.com/schoolerp/student-service/internal/db"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// StudentStore is the persistence surface the student service needs.
type StudentStore interface {
	Create(ctx context.Context, s *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByAdmissionNo(ctx context.Context, admissionNo string) (bool, error)
	List(ctx context.Context, filter repositories.StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, s *models.Student) error
	SoftDelete(ctx context.Context, id int64) error
	FindAllByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	UpdatePromotionBatch(ctx context.Context, tx pgx.Tx, studentIDs []int64, toClass, toSection int, academicYear string, status int64) error
}

// DocumentStore lists document metadata attached to student responses.
type DocumentStore interface {
	FindByStudentID(ctx context.Context, studentID int64) ([]*models.StudentDocument, error)
}

// MasterStore resolves common_master lookup values to their codes.
type MasterStore interface {
	FindActiveByKeyAndValue(ctx context.Context, key, data string) (*models.CommonMaster, error)
}

// PromotionStore appends promotion audit rows.
type PromotionStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, p *models.StudentPromotion) (int64, error)
	FindByStudentID(ctx context.Context, studentID int64) ([]*models.StudentPromotion, error)
}

// StudentService handles admission records and the promotion workflow.
type StudentService struct {
	studentStore   StudentStore
	documentStore  DocumentStore
	masterStore    MasterStore
	promotionStore PromotionStore
	txRunner       db.TxRunner
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentStore StudentStore, documentStore DocumentStore, masterStore MasterStore, promotionStore PromotionStore, txRunner db.TxRunner) *StudentService {
	return &StudentService{
		studentStore:   studentStore,
		documentStore:  documentStore,
		masterStore:    masterStore,
		promotionStore: promotionStore,
		txRunner:       txRunner,
	}
}

// ListStudents returns one page of students matching the filters plus the
// total count.
func (s *StudentService) ListStudents(ctx context.Context, filter repositories.StudentFilter, offset uint64, limit int) (*dto.StudentList, error) {
	log := logger.FromContext(ctx)

	students, total, err := s.studentStore.List(ctx, filter, offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list students")
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, *mappers.StudentToResponse(st))
	}

	log.Info().Int("count", len(responses)).Int64("total", total).Msg("Retrieved students")
	return &dto.StudentList{Students: responses, Total: total}, nil
}

// GetStudentByID returns one student with its document metadata attached.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("studentId", id).Msg("Student lookup failed")
		return nil, err
	}

	resp := mappers.StudentToResponse(student)

	docs, err := s.documentStore.FindByStudentID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("studentId", id).Msg("Failed to load student documents")
		return nil, err
	}
	for _, d := range docs {
		resp.StudentDocuments = append(resp.StudentDocuments, mappers.DocumentToInfo(d))
	}

	return resp, nil
}

// CreateStudent admits a new student. A missing admission number is
// generated; a supplied one must not collide with a living record.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	log := logger.FromContext(ctx)

	if req.AdmissionNo == "" {
		req.AdmissionNo = generateAdmissionNumber()
		log.Debug().Str("admissionNo", req.AdmissionNo).Msg("Generated admission number")
	} else {
		exists, err := s.studentStore.ExistsByAdmissionNo(ctx, req.AdmissionNo)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Warn().Str("admissionNo", req.AdmissionNo).Msg("Admission number already exists")
			return nil, apperrors.NewCustomError(
				apperrors.ErrDuplicateAdmissionNo,
				"Admission number already exists: "+req.AdmissionNo,
			).WithCode(apperrors.CodeDuplicateAdmissionNo)
		}
	}

	if req.SameAsCurrentAddress {
		req.PermanentAddress = req.CurrentAddress
	}

	student := mappers.StudentToEntity(req)
	if _, err := s.studentStore.Create(ctx, student); err != nil {
		log.Error().Err(err).Msg("Failed to create student")
		return nil, err
	}

	log.Info().Int64("studentId", student.ID).Str("admissionNo", student.AdmissionNo).Msg("Created student")
	return mappers.StudentToResponse(student), nil
}

// UpdateStudent applies the mutable fields of req to an existing student.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("studentId", id).Msg("Student not found for update")
		return nil, err
	}

	if req.SameAsCurrentAddress {
		req.PermanentAddress = req.CurrentAddress
	}

	mappers.ApplyStudentUpdate(req, student)
	if err := s.studentStore.Update(ctx, student); err != nil {
		log.Error().Err(err).Int64("studentId", id).Msg("Failed to update student")
		return nil, err
	}

	log.Info().Int64("studentId", id).Msg("Updated student")
	return mappers.StudentToResponse(student), nil
}

// DeleteStudent soft deletes a student record.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.studentStore.GetByID(ctx, id); err != nil {
		log.Warn().Err(err).Int64("studentId", id).Msg("Student not found for deletion")
		return err
	}

	if err := s.studentStore.SoftDelete(ctx, id); err != nil {
		log.Error().Err(err).Int64("studentId", id).Msg("Failed to delete student")
		return err
	}

	log.Info().Int64("studentId", id).Msg("Soft deleted student")
	return nil
}

// PromoteStudents moves a cohort to a new class and section. The target
// status is resolved once for the whole batch; the audit rows and the
// student updates commit in a single transaction.
func (s *StudentService) PromoteStudents(ctx context.Context, req *dto.PromoteStudentsRequest) error {
	log := logger.FromContext(ctx)
	log.Info().
		Int("fromClass", req.FromClass).Int("fromSection", req.FromSection).
		Int("toClass", req.ToClass).Int("toSection", req.ToSection).
		Int("students", len(req.StudentIDs)).
		Msg("Starting student promotion")

	students, err := s.studentStore.FindAllByIDs(ctx, req.StudentIDs)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		log.Warn().Ints64("studentIds", req.StudentIDs).Msg("No students found for promotion")
		return apperrors.NewResourceNotFoundError("No students found with provided IDs")
	}

	statusValue := req.Status
	if req.MarkAsAlumni {
		statusValue = models.StatusAlumni
	}
	if statusValue == "" {
		statusValue = models.StatusPromoted
	}

	status, err := s.masterStore.FindActiveByKeyAndValue(ctx, models.MasterKeyStatus, statusValue)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatusNotConfigured) {
			log.Warn().Err(err).Str("status", statusValue).Msg("Promotion status not configured")
			return apperrors.NewCustomError(
				apperrors.ErrStatusNotConfigured,
				statusValue+" status not found",
			).WithCode(statusValue + "_STATUS_NOT_FOUND")
		}
		log.Error().Err(err).Str("status", statusValue).Msg("Promotion status lookup failed")
		return err
	}

	promotionDate := models.Now()
	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		promotedIDs := make([]int64, 0, len(students))
		for _, st := range students {
			promotion := &models.StudentPromotion{
				StudentID:     st.ID,
				FromClass:     st.ClassApplyingFor,
				FromSection:   st.Section,
				ToClass:       req.ToClass,
				ToSection:     req.ToSection,
				AcademicYear:  req.AcademicYear,
				PromotionDate: promotionDate,
				Status:        status.ID,
			}
			if _, err := s.promotionStore.CreateTx(ctx, tx, promotion); err != nil {
				return err
			}
			promotedIDs = append(promotedIDs, st.ID)
		}

		return s.studentStore.UpdatePromotionBatch(ctx, tx, promotedIDs, req.ToClass, req.ToSection, req.AcademicYear, status.ID)
	})
	if err != nil {
		log.Error().Err(err).Msg("Promotion transaction failed")
		return err
	}

	log.Info().Int("promoted", len(students)).Str("status", statusValue).Msg("Promoted students")

	if req.SendNotification {
		// Notification delivery is owned by the communications service.
		log.Info().Msg("Notification sending requested but not yet implemented")
	}

	return nil
}

// GetPromotionHistory returns the promotion audit trail of one student,
// newest first.
func (s *StudentService) GetPromotionHistory(ctx context.Context, studentID int64) ([]*models.StudentPromotion, error) {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.promotionStore.FindByStudentID(ctx, studentID)
}

func generateAdmissionNumber() string {
	year := time.Now().Year()
	return fmt.Sprintf("AD-%d-%04d", year, rand.Intn(9000)+1000)
}
