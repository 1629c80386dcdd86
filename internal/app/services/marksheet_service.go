package services

import (
	"context"
	"strings"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// MarksheetStore is the persistence surface the marksheet service needs.
type MarksheetStore interface {
	Create(ctx context.Context, m *models.Marksheet) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Marksheet, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*models.Marksheet, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Marksheet, int64, error)
}

// MarksheetService records exam results and derives percentage and grade
// when the caller leaves them unset.
type MarksheetService struct {
	sheetStore MarksheetStore
}

// NewMarksheetService creates a new marksheet service instance.
func NewMarksheetService(sheetStore MarksheetStore) *MarksheetService {
	return &MarksheetService{sheetStore: sheetStore}
}

// CreateMarksheet stores an exam result. The percentage is derived from
// total and maximum marks when the caller supplies no percentage (or an
// explicit zero); the grade is derived from the percentage when blank.
func (s *MarksheetService) CreateMarksheet(ctx context.Context, req *dto.MarksheetRequest) (*models.Marksheet, error) {
	log := logger.FromContext(ctx)

	percentage := 0.0
	if req.Percentage != nil {
		percentage = *req.Percentage
	}
	if percentage == 0 && req.TotalMarks != nil && req.MaxTotalMarks != nil && *req.MaxTotalMarks > 0 {
		percentage = float64(*req.TotalMarks) / float64(*req.MaxTotalMarks) * 100
	}

	grade := req.Grade
	if grade == "" {
		grade = calculateGrade(percentage)
	}

	status := models.MarksheetStatus(strings.ToUpper(req.Status))
	if req.Status == "" {
		status = models.MarksheetStatusDraft
	}
	if !models.ValidMarksheetStatus(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus,
			"Invalid marksheet status: "+req.Status).WithField("status")
	}

	m := &models.Marksheet{
		StudentID:    req.StudentID,
		ExamType:     req.ExamType,
		AcademicYear: req.AcademicYear,
		ClassName:    req.ClassName,
		Section:      req.Section,
		Subjects:     req.Subjects,
		Percentage:   percentage,
		Grade:        grade,
		Rank:         req.Rank,
		Result:       req.Result,
		Status:       status,
		PublishDate:  req.PublishDate,
	}
	if req.TotalMarks != nil {
		m.TotalMarks = *req.TotalMarks
	}
	if req.MaxTotalMarks != nil {
		m.MaxTotalMarks = *req.MaxTotalMarks
	}

	if _, err := s.sheetStore.Create(ctx, m); err != nil {
		log.Error().Err(err).Str("studentId", req.StudentID).Msg("Failed to create marksheet")
		return nil, err
	}

	log.Info().Str("studentId", req.StudentID).Str("grade", m.Grade).Msg("Created marksheet")
	return m, nil
}

// GetMarksheetByID returns one marksheet.
func (s *MarksheetService) GetMarksheetByID(ctx context.Context, id int64) (*models.Marksheet, error) {
	return s.sheetStore.GetByID(ctx, id)
}

// GetMarksheetsByStudentID lists the marksheets of one student.
func (s *MarksheetService) GetMarksheetsByStudentID(ctx context.Context, studentID string) ([]*models.Marksheet, error) {
	return s.sheetStore.FindByStudentID(ctx, studentID)
}

// ListMarksheets returns one page of marksheets plus the total count.
func (s *MarksheetService) ListMarksheets(ctx context.Context, offset uint64, limit int) ([]*models.Marksheet, int64, error) {
	return s.sheetStore.List(ctx, offset, limit)
}

func calculateGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 40:
		return "C"
	case percentage >= 33:
		return "D"
	default:
		return "F"
	}
}
