package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

type fakeMarksheetStore struct {
	sheets []*models.Marksheet
}

func (f *fakeMarksheetStore) Create(_ context.Context, m *models.Marksheet) (int64, error) {
	m.ID = int64(len(f.sheets) + 1)
	f.sheets = append(f.sheets, m)
	return m.ID, nil
}

func (f *fakeMarksheetStore) GetByID(_ context.Context, id int64) (*models.Marksheet, error) {
	for _, m := range f.sheets {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrMarksheetNotFound
}

func (f *fakeMarksheetStore) FindByStudentID(_ context.Context, studentID string) ([]*models.Marksheet, error) {
	var out []*models.Marksheet
	for _, m := range f.sheets {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMarksheetStore) List(_ context.Context, _ uint64, _ int) ([]*models.Marksheet, int64, error) {
	return f.sheets, int64(len(f.sheets)), nil
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestCreateMarksheet_DerivesPercentageAndGrade(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID:     "42",
		TotalMarks:    intPtr(425),
		MaxTotalMarks: intPtr(500),
	})
	require.NoError(t, err)
	assert.InDelta(t, 85.0, m.Percentage, 0.001)
	assert.Equal(t, "A", m.Grade)
	assert.Equal(t, models.MarksheetStatusDraft, m.Status)
}

func TestCreateMarksheet_ExplicitZeroPercentageTriggersDerivation(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID:     "42",
		Percentage:    floatPtr(0),
		TotalMarks:    intPtr(330),
		MaxTotalMarks: intPtr(500),
	})
	require.NoError(t, err)
	assert.InDelta(t, 66.0, m.Percentage, 0.001)
	assert.Equal(t, "B", m.Grade)
}

func TestCreateMarksheet_SuppliedPercentageWins(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID:     "42",
		Percentage:    floatPtr(91.5),
		TotalMarks:    intPtr(100),
		MaxTotalMarks: intPtr(500),
	})
	require.NoError(t, err)
	assert.InDelta(t, 91.5, m.Percentage, 0.001)
	assert.Equal(t, "A+", m.Grade)
}

func TestCreateMarksheet_SuppliedGradeNotOverwritten(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID:  "42",
		Percentage: floatPtr(95),
		Grade:      "DISTINCTION",
	})
	require.NoError(t, err)
	assert.Equal(t, "DISTINCTION", m.Grade)
}

func TestCreateMarksheet_NoMarksNoPercentage(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{StudentID: "42"})
	require.NoError(t, err)
	assert.Zero(t, m.Percentage)
	assert.Equal(t, "F", m.Grade)
}

func TestCreateMarksheet_ZeroMaxMarksSkipsDerivation(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	m, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID:     "42",
		TotalMarks:    intPtr(100),
		MaxTotalMarks: intPtr(0),
	})
	require.NoError(t, err)
	assert.Zero(t, m.Percentage)
}

func TestCreateMarksheet_RejectsUnknownStatus(t *testing.T) {
	svc := NewMarksheetService(&fakeMarksheetStore{})

	_, err := svc.CreateMarksheet(context.Background(), &dto.MarksheetRequest{
		StudentID: "42",
		Status:    "FINALIZED",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		grade      string
	}{
		{90, "A+"}, {89.99, "A"}, {80, "A"}, {79.5, "B+"}, {70, "B+"},
		{60, "B"}, {50, "C+"}, {40, "C"}, {33, "D"}, {32.99, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.grade, calculateGrade(tt.percentage), "percentage %.2f", tt.percentage)
	}
}
