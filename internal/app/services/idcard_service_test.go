package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

type fakeIdCardStore struct {
	cards []*models.IdCard
}

func (f *fakeIdCardStore) Create(_ context.Context, card *models.IdCard) (int64, error) {
	card.ID = int64(len(f.cards) + 1)
	f.cards = append(f.cards, card)
	return card.ID, nil
}

func (f *fakeIdCardStore) GetByID(_ context.Context, id int64) (*models.IdCard, error) {
	for _, c := range f.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeIdCardStore) FindByStudentID(_ context.Context, studentID string) ([]*models.IdCard, error) {
	var out []*models.IdCard
	for _, c := range f.cards {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeIdCardStore) List(_ context.Context, _ uint64, _ int) ([]*models.IdCard, int64, error) {
	return f.cards, int64(len(f.cards)), nil
}

func TestCreateIdCard_GeneratesNumberAndQRCode(t *testing.T) {
	svc := NewIdCardService(&fakeIdCardStore{})

	card, err := svc.CreateIdCard(context.Background(), &dto.IdCardRequest{StudentID: "42"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ID-\d{4}-\d{5}$`), card.CardNumber)
	assert.Regexp(t, regexp.MustCompile(`^STUDENT_CARD:`+card.CardNumber+`:[0-9a-f-]{8}$`), card.QRCode)
	assert.Equal(t, models.CardStatusActive, card.Status)

	assert.False(t, card.IssueDate.IsZero())
	assert.False(t, card.ValidFrom.IsZero())
	assert.Equal(t, card.ValidFrom.AddYears(1), card.ValidTo)
}

func TestCreateIdCard_HonorsSuppliedValues(t *testing.T) {
	svc := NewIdCardService(&fakeIdCardStore{})

	card, err := svc.CreateIdCard(context.Background(), &dto.IdCardRequest{
		StudentID:  "42",
		CardNumber: "ID-2024-00007",
		QRCode:     "custom-payload",
		Status:     "inactive",
	})
	require.NoError(t, err)

	assert.Equal(t, "ID-2024-00007", card.CardNumber)
	assert.Equal(t, "custom-payload", card.QRCode)
	assert.Equal(t, models.CardStatusInactive, card.Status)
}

func TestCreateIdCard_RejectsUnknownStatus(t *testing.T) {
	svc := NewIdCardService(&fakeIdCardStore{})

	_, err := svc.CreateIdCard(context.Background(), &dto.IdCardRequest{
		StudentID: "42",
		Status:    "SHREDDED",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestGetIdCardsByStudentID(t *testing.T) {
	store := &fakeIdCardStore{}
	svc := NewIdCardService(store)

	_, err := svc.CreateIdCard(context.Background(), &dto.IdCardRequest{StudentID: "42"})
	require.NoError(t, err)
	_, err = svc.CreateIdCard(context.Background(), &dto.IdCardRequest{StudentID: "7"})
	require.NoError(t, err)

	cards, err := svc.GetIdCardsByStudentID(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "42", cards[0].StudentID)
}
