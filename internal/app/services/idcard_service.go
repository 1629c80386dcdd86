package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// IdCardStore is the persistence surface the id card service needs.
type IdCardStore interface {
	Create(ctx context.Context, card *models.IdCard) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.IdCard, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*models.IdCard, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.IdCard, int64, error)
}

// IdCardService issues and looks up student identity cards.
type IdCardService struct {
	cardStore IdCardStore
}

// NewIdCardService creates a new id card service instance.
func NewIdCardService(cardStore IdCardStore) *IdCardService {
	return &IdCardService{cardStore: cardStore}
}

// CreateIdCard issues a card. Card number and QR payload are generated when
// the caller leaves them blank; dates default to a one-year validity window
// starting today.
func (s *IdCardService) CreateIdCard(ctx context.Context, req *dto.IdCardRequest) (*models.IdCard, error) {
	log := logger.FromContext(ctx)

	cardNumber := req.CardNumber
	if cardNumber == "" {
		cardNumber = generateCardNumber()
	}

	qrCode := req.QRCode
	if qrCode == "" {
		qrCode = generateQRCode(cardNumber)
	}

	status := models.CardStatus(strings.ToUpper(req.Status))
	if req.Status == "" {
		status = models.CardStatusActive
	}
	if !models.ValidCardStatus(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus,
			"Invalid card status: "+req.Status).WithField("status")
	}

	card := &models.IdCard{
		StudentID:   req.StudentID,
		CardNumber:  cardNumber,
		IssueDate:   req.IssueDate,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		Status:      status,
		PhotoURL:    req.PhotoURL,
		QRCode:      qrCode,
		IssueReason: req.IssueReason,
	}
	if card.IssueDate.IsZero() {
		card.IssueDate = models.Today()
	}
	if card.ValidFrom.IsZero() {
		card.ValidFrom = models.Today()
	}
	if card.ValidTo.IsZero() {
		card.ValidTo = models.Today().AddYears(1)
	}

	if _, err := s.cardStore.Create(ctx, card); err != nil {
		log.Error().Err(err).Str("studentId", req.StudentID).Msg("Failed to create id card")
		return nil, err
	}

	log.Info().Str("studentId", req.StudentID).Str("cardNumber", card.CardNumber).Msg("Created id card")
	return card, nil
}

// GetIdCardByID returns one issued card.
func (s *IdCardService) GetIdCardByID(ctx context.Context, id int64) (*models.IdCard, error) {
	return s.cardStore.GetByID(ctx, id)
}

// GetIdCardsByStudentID lists the cards issued to one student.
func (s *IdCardService) GetIdCardsByStudentID(ctx context.Context, studentID string) ([]*models.IdCard, error) {
	return s.cardStore.FindByStudentID(ctx, studentID)
}

// ListIdCards returns one page of issued cards plus the total count.
func (s *IdCardService) ListIdCards(ctx context.Context, offset uint64, limit int) ([]*models.IdCard, int64, error) {
	return s.cardStore.List(ctx, offset, limit)
}

func generateCardNumber() string {
	year := time.Now().Year()
	return fmt.Sprintf("ID-%d-%05d", year, rand.Intn(90000)+10000)
}

func generateQRCode(cardNumber string) string {
	return "STUDENT_CARD:" + cardNumber + ":" + uuid.New().String()[:8]
}
