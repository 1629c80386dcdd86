package services

import (
	"context"

	"github.com/schoolerp/student-service/internal/app/models"
)

// FeeStructureStore is the read-only persistence surface for fee structures.
type FeeStructureStore interface {
	GetByID(ctx context.Context, id int64) (*models.FeeStructure, error)
	List(ctx context.Context, classID, sectionID int64, offset uint64, limit int) ([]*models.FeeStructure, int64, error)
}

// FeeStructureService exposes the fee structures maintained by the fees
// service for read-only consumption.
type FeeStructureService struct {
	feeStore FeeStructureStore
}

// NewFeeStructureService creates a new fee structure service instance.
func NewFeeStructureService(feeStore FeeStructureStore) *FeeStructureService {
	return &FeeStructureService{feeStore: feeStore}
}

// GetFeeStructureByID returns one fee structure.
func (s *FeeStructureService) GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	return s.feeStore.GetByID(ctx, id)
}

// ListFeeStructures returns one page of fee structures, optionally narrowed
// to a class and section.
func (s *FeeStructureService) ListFeeStructures(ctx context.Context, classID, sectionID int64, offset uint64, limit int) ([]*models.FeeStructure, int64, error) {
	return s.feeStore.List(ctx, classID, sectionID, offset, limit)
}
