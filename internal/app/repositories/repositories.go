package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	StudentRepository         *StudentRepository
	StudentDocumentRepository *StudentDocumentRepository
	IdCardRepository          *IdCardRepository
	MarksheetRepository       *MarksheetRepository
	PromotionRepository       *PromotionRepository
	CommonMasterRepository    *CommonMasterRepository
	FeeStructureRepository    *FeeStructureRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:         NewStudentRepository(db),
		StudentDocumentRepository: NewStudentDocumentRepository(db),
		IdCardRepository:          NewIdCardRepository(db),
		MarksheetRepository:       NewMarksheetRepository(db),
		PromotionRepository:       NewPromotionRepository(db),
		CommonMasterRepository:    NewCommonMasterRepository(db),
		FeeStructureRepository:    NewFeeStructureRepository(db),
	}
}
