package services

import (
	"github.com/schoolerp/student-service/internal/app/repositories"
	"github.com/schoolerp/student-service/internal/db"
	"github.com/schoolerp/student-service/internal/pkg/objectstorage"
)

// Services holds all the service instances.
type Services struct {
	StudentService      *StudentService
	IdCardService       *IdCardService
	MarksheetService    *MarksheetService
	DocumentService     *DocumentService
	FeeStructureService *FeeStructureService
}

// NewServices wires every service against the shared repositories and
// infrastructure.
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, storage objectstorage.ObjectStorage) *Services {
	return &Services{
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.StudentDocumentRepository,
			repos.CommonMasterRepository,
			repos.PromotionRepository,
			database,
		),
		IdCardService:       NewIdCardService(repos.IdCardRepository),
		MarksheetService:    NewMarksheetService(repos.MarksheetRepository),
		DocumentService:     NewDocumentService(repos.StudentDocumentRepository, storage),
		FeeStructureService: NewFeeStructureService(repos.FeeStructureRepository),
	}
}
