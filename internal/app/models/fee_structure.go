package models

// FeeStructure is the fee breakdown configured for a class/section in an
// academic year. Class, section, academic year and payment frequency are
// common_master lookup ids; their human-readable names are resolved at read
// time. This service only reads fee structures; they are maintained by the
// fees service.
type FeeStructure struct {
	ID                   int64   `json:"id"`
	ClassID              int64   `json:"classId"`
	SectionID            int64   `json:"sectionId"`
	AcademicYearID       int64   `json:"academicYearId"`
	Name                 string  `json:"feeStructureName"`
	PaymentFrequency     int64   `json:"paymentFrequencyId"`
	ClassName            string  `json:"className,omitempty"`
	SectionName          string  `json:"sectionName,omitempty"`
	AcademicYearName     string  `json:"academicYearName,omitempty"`
	PaymentFrequencyName string  `json:"paymentFrequencyName,omitempty"`
	TuitionFee           float64 `json:"tuitionFee"`
	AdmissionFee         float64 `json:"admissionFee"`
	TransportFee         float64 `json:"transportFee"`
	LibraryFee           float64 `json:"libraryFee"`
	ExamFee              float64 `json:"examFee"`
	SportsFee            float64 `json:"sportsFee"`
	LabFee               float64 `json:"labFee"`
	DevelopmentFee       float64 `json:"developmentFee"`
	TotalFee             float64 `json:"totalFee"`
	MaxDiscount          float64 `json:"maxDiscount,omitempty"`
	LateFeePenalty       float64 `json:"lateFeePenalty,omitempty"`
	EffectiveFrom        Date    `json:"effectiveFrom,omitempty"`
	DueDate              Date    `json:"dueDate,omitempty"`
	IsDeleted            bool    `json:"-"`
}
