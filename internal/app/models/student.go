package models

// FeesStatus tracks how much of the fees a student has settled.
type FeesStatus string

const (
	FeesStatusPaid    FeesStatus = "PAID"
	FeesStatusUnpaid  FeesStatus = "UNPAID"
	FeesStatusPartial FeesStatus = "PARTIAL"
	FeesStatusOverdue FeesStatus = "OVERDUE"
)

// Student is the persisted admission record. Rows are soft deleted: the
// is_deleted flag hides a student from every lookup while the row stays in
// storage. The status column holds a code resolved through the common_master
// lookup table; it is not a database-level foreign key.
type Student struct {
	ID                    int64      `json:"id"`
	AdmissionNo           string     `json:"admissionNo"`
	AdmissionDate         Date       `json:"admissionDate,omitempty"`
	FirstName             string     `json:"firstName"`
	MiddleName            string     `json:"middleName,omitempty"`
	LastName              string     `json:"lastName"`
	DateOfBirth           Date       `json:"dateOfBirth,omitempty"`
	Gender                string     `json:"gender,omitempty"`
	BloodGroup            string     `json:"bloodGroup,omitempty"`
	AadharNumber          string     `json:"aadharNumber,omitempty"`
	Caste                 string     `json:"caste,omitempty"`
	Religion              string     `json:"religion,omitempty"`
	Nationality           string     `json:"nationality,omitempty"`
	MotherTongue          string     `json:"motherTongue,omitempty"`
	CurrentAddress        string     `json:"currentAddress,omitempty"`
	PermanentAddress      string     `json:"permanentAddress,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	Pincode               string     `json:"pincode,omitempty"`
	MobileNumber          string     `json:"mobileNumber"`
	AlternateContact      string     `json:"alternateContact,omitempty"`
	EmailID               string     `json:"emailId,omitempty"`
	FatherName            string     `json:"fatherName,omitempty"`
	MotherName            string     `json:"motherName,omitempty"`
	GuardianName          string     `json:"guardianName,omitempty"`
	FatherOccupation      string     `json:"fatherOccupation,omitempty"`
	MotherOccupation      string     `json:"motherOccupation,omitempty"`
	AnnualIncome          int64      `json:"annualIncome,omitempty"`
	ClassApplyingFor      int        `json:"classApplyingFor,omitempty"`
	Section               int        `json:"section,omitempty"`
	AcademicYear          string     `json:"academicYear,omitempty"`
	PreviousSchoolName    string     `json:"previousSchoolName,omitempty"`
	TransferCertificateNo string     `json:"transferCertificateNo,omitempty"`
	PreviousClassPassed   int        `json:"previousClassPassed,omitempty"`
	Board                 string     `json:"board,omitempty"`
	MediumOfInstruction   string     `json:"mediumOfInstruction,omitempty"`
	Status                int64      `json:"status,omitempty"`
	FeesStatus            FeesStatus `json:"feesStatus"`
	CreatedAt             Timestamp  `json:"createdAt"`
	UpdatedAt             Timestamp  `json:"updatedAt"`
	IsDeleted             bool       `json:"-"`
}

// Defaults applied when a student is admitted without these fields.
const (
	DefaultNationality         = "Indian"
	DefaultMediumOfInstruction = "English"
	DefaultAcademicYear        = "2024-25"
)
