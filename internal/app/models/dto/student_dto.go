package dto

import "github.com/schoolerp/student-service/internal/app/models"

// StudentRequest is the wire shape for create and update. The admission
// number is honored on create (subject to a duplicate check) and ignored on
// update.
type StudentRequest struct {
	AdmissionNo           string      `json:"admissionNo"`
	AdmissionDate         models.Date `json:"admissionDate"`
	FirstName             string      `json:"firstName" binding:"required"`
	MiddleName            string      `json:"middleName"`
	LastName              string      `json:"lastName" binding:"required"`
	DateOfBirth           models.Date `json:"dateOfBirth"`
	Gender                string      `json:"gender"`
	BloodGroup            string      `json:"bloodGroup"`
	AadharNumber          string      `json:"aadharNumber"`
	Caste                 string      `json:"caste"`
	Religion              string      `json:"religion"`
	Nationality           string      `json:"nationality"`
	MotherTongue          string      `json:"motherTongue"`
	CurrentAddress        string      `json:"currentAddress"`
	PermanentAddress      string      `json:"permanentAddress"`
	City                  string      `json:"city"`
	State                 string      `json:"state"`
	Pincode               string      `json:"pincode"`
	MobileNumber          string      `json:"mobileNumber" binding:"required"`
	AlternateContact      string      `json:"alternateContact"`
	EmailID               string      `json:"emailId" binding:"omitempty,email"`
	FatherName            string      `json:"fatherName"`
	MotherName            string      `json:"motherName"`
	GuardianName          string      `json:"guardianName"`
	FatherOccupation      string      `json:"fatherOccupation"`
	MotherOccupation      string      `json:"motherOccupation"`
	AnnualIncome          int64       `json:"annualIncome"`
	ClassApplyingFor      int         `json:"classApplyingFor"`
	Section               int         `json:"section"`
	AcademicYear          string      `json:"academicYear"`
	PreviousSchoolName    string      `json:"previousSchoolName"`
	TransferCertificateNo string      `json:"transferCertificateNo"`
	PreviousClassPassed   int         `json:"previousClassPassed"`
	Board                 string      `json:"board"`
	MediumOfInstruction   string      `json:"mediumOfInstruction"`
	Status                int64       `json:"status"`

	// SameAsCurrentAddress copies the current address into the permanent
	// address, overriding any caller-supplied permanent address.
	SameAsCurrentAddress bool `json:"sameAsCurrentAddress"`
}

// StudentResponse is the wire shape returned for a student record.
type StudentResponse struct {
	ID                    int64             `json:"id"`
	AdmissionNo           string            `json:"admissionNo"`
	AdmissionDate         models.Date       `json:"admissionDate,omitempty"`
	FirstName             string            `json:"firstName"`
	MiddleName            string            `json:"middleName,omitempty"`
	LastName              string            `json:"lastName"`
	DateOfBirth           models.Date       `json:"dateOfBirth,omitempty"`
	Gender                string            `json:"gender,omitempty"`
	BloodGroup            string            `json:"bloodGroup,omitempty"`
	AadharNumber          string            `json:"aadharNumber,omitempty"`
	Caste                 string            `json:"caste,omitempty"`
	Religion              string            `json:"religion,omitempty"`
	Nationality           string            `json:"nationality,omitempty"`
	MotherTongue          string            `json:"motherTongue,omitempty"`
	CurrentAddress        string            `json:"currentAddress,omitempty"`
	PermanentAddress      string            `json:"permanentAddress,omitempty"`
	City                  string            `json:"city,omitempty"`
	State                 string            `json:"state,omitempty"`
	Pincode               string            `json:"pincode,omitempty"`
	MobileNumber          string            `json:"mobileNumber"`
	AlternateContact      string            `json:"alternateContact,omitempty"`
	EmailID               string            `json:"emailId,omitempty"`
	FatherName            string            `json:"fatherName,omitempty"`
	MotherName            string            `json:"motherName,omitempty"`
	GuardianName          string            `json:"guardianName,omitempty"`
	FatherOccupation      string            `json:"fatherOccupation,omitempty"`
	MotherOccupation      string            `json:"motherOccupation,omitempty"`
	AnnualIncome          int64             `json:"annualIncome,omitempty"`
	ClassApplyingFor      int               `json:"classApplyingFor,omitempty"`
	Section               int               `json:"section,omitempty"`
	AcademicYear          string            `json:"academicYear,omitempty"`
	PreviousSchoolName    string            `json:"previousSchoolName,omitempty"`
	TransferCertificateNo string            `json:"transferCertificateNo,omitempty"`
	PreviousClassPassed   int               `json:"previousClassPassed,omitempty"`
	Board                 string            `json:"board,omitempty"`
	MediumOfInstruction   string            `json:"mediumOfInstruction,omitempty"`
	Status                int64             `json:"status,omitempty"`
	FeesStatus            string            `json:"feesStatus,omitempty"`
	CreatedAt             models.Timestamp  `json:"createdAt"`
	UpdatedAt             models.Timestamp  `json:"updatedAt"`
	StudentDocuments      []StudentDocument `json:"studentDocuments,omitempty"`
}

// StudentDocument is the document metadata attached to a student response.
type StudentDocument struct {
	ID           int64  `json:"id"`
	DocumentType string `json:"documentType,omitempty"`
	DocumentName string `json:"documentName,omitempty"`
	URL          string `json:"s3Url,omitempty"`
}

// StudentList is the payload of the paginated student listing.
type StudentList struct {
	Students []StudentResponse `json:"students"`
	Total    int64             `json:"total"`
}
