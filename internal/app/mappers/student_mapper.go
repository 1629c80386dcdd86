// Package mappers converts between wire-level request/response shapes and
// persisted records. Each conversion is a plain field-by-field copy; there
// is deliberately no shared embedding between the two shapes.
package mappers

import (
	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
)

// StudentToEntity builds a new Student record from an admission request.
// Defaults for nationality, medium of instruction, academic year and fee
// status are filled here so the persisted row is always complete.
func StudentToEntity(req *dto.StudentRequest) *models.Student {
	if req == nil {
		return nil
	}

	s := &models.Student{
		AdmissionNo:           req.AdmissionNo,
		AdmissionDate:         req.AdmissionDate,
		FirstName:             req.FirstName,
		MiddleName:            req.MiddleName,
		LastName:              req.LastName,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		BloodGroup:            req.BloodGroup,
		AadharNumber:          req.AadharNumber,
		Caste:                 req.Caste,
		Religion:              req.Religion,
		Nationality:           req.Nationality,
		MotherTongue:          req.MotherTongue,
		CurrentAddress:        req.CurrentAddress,
		PermanentAddress:      req.PermanentAddress,
		City:                  req.City,
		State:                 req.State,
		Pincode:               req.Pincode,
		MobileNumber:          req.MobileNumber,
		AlternateContact:      req.AlternateContact,
		EmailID:               req.EmailID,
		FatherName:            req.FatherName,
		MotherName:            req.MotherName,
		GuardianName:          req.GuardianName,
		FatherOccupation:      req.FatherOccupation,
		MotherOccupation:      req.MotherOccupation,
		AnnualIncome:          req.AnnualIncome,
		ClassApplyingFor:      req.ClassApplyingFor,
		Section:               req.Section,
		AcademicYear:          req.AcademicYear,
		PreviousSchoolName:    req.PreviousSchoolName,
		TransferCertificateNo: req.TransferCertificateNo,
		PreviousClassPassed:   req.PreviousClassPassed,
		Board:                 req.Board,
		MediumOfInstruction:   req.MediumOfInstruction,
		Status:                req.Status,
		FeesStatus:            models.FeesStatusUnpaid,
	}

	if s.Nationality == "" {
		s.Nationality = models.DefaultNationality
	}
	if s.MediumOfInstruction == "" {
		s.MediumOfInstruction = models.DefaultMediumOfInstruction
	}
	if s.AcademicYear == "" {
		s.AcademicYear = models.DefaultAcademicYear
	}

	return s
}

// StudentToResponse converts a persisted record to its wire shape.
func StudentToResponse(s *models.Student) *dto.StudentResponse {
	if s == nil {
		return nil
	}

	return &dto.StudentResponse{
		ID:                    s.ID,
		AdmissionNo:           s.AdmissionNo,
		AdmissionDate:         s.AdmissionDate,
		FirstName:             s.FirstName,
		MiddleName:            s.MiddleName,
		LastName:              s.LastName,
		DateOfBirth:           s.DateOfBirth,
		Gender:                s.Gender,
		BloodGroup:            s.BloodGroup,
		AadharNumber:          s.AadharNumber,
		Caste:                 s.Caste,
		Religion:              s.Religion,
		Nationality:           s.Nationality,
		MotherTongue:          s.MotherTongue,
		CurrentAddress:        s.CurrentAddress,
		PermanentAddress:      s.PermanentAddress,
		City:                  s.City,
		State:                 s.State,
		Pincode:               s.Pincode,
		MobileNumber:          s.MobileNumber,
		AlternateContact:      s.AlternateContact,
		EmailID:               s.EmailID,
		FatherName:            s.FatherName,
		MotherName:            s.MotherName,
		GuardianName:          s.GuardianName,
		FatherOccupation:      s.FatherOccupation,
		MotherOccupation:      s.MotherOccupation,
		AnnualIncome:          s.AnnualIncome,
		ClassApplyingFor:      s.ClassApplyingFor,
		Section:               s.Section,
		AcademicYear:          s.AcademicYear,
		PreviousSchoolName:    s.PreviousSchoolName,
		TransferCertificateNo: s.TransferCertificateNo,
		PreviousClassPassed:   s.PreviousClassPassed,
		Board:                 s.Board,
		MediumOfInstruction:   s.MediumOfInstruction,
		Status:                s.Status,
		FeesStatus:            string(s.FeesStatus),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

// ApplyStudentUpdate copies the mutable attributes of req onto an existing
// record. The id, admission number, admission date and creation timestamp
// never change after admission.
func ApplyStudentUpdate(req *dto.StudentRequest, s *models.Student) {
	if req == nil || s == nil {
		return
	}

	s.FirstName = req.FirstName
	s.MiddleName = req.MiddleName
	s.LastName = req.LastName
	s.DateOfBirth = req.DateOfBirth
	s.Gender = req.Gender
	s.BloodGroup = req.BloodGroup
	s.AadharNumber = req.AadharNumber
	s.Caste = req.Caste
	s.Religion = req.Religion
	s.Nationality = req.Nationality
	s.MotherTongue = req.MotherTongue
	s.CurrentAddress = req.CurrentAddress
	s.PermanentAddress = req.PermanentAddress
	s.City = req.City
	s.State = req.State
	s.Pincode = req.Pincode
	s.MobileNumber = req.MobileNumber
	s.AlternateContact = req.AlternateContact
	s.EmailID = req.EmailID
	s.FatherName = req.FatherName
	s.MotherName = req.MotherName
	s.GuardianName = req.GuardianName
	s.FatherOccupation = req.FatherOccupation
	s.MotherOccupation = req.MotherOccupation
	s.AnnualIncome = req.AnnualIncome
	s.ClassApplyingFor = req.ClassApplyingFor
	s.Section = req.Section
	s.AcademicYear = req.AcademicYear
	s.PreviousSchoolName = req.PreviousSchoolName
	s.TransferCertificateNo = req.TransferCertificateNo
	s.PreviousClassPassed = req.PreviousClassPassed
	s.Board = req.Board
	s.MediumOfInstruction = req.MediumOfInstruction
	s.Status = req.Status
}

// DocumentToInfo converts stored document metadata to the shape attached to
// student responses.
func DocumentToInfo(d *models.StudentDocument) dto.StudentDocument {
	return dto.StudentDocument{
		ID:           d.ID,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		URL:          d.StorageURL,
	}
}
