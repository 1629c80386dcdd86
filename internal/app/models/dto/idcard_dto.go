package dto

import "github.com/schoolerp/student-service/internal/app/models"

// IdCardRequest is the wire shape for ID card issuance. CardNumber and
// QRCode are generated when absent.
type IdCardRequest struct {
	StudentID   string      `json:"studentId" binding:"required"`
	CardNumber  string      `json:"cardNumber"`
	IssueDate   models.Date `json:"issueDate"`
	ValidFrom   models.Date `json:"validFrom"`
	ValidTo     models.Date `json:"validTo"`
	Status      string      `json:"status"`
	PhotoURL    string      `json:"photoUrl"`
	QRCode      string      `json:"qrCode"`
	IssueReason string      `json:"issueReason"`
}
