package models

// CardStatus is the lifecycle state of an issued ID card.
type CardStatus string

const (
	CardStatusActive   CardStatus = "ACTIVE"
	CardStatusInactive CardStatus = "INACTIVE"
	CardStatusExpired  CardStatus = "EXPIRED"
	CardStatusLost     CardStatus = "LOST"
	CardStatusDamaged  CardStatus = "DAMAGED"
)

// ValidCardStatus reports whether s (case-insensitive) names a known status.
func ValidCardStatus(s CardStatus) bool {
	switch s {
	case CardStatusActive, CardStatusInactive, CardStatusExpired, CardStatusLost, CardStatusDamaged:
		return true
	}
	return false
}

// IdCard is an issued student identity card. Cards are immutable after
// issuance; reissue produces a new row. The student reference is an opaque
// string identifier, not a database relation.
type IdCard struct {
	ID          int64      `json:"id"`
	StudentID   string     `json:"studentId"`
	CardNumber  string     `json:"cardNumber"`
	IssueDate   Date       `json:"issueDate"`
	ValidFrom   Date       `json:"validFrom"`
	ValidTo     Date       `json:"validTo"`
	Status      CardStatus `json:"status"`
	PhotoURL    string     `json:"photoUrl,omitempty"`
	QRCode      string     `json:"qrCode,omitempty"`
	IssueReason string     `json:"issueReason,omitempty"`
	CreatedAt   Timestamp  `json:"createdAt"`
	UpdatedAt   Timestamp  `json:"updatedAt"`
}
