package models

// StudentDocument records a file uploaded for a student. The binary itself
// lives in object storage under StorageKey; StorageURL is the public
// location handed back to clients. Rows are soft deleted.
type StudentDocument struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"studentId"`
	DocumentType string    `json:"documentType,omitempty"`
	DocumentName string    `json:"documentName,omitempty"`
	StorageKey   string    `json:"s3Key,omitempty"`
	StorageURL   string    `json:"s3Url,omitempty"`
	CreatedAt    Timestamp `json:"-"`
	UpdatedAt    Timestamp `json:"-"`
	IsDeleted    bool      `json:"-"`
}
