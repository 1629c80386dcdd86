package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("conflict")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrDuplicateAdmissionNo = errors.New("admission number already exists")
)

// Promotion errors
var (
	ErrStatusNotConfigured = errors.New("status not found in common master")
)

// Document errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrStorageFailure   = errors.New("object storage operation failed")
)

// Marksheet errors
var (
	ErrMarksheetNotFound = errors.New("marksheet not found")
	ErrInvalidStatus     = errors.New("invalid status value")
)

// Error codes carried on CustomError and surfaced in response envelopes.
// The generic "0000" code comes from the upstream ERP convention.
const (
	CodeError                = "0000"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeDuplicateAdmissionNo = "DUPLICATE_ADMISSION_NO"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
	CodeStorageError         = "STORAGE_ERROR"
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details string
	Field   string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithDetails adds a free-text elaboration
func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// WithField marks the error as a field-level failure
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
		Code:    CodeResourceNotFound,
	}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// AsCustomError unwraps err into a *CustomError, or nil when it isn't one.
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
