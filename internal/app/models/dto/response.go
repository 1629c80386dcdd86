package dto

import (
	"context"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/pkg/logctx"
)

// Response is the uniform wrapper returned by student endpoints. It always
// carries the correlation identifiers of the request that produced it so a
// client can quote the logId to support staff.
type Response struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message,omitempty"`
	Data      interface{}      `json:"data,omitempty"`
	LogID     string           `json:"logId,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
	Timestamp models.Timestamp `json:"timestamp"`
	Error     *ErrorDetails    `json:"error,omitempty"`
	Metadata  *Metadata        `json:"metadata,omitempty"`
}

// ErrorDetails describes a failure. Code and Message are always populated;
// Field only for field-level validation failures.
type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Metadata carries operation information alongside the payload.
type Metadata struct {
	TotalRecords    *int64 `json:"totalRecords,omitempty"`
	CurrentPage     *int   `json:"currentPage,omitempty"`
	PageSize        *int   `json:"pageSize,omitempty"`
	TotalPages      *int   `json:"totalPages,omitempty"`
	ExecutionTimeMs *int64 `json:"executionTimeMs,omitempty"`
	Operation       string `json:"operation,omitempty"`
}

func base(ctx context.Context) Response {
	return Response{
		LogID:     logctx.LogID(ctx),
		RequestID: logctx.RequestID(ctx),
		Timestamp: models.Now(),
	}
}

// OK creates a successful response with data.
func OK(ctx context.Context, data interface{}, message string) Response {
	r := base(ctx)
	r.Success = true
	r.Message = message
	r.Data = data
	return r
}

// OKWithMeta creates a successful response with data and metadata.
func OKWithMeta(ctx context.Context, data interface{}, message string, metadata *Metadata) Response {
	r := OK(ctx, data, message)
	r.Metadata = metadata
	return r
}

// Message creates a successful response with just a message.
func Message(ctx context.Context, message string) Response {
	r := base(ctx)
	r.Success = true
	r.Message = message
	return r
}

// Fail creates an error response.
func Fail(ctx context.Context, message, code, details string) Response {
	r := base(ctx)
	r.Message = message
	r.Error = &ErrorDetails{
		Code:    code,
		Message: message,
		Details: details,
	}
	return r
}

// FailField creates an error response for a field-level failure.
func FailField(ctx context.Context, message, code, field, details string) Response {
	r := Fail(ctx, message, code, details)
	r.Error.Field = field
	return r
}

// FailWithData creates an error response carrying a payload, used for
// validation failures where data is a field-to-message map.
func FailWithData(ctx context.Context, message, code, details string, data interface{}) Response {
	r := Fail(ctx, message, code, details)
	r.Data = data
	return r
}
