// Package logctx carries per-request correlation identifiers on a
// context.Context. The log id is a short identifier embedded in every log
// line and response envelope; the request id is exchanged with callers via
// the X-Request-ID header for cross-service tracing.
package logctx

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	logIDKey     contextKey = "logId"
	requestIDKey contextKey = "requestId"
	userIDKey    contextKey = "userId"
	operationKey contextKey = "operation"
)

// NewLogID generates a short uppercase identifier for log correlation.
func NewLogID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// WithLogID returns a context carrying the given log id. An empty id is
// replaced with a freshly generated one.
func WithLogID(ctx context.Context, logID string) context.Context {
	if logID == "" {
		logID = NewLogID()
	}
	return context.WithValue(ctx, logIDKey, logID)
}

// LogID returns the log id carried by ctx. When none is present a new id is
// generated so that log lines are never emitted without one; callers at the
// request boundary are responsible for installing the id they hand out.
func LogID(ctx context.Context) string {
	if id, ok := ctx.Value(logIDKey).(string); ok && id != "" {
		return id
	}
	return NewLogID()
}

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id carried by ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUserID returns a context carrying the acting user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the user id carried by ctx, or "" when absent.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithOperation returns a context carrying the current operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey, operation)
}

// Operation returns the operation name carried by ctx, or "" when absent.
func Operation(ctx context.Context) string {
	op, _ := ctx.Value(operationKey).(string)
	return op
}
