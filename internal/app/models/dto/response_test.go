package dto

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/pkg/logctx"
)

func testContext() context.Context {
	ctx := logctx.WithLogID(context.Background(), "LOG12345")
	return logctx.WithRequestID(ctx, "req-abc")
}

func TestOKCarriesCorrelationIDs(t *testing.T) {
	r := OK(testContext(), map[string]string{"k": "v"}, "done")

	assert.True(t, r.Success)
	assert.Equal(t, "done", r.Message)
	assert.Equal(t, "LOG12345", r.LogID)
	assert.Equal(t, "req-abc", r.RequestID)
	assert.False(t, r.Timestamp.IsZero())
	assert.Nil(t, r.Error)
}

func TestOKWithMeta(t *testing.T) {
	total := int64(42)
	page := 0
	r := OKWithMeta(testContext(), []int{1, 2}, "ok", &Metadata{
		TotalRecords: &total,
		CurrentPage:  &page,
		Operation:    "GET_ALL_STUDENTS",
	})

	require.NotNil(t, r.Metadata)
	assert.Equal(t, "GET_ALL_STUDENTS", r.Metadata.Operation)
	assert.Equal(t, int64(42), *r.Metadata.TotalRecords)
}

func TestMessageOnly(t *testing.T) {
	r := Message(testContext(), "Student deleted successfully")

	assert.True(t, r.Success)
	assert.Nil(t, r.Data)
	assert.Equal(t, "Student deleted successfully", r.Message)
}

func TestFailShape(t *testing.T) {
	r := Fail(testContext(), "boom", "1001", "logId: LOG12345")

	assert.False(t, r.Success)
	require.NotNil(t, r.Error)
	assert.Equal(t, "1001", r.Error.Code)
	assert.Equal(t, "boom", r.Error.Message)
	assert.Equal(t, "logId: LOG12345", r.Error.Details)
	assert.Empty(t, r.Error.Field)
}

func TestFailFieldSetsField(t *testing.T) {
	r := FailField(testContext(), "bad id", "1001", "id", "")

	require.NotNil(t, r.Error)
	assert.Equal(t, "id", r.Error.Field)
}

func TestFailWithDataKeepsPayload(t *testing.T) {
	payload := map[string]string{"firstName": "is required"}
	r := FailWithData(testContext(), "Validation failed", "1002", "", payload)

	assert.False(t, r.Success)
	assert.Equal(t, payload, r.Data)
}

func TestTimestampWireFormat(t *testing.T) {
	raw, err := json.Marshal(OK(testContext(), nil, "ok"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	ts, ok := decoded["timestamp"].(string)
	require.True(t, ok)
	// millisecond-precision UTC instant, e.g. 2024-01-02T15:04:05.000Z
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`), ts)
}

func TestEmptyContextMintsLogID(t *testing.T) {
	r := OK(context.Background(), nil, "ok")

	// log ids are never blank; request ids only come from the middleware
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), r.LogID)
	assert.Empty(t, r.RequestID)
}
