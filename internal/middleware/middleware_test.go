package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logctx"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Correlation())
	return r
}

func TestCorrelation_GeneratesIdentifiers(t *testing.T) {
	r := newTestRouter()

	var logID, requestID string
	r.GET("/ping", func(c *gin.Context) {
		logID = logctx.LogID(c.Request.Context())
		requestID = logctx.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), logID)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, logID, w.Header().Get(HeaderLogID))
	assert.Equal(t, requestID, w.Header().Get(HeaderRequestID))
}

func TestCorrelation_HonorsIncomingRequestID(t *testing.T) {
	r := newTestRouter()
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, "upstream-id-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-7", w.Header().Get(HeaderRequestID))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIError_NotFound(t *testing.T) {
	r := newTestRouter()
	r.GET("/missing", func(c *gin.Context) {
		HandleAPIError(c, apperrors.ErrStudentNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperrors.CodeResourceNotFound, resp.Error.Code)
	assert.NotEmpty(t, resp.LogID)
}

func TestHandleAPIError_DomainErrorKeepsCode(t *testing.T) {
	r := newTestRouter()
	r.GET("/dup", func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewCustomError(
			apperrors.ErrDuplicateAdmissionNo,
			"Admission number already exists: AD-2024-0001",
		).WithCode(apperrors.CodeDuplicateAdmissionNo))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/dup", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperrors.CodeDuplicateAdmissionNo, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "AD-2024-0001")
}

func TestHandleAPIError_InternalHidesCause(t *testing.T) {
	r := newTestRouter()
	r.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, errors.New("pq: connection refused"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperrors.CodeInternalServerError, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection refused")
	assert.Contains(t, resp.Error.Details, "logId: "+resp.LogID)
}
