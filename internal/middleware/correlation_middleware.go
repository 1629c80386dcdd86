package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/schoolerp/student-service/internal/pkg/logctx"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// Header names used for request correlation.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderLogID     = "X-Log-ID"
)

// Correlation installs the per-request log id and request id into the
// request context and echoes both back as response headers. An incoming
// X-Request-ID is honored so identifiers survive hops between services; the
// log id is always minted here.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		logID := logctx.NewLogID()

		ctx := logctx.WithLogID(c.Request.Context(), logID)
		ctx = logctx.WithRequestID(ctx, requestID)
		ctx = logctx.WithOperation(ctx, c.Request.Method+" "+c.FullPath())
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Writer.Header().Set(HeaderLogID, logID)

		start := time.Now()
		c.Next()

		log := logger.FromContext(ctx)
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	}
}
