package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
	"github.com/schoolerp/student-service/internal/pkg/logctx"
	"github.com/schoolerp/student-service/internal/pkg/logger"
)

// HandleAPIError translates service errors into the response envelope.
// Every failure carries the request's correlation ids; internal errors hide
// the cause and quote the log id instead.
func HandleAPIError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.FailWithData(ctx,
			"Validation failed",
			apperrors.CodeValidationFailed,
			"",
			dto.ValidationErrorMap(err),
		))
		return
	}

	ce := apperrors.AsCustomError(err)

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDocumentNotFound),
		errors.Is(err, apperrors.ErrMarksheetNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		message := "Resource not found"
		code := apperrors.CodeResourceNotFound
		if ce != nil {
			message = ce.Error()
			if ce.Code != "" {
				code = ce.Code
			}
		} else {
			message = err.Error()
		}
		c.JSON(http.StatusNotFound, dto.Fail(ctx, message, code, ""))

	case errors.Is(err, apperrors.ErrDuplicateAdmissionNo),
		errors.Is(err, apperrors.ErrStatusNotConfigured),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		message := err.Error()
		code := apperrors.CodeError
		field := ""
		details := ""
		if ce != nil {
			if ce.Code != "" {
				code = ce.Code
			}
			field = ce.Field
			details = ce.Details
		}
		if field != "" {
			c.JSON(http.StatusBadRequest, dto.FailField(ctx, message, code, field, details))
			return
		}
		c.JSON(http.StatusBadRequest, dto.Fail(ctx, message, code, details))

	case errors.Is(err, apperrors.ErrStorageFailure):
		log := logger.FromContext(ctx)
		log.Error().Err(err).Msg("Storage failure")
		c.JSON(http.StatusInternalServerError, dto.Fail(ctx,
			"Document storage failed",
			apperrors.CodeStorageError,
			"logId: "+logctx.LogID(ctx),
		))

	default:
		log := logger.FromContext(ctx)
		log.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.Fail(ctx,
			"An unexpected error occurred",
			apperrors.CodeInternalServerError,
			"logId: "+logctx.LogID(ctx),
		))
	}
}
