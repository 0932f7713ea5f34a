package handler

import (
	"errors"
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

type logFielder interface {
	LogFields() map[string]any
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateCalendar):
		return http.StatusConflict
	case domainerr.IsInvalidFieldCombinationError(err), domainerr.IsUnsupportedUnitError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsClientError(err), errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the matching ErrorResponse.
// Server-side failures never expose the underlying error text.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	statusCode := statusFor(err)
	requestID := coreport.RequestIDFrom(c.Request.Context())

	fields := map[string]any{
		"error":      err.Error(),
		"path":       c.FullPath(),
		"request_id": requestID,
	}
	var detailed logFielder
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	clientMessage := err.Error()
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields)
		clientMessage = http.StatusText(statusCode)
	} else {
		logger.Debug(message, fields)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   clientMessage,
		RequestID: requestID,
	})
}

// formatInstant renders t in loc with sub-second precision when present
func formatInstant(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC3339Nano)
}
