package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/logger"
)

// HandleAPIError converts service errors to the uniform error envelope.
// Every error is handled at the point of detection: nothing propagates
// further up and there is no retry or fallback.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, apperrors.ErrEmployeeNotFound):
		status, message = http.StatusNotFound, "Employee not found"
	case errors.Is(err, apperrors.ErrAttendanceNotFound):
		status, message = http.StatusNotFound, "Attendance record not found"
	case errors.Is(err, apperrors.ErrEmployeeIDExists):
		status, message = http.StatusBadRequest, "Employee ID already exists"
	case errors.Is(err, apperrors.ErrEmailExists):
		status, message = http.StatusBadRequest, "Email already registered"
	case errors.Is(err, apperrors.ErrDuplicateAttendance):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrInvalidIDFormat):
		status, message = http.StatusBadRequest, "Invalid attendance ID format"
	case errors.Is(err, apperrors.ErrInvalidDateFormat):
		status, message = http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD"
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled service error")
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(message, status))
}
