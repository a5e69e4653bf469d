package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/hrmslite/backend/internal/app/models/dto"
)

// HandleBindingError converts a request-binding failure into a 422 envelope
// with a field-path-annotated message.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity,
		dto.NewErrorResponse(formatBindingError(err), http.StatusUnprocessableEntity))
}

func formatBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Validation failed: " + err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, fieldErr.Field()+": "+formatValidationError(fieldErr))
	}

	return "Validation failed: " + strings.Join(parts, ", ")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "failed validation: " + e.Tag()
	}
}
