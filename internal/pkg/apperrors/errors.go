package apperrors

import "errors"

// Employee errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee ID already exists")
	ErrEmailExists      = errors.New("email already registered")
)

// Attendance errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance already marked for this day")
	ErrInvalidIDFormat     = errors.New("invalid attendance ID format")
	ErrInvalidDateFormat   = errors.New("invalid date format")
)

// Generic errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInternal         = errors.New("internal server error")
)

// CustomError carries a user-facing message on top of a sentinel error, so
// callers can match with errors.Is while still rendering a specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewDuplicateAttendanceError wraps ErrDuplicateAttendance with a message
// describing the already-marked record.
func NewDuplicateAttendanceError(message string) error {
	return &CustomError{Err: ErrDuplicateAttendance, Message: message}
}
