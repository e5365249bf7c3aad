package error

import "errors"

// Progress domain errors.
var (
	// ErrInvalidViewMode is returned when the requested view mode is unknown.
	ErrInvalidViewMode = errors.New("view must be 'day', 'week', 'month' or 'total'")

	// ErrInvalidReferenceDate is returned when the reference date is not a valid YYYY-MM-DD date.
	ErrInvalidReferenceDate = errors.New("invalid reference date")
)

// ProgressErrorCode defines error codes for progress errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidViewMode      ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidReferenceDate ProgressErrorCode = "PRG-010002"
)

// ProgressError represents a progress computation error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
