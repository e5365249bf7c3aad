// Package error defines domain-specific errors for the Study Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalName is returned when a goal is created without a name.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrInvalidGoalDateRange is returned when the goal date range is malformed.
	ErrInvalidGoalDateRange = errors.New("invalid goal date range")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeMissingGoalName      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalDateRange GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010004"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
