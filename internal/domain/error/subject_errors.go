package error

import "errors"

// Subject domain errors.
var (
	// ErrSubjectNotFound is returned when a subject is not found in the system.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrMissingSubjectName is returned when a subject is created without a name.
	ErrMissingSubjectName = errors.New("subject name is required")

	// ErrSubjectGoalNotFound is returned when the owning goal of a subject is not found.
	ErrSubjectGoalNotFound = errors.New("goal not found")

	// ErrInvalidDailyMinutesGoal is returned when the daily minutes goal is negative.
	ErrInvalidDailyMinutesGoal = errors.New("invalid daily minutes goal")

	// ErrInvalidScheduleDate is returned when a schedule date is not a valid YYYY-MM-DD date.
	ErrInvalidScheduleDate = errors.New("invalid schedule date")
)

// SubjectErrorCode defines error codes for subject errors.
// Format: SBJ-XXYYYY where XX is category and YYYY is specific error.
type SubjectErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSubjectNotFound         SubjectErrorCode = "SBJ-010001"
	ErrCodeMissingSubjectName      SubjectErrorCode = "SBJ-010002"
	ErrCodeSubjectGoalNotFound     SubjectErrorCode = "SBJ-010003"
	ErrCodeInvalidDailyMinutesGoal SubjectErrorCode = "SBJ-010004"
	ErrCodeMissingSubjectFields    SubjectErrorCode = "SBJ-010005"
	ErrCodeInvalidScheduleDate     SubjectErrorCode = "SBJ-010006"
)

// SubjectError represents a subject error with code and message.
type SubjectError struct {
	Code    SubjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubjectError) Unwrap() error {
	return e.Err
}

// NewSubjectError creates a new SubjectError with the given code and message.
func NewSubjectError(code SubjectErrorCode, message string, err error) *SubjectError {
	return &SubjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
