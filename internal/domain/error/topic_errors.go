package error

import "errors"

// Topic domain errors.
var (
	// ErrTopicNotFound is returned when a topic is not found in the system.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrMissingTopicName is returned when a topic is created without a name.
	ErrMissingTopicName = errors.New("topic name is required")

	// ErrTopicSubjectNotFound is returned when the owning subject of a topic is not found.
	ErrTopicSubjectNotFound = errors.New("subject not found")
)

// TopicErrorCode defines error codes for topic errors.
// Format: TPC-XXYYYY where XX is category and YYYY is specific error.
type TopicErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTopicNotFound        TopicErrorCode = "TPC-010001"
	ErrCodeMissingTopicName     TopicErrorCode = "TPC-010002"
	ErrCodeTopicSubjectNotFound TopicErrorCode = "TPC-010003"
)

// TopicError represents a topic error with code and message.
type TopicError struct {
	Code    TopicErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TopicError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TopicError) Unwrap() error {
	return e.Err
}

// NewTopicError creates a new TopicError with the given code and message.
func NewTopicError(code TopicErrorCode, message string, err error) *TopicError {
	return &TopicError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
