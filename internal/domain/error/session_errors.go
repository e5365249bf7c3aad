package error

import "errors"

// Study session domain errors.
var (
	// ErrSessionNotFound is returned when a study session is not found in the system.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyStopped is returned when stopping a session that already has an end time.
	ErrSessionAlreadyStopped = errors.New("session already stopped")

	// ErrInvalidDuration is returned when a session duration is zero or negative.
	ErrInvalidDuration = errors.New("duration must be greater than zero")

	// ErrInvalidSessionDate is returned when a session date is not a valid YYYY-MM-DD date.
	ErrInvalidSessionDate = errors.New("invalid session date")

	// ErrMissingSessionGoal is returned when a session is created without a goal reference.
	ErrMissingSessionGoal = errors.New("goal id is required")

	// ErrMissingSessionSubject is returned when a timer session is started without a subject.
	ErrMissingSessionSubject = errors.New("subject id is required")

	// ErrInvalidSessionAction is returned when the session action discriminator is missing or unknown.
	ErrInvalidSessionAction = errors.New("action must be 'start', 'stop' or 'add'")

	// ErrSessionStillRunning is returned when editing a session that has not been stopped yet.
	ErrSessionStillRunning = errors.New("session is still running")
)

// SessionErrorCode defines error codes for study session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSessionNotFound       SessionErrorCode = "SES-010001"
	ErrCodeInvalidDuration       SessionErrorCode = "SES-010002"
	ErrCodeInvalidSessionDate    SessionErrorCode = "SES-010003"
	ErrCodeMissingSessionGoal    SessionErrorCode = "SES-010004"
	ErrCodeMissingSessionSubject SessionErrorCode = "SES-010005"
	ErrCodeInvalidSessionAction  SessionErrorCode = "SES-010006"
	ErrCodeMissingSessionFields  SessionErrorCode = "SES-010007"

	// Conflict errors (02XXXX)
	ErrCodeSessionAlreadyStopped SessionErrorCode = "SES-020001"
	ErrCodeSessionStillRunning   SessionErrorCode = "SES-020002"
)

// SessionError represents a study session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
