package dto

import (
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// SessionActionRequest represents the request body for POST /sessions. The
// action discriminator selects between starting a timer, stopping one, or
// adding a completed session manually; the remaining fields matter only for
// the matching action.
type SessionActionRequest struct {
	Action string `json:"action" binding:"required"`

	// start / add
	GoalID    string `json:"goal_id,omitempty"`
	SubjectID string `json:"subject_id,omitempty"`
	TopicID   string `json:"topic_id,omitempty"`

	// stop
	SessionID string `json:"session_id,omitempty"`

	// add
	Duration int    `json:"duration,omitempty"`
	Date     string `json:"date,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// UpdateSessionRequest represents the request body for PATCH /sessions/:id.
// Absent fields are left untouched; for subject_id and topic_id an empty
// string clears the reference.
type UpdateSessionRequest struct {
	Duration  *int    `json:"duration,omitempty"`
	Date      *string `json:"date,omitempty"`
	Comment   *string `json:"comment,omitempty"`
	SubjectID *string `json:"subject_id,omitempty"`
	TopicID   *string `json:"topic_id,omitempty"`
}

// SessionResponse represents a single study session in API responses.
type SessionResponse struct {
	ID        string     `json:"id"`
	GoalID    string     `json:"goal_id"`
	SubjectID string     `json:"subject_id,omitempty"`
	TopicID   string     `json:"topic_id,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int        `json:"duration"`
	Date      string     `json:"date"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SessionListResponse represents the response for listing sessions.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// ToSessionResponse converts a domain StudySession entity to a SessionResponse DTO.
func ToSessionResponse(s *entity.StudySession) SessionResponse {
	response := SessionResponse{
		ID:        s.ID.String(),
		GoalID:    s.GoalID.String(),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Duration,
		Date:      s.Date,
		Comment:   s.Comment,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.SubjectID != nil {
		response.SubjectID = s.SubjectID.String()
	}
	if s.TopicID != nil {
		response.TopicID = s.TopicID.String()
	}

	return response
}

// ToSessionListResponse converts a list of sessions to SessionListResponse.
func ToSessionListResponse(sessions []*entity.StudySession) SessionListResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = ToSessionResponse(s)
	}
	return SessionListResponse{
		Sessions: responses,
	}
}
