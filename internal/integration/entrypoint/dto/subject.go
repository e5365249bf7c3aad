package dto

import (
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// CreateSubjectRequest represents the request body for subject creation.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSubjectScheduleRequest represents the request body for replacing a
// subject's recurring schedule. Absent fields clear the stored values.
type UpdateSubjectScheduleRequest struct {
	DailyMinutesGoal int      `json:"daily_minutes_goal"`
	DaysOfWeek       []string `json:"days_of_week"`
	StartDate        string   `json:"start_date"`
	FinishDate       string   `json:"finish_date"`
}

// SubjectResponse represents a single subject in API responses.
type SubjectResponse struct {
	ID               string          `json:"id"`
	GoalID           string          `json:"goal_id"`
	Name             string          `json:"name"`
	StudyTime        int             `json:"study_time"`
	DailyMinutesGoal int             `json:"daily_minutes_goal,omitempty"`
	DaysOfWeek       []string        `json:"days_of_week,omitempty"`
	StartDate        string          `json:"start_date,omitempty"`
	FinishDate       string          `json:"finish_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Topics           []TopicResponse `json:"topics,omitempty"`
}

// ToSubjectResponse converts a domain Subject entity to a SubjectResponse DTO.
func ToSubjectResponse(s *entity.Subject) SubjectResponse {
	return SubjectResponse{
		ID:               s.ID.String(),
		GoalID:           s.GoalID.String(),
		Name:             s.Name,
		StudyTime:        s.StudyTime,
		DailyMinutesGoal: s.DailyMinutesGoal,
		DaysOfWeek:       s.DaysOfWeek,
		StartDate:        s.StartDate,
		FinishDate:       s.FinishDate,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToSubjectWithTopicsResponse converts a SubjectWithTopics to a
// SubjectResponse DTO with nested topics.
func ToSubjectWithTopicsResponse(s *entity.SubjectWithTopics) SubjectResponse {
	response := ToSubjectResponse(s.Subject)
	response.Topics = make([]TopicResponse, len(s.Topics))
	for i, t := range s.Topics {
		response.Topics[i] = ToTopicResponse(t)
	}
	return response
}
