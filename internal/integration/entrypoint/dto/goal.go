package dto

import (
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGoalDatesRequest represents the request body for updating a goal's
// date range. The request carries the complete desired range; an absent or
// empty date clears the stored one.
type UpdateGoalDatesRequest struct {
	StartDate  string `json:"start_date"`
	FinishDate string `json:"finish_date"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	TotalStudyTime int               `json:"total_study_time"`
	StartDate      string            `json:"start_date,omitempty"`
	FinishDate     string            `json:"finish_date,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Subjects       []SubjectResponse `json:"subjects,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:             g.ID.String(),
		Name:           g.Name,
		TotalStudyTime: g.TotalStudyTime,
		StartDate:      g.StartDate,
		FinishDate:     g.FinishDate,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// ToGoalWithSubjectsResponse converts a GoalWithSubjects to a GoalResponse
// DTO with nested subjects and topics.
func ToGoalWithSubjectsResponse(g *entity.GoalWithSubjects) GoalResponse {
	response := ToGoalResponse(g.Goal)
	response.Subjects = make([]SubjectResponse, len(g.Subjects))
	for i, s := range g.Subjects {
		response.Subjects[i] = ToSubjectWithTopicsResponse(s)
	}
	return response
}

// ToGoalListResponse converts a list of GoalWithSubjects to GoalListResponse.
func ToGoalListResponse(goals []*entity.GoalWithSubjects) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalWithSubjectsResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
