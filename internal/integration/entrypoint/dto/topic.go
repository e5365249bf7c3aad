package dto

import (
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// CreateTopicRequest represents the request body for topic creation.
type CreateTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

// TopicResponse represents a single topic in API responses.
type TopicResponse struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	Name      string    `json:"name"`
	StudyTime int       `json:"study_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTopicResponse converts a domain Topic entity to a TopicResponse DTO.
func ToTopicResponse(t *entity.Topic) TopicResponse {
	return TopicResponse{
		ID:        t.ID.String(),
		SubjectID: t.SubjectID.String(),
		Name:      t.Name,
		StudyTime: t.StudyTime,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
