package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// TopicRepository defines the persistence operations for topics.
type TopicRepository interface {
	// Create persists a new topic.
	Create(ctx context.Context, topic *entity.Topic) error

	// FindByID retrieves a topic by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Topic, error)

	// FindBySubjectID retrieves all topics of a subject, ordered by name.
	FindBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]*entity.Topic, error)

	// IncrementStudyTime adjusts the topic's denormalized total by the given
	// number of minutes (negative to decrement).
	IncrementStudyTime(ctx context.Context, id uuid.UUID, minutes int) error

	// DeleteByGoalID removes all topics whose subject belongs to the goal.
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}
