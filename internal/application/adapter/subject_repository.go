package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// SubjectRepository defines the persistence operations for subjects.
type SubjectRepository interface {
	// Create persists a new subject.
	Create(ctx context.Context, subject *entity.Subject) error

	// FindByID retrieves a subject by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error)

	// FindByGoalID retrieves all subjects of a goal, ordered by name.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Subject, error)

	// UpdateSchedule replaces the subject's schedule fields
	// (daily minutes goal, days of week, date range).
	UpdateSchedule(ctx context.Context, subject *entity.Subject) error

	// IncrementStudyTime adjusts the subject's denormalized total by the
	// given number of minutes (negative to decrement).
	IncrementStudyTime(ctx context.Context, id uuid.UUID, minutes int) error

	// DeleteByGoalID removes all subjects owned by the goal.
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}
