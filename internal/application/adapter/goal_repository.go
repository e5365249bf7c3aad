// Package adapter defines the interfaces between the application layer and
// the outside world (persistence, clock). Implementations live under
// internal/integration.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the persistence operations for goals.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves all goals, newest first.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// UpdateDates replaces the goal's date range. Empty strings clear a date.
	UpdateDates(ctx context.Context, id uuid.UUID, startDate, finishDate string) error

	// IncrementStudyTime adjusts the goal's denormalized total by the given
	// number of minutes (negative to decrement).
	IncrementStudyTime(ctx context.Context, id uuid.UUID, minutes int) error

	// Delete removes the goal row. Owned subjects, topics and sessions are
	// removed by their own repositories within the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
