package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// SessionFilter narrows session queries. Nil fields match everything.
type SessionFilter struct {
	GoalID    *uuid.UUID
	SubjectID *uuid.UUID
	TopicID   *uuid.UUID
}

// SessionRepository defines the persistence operations for study sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.StudySession) error

	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error)

	// Find retrieves sessions matching the filter, newest start time first.
	Find(ctx context.Context, filter SessionFilter) ([]*entity.StudySession, error)

	// Update persists the full session state.
	Update(ctx context.Context, session *entity.StudySession) error

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByGoalID removes all sessions belonging to the goal.
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}
