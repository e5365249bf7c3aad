package session

import (
	"context"
	"fmt"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
)

// ListSessionsInput represents the optional filters for listing sessions.
type ListSessionsInput struct {
	Filter adapter.SessionFilter
}

// ListSessionsOutput represents the output of listing sessions.
type ListSessionsOutput struct {
	Sessions []*entity.StudySession
}

// ListSessionsUseCase handles session listing with filters.
type ListSessionsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListSessionsUseCase creates a new ListSessionsUseCase instance.
func NewListSessionsUseCase(sessionRepo adapter.SessionRepository) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists sessions matching the filter, newest start time first.
func (uc *ListSessionsUseCase) Execute(ctx context.Context, input ListSessionsInput) (*ListSessionsOutput, error) {
	sessions, err := uc.sessionRepo.Find(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &ListSessionsOutput{Sessions: sessions}, nil
}
