package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// DeleteSessionInput represents the input for session deletion.
type DeleteSessionInput struct {
	SessionID uuid.UUID
}

// DeleteSessionUseCase removes a session. Completed sessions give their
// duration back to the owning counters; running sessions never counted, so
// their deletion has no counter effect.
type DeleteSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
	txManager   adapter.TransactionManager
}

// NewDeleteSessionUseCase creates a new DeleteSessionUseCase instance.
func NewDeleteSessionUseCase(
	sessionRepo adapter.SessionRepository,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	txManager adapter.TransactionManager,
) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{
		sessionRepo: sessionRepo,
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		txManager:   txManager,
	}
}

// Execute deletes the session.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, input DeleteSessionInput) error {
	s, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return domainerror.NewSessionError(
				domainerror.ErrCodeSessionNotFound,
				"session not found",
				domainerror.ErrSessionNotFound,
			)
		}
		return fmt.Errorf("failed to find session: %w", err)
	}

	err = uc.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.Delete(ctx, s.ID); err != nil {
			return err
		}
		if !s.IsCompleted() {
			return nil
		}
		return applyCounterDelta(ctx, uc.goalRepo, uc.subjectRepo, uc.topicRepo, s.GoalID, s.SubjectID, s.TopicID, -s.Duration)
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
