package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion with cascade to owned subjects,
// topics and sessions.
type DeleteGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
	sessionRepo adapter.SessionRepository
	txManager   adapter.TransactionManager
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	sessionRepo adapter.SessionRepository,
	txManager adapter.TransactionManager,
) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
	}
}

// Execute deletes the goal and everything it owns in a single transaction.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindByID(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}

	err := uc.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.DeleteByGoalID(ctx, input.GoalID); err != nil {
			return err
		}
		if err := uc.topicRepo.DeleteByGoalID(ctx, input.GoalID); err != nil {
			return err
		}
		if err := uc.subjectRepo.DeleteByGoalID(ctx, input.GoalID); err != nil {
			return err
		}
		return uc.goalRepo.Delete(ctx, input.GoalID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
