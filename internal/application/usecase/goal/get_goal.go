package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// GetGoalInput represents the input for retrieving a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of retrieving a goal.
type GetGoalOutput struct {
	Goal *entity.GoalWithSubjects
}

// GetGoalUseCase handles retrieving a single goal with nested subjects and topics.
type GetGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
	}
}

// Execute retrieves the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	nested, err := nestSubjects(ctx, uc.subjectRepo, uc.topicRepo, g)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{Goal: nested}, nil
}
