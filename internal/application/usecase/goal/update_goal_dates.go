package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// UpdateGoalDatesInput represents the input for updating a goal's date range.
// Empty strings clear the corresponding date, matching full-replacement
// semantics: the request always carries the complete desired range.
type UpdateGoalDatesInput struct {
	GoalID     uuid.UUID
	StartDate  string
	FinishDate string
}

// UpdateGoalDatesOutput represents the output of the update.
type UpdateGoalDatesOutput struct {
	Goal *entity.Goal
}

// UpdateGoalDatesUseCase handles goal date-range updates.
type UpdateGoalDatesUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalDatesUseCase creates a new UpdateGoalDatesUseCase instance.
func NewUpdateGoalDatesUseCase(goalRepo adapter.GoalRepository) *UpdateGoalDatesUseCase {
	return &UpdateGoalDatesUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the date-range update. No aggregate side effects.
func (uc *UpdateGoalDatesUseCase) Execute(ctx context.Context, input UpdateGoalDatesInput) (*UpdateGoalDatesOutput, error) {
	if !isValidOptionalDate(input.StartDate) || !isValidOptionalDate(input.FinishDate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDateRange,
			"dates must be in YYYY-MM-DD format",
			domainerror.ErrInvalidGoalDateRange,
		)
	}
	if input.StartDate != "" && input.FinishDate != "" && input.FinishDate < input.StartDate {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDateRange,
			"finish date must not precede start date",
			domainerror.ErrInvalidGoalDateRange,
		)
	}

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

	if err := uc.goalRepo.UpdateDates(ctx, g.ID, input.StartDate, input.FinishDate); err != nil {
		return nil, fmt.Errorf("failed to update goal dates: %w", err)
	}

	g.StartDate = input.StartDate
	g.FinishDate = input.FinishDate

	return &UpdateGoalDatesOutput{Goal: g}, nil
}

// isValidOptionalDate accepts an empty string or a parseable YYYY-MM-DD date.
func isValidOptionalDate(date string) bool {
	if date == "" {
		return true
	}
	_, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	return err == nil
}
