package subject

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// UpdateSubjectScheduleInput represents the input for a schedule update.
// The fields replace the subject's schedule wholesale: a zero
// DailyMinutesGoal, nil DaysOfWeek or empty date clears the corresponding
// setting. Day names are stored as received; normalization is the schedule
// evaluator's job.
type UpdateSubjectScheduleInput struct {
	SubjectID        uuid.UUID
	DailyMinutesGoal int
	DaysOfWeek       []string
	StartDate        string
	FinishDate       string
}

// UpdateSubjectScheduleOutput represents the output of a schedule update.
type UpdateSubjectScheduleOutput struct {
	Subject *entity.Subject
}

// UpdateSubjectScheduleUseCase handles subject schedule updates. Schedule
// changes never touch the study-time counters.
type UpdateSubjectScheduleUseCase struct {
	subjectRepo adapter.SubjectRepository
}

// NewUpdateSubjectScheduleUseCase creates a new UpdateSubjectScheduleUseCase instance.
func NewUpdateSubjectScheduleUseCase(subjectRepo adapter.SubjectRepository) *UpdateSubjectScheduleUseCase {
	return &UpdateSubjectScheduleUseCase{
		subjectRepo: subjectRepo,
	}
}

// Execute performs the schedule update.
func (uc *UpdateSubjectScheduleUseCase) Execute(ctx context.Context, input UpdateSubjectScheduleInput) (*UpdateSubjectScheduleOutput, error) {
	if input.DailyMinutesGoal < 0 {
		return nil, domainerror.NewSubjectError(
			domainerror.ErrCodeInvalidDailyMinutesGoal,
			"daily minutes goal must not be negative",
			domainerror.ErrInvalidDailyMinutesGoal,
		)
	}
	if !isValidOptionalDate(input.StartDate) || !isValidOptionalDate(input.FinishDate) {
		return nil, domainerror.NewSubjectError(
			domainerror.ErrCodeInvalidScheduleDate,
			"dates must be in YYYY-MM-DD format",
			domainerror.ErrInvalidScheduleDate,
		)
	}

	s, err := uc.subjectRepo.FindByID(ctx, input.SubjectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubjectNotFound) {
			return nil, domainerror.NewSubjectError(
				domainerror.ErrCodeSubjectNotFound,
				"subject not found",
				domainerror.ErrSubjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find subject: %w", err)
	}

	s.DailyMinutesGoal = input.DailyMinutesGoal
	s.DaysOfWeek = input.DaysOfWeek
	s.StartDate = input.StartDate
	s.FinishDate = input.FinishDate

	if err := uc.subjectRepo.UpdateSchedule(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update subject schedule: %w", err)
	}

	return &UpdateSubjectScheduleOutput{Subject: s}, nil
}
