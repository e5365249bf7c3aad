package session

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

// AddSessionInput represents the input for manually adding a completed session.
type AddSessionInput struct {
	GoalID    *uuid.UUID
	SubjectID *uuid.UUID
	TopicID   *uuid.UUID
	Duration  int
	Date      string // YYYY-MM-DD, defaults to today when empty
	Comment   string
}

// AddSessionOutput represents the output of adding a session.
type AddSessionOutput struct {
	Session *entity.StudySession
}

// AddSessionUseCase records a manual session directly in the completed
// state and credits the counters in the same transaction.
type AddSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
	txManager   adapter.TransactionManager
	clock       adapter.Clock
}

// NewAddSessionUseCase creates a new AddSessionUseCase instance.
func NewAddSessionUseCase(
	sessionRepo adapter.SessionRepository,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *AddSessionUseCase {
	return &AddSessionUseCase{
		sessionRepo: sessionRepo,
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute adds the manual session.
func (uc *AddSessionUseCase) Execute(ctx context.Context, input AddSessionInput) (*AddSessionOutput, error) {
	if input.GoalID == nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeMissingSessionGoal,
			"goal id is required",
			domainerror.ErrMissingSessionGoal,
		)
	}
	if input.SubjectID == nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeMissingSessionSubject,
			"subject id is required to add a session",
			domainerror.ErrMissingSessionSubject,
		)
	}
	if input.Duration <= 0 {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidDuration,
			"duration must be greater than zero",
			domainerror.ErrInvalidDuration,
		)
	}

	date := input.Date
	if date == "" {
		date = uc.clock.Now().Format("2006-01-02")
	} else if _, err := time.ParseInLocation("2006-01-02", date, time.UTC); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidSessionDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidSessionDate,
		)
	}

	if _, err := uc.goalRepo.FindByID(ctx, *input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewSessionError(
				domainerror.ErrCodeMissingSessionGoal,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if _, err := uc.subjectRepo.FindByID(ctx, *input.SubjectID); err != nil {
		if errors.Is(err, domainerror.ErrSubjectNotFound) {
			return nil, domainerror.NewSessionError(
				domainerror.ErrCodeMissingSessionSubject,
				"subject not found",
				domainerror.ErrSubjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find subject: %w", err)
	}

	s := entity.NewCompletedSession(*input.GoalID, input.SubjectID, input.TopicID, input.Duration, date, input.Comment)

	err := uc.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.Create(ctx, s); err != nil {
			return err
		}
		return applyCounterDelta(ctx, uc.goalRepo, uc.subjectRepo, uc.topicRepo, s.GoalID, s.SubjectID, s.TopicID, s.Duration)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add session: %w", err)
	}

	return &AddSessionOutput{Session: s}, nil
}
