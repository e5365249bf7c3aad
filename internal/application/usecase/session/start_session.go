// Package session contains the study-session ledger use cases. Every
// mutation that touches the denormalized study-time counters runs inside a
// single transaction, so the session row and the goal/subject/topic totals
// can never disagree after a partial failure.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// StartSessionInput represents the input for starting a timer session.
type StartSessionInput struct {
	GoalID    *uuid.UUID
	SubjectID *uuid.UUID
	TopicID   *uuid.UUID
}

// StartSessionOutput represents the output of starting a session.
type StartSessionOutput struct {
	Session *entity.StudySession
}

// StartSessionUseCase creates a running session. Counters are untouched:
// a running session has zero duration.
type StartSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	clock       adapter.Clock
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance.
func NewStartSessionUseCase(
	sessionRepo adapter.SessionRepository,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	clock adapter.Clock,
) *StartSessionUseCase {
	return &StartSessionUseCase{
		sessionRepo: sessionRepo,
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		clock:       clock,
	}
}

// Execute starts a new timer session.
func (uc *StartSessionUseCase) Execute(ctx context.Context, input StartSessionInput) (*StartSessionOutput, error) {
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
			"subject id is required to start a session",
			domainerror.ErrMissingSessionSubject,
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

	session := entity.NewRunningSession(*input.GoalID, input.SubjectID, input.TopicID, uc.clock.Now())

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &StartSessionOutput{Session: session}, nil
}
