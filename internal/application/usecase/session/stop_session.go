package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// StopSessionInput represents the input for stopping a running session.
type StopSessionInput struct {
	SessionID uuid.UUID
}

// StopSessionOutput represents the output of stopping a session.
type StopSessionOutput struct {
	Session *entity.StudySession
}

// StopSessionUseCase completes a running session and credits its duration to
// the owning goal, subject and topic counters.
type StopSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
	txManager   adapter.TransactionManager
	clock       adapter.Clock
}

// NewStopSessionUseCase creates a new StopSessionUseCase instance.
func NewStopSessionUseCase(
	sessionRepo adapter.SessionRepository,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *StopSessionUseCase {
	return &StopSessionUseCase{
		sessionRepo: sessionRepo,
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute stops the session. Stopping an already-stopped session is a
// conflict; the counters are credited exactly once.
func (uc *StopSessionUseCase) Execute(ctx context.Context, input StopSessionInput) (*StopSessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, domainerror.NewSessionError(
				domainerror.ErrCodeSessionNotFound,
				"session not found",
				domainerror.ErrSessionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if s.IsCompleted() {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionAlreadyStopped,
			"session already stopped",
			domainerror.ErrSessionAlreadyStopped,
		)
	}

	endTime := uc.clock.Now().UTC()
	duration := int(math.Round(endTime.Sub(s.StartTime).Minutes()))

	s.EndTime = &endTime
	s.Duration = duration

	err = uc.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.Update(ctx, s); err != nil {
			return err
		}
		return applyCounterDelta(ctx, uc.goalRepo, uc.subjectRepo, uc.topicRepo, s.GoalID, s.SubjectID, s.TopicID, duration)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stop session: %w", err)
	}

	return &StopSessionOutput{Session: s}, nil
}

// applyCounterDelta adjusts the goal counter and, when set, the subject and
// topic counters by the given number of minutes. Callers run it inside a
// transaction.
func applyCounterDelta(
	ctx context.Context,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	goalID uuid.UUID,
	subjectID *uuid.UUID,
	topicID *uuid.UUID,
	minutes int,
) error {
	if minutes == 0 {
		return nil
	}
	if err := goalRepo.IncrementStudyTime(ctx, goalID, minutes); err != nil {
		return err
	}
	if subjectID != nil {
		if err := subjectRepo.IncrementStudyTime(ctx, *subjectID, minutes); err != nil {
			return err
		}
	}
	if topicID != nil {
		if err := topicRepo.IncrementStudyTime(ctx, *topicID, minutes); err != nil {
			return err
		}
	}
	return nil
}
