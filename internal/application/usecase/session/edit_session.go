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

// EditSessionInput represents a patch on a completed session. Nil pointer
// fields are left untouched. SubjectID and TopicID need the extra Set flag
// because "reassign to none" and "leave as is" are different patches.
type EditSessionInput struct {
	SessionID uuid.UUID

	Duration *int
	Date     *string
	Comment  *string

	SubjectID    *uuid.UUID
	SubjectIDSet bool
	TopicID      *uuid.UUID
	TopicIDSet   bool
}

// EditSessionOutput represents the output of editing a session.
type EditSessionOutput struct {
	Session *entity.StudySession
}

// EditSessionUseCase patches a completed session and rebalances the
// counters: the goal absorbs the duration difference, a reassigned subject
// or topic loses the old duration on one side and gains the new duration on
// the other.
type EditSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
	txManager   adapter.TransactionManager
}

// NewEditSessionUseCase creates a new EditSessionUseCase instance.
func NewEditSessionUseCase(
	sessionRepo adapter.SessionRepository,
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	txManager adapter.TransactionManager,
) *EditSessionUseCase {
	return &EditSessionUseCase{
		sessionRepo: sessionRepo,
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		txManager:   txManager,
	}
}

// Execute applies the patch.
func (uc *EditSessionUseCase) Execute(ctx context.Context, input EditSessionInput) (*EditSessionOutput, error) {
	if input.Duration != nil && *input.Duration <= 0 {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidDuration,
			"duration must be greater than zero",
			domainerror.ErrInvalidDuration,
		)
	}
	if input.Date != nil {
		if _, err := time.ParseInLocation("2006-01-02", *input.Date, time.UTC); err != nil {
			return nil, domainerror.NewSessionError(
				domainerror.ErrCodeInvalidSessionDate,
				"date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidSessionDate,
			)
		}
	}

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
	if !s.IsCompleted() {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionStillRunning,
			"session is still running",
			domainerror.ErrSessionStillRunning,
		)
	}

	if input.SubjectIDSet && input.SubjectID != nil {
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
	}
	if input.TopicIDSet && input.TopicID != nil {
		if _, err := uc.topicRepo.FindByID(ctx, *input.TopicID); err != nil {
			if errors.Is(err, domainerror.ErrTopicNotFound) {
				return nil, domainerror.NewSessionError(
					domainerror.ErrCodeMissingSessionFields,
					"topic not found",
					domainerror.ErrTopicNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find topic: %w", err)
		}
	}

	oldDuration := s.Duration
	oldSubjectID := s.SubjectID
	oldTopicID := s.TopicID

	newDuration := oldDuration
	if input.Duration != nil {
		newDuration = *input.Duration
	}
	durationDiff := newDuration - oldDuration

	s.Duration = newDuration
	if input.Comment != nil {
		s.Comment = *input.Comment
	}
	if input.SubjectIDSet {
		s.SubjectID = input.SubjectID
	}
	if input.TopicIDSet {
		s.TopicID = input.TopicID
	}
	if input.Date != nil && *input.Date != s.Date {
		// Manually dated sessions carry placeholder timestamps; moving the
		// date moves both to noon UTC on the new day.
		s.Date = *input.Date
		at := entity.NoonUTC(s.Date)
		s.StartTime = at
		s.EndTime = &at
	}

	err = uc.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.Update(ctx, s); err != nil {
			return err
		}

		if durationDiff != 0 {
			if err := uc.goalRepo.IncrementStudyTime(ctx, s.GoalID, durationDiff); err != nil {
				return err
			}
		}

		if err := rebalance(ctx, counterRepo(uc.subjectRepo.IncrementStudyTime), input.SubjectIDSet, oldSubjectID, s.SubjectID, oldDuration, newDuration); err != nil {
			return err
		}
		return rebalance(ctx, counterRepo(uc.topicRepo.IncrementStudyTime), input.TopicIDSet, oldTopicID, s.TopicID, oldDuration, newDuration)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit session: %w", err)
	}

	return &EditSessionOutput{Session: s}, nil
}

// counterRepo adapts an IncrementStudyTime method to the rebalance helper.
type counterRepo func(ctx context.Context, id uuid.UUID, minutes int) error

// rebalance adjusts a subject or topic counter for an edit. When the
// reference was patched, the old owner loses the old duration and the new
// owner gains the new duration; when it was untouched, the current owner
// absorbs just the duration difference.
func rebalance(
	ctx context.Context,
	increment counterRepo,
	patched bool,
	oldID, newID *uuid.UUID,
	oldDuration, newDuration int,
) error {
	if patched {
		if oldID != nil {
			if err := increment(ctx, *oldID, -oldDuration); err != nil {
				return err
			}
		}
		if newID != nil {
			if err := increment(ctx, *newID, newDuration); err != nil {
				return err
			}
		}
		return nil
	}

	if diff := newDuration - oldDuration; diff != 0 && oldID != nil {
		return increment(ctx, *oldID, diff)
	}
	return nil
}
