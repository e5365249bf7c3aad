// Package subject contains subject-related use cases.
package subject

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// CreateSubjectInput represents the input for subject creation.
type CreateSubjectInput struct {
	GoalID uuid.UUID
	Name   string
}

// CreateSubjectOutput represents the output of subject creation.
type CreateSubjectOutput struct {
	Subject *entity.Subject
}

// CreateSubjectUseCase handles subject creation logic.
type CreateSubjectUseCase struct {
	subjectRepo adapter.SubjectRepository
	goalRepo    adapter.GoalRepository
}

// NewCreateSubjectUseCase creates a new CreateSubjectUseCase instance.
func NewCreateSubjectUseCase(subjectRepo adapter.SubjectRepository, goalRepo adapter.GoalRepository) *CreateSubjectUseCase {
	return &CreateSubjectUseCase{
		subjectRepo: subjectRepo,
		goalRepo:    goalRepo,
	}
}

// Execute performs the subject creation.
func (uc *CreateSubjectUseCase) Execute(ctx context.Context, input CreateSubjectInput) (*CreateSubjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSubjectError(
			domainerror.ErrCodeMissingSubjectName,
			"subject name is required",
			domainerror.ErrMissingSubjectName,
		)
	}

	if _, err := uc.goalRepo.FindByID(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewSubjectError(
				domainerror.ErrCodeSubjectGoalNotFound,
				"goal not found",
				domainerror.ErrSubjectGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	subject := entity.NewSubject(input.GoalID, name)

	if err := uc.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return &CreateSubjectOutput{
		Subject: subject,
	}, nil
}

// isValidOptionalDate accepts an empty string or a parseable YYYY-MM-DD date.
func isValidOptionalDate(date string) bool {
	if date == "" {
		return true
	}
	_, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	return err == nil
}
