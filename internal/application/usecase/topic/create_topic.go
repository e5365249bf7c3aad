// Package topic contains topic-related use cases.
package topic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

// CreateTopicInput represents the input for topic creation.
type CreateTopicInput struct {
	SubjectID uuid.UUID
	Name      string
}

// CreateTopicOutput represents the output of topic creation.
type CreateTopicOutput struct {
	Topic *entity.Topic
}

// CreateTopicUseCase handles topic creation logic.
type CreateTopicUseCase struct {
	topicRepo   adapter.TopicRepository
	subjectRepo adapter.SubjectRepository
}

// NewCreateTopicUseCase creates a new CreateTopicUseCase instance.
func NewCreateTopicUseCase(topicRepo adapter.TopicRepository, subjectRepo adapter.SubjectRepository) *CreateTopicUseCase {
	return &CreateTopicUseCase{
		topicRepo:   topicRepo,
		subjectRepo: subjectRepo,
	}
}

// Execute performs the topic creation.
func (uc *CreateTopicUseCase) Execute(ctx context.Context, input CreateTopicInput) (*CreateTopicOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewTopicError(
			domainerror.ErrCodeMissingTopicName,
			"topic name is required",
			domainerror.ErrMissingTopicName,
		)
	}

	if _, err := uc.subjectRepo.FindByID(ctx, input.SubjectID); err != nil {
		if errors.Is(err, domainerror.ErrSubjectNotFound) {
			return nil, domainerror.NewTopicError(
				domainerror.ErrCodeTopicSubjectNotFound,
				"subject not found",
				domainerror.ErrTopicSubjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find subject: %w", err)
	}

	topic := entity.NewTopic(input.SubjectID, name)

	if err := uc.topicRepo.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return &CreateTopicOutput{
		Topic: topic,
	}, nil
}
