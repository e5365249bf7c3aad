package goal

import (
	"context"
	"fmt"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithSubjects
}

// ListGoalsUseCase handles listing all goals with their nested subjects and topics.
type ListGoalsUseCase struct {
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	topicRepo   adapter.TopicRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
	}
}

// Execute retrieves all goals, newest first, with subjects and topics nested.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	result := make([]*entity.GoalWithSubjects, 0, len(goals))
	for _, g := range goals {
		nested, err := nestSubjects(ctx, uc.subjectRepo, uc.topicRepo, g)
		if err != nil {
			return nil, err
		}
		result = append(result, nested)
	}

	return &ListGoalsOutput{Goals: result}, nil
}

// nestSubjects loads a goal's subjects and their topics. Shared by the list
// and get use cases.
func nestSubjects(
	ctx context.Context,
	subjectRepo adapter.SubjectRepository,
	topicRepo adapter.TopicRepository,
	g *entity.Goal,
) (*entity.GoalWithSubjects, error) {
	subjects, err := subjectRepo.FindByGoalID(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subjects for goal %s: %w", g.ID, err)
	}

	nested := &entity.GoalWithSubjects{
		Goal:     g,
		Subjects: make([]*entity.SubjectWithTopics, 0, len(subjects)),
	}
	for _, s := range subjects {
		topics, err := topicRepo.FindBySubjectID(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load topics for subject %s: %w", s.ID, err)
		}
		nested.Subjects = append(nested.Subjects, &entity.SubjectWithTopics{
			Subject: s,
			Topics:  topics,
		})
	}
	return nested, nil
}
