package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

type memGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
	order []uuid.UUID
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *memGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	r.order = append(r.order, goal.ID)
	return nil
}

func (r *memGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *memGoalRepo) FindAll(_ context.Context) ([]*entity.Goal, error) {
	result := make([]*entity.Goal, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if g, ok := r.goals[r.order[i]]; ok {
			copied := *g
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memGoalRepo) UpdateDates(_ context.Context, id uuid.UUID, startDate, finishDate string) error {
	g, ok := r.goals[id]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	g.StartDate = startDate
	g.FinishDate = finishDate
	return nil
}

func (r *memGoalRepo) IncrementStudyTime(_ context.Context, id uuid.UUID, minutes int) error {
	g, ok := r.goals[id]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	g.TotalStudyTime += minutes
	return nil
}

func (r *memGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type memSubjectRepo struct {
	subjects map[uuid.UUID]*entity.Subject
}

func newMemSubjectRepo() *memSubjectRepo {
	return &memSubjectRepo{subjects: make(map[uuid.UUID]*entity.Subject)}
}

func (r *memSubjectRepo) Create(_ context.Context, subject *entity.Subject) error {
	copied := *subject
	r.subjects[subject.ID] = &copied
	return nil
}

func (r *memSubjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, domainerror.ErrSubjectNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memSubjectRepo) FindByGoalID(_ context.Context, goalID uuid.UUID) ([]*entity.Subject, error) {
	var result []*entity.Subject
	for _, s := range r.subjects {
		if s.GoalID == goalID {
			copied := *s
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memSubjectRepo) UpdateSchedule(_ context.Context, subject *entity.Subject) error {
	s, ok := r.subjects[subject.ID]
	if !ok {
		return domainerror.ErrSubjectNotFound
	}
	s.DailyMinutesGoal = subject.DailyMinutesGoal
	s.DaysOfWeek = subject.DaysOfWeek
	s.StartDate = subject.StartDate
	s.FinishDate = subject.FinishDate
	return nil
}

func (r *memSubjectRepo) IncrementStudyTime(_ context.Context, id uuid.UUID, minutes int) error {
	s, ok := r.subjects[id]
	if !ok {
		return domainerror.ErrSubjectNotFound
	}
	s.StudyTime += minutes
	return nil
}

func (r *memSubjectRepo) DeleteByGoalID(_ context.Context, goalID uuid.UUID) error {
	for id, s := range r.subjects {
		if s.GoalID == goalID {
			delete(r.subjects, id)
		}
	}
	return nil
}

type memTopicRepo struct {
	topics      map[uuid.UUID]*entity.Topic
	subjectRepo *memSubjectRepo
}

func newMemTopicRepo(subjectRepo *memSubjectRepo) *memTopicRepo {
	return &memTopicRepo{topics: make(map[uuid.UUID]*entity.Topic), subjectRepo: subjectRepo}
}

func (r *memTopicRepo) Create(_ context.Context, topic *entity.Topic) error {
	copied := *topic
	r.topics[topic.ID] = &copied
	return nil
}

func (r *memTopicRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Topic, error) {
	t, ok := r.topics[id]
	if !ok {
		return nil, domainerror.ErrTopicNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memTopicRepo) FindBySubjectID(_ context.Context, subjectID uuid.UUID) ([]*entity.Topic, error) {
	var result []*entity.Topic
	for _, t := range r.topics {
		if t.SubjectID == subjectID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memTopicRepo) IncrementStudyTime(_ context.Context, id uuid.UUID, minutes int) error {
	t, ok := r.topics[id]
	if !ok {
		return domainerror.ErrTopicNotFound
	}
	t.StudyTime += minutes
	return nil
}

func (r *memTopicRepo) DeleteByGoalID(_ context.Context, goalID uuid.UUID) error {
	for id, t := range r.topics {
		if s, ok := r.subjectRepo.subjects[t.SubjectID]; ok && s.GoalID == goalID {
			delete(r.topics, id)
		}
	}
	return nil
}

type memSessionRepo struct {
	sessions map[uuid.UUID]*entity.StudySession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[uuid.UUID]*entity.StudySession)}
}

func (r *memSessionRepo) Create(_ context.Context, session *entity.StudySession) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *memSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.StudySession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domainerror.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memSessionRepo) Find(_ context.Context, _ adapter.SessionFilter) ([]*entity.StudySession, error) {
	var result []*entity.StudySession
	for _, s := range r.sessions {
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memSessionRepo) Update(_ context.Context, session *entity.StudySession) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *memSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) DeleteByGoalID(_ context.Context, goalID uuid.UUID) error {
	for id, s := range r.sessions {
		if s.GoalID == goalID {
			delete(r.sessions, id)
		}
	}
	return nil
}

type memTxManager struct{}

func (memTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func assertGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, goalErr.Code)
	}
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a goal with a trimmed name", func(t *testing.T) {
		repo := newMemGoalRepo()
		uc := NewCreateGoalUseCase(repo)

		output, err := uc.Execute(ctx, CreateGoalInput{Name: "  pass the bar exam  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != "pass the bar exam" {
			t.Errorf("expected trimmed name, got %q", output.Goal.Name)
		}
		if output.Goal.TotalStudyTime != 0 {
			t.Errorf("expected zero study counter, got %d", output.Goal.TotalStudyTime)
		}
		if _, ok := repo.goals[output.Goal.ID]; !ok {
			t.Error("goal was not persisted")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newMemGoalRepo())

		_, err := uc.Execute(ctx, CreateGoalInput{Name: "   "})
		assertGoalErrorCode(t, err, domainerror.ErrCodeMissingGoalName)
	})
}

func TestUpdateGoalDates(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*memGoalRepo, uuid.UUID) {
		t.Helper()
		repo := newMemGoalRepo()
		g := entity.NewGoal("pass the bar exam")
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("seed goal: %v", err)
		}
		return repo, g.ID
	}

	t.Run("sets the date range", func(t *testing.T) {
		repo, goalID := seed(t)
		uc := NewUpdateGoalDatesUseCase(repo)

		output, err := uc.Execute(ctx, UpdateGoalDatesInput{
			GoalID:     goalID,
			StartDate:  "2024-06-01",
			FinishDate: "2024-12-31",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.StartDate != "2024-06-01" || output.Goal.FinishDate != "2024-12-31" {
			t.Errorf("unexpected range: %s..%s", output.Goal.StartDate, output.Goal.FinishDate)
		}
		if repo.goals[goalID].StartDate != "2024-06-01" {
			t.Error("start date was not persisted")
		}
	})

	t.Run("clears dates with empty strings", func(t *testing.T) {
		repo, goalID := seed(t)
		repo.goals[goalID].StartDate = "2024-06-01"
		repo.goals[goalID].FinishDate = "2024-12-31"
		uc := NewUpdateGoalDatesUseCase(repo)

		output, err := uc.Execute(ctx, UpdateGoalDatesInput{GoalID: goalID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.StartDate != "" || output.Goal.FinishDate != "" {
			t.Errorf("expected cleared range, got %s..%s", output.Goal.StartDate, output.Goal.FinishDate)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		repo, goalID := seed(t)
		uc := NewUpdateGoalDatesUseCase(repo)

		_, err := uc.Execute(ctx, UpdateGoalDatesInput{GoalID: goalID, StartDate: "01/06/2024"})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalDateRange)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		repo, goalID := seed(t)
		uc := NewUpdateGoalDatesUseCase(repo)

		_, err := uc.Execute(ctx, UpdateGoalDatesInput{
			GoalID:     goalID,
			StartDate:  "2024-12-31",
			FinishDate: "2024-06-01",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalDateRange)
	})

	t.Run("fails for an unknown goal", func(t *testing.T) {
		uc := NewUpdateGoalDatesUseCase(newMemGoalRepo())

		_, err := uc.Execute(ctx, UpdateGoalDatesInput{GoalID: uuid.New()})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestGetGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the goal with nested subjects and topics", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		subjectRepo := newMemSubjectRepo()
		topicRepo := newMemTopicRepo(subjectRepo)

		g := entity.NewGoal("pass the bar exam")
		_ = goalRepo.Create(ctx, g)
		s := entity.NewSubject(g.ID, "Constitutional Law")
		_ = subjectRepo.Create(ctx, s)
		_ = topicRepo.Create(ctx, entity.NewTopic(s.ID, "First Amendment"))

		uc := NewGetGoalUseCase(goalRepo, subjectRepo, topicRepo)
		output, err := uc.Execute(ctx, GetGoalInput{GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Goal.Name != "pass the bar exam" {
			t.Errorf("unexpected goal name %q", output.Goal.Goal.Name)
		}
		if len(output.Goal.Subjects) != 1 {
			t.Fatalf("expected 1 subject, got %d", len(output.Goal.Subjects))
		}
		if len(output.Goal.Subjects[0].Topics) != 1 {
			t.Fatalf("expected 1 topic, got %d", len(output.Goal.Subjects[0].Topics))
		}
		if output.Goal.Subjects[0].Topics[0].Name != "First Amendment" {
			t.Errorf("unexpected topic name %q", output.Goal.Subjects[0].Topics[0].Name)
		}
	})

	t.Run("fails for an unknown goal", func(t *testing.T) {
		subjectRepo := newMemSubjectRepo()
		uc := NewGetGoalUseCase(newMemGoalRepo(), subjectRepo, newMemTopicRepo(subjectRepo))

		_, err := uc.Execute(ctx, GetGoalInput{GoalID: uuid.New()})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	ctx := context.Background()

	goalRepo := newMemGoalRepo()
	subjectRepo := newMemSubjectRepo()
	topicRepo := newMemTopicRepo(subjectRepo)

	first := entity.NewGoal("pass the bar exam")
	second := entity.NewGoal("learn portuguese")
	_ = goalRepo.Create(ctx, first)
	_ = goalRepo.Create(ctx, second)

	uc := NewListGoalsUseCase(goalRepo, subjectRepo, topicRepo)
	output, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(output.Goals))
	}
	if output.Goals[0].Goal.Name != "learn portuguese" {
		t.Errorf("expected newest goal first, got %q", output.Goals[0].Goal.Name)
	}
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the goal and everything it owns", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		subjectRepo := newMemSubjectRepo()
		topicRepo := newMemTopicRepo(subjectRepo)
		sessionRepo := newMemSessionRepo()

		g := entity.NewGoal("pass the bar exam")
		_ = goalRepo.Create(ctx, g)
		s := entity.NewSubject(g.ID, "Constitutional Law")
		_ = subjectRepo.Create(ctx, s)
		_ = topicRepo.Create(ctx, entity.NewTopic(s.ID, "First Amendment"))
		_ = sessionRepo.Create(ctx, &entity.StudySession{ID: uuid.New(), GoalID: g.ID, Duration: 30, Date: "2024-06-01"})

		uc := NewDeleteGoalUseCase(goalRepo, subjectRepo, topicRepo, sessionRepo, memTxManager{})
		if err := uc.Execute(ctx, DeleteGoalInput{GoalID: g.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(goalRepo.goals) != 0 {
			t.Error("goal was not removed")
		}
		if len(subjectRepo.subjects) != 0 {
			t.Error("subjects were not removed")
		}
		if len(topicRepo.topics) != 0 {
			t.Error("topics were not removed")
		}
		if len(sessionRepo.sessions) != 0 {
			t.Error("sessions were not removed")
		}
	})

	t.Run("fails for an unknown goal", func(t *testing.T) {
		subjectRepo := newMemSubjectRepo()
		uc := NewDeleteGoalUseCase(newMemGoalRepo(), subjectRepo, newMemTopicRepo(subjectRepo), newMemSessionRepo(), memTxManager{})

		err := uc.Execute(ctx, DeleteGoalInput{GoalID: uuid.New()})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}
