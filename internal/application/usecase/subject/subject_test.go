package subject

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

type goalRepoStub struct {
	goals map[uuid.UUID]*entity.Goal
}

func (r *goalRepoStub) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *goalRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *goalRepoStub) FindAll(_ context.Context) ([]*entity.Goal, error) { return nil, nil }

func (r *goalRepoStub) UpdateDates(_ context.Context, _ uuid.UUID, _, _ string) error { return nil }

func (r *goalRepoStub) IncrementStudyTime(_ context.Context, _ uuid.UUID, _ int) error { return nil }

func (r *goalRepoStub) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type subjectRepoStub struct {
	subjects map[uuid.UUID]*entity.Subject
}

func newSubjectRepoStub() *subjectRepoStub {
	return &subjectRepoStub{subjects: make(map[uuid.UUID]*entity.Subject)}
}

func (r *subjectRepoStub) Create(_ context.Context, subject *entity.Subject) error {
	copied := *subject
	r.subjects[subject.ID] = &copied
	return nil
}

func (r *subjectRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, domainerror.ErrSubjectNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *subjectRepoStub) FindByGoalID(_ context.Context, _ uuid.UUID) ([]*entity.Subject, error) {
	return nil, nil
}

func (r *subjectRepoStub) UpdateSchedule(_ context.Context, subject *entity.Subject) error {
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

func (r *subjectRepoStub) IncrementStudyTime(_ context.Context, _ uuid.UUID, _ int) error {
	return nil
}

func (r *subjectRepoStub) DeleteByGoalID(_ context.Context, _ uuid.UUID) error { return nil }

func assertSubjectErrorCode(t *testing.T, err error, code domainerror.SubjectErrorCode) {
	t.Helper()
	var subjectErr *domainerror.SubjectError
	if !errors.As(err, &subjectErr) {
		t.Fatalf("expected SubjectError, got %v", err)
	}
	if subjectErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, subjectErr.Code)
	}
}

func TestCreateSubject(t *testing.T) {
	ctx := context.Background()

	goal := entity.NewGoal("pass the bar exam")
	goalRepo := &goalRepoStub{goals: map[uuid.UUID]*entity.Goal{goal.ID: goal}}

	t.Run("creates a subject under an existing goal", func(t *testing.T) {
		subjectRepo := newSubjectRepoStub()
		uc := NewCreateSubjectUseCase(subjectRepo, goalRepo)

		output, err := uc.Execute(ctx, CreateSubjectInput{GoalID: goal.ID, Name: " Constitutional Law "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Subject.Name != "Constitutional Law" {
			t.Errorf("expected trimmed name, got %q", output.Subject.Name)
		}
		if output.Subject.GoalID != goal.ID {
			t.Errorf("subject bound to wrong goal %s", output.Subject.GoalID)
		}
		if output.Subject.DailyMinutesGoal != 0 || len(output.Subject.DaysOfWeek) != 0 {
			t.Error("new subject should have no schedule")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateSubjectUseCase(newSubjectRepoStub(), goalRepo)

		_, err := uc.Execute(ctx, CreateSubjectInput{GoalID: goal.ID, Name: ""})
		assertSubjectErrorCode(t, err, domainerror.ErrCodeMissingSubjectName)
	})

	t.Run("fails for an unknown goal", func(t *testing.T) {
		uc := NewCreateSubjectUseCase(newSubjectRepoStub(), goalRepo)

		_, err := uc.Execute(ctx, CreateSubjectInput{GoalID: uuid.New(), Name: "Constitutional Law"})
		assertSubjectErrorCode(t, err, domainerror.ErrCodeSubjectGoalNotFound)
	})
}

func TestUpdateSubjectSchedule(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*subjectRepoStub, uuid.UUID) {
		t.Helper()
		repo := newSubjectRepoStub()
		s := entity.NewSubject(uuid.New(), "Constitutional Law")
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("seed subject: %v", err)
		}
		return repo, s.ID
	}

	t.Run("replaces the schedule wholesale", func(t *testing.T) {
		repo, subjectID := seed(t)
		uc := NewUpdateSubjectScheduleUseCase(repo)

		output, err := uc.Execute(ctx, UpdateSubjectScheduleInput{
			SubjectID:        subjectID,
			DailyMinutesGoal: 30,
			DaysOfWeek:       []string{"monday", "WEDNESDAY"},
			StartDate:        "2024-06-01",
			FinishDate:       "2024-12-31",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Subject.DailyMinutesGoal != 30 {
			t.Errorf("expected 30 daily minutes, got %d", output.Subject.DailyMinutesGoal)
		}
		// Day names are stored as received; the evaluator normalizes later.
		if output.Subject.DaysOfWeek[1] != "WEDNESDAY" {
			t.Errorf("day names should not be normalized on write, got %v", output.Subject.DaysOfWeek)
		}
		if repo.subjects[subjectID].StartDate != "2024-06-01" {
			t.Error("schedule was not persisted")
		}
	})

	t.Run("clears the schedule with zero values", func(t *testing.T) {
		repo, subjectID := seed(t)
		repo.subjects[subjectID].DailyMinutesGoal = 30
		repo.subjects[subjectID].DaysOfWeek = []string{"monday"}
		uc := NewUpdateSubjectScheduleUseCase(repo)

		output, err := uc.Execute(ctx, UpdateSubjectScheduleInput{SubjectID: subjectID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Subject.DailyMinutesGoal != 0 || len(output.Subject.DaysOfWeek) != 0 {
			t.Error("expected cleared schedule")
		}
	})

	t.Run("leaves the study counter untouched", func(t *testing.T) {
		repo, subjectID := seed(t)
		repo.subjects[subjectID].StudyTime = 120
		uc := NewUpdateSubjectScheduleUseCase(repo)

		_, err := uc.Execute(ctx, UpdateSubjectScheduleInput{SubjectID: subjectID, DailyMinutesGoal: 45})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.subjects[subjectID].StudyTime != 120 {
			t.Errorf("study counter changed to %d", repo.subjects[subjectID].StudyTime)
		}
	})

	t.Run("rejects a negative daily minutes goal", func(t *testing.T) {
		repo, subjectID := seed(t)
		uc := NewUpdateSubjectScheduleUseCase(repo)

		_, err := uc.Execute(ctx, UpdateSubjectScheduleInput{SubjectID: subjectID, DailyMinutesGoal: -1})
		assertSubjectErrorCode(t, err, domainerror.ErrCodeInvalidDailyMinutesGoal)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		repo, subjectID := seed(t)
		uc := NewUpdateSubjectScheduleUseCase(repo)

		_, err := uc.Execute(ctx, UpdateSubjectScheduleInput{SubjectID: subjectID, StartDate: "June 1st"})
		assertSubjectErrorCode(t, err, domainerror.ErrCodeInvalidScheduleDate)
	})

	t.Run("fails for an unknown subject", func(t *testing.T) {
		uc := NewUpdateSubjectScheduleUseCase(newSubjectRepoStub())

		_, err := uc.Execute(ctx, UpdateSubjectScheduleInput{SubjectID: uuid.New()})
		assertSubjectErrorCode(t, err, domainerror.ErrCodeSubjectNotFound)
	})
}
