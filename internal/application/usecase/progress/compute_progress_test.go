package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
)

type goalRepoStub struct {
	goals map[uuid.UUID]*entity.Goal
}

func (r *goalRepoStub) Create(context.Context, *entity.Goal) error { return nil }

func (r *goalRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *goalRepoStub) FindAll(context.Context) ([]*entity.Goal, error)              { return nil, nil }
func (r *goalRepoStub) UpdateDates(context.Context, uuid.UUID, string, string) error { return nil }
func (r *goalRepoStub) IncrementStudyTime(context.Context, uuid.UUID, int) error     { return nil }
func (r *goalRepoStub) Delete(context.Context, uuid.UUID) error                      { return nil }

type subjectRepoStub struct {
	subjects []*entity.Subject
}

func (r *subjectRepoStub) Create(context.Context, *entity.Subject) error { return nil }

func (r *subjectRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Subject, error) {
	for _, s := range r.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSubjectNotFound
}

func (r *subjectRepoStub) FindByGoalID(_ context.Context, goalID uuid.UUID) ([]*entity.Subject, error) {
	var out []*entity.Subject
	for _, s := range r.subjects {
		if s.GoalID == goalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *subjectRepoStub) UpdateSchedule(context.Context, *entity.Subject) error    { return nil }
func (r *subjectRepoStub) IncrementStudyTime(context.Context, uuid.UUID, int) error { return nil }
func (r *subjectRepoStub) DeleteByGoalID(context.Context, uuid.UUID) error          { return nil }

type sessionRepoStub struct {
	sessions []*entity.StudySession
}

func (r *sessionRepoStub) Create(context.Context, *entity.StudySession) error { return nil }

func (r *sessionRepoStub) FindByID(context.Context, uuid.UUID) (*entity.StudySession, error) {
	return nil, domainerror.ErrSessionNotFound
}

func (r *sessionRepoStub) Find(_ context.Context, filter adapter.SessionFilter) ([]*entity.StudySession, error) {
	var out []*entity.StudySession
	for _, s := range r.sessions {
		if filter.GoalID != nil && s.GoalID != *filter.GoalID {
			continue
		}
		if filter.SubjectID != nil && (s.SubjectID == nil || *s.SubjectID != *filter.SubjectID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *sessionRepoStub) Update(context.Context, *entity.StudySession) error  { return nil }
func (r *sessionRepoStub) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *sessionRepoStub) DeleteByGoalID(context.Context, uuid.UUID) error     { return nil }

type clockStub struct {
	now time.Time
}

func (c clockStub) Now() time.Time { return c.now }

func completedSession(goalID uuid.UUID, subjectID *uuid.UUID, duration int, date string) *entity.StudySession {
	return entity.NewCompletedSession(goalID, subjectID, nil, duration, date, "")
}

func runningSession(goalID uuid.UUID, subjectID *uuid.UUID, date string) *entity.StudySession {
	return entity.NewRunningSession(goalID, subjectID, nil, entity.NoonUTC(date))
}

func scheduledSubject(goalID uuid.UUID, name string, dailyMinutes int, days ...string) *entity.Subject {
	s := entity.NewSubject(goalID, name)
	s.DailyMinutesGoal = dailyMinutes
	s.DaysOfWeek = days
	return s
}

func TestComputeProgressUseCase(t *testing.T) {
	ctx := context.Background()
	clock := clockStub{now: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)}

	newUseCase := func(goal *entity.Goal, subjects []*entity.Subject, sessions []*entity.StudySession) *ComputeProgressUseCase {
		return NewComputeProgressUseCase(
			&goalRepoStub{goals: map[uuid.UUID]*entity.Goal{goal.ID: goal}},
			&subjectRepoStub{subjects: subjects},
			&sessionRepoStub{sessions: sessions},
			clock,
		)
	}

	t.Run("day view sums the scheduled target and the day's completed sessions", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday", "wednesday")
		uc := newUseCase(goal, []*entity.Subject{math}, []*entity.StudySession{
			completedSession(goal.ID, &math.ID, 20, "2024-06-03"),
			completedSession(goal.ID, &math.ID, 15, "2024-06-02"), // previous day
			runningSession(goal.ID, &math.ID, "2024-06-03"),       // not completed
		})

		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewDay, ReferenceDate: "2024-06-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 30 || out.StudiedMinutes != 20 {
			t.Fatalf("target/studied = %d/%d, want 30/20", out.TargetMinutes, out.StudiedMinutes)
		}
		if out.RemainingMinutes != 10 {
			t.Fatalf("remaining = %d, want 10", out.RemainingMinutes)
		}
		if !out.HasTarget {
			t.Fatal("expected HasTarget")
		}
	})

	t.Run("day view yields zero target on an unscheduled weekday", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday")
		uc := newUseCase(goal, []*entity.Subject{math}, nil)

		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewDay, ReferenceDate: "2024-06-04"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 0 || out.HasTarget {
			t.Fatalf("target = %d, HasTarget = %v; want 0, false", out.TargetMinutes, out.HasTarget)
		}
		if out.Percentage != 0 {
			t.Fatalf("percentage = %v, want 0", out.Percentage)
		}
	})

	t.Run("week view spans Sunday through Saturday and honors the subject date range", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday", "wednesday")
		// Schedule only becomes active mid-week, so the Monday does not count.
		math.StartDate = "2024-06-04"
		uc := newUseCase(goal, []*entity.Subject{math}, []*entity.StudySession{
			completedSession(goal.ID, &math.ID, 25, "2024-06-02"), // Sunday, in window
			completedSession(goal.ID, &math.ID, 40, "2024-06-08"), // Saturday, in window
			completedSession(goal.ID, &math.ID, 99, "2024-06-09"), // next Sunday, out
		})

		// Reference Wednesday 2024-06-05; week is 2024-06-02 .. 2024-06-08.
		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewWeek, ReferenceDate: "2024-06-05"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 30 {
			t.Fatalf("target = %d, want 30", out.TargetMinutes)
		}
		if out.StudiedMinutes != 65 {
			t.Fatalf("studied = %d, want 65", out.StudiedMinutes)
		}
	})

	t.Run("month view iterates every date of the reference month", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday", "wednesday")
		uc := newUseCase(goal, []*entity.Subject{math}, []*entity.StudySession{
			completedSession(goal.ID, &math.ID, 30, "2024-06-03"),
			completedSession(goal.ID, &math.ID, 30, "2024-06-28"),
			completedSession(goal.ID, &math.ID, 30, "2024-07-01"), // next month
		})

		// June 2024 has four Mondays and four Wednesdays.
		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewMonth, ReferenceDate: "2024-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 240 {
			t.Fatalf("target = %d, want 240", out.TargetMinutes)
		}
		if out.StudiedMinutes != 60 {
			t.Fatalf("studied = %d, want 60", out.StudiedMinutes)
		}
	})

	t.Run("total view iterates the goal date range and reads the denormalized counter", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		goal.StartDate = "2024-06-03"
		goal.FinishDate = "2024-06-16"
		goal.TotalStudyTime = 75
		math := scheduledSubject(goal.ID, "Math", 30, "monday", "wednesday")
		uc := newUseCase(goal, []*entity.Subject{math}, nil)

		// Two full weeks: 4 scheduled days at 30 minutes.
		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewTotal})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 120 {
			t.Fatalf("target = %d, want 120", out.TargetMinutes)
		}
		if out.StudiedMinutes != 75 {
			t.Fatalf("studied = %d, want 75", out.StudiedMinutes)
		}
	})

	t.Run("total view without goal dates falls back to twelve nominal weeks", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday", "wednesday")
		uc := newUseCase(goal, []*entity.Subject{math}, nil)

		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewTotal})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TargetMinutes != 720 {
			t.Fatalf("target = %d, want 720", out.TargetMinutes)
		}
	})

	t.Run("subject scope narrows sessions and uses the subject counter on total", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday")
		math.StudyTime = 50
		history := scheduledSubject(goal.ID, "History", 45, "monday")
		uc := newUseCase(goal, []*entity.Subject{math, history}, []*entity.StudySession{
			completedSession(goal.ID, &math.ID, 20, "2024-06-03"),
			completedSession(goal.ID, &history.ID, 40, "2024-06-03"),
		})

		day, err := uc.Execute(ctx, ComputeProgressInput{
			GoalID:        goal.ID,
			SubjectID:     &math.ID,
			View:          ViewDay,
			ReferenceDate: "2024-06-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if day.TargetMinutes != 30 || day.StudiedMinutes != 20 {
			t.Fatalf("target/studied = %d/%d, want 30/20", day.TargetMinutes, day.StudiedMinutes)
		}

		total, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, SubjectID: &math.ID, View: ViewTotal})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.StudiedMinutes != 50 {
			t.Fatalf("studied = %d, want 50", total.StudiedMinutes)
		}
	})

	t.Run("percentage caps at one hundred", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday")
		uc := newUseCase(goal, []*entity.Subject{math}, []*entity.StudySession{
			completedSession(goal.ID, &math.ID, 90, "2024-06-03"),
		})

		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewDay, ReferenceDate: "2024-06-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Percentage != 100 {
			t.Fatalf("percentage = %v, want 100", out.Percentage)
		}
		if out.RemainingMinutes != 0 {
			t.Fatalf("remaining = %d, want 0", out.RemainingMinutes)
		}
	})

	t.Run("defaults the reference date to today", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		math := scheduledSubject(goal.ID, "Math", 30, "monday")
		uc := newUseCase(goal, []*entity.Subject{math}, nil)

		out, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ReferenceDate != "2024-06-03" {
			t.Fatalf("reference date = %s, want 2024-06-03", out.ReferenceDate)
		}
		if out.TargetMinutes != 30 {
			t.Fatalf("target = %d, want 30", out.TargetMinutes)
		}
	})

	t.Run("rejects an unknown view mode", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		uc := newUseCase(goal, nil, nil)

		_, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: "year"})
		var progressErr *domainerror.ProgressError
		if !errors.As(err, &progressErr) || progressErr.Code != domainerror.ErrCodeInvalidViewMode {
			t.Fatalf("expected invalid view mode error, got %v", err)
		}
	})

	t.Run("rejects a malformed reference date", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		uc := newUseCase(goal, nil, nil)

		_, err := uc.Execute(ctx, ComputeProgressInput{GoalID: goal.ID, View: ViewDay, ReferenceDate: "03/06/2024"})
		var progressErr *domainerror.ProgressError
		if !errors.As(err, &progressErr) || progressErr.Code != domainerror.ErrCodeInvalidReferenceDate {
			t.Fatalf("expected invalid reference date error, got %v", err)
		}
	})

	t.Run("unknown goal is not found", func(t *testing.T) {
		goal := entity.NewGoal("exam prep")
		uc := newUseCase(goal, nil, nil)

		_, err := uc.Execute(ctx, ComputeProgressInput{GoalID: uuid.New(), View: ViewDay})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("expected goal not found error, got %v", err)
		}
	})
}

func TestParseViewMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want ViewMode
	}{
		{"", ViewDay},
		{"day", ViewDay},
		{"week", ViewWeek},
		{"month", ViewMonth},
		{"total", ViewTotal},
	} {
		got, err := ParseViewMode(tt.in)
		if err != nil {
			t.Fatalf("ParseViewMode(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseViewMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseViewMode("quarter"); err == nil {
		t.Fatal("expected error for unknown view mode")
	}
}
