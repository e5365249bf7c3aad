// Package progress computes study progress for a goal or a single subject
// over a day, week, month or total view window. Targets come from the
// subjects' recurring schedules; studied minutes come from completed sessions
// (or, for the total view, from the denormalized counters the session ledger
// maintains).
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/domain/schedule"
)

// ViewMode selects the aggregation window.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewTotal ViewMode = "total"
)

// ParseViewMode maps a request string to a ViewMode. An empty string
// defaults to the day view.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "":
		return ViewDay, nil
	case ViewDay, ViewWeek, ViewMonth, ViewTotal:
		return ViewMode(s), nil
	}
	return "", domainerror.NewProgressError(
		domainerror.ErrCodeInvalidViewMode,
		"view must be 'day', 'week', 'month' or 'total'",
		domainerror.ErrInvalidViewMode,
	)
}

// ComputeProgressInput represents the input for a progress computation.
// SubjectID narrows the scope to a single subject; ReferenceDate defaults to
// today when empty.
type ComputeProgressInput struct {
	GoalID        uuid.UUID
	SubjectID     *uuid.UUID
	View          ViewMode
	ReferenceDate string // YYYY-MM-DD
}

// ComputeProgressOutput represents the computed progress figures. HasTarget
// distinguishes "no schedule configured" (target zero) from "0% complete".
type ComputeProgressOutput struct {
	View             ViewMode
	ReferenceDate    string
	TargetMinutes    int
	StudiedMinutes   int
	Percentage       float64
	RemainingMinutes int
	HasTarget        bool
}

// ComputeProgressUseCase handles progress aggregation.
type ComputeProgressUseCase struct {
	goalRepo    adapter.GoalRepository
	subjectRepo adapter.SubjectRepository
	sessionRepo adapter.SessionRepository
	clock       adapter.Clock
}

// NewComputeProgressUseCase creates a new ComputeProgressUseCase instance.
func NewComputeProgressUseCase(
	goalRepo adapter.GoalRepository,
	subjectRepo adapter.SubjectRepository,
	sessionRepo adapter.SessionRepository,
	clock adapter.Clock,
) *ComputeProgressUseCase {
	return &ComputeProgressUseCase{
		goalRepo:    goalRepo,
		subjectRepo: subjectRepo,
		sessionRepo: sessionRepo,
		clock:       clock,
	}
}

// Execute computes the progress figures for the requested scope and window.
func (uc *ComputeProgressUseCase) Execute(ctx context.Context, input ComputeProgressInput) (*ComputeProgressOutput, error) {
	view := input.View
	if view == "" {
		view = ViewDay
	}
	switch view {
	case ViewDay, ViewWeek, ViewMonth, ViewTotal:
	default:
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidViewMode,
			"view must be 'day', 'week', 'month' or 'total'",
			domainerror.ErrInvalidViewMode,
		)
	}

	refDate := input.ReferenceDate
	if refDate == "" {
		refDate = uc.clock.Now().Format("2006-01-02")
	}
	ref, err := time.ParseInLocation("2006-01-02", refDate, time.UTC)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidReferenceDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidReferenceDate,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	var subjects []*entity.Subject
	if input.SubjectID != nil {
		subject, err := uc.subjectRepo.FindByID(ctx, *input.SubjectID)
		if err != nil {
			if errors.Is(err, domainerror.ErrSubjectNotFound) {
				return nil, domainerror.NewSubjectError(
					domainerror.ErrCodeSubjectNotFound,
					"subject not found",
					domainerror.ErrSubjectNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find subject: %w", err)
		}
		subjects = []*entity.Subject{subject}
	} else {
		subjects, err = uc.subjectRepo.FindByGoalID(ctx, goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subjects: %w", err)
		}
	}

	target, studied, err := uc.compute(ctx, goal, subjects, input.SubjectID, view, ref, refDate)
	if err != nil {
		return nil, err
	}

	out := &ComputeProgressOutput{
		View:           view,
		ReferenceDate:  refDate,
		TargetMinutes:  target,
		StudiedMinutes: studied,
		HasTarget:      target > 0,
	}
	if target > 0 {
		out.Percentage = float64(studied) / float64(target) * 100
		if out.Percentage > 100 {
			out.Percentage = 100
		}
	}
	if remaining := target - studied; remaining > 0 {
		out.RemainingMinutes = remaining
	}
	return out, nil
}

func (uc *ComputeProgressUseCase) compute(
	ctx context.Context,
	goal *entity.Goal,
	subjects []*entity.Subject,
	subjectID *uuid.UUID,
	view ViewMode,
	ref time.Time,
	refDate string,
) (target, studied int, err error) {
	if view == ViewTotal {
		return uc.computeTotal(goal, subjects, subjectID)
	}

	var window []string
	switch view {
	case ViewDay:
		window = []string{refDate}
	case ViewWeek:
		window = weekDates(ref)
	case ViewMonth:
		window = monthDates(ref)
	}

	for _, date := range window {
		for _, s := range subjects {
			target += schedule.TargetMinutesOn(s, date)
		}
	}

	studied, err = uc.studiedInWindow(ctx, goal.ID, subjectID, window[0], window[len(window)-1])
	if err != nil {
		return 0, 0, err
	}
	return target, studied, nil
}

// computeTotal uses the goal's date range when configured, and otherwise
// falls back to the nominal weekly load times twelve as a rough three-month
// estimate. Studied minutes come from the denormalized counter, not from a
// session scan.
func (uc *ComputeProgressUseCase) computeTotal(
	goal *entity.Goal,
	subjects []*entity.Subject,
	subjectID *uuid.UUID,
) (target, studied int, err error) {
	if goal.HasDateRange() {
		for _, date := range rangeDates(goal.StartDate, goal.FinishDate) {
			for _, s := range subjects {
				target += schedule.TargetMinutesOn(s, date)
			}
		}
	} else {
		for _, s := range subjects {
			target += schedule.WeeklyTargetMinutes(s) * 12
		}
	}

	if subjectID != nil {
		studied = subjects[0].StudyTime
	} else {
		studied = goal.TotalStudyTime
	}
	return target, studied, nil
}

// studiedInWindow sums completed-session durations whose calendar date falls
// in the inclusive [first, last] window.
func (uc *ComputeProgressUseCase) studiedInWindow(
	ctx context.Context,
	goalID uuid.UUID,
	subjectID *uuid.UUID,
	first, last string,
) (int, error) {
	sessions, err := uc.sessionRepo.Find(ctx, adapter.SessionFilter{GoalID: &goalID, SubjectID: subjectID})
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	total := 0
	for _, s := range sessions {
		if !s.IsCompleted() {
			continue
		}
		if s.Date < first || s.Date > last {
			continue
		}
		total += s.Duration
	}
	return total, nil
}

// weekDates returns the Sunday-started 7-day span containing ref.
func weekDates(ref time.Time) []string {
	sunday := ref.AddDate(0, 0, -int(ref.Weekday()))
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

// monthDates returns every date of ref's calendar month.
func monthDates(ref time.Time) []string {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format("2006-01-02"))
	}
	return dates
}

// rangeDates returns every date from first to last inclusive. An inverted or
// unparsable range yields nothing; goal dates are validated on write.
func rangeDates(first, last string) []string {
	start, err := time.ParseInLocation("2006-01-02", first, time.UTC)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation("2006-01-02", last, time.UTC)
	if err != nil {
		return nil
	}

	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format("2006-01-02"))
	}
	return dates
}
