package schedule

import (
	"testing"
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

func TestNormalizeDay(t *testing.T) {
	cases := map[string]string{
		"monday":     "Monday",
		"MONDAY":     "Monday",
		"  friday  ": "Friday",
		"tueSDay":    "Tuesday",
		"":           "",
		"   ":        "",
	}

	for input, expected := range cases {
		if got := NormalizeDay(input); got != expected {
			t.Errorf("NormalizeDay(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestAppliesOn_WeekdayRoundTrip(t *testing.T) {
	subject := &entity.Subject{
		DailyMinutesGoal: 30,
		DaysOfWeek:       []string{"monday", "wednesday"},
	}

	// Walk four consecutive weeks starting on a known Monday.
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < 28; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		expected := day.Weekday() == time.Monday || day.Weekday() == time.Wednesday

		if got := AppliesOn(subject, date); got != expected {
			t.Errorf("AppliesOn(%s, a %s) = %v, want %v", date, day.Weekday(), got, expected)
		}
	}
}

func TestAppliesOn_DateRangeBoundaries(t *testing.T) {
	subject := &entity.Subject{
		DailyMinutesGoal: 45,
		DaysOfWeek:       []string{"friday"},
		StartDate:        "2024-03-01",
		FinishDate:       "2024-03-31",
	}

	t.Run("Friday before range does not apply", func(t *testing.T) {
		if AppliesOn(subject, "2024-02-23") {
			t.Error("expected AppliesOn to be false before start date")
		}
	})

	t.Run("Friday after range does not apply", func(t *testing.T) {
		if AppliesOn(subject, "2024-04-05") {
			t.Error("expected AppliesOn to be false after finish date")
		}
	})

	t.Run("Friday inside range applies", func(t *testing.T) {
		if !AppliesOn(subject, "2024-03-08") {
			t.Error("expected AppliesOn to be true inside the range")
		}
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		// 2024-03-01 and 2024-03-29 are both Fridays.
		if !AppliesOn(subject, "2024-03-01") {
			t.Error("expected start date itself to apply")
		}
		if !AppliesOn(subject, "2024-03-29") {
			t.Error("expected a Friday on the last week of the range to apply")
		}
	})
}

func TestAppliesOn_UnscheduledSubjects(t *testing.T) {
	t.Run("no daily goal", func(t *testing.T) {
		subject := &entity.Subject{DaysOfWeek: []string{"monday"}}
		if AppliesOn(subject, "2024-06-03") {
			t.Error("expected false without a daily minutes goal")
		}
	})

	t.Run("empty day set", func(t *testing.T) {
		subject := &entity.Subject{DailyMinutesGoal: 30}
		if AppliesOn(subject, "2024-06-03") {
			t.Error("expected false with no scheduled days")
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		subject := &entity.Subject{DailyMinutesGoal: 30, DaysOfWeek: []string{"monday"}}
		if AppliesOn(subject, "not-a-date") {
			t.Error("expected false for an unparseable date")
		}
	})
}

func TestAppliesOn_ToleratesCasingAndWhitespace(t *testing.T) {
	subject := &entity.Subject{
		DailyMinutesGoal: 30,
		DaysOfWeek:       []string{" MONDAY", "weDNESday "},
	}

	if !AppliesOn(subject, "2024-06-03") { // Monday
		t.Error("expected mixed-case entry to match Monday")
	}
	if !AppliesOn(subject, "2024-06-05") { // Wednesday
		t.Error("expected padded entry to match Wednesday")
	}
	if AppliesOn(subject, "2024-06-04") { // Tuesday
		t.Error("expected Tuesday not to match")
	}
}

func TestTargetMinutesOn(t *testing.T) {
	subject := &entity.Subject{
		DailyMinutesGoal: 60,
		DaysOfWeek:       []string{"saturday"},
	}

	if got := TargetMinutesOn(subject, "2024-06-08"); got != 60 { // Saturday
		t.Errorf("expected 60 on a scheduled day, got %d", got)
	}
	if got := TargetMinutesOn(subject, "2024-06-09"); got != 0 { // Sunday
		t.Errorf("expected 0 on an unscheduled day, got %d", got)
	}
}

func TestWeeklyTargetMinutes(t *testing.T) {
	t.Run("counts distinct days", func(t *testing.T) {
		subject := &entity.Subject{
			DailyMinutesGoal: 30,
			DaysOfWeek:       []string{"monday", "wednesday"},
		}
		if got := WeeklyTargetMinutes(subject); got != 60 {
			t.Errorf("expected 60, got %d", got)
		}
	})

	t.Run("duplicates and casing collapse", func(t *testing.T) {
		subject := &entity.Subject{
			DailyMinutesGoal: 30,
			DaysOfWeek:       []string{"monday", "Monday", " MONDAY "},
		}
		if got := WeeklyTargetMinutes(subject); got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("unknown day names are ignored", func(t *testing.T) {
		subject := &entity.Subject{
			DailyMinutesGoal: 30,
			DaysOfWeek:       []string{"monday", "someday"},
		}
		if got := WeeklyTargetMinutes(subject); got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("no schedule yields zero", func(t *testing.T) {
		if got := WeeklyTargetMinutes(&entity.Subject{}); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}
