// Package schedule evaluates a subject's recurring study schedule against
// plain calendar dates. All weekday-name normalization happens here, exactly
// once; other layers pass day names through as received from input.
package schedule

import (
	"strings"
	"time"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// NormalizeDay trims whitespace and capitalizes only the first letter, so
// " tueSDay " becomes "Tuesday". The result matches time.Weekday.String().
func NormalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
}

// AppliesOn reports whether the subject's schedule contributes a minute
// target on the given YYYY-MM-DD date. Dates are plain calendar dates, not
// instants; the comparison against the subject's date range is
// lexicographic, which is chronological for this format. Invalid dates never
// apply.
func AppliesOn(subject *entity.Subject, date string) bool {
	if subject.DailyMinutesGoal <= 0 || len(subject.DaysOfWeek) == 0 {
		return false
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return false
	}

	weekday := day.Weekday().String()
	scheduled := false
	for _, d := range subject.DaysOfWeek {
		if NormalizeDay(d) == weekday {
			scheduled = true
			break
		}
	}
	if !scheduled {
		return false
	}

	if subject.StartDate != "" && date < subject.StartDate {
		return false
	}
	if subject.FinishDate != "" && date > subject.FinishDate {
		return false
	}
	return true
}

// TargetMinutesOn returns the subject's minute target for the given date:
// DailyMinutesGoal when the schedule applies, zero otherwise.
func TargetMinutesOn(subject *entity.Subject, date string) int {
	if !AppliesOn(subject, date) {
		return 0
	}
	return subject.DailyMinutesGoal
}

// WeeklyTargetMinutes returns the subject's nominal weekly load:
// DailyMinutesGoal times the number of distinct scheduled weekdays.
// Duplicate or differently-cased entries count once.
func WeeklyTargetMinutes(subject *entity.Subject) int {
	if subject.DailyMinutesGoal <= 0 || len(subject.DaysOfWeek) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(subject.DaysOfWeek))
	for _, d := range subject.DaysOfWeek {
		normalized := NormalizeDay(d)
		if !isWeekdayName(normalized) {
			continue
		}
		seen[normalized] = struct{}{}
	}
	return subject.DailyMinutesGoal * len(seen)
}

func isWeekdayName(name string) bool {
	switch name {
	case "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday":
		return true
	}
	return false
}
