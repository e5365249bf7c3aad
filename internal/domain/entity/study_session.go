package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudySession represents a single recorded study interval, either driven by
// the start/stop timer or entered manually. A session is running while
// EndTime is nil and completed once it is set; only completed sessions count
// toward the denormalized study-time counters.
type StudySession struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	SubjectID *uuid.UUID
	TopicID   *uuid.UUID
	StartTime time.Time
	EndTime   *time.Time // nil while running
	Duration  int        // minutes, 0 while running
	Date      string     // YYYY-MM-DD calendar date the session is attributed to
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRunningSession creates a session in the running state, attributed to
// the local calendar date of the given start instant.
func NewRunningSession(goalID uuid.UUID, subjectID *uuid.UUID, topicID *uuid.UUID, now time.Time) *StudySession {
	return &StudySession{
		ID:        uuid.New(),
		GoalID:    goalID,
		SubjectID: subjectID,
		TopicID:   topicID,
		StartTime: now.UTC(),
		Date:      now.Format("2006-01-02"),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// NewCompletedSession creates a session directly in the completed state for a
// manual entry. Only the calendar date matters for manual entries, so both
// timestamps are pinned to noon UTC on that date to avoid timezone-boundary
// drift.
func NewCompletedSession(goalID uuid.UUID, subjectID *uuid.UUID, topicID *uuid.UUID, duration int, date, comment string) *StudySession {
	now := time.Now().UTC()
	at := NoonUTC(date)

	return &StudySession{
		ID:        uuid.New(),
		GoalID:    goalID,
		SubjectID: subjectID,
		TopicID:   topicID,
		StartTime: at,
		EndTime:   &at,
		Duration:  duration,
		Date:      date,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCompleted reports whether the session has been stopped.
func (s *StudySession) IsCompleted() bool {
	return s.EndTime != nil
}

// NoonUTC returns noon UTC on the given YYYY-MM-DD date. Invalid input
// yields the zero time; callers validate the date before constructing
// sessions from it.
func NoonUTC(date string) time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return day.Add(12 * time.Hour)
}
