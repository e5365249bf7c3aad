package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a named area of study within a goal. The schedule
// fields (DailyMinutesGoal, DaysOfWeek, StartDate, FinishDate) describe an
// optional recurring weekly study plan; a zero DailyMinutesGoal or an empty
// DaysOfWeek means no schedule is configured.
type Subject struct {
	ID               uuid.UUID
	GoalID           uuid.UUID
	Name             string
	StudyTime        int      // minutes, denormalized sum over completed sessions
	DailyMinutesGoal int      // 0 when unset
	DaysOfWeek       []string // weekday names as received from input, any casing
	StartDate        string   // YYYY-MM-DD, empty when unset
	FinishDate       string   // YYYY-MM-DD, empty when unset
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewSubject creates a new Subject entity under the given goal.
func NewSubject(goalID uuid.UUID, name string) *Subject {
	now := time.Now().UTC()

	return &Subject{
		ID:        uuid.New(),
		GoalID:    goalID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SubjectWithTopics represents a subject with its nested topics.
type SubjectWithTopics struct {
	Subject *Subject
	Topics  []*Topic
}
