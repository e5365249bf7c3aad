// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a top-level study objective in the Study Tracker system.
// TotalStudyTime is a denormalized running sum over the goal's completed
// sessions, maintained exclusively by the session ledger.
type Goal struct {
	ID             uuid.UUID
	Name           string
	TotalStudyTime int    // minutes
	StartDate      string // YYYY-MM-DD, empty when unset
	FinishDate     string // YYYY-MM-DD, empty when unset
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGoal creates a new Goal entity with a zeroed study counter.
func NewGoal(name string) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasDateRange reports whether both goal dates are configured.
func (g *Goal) HasDateRange() bool {
	return g.StartDate != "" && g.FinishDate != ""
}

// GoalWithSubjects represents a goal with its nested subjects and topics.
type GoalWithSubjects struct {
	Goal     *Goal
	Subjects []*SubjectWithTopics
}
