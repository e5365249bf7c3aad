package entity

import (
	"time"

	"github.com/google/uuid"
)

// Topic represents an optional finer-grained subdivision of a subject.
type Topic struct {
	ID        uuid.UUID
	SubjectID uuid.UUID
	Name      string
	StudyTime int // minutes, denormalized sum over completed sessions
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTopic creates a new Topic entity under the given subject.
func NewTopic(subjectID uuid.UUID, name string) *Topic {
	now := time.Now().UTC()

	return &Topic{
		ID:        uuid.New(),
		SubjectID: subjectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
