package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// StudySessionModel represents the study_sessions table in the database.
// Date carries the plain calendar date the session is attributed to; the
// aggregator compares it as a string, so the YYYY-MM-DD format is load-bearing.
type StudySessionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubjectID *uuid.UUID `gorm:"type:uuid;index"`
	TopicID   *uuid.UUID `gorm:"type:uuid;index"`
	StartTime time.Time  `gorm:"not null"`
	EndTime   *time.Time `gorm:"type:timestamp"` // NULL while running
	Duration  int        `gorm:"not null;default:0"`
	Date      string     `gorm:"type:varchar(10);not null;index"`
	Comment   string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Goal    *GoalModel    `gorm:"foreignKey:GoalID;references:ID"`
	Subject *SubjectModel `gorm:"foreignKey:SubjectID;references:ID"`
	Topic   *TopicModel   `gorm:"foreignKey:TopicID;references:ID"`
}

// TableName returns the table name for the StudySessionModel.
func (StudySessionModel) TableName() string {
	return "study_sessions"
}

// ToEntity converts a StudySessionModel to a domain StudySession entity.
func (m *StudySessionModel) ToEntity() *entity.StudySession {
	return &entity.StudySession{
		ID:        m.ID,
		GoalID:    m.GoalID,
		SubjectID: m.SubjectID,
		TopicID:   m.TopicID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.Duration,
		Date:      m.Date,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// StudySessionFromEntity creates a StudySessionModel from a domain StudySession entity.
func StudySessionFromEntity(session *entity.StudySession) *StudySessionModel {
	return &StudySessionModel{
		ID:        session.ID,
		GoalID:    session.GoalID,
		SubjectID: session.SubjectID,
		TopicID:   session.TopicID,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Duration:  session.Duration,
		Date:      session.Date,
		Comment:   session.Comment,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}
