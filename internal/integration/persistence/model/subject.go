package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// SubjectModel represents the subjects table in the database. DaysOfWeek is
// persisted as a JSON-encoded array of weekday strings, as received from
// input.
type SubjectModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	StudyTime        int       `gorm:"not null;default:0"`
	DailyMinutesGoal int       `gorm:"not null;default:0"`
	DaysOfWeek       string    `gorm:"type:text"`
	StartDate        string    `gorm:"type:varchar(10)"`
	FinishDate       string    `gorm:"type:varchar(10)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Goal *GoalModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the SubjectModel.
func (SubjectModel) TableName() string {
	return "subjects"
}

// ToEntity converts a SubjectModel to a domain Subject entity.
func (m *SubjectModel) ToEntity() *entity.Subject {
	var days []string
	if m.DaysOfWeek != "" {
		// A corrupt column yields an empty set rather than an error; the
		// schedule evaluator treats that as "no schedule".
		_ = json.Unmarshal([]byte(m.DaysOfWeek), &days)
	}

	return &entity.Subject{
		ID:               m.ID,
		GoalID:           m.GoalID,
		Name:             m.Name,
		StudyTime:        m.StudyTime,
		DailyMinutesGoal: m.DailyMinutesGoal,
		DaysOfWeek:       days,
		StartDate:        m.StartDate,
		FinishDate:       m.FinishDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// SubjectFromEntity creates a SubjectModel from a domain Subject entity.
func SubjectFromEntity(subject *entity.Subject) *SubjectModel {
	days := ""
	if len(subject.DaysOfWeek) > 0 {
		encoded, err := json.Marshal(subject.DaysOfWeek)
		if err == nil {
			days = string(encoded)
		}
	}

	return &SubjectModel{
		ID:               subject.ID,
		GoalID:           subject.GoalID,
		Name:             subject.Name,
		StudyTime:        subject.StudyTime,
		DailyMinutesGoal: subject.DailyMinutesGoal,
		DaysOfWeek:       days,
		StartDate:        subject.StartDate,
		FinishDate:       subject.FinishDate,
		CreatedAt:        subject.CreatedAt,
		UpdatedAt:        subject.UpdatedAt,
	}
}
