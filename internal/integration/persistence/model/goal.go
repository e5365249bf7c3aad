// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	TotalStudyTime int       `gorm:"not null;default:0"`
	StartDate      string    `gorm:"type:varchar(10)"` // YYYY-MM-DD, empty when unset
	FinishDate     string    `gorm:"type:varchar(10)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:             m.ID,
		Name:           m.Name,
		TotalStudyTime: m.TotalStudyTime,
		StartDate:      m.StartDate,
		FinishDate:     m.FinishDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		Name:           goal.Name,
		TotalStudyTime: goal.TotalStudyTime,
		StartDate:      goal.StartDate,
		FinishDate:     goal.FinishDate,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
