package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/domain/entity"
)

// TopicModel represents the topics table in the database.
type TopicModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	StudyTime int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Subject *SubjectModel `gorm:"foreignKey:SubjectID;references:ID"`
}

// TableName returns the table name for the TopicModel.
func (TopicModel) TableName() string {
	return "topics"
}

// ToEntity converts a TopicModel to a domain Topic entity.
func (m *TopicModel) ToEntity() *entity.Topic {
	return &entity.Topic{
		ID:        m.ID,
		SubjectID: m.SubjectID,
		Name:      m.Name,
		StudyTime: m.StudyTime,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TopicFromEntity creates a TopicModel from a domain Topic entity.
func TopicFromEntity(topic *entity.Topic) *TopicModel {
	return &TopicModel{
		ID:        topic.ID,
		SubjectID: topic.SubjectID,
		Name:      topic.Name,
		StudyTime: topic.StudyTime,
		CreatedAt: topic.CreatedAt,
		UpdatedAt: topic.UpdatedAt,
	}
}
