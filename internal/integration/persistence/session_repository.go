package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/persistence/model"
)

// sessionRepository implements the adapter.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance.
func NewSessionRepository(db *gorm.DB) adapter.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create creates a new study session in the database.
func (r *sessionRepository) Create(ctx context.Context, session *entity.StudySession) error {
	sessionModel := model.StudySessionFromEntity(session)
	result := dbFromContext(ctx, r.db).Create(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a study session by its ID.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error) {
	var sessionModel model.StudySessionModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, result.Error
	}
	return sessionModel.ToEntity(), nil
}

// Find retrieves sessions matching the filter, newest start time first.
func (r *sessionRepository) Find(ctx context.Context, filter adapter.SessionFilter) ([]*entity.StudySession, error) {
	query := dbFromContext(ctx, r.db).Model(&model.StudySessionModel{})

	if filter.GoalID != nil {
		query = query.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.SubjectID != nil {
		query = query.Where("subject_id = ?", *filter.SubjectID)
	}
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}

	var sessionModels []model.StudySessionModel
	result := query.
		Order("start_time DESC, created_at DESC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.StudySession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// Update updates an existing study session in the database.
func (r *sessionRepository) Update(ctx context.Context, session *entity.StudySession) error {
	sessionModel := model.StudySessionFromEntity(session)
	result := dbFromContext(ctx, r.db).Save(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a study session from the database.
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&model.StudySessionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByGoalID removes all sessions belonging to the goal.
func (r *sessionRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("goal_id = ?", goalID).
		Delete(&model.StudySessionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
