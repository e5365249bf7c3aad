package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/domain/entity"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/persistence/model"
)

// topicRepository implements the adapter.TopicRepository interface.
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository instance.
func NewTopicRepository(db *gorm.DB) adapter.TopicRepository {
	return &topicRepository{
		db: db,
	}
}

// Create creates a new topic in the database.
func (r *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	topicModel := model.TopicFromEntity(topic)
	result := dbFromContext(ctx, r.db).Create(topicModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a topic by its ID.
func (r *topicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	var topicModel model.TopicModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&topicModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTopicNotFound
		}
		return nil, result.Error
	}
	return topicModel.ToEntity(), nil
}

// FindBySubjectID retrieves all topics of a subject, ordered by name.
func (r *topicRepository) FindBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]*entity.Topic, error) {
	var topicModels []model.TopicModel
	result := dbFromContext(ctx, r.db).
		Where("subject_id = ?", subjectID).
		Order("name ASC").
		Find(&topicModels)
	if result.Error != nil {
		return nil, result.Error
	}

	topics := make([]*entity.Topic, len(topicModels))
	for i, tm := range topicModels {
		topics[i] = tm.ToEntity()
	}
	return topics, nil
}

// IncrementStudyTime adjusts the topic's denormalized total atomically in
// the database.
func (r *topicRepository) IncrementStudyTime(ctx context.Context, id uuid.UUID, minutes int) error {
	result := dbFromContext(ctx, r.db).
		Model(&model.TopicModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"study_time": gorm.Expr("study_time + ?", minutes),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTopicNotFound
	}
	return nil
}

// DeleteByGoalID removes all topics whose subject belongs to the goal.
func (r *topicRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	subjectIDs := db.Session(&gorm.Session{NewDB: true}).
		Model(&model.SubjectModel{}).
		Select("id").
		Where("goal_id = ?", goalID)

	result := db.
		Where("subject_id IN (?)", subjectIDs).
		Delete(&model.TopicModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
