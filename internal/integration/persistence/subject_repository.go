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

// subjectRepository implements the adapter.SubjectRepository interface.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository instance.
func NewSubjectRepository(db *gorm.DB) adapter.SubjectRepository {
	return &subjectRepository{
		db: db,
	}
}

// Create creates a new subject in the database.
func (r *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	subjectModel := model.SubjectFromEntity(subject)
	result := dbFromContext(ctx, r.db).Create(subjectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a subject by its ID.
func (r *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	var subjectModel model.SubjectModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&subjectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubjectNotFound
		}
		return nil, result.Error
	}
	return subjectModel.ToEntity(), nil
}

// FindByGoalID retrieves all subjects of a goal, ordered by name.
func (r *subjectRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Subject, error) {
	var subjectModels []model.SubjectModel
	result := dbFromContext(ctx, r.db).
		Where("goal_id = ?", goalID).
		Order("name ASC").
		Find(&subjectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subjects := make([]*entity.Subject, len(subjectModels))
	for i, sm := range subjectModels {
		subjects[i] = sm.ToEntity()
	}
	return subjects, nil
}

// UpdateSchedule replaces the subject's schedule fields.
func (r *subjectRepository) UpdateSchedule(ctx context.Context, subject *entity.Subject) error {
	subjectModel := model.SubjectFromEntity(subject)
	result := dbFromContext(ctx, r.db).
		Model(&model.SubjectModel{}).
		Where("id = ?", subject.ID).
		Updates(map[string]interface{}{
			"daily_minutes_goal": subjectModel.DailyMinutesGoal,
			"days_of_week":       subjectModel.DaysOfWeek,
			"start_date":         subjectModel.StartDate,
			"finish_date":        subjectModel.FinishDate,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubjectNotFound
	}
	return nil
}

// IncrementStudyTime adjusts the subject's denormalized total atomically in
// the database.
func (r *subjectRepository) IncrementStudyTime(ctx context.Context, id uuid.UUID, minutes int) error {
	result := dbFromContext(ctx, r.db).
		Model(&model.SubjectModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"study_time": gorm.Expr("study_time + ?", minutes),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubjectNotFound
	}
	return nil
}

// DeleteByGoalID removes all subjects owned by the goal.
func (r *subjectRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("goal_id = ?", goalID).
		Delete(&model.SubjectModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
