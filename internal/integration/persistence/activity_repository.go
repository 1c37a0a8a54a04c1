// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create creates a new activity together with its options.
func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).Create(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an activity with its options by ID.
func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).
		Preload("Options").
		Where("id = ?", id).
		First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindAll retrieves all activities, newest first.
func (r *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Preload("Options").
		Order("created_at DESC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	return activities, nil
}

// Update updates the activity's own fields. Options are managed through the
// option repository, so the association is deliberately not saved here.
func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).
		Omit("Options").
		Save(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
