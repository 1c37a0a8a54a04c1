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

// optionRepository implements the adapter.OptionRepository interface.
type optionRepository struct {
	db *gorm.DB
}

// NewOptionRepository creates a new option repository instance.
func NewOptionRepository(db *gorm.DB) adapter.OptionRepository {
	return &optionRepository{
		db: db,
	}
}

// Create adds a new option to an activity.
func (r *optionRepository) Create(ctx context.Context, option *entity.Option) error {
	optionModel := model.OptionFromEntity(option)
	result := r.db.WithContext(ctx).Create(optionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an option scoped to an activity.
func (r *optionRepository) FindByID(ctx context.Context, activityID, optionID uuid.UUID) (*entity.Option, error) {
	var optionModel model.OptionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND activity_id = ?", optionID, activityID).
		First(&optionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOptionNotFound
		}
		return nil, result.Error
	}
	return optionModel.ToEntity(), nil
}

// Update updates an existing option.
func (r *optionRepository) Update(ctx context.Context, option *entity.Option) error {
	optionModel := model.OptionFromEntity(option)
	result := r.db.WithContext(ctx).Save(optionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an option scoped to an activity.
func (r *optionRepository) Delete(ctx context.Context, activityID, optionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND activity_id = ?", optionID, activityID).
		Delete(&model.OptionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOptionNotFound
	}
	return nil
}
