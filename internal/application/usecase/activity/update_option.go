package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// UpdateOptionInput represents the input for updating an option. Nil fields
// are left unchanged. A price change only affects orders placed afterwards;
// existing orders keep their pinned unit cost.
type UpdateOptionInput struct {
	ActivityID uuid.UUID
	OptionID   uuid.UUID
	Name       *string
	Price      *decimal.Decimal
	Caller     entity.Caller
}

// UpdateOptionOutput represents the output of updating an option.
type UpdateOptionOutput struct {
	Option *OptionOutput
}

// UpdateOptionUseCase handles option updates.
type UpdateOptionUseCase struct {
	activityRepo adapter.ActivityRepository
	optionRepo   adapter.OptionRepository
}

// NewUpdateOptionUseCase creates a new UpdateOptionUseCase instance.
func NewUpdateOptionUseCase(activityRepo adapter.ActivityRepository, optionRepo adapter.OptionRepository) *UpdateOptionUseCase {
	return &UpdateOptionUseCase{
		activityRepo: activityRepo,
		optionRepo:   optionRepo,
	}
}

// Execute performs the option update.
func (uc *UpdateOptionUseCase) Execute(ctx context.Context, input UpdateOptionInput) (*UpdateOptionOutput, error) {
	if _, err := resolveManagedActivity(ctx, uc.activityRepo, input.ActivityID, input.Caller); err != nil {
		return nil, err
	}

	option, err := uc.optionRepo.FindByID(ctx, input.ActivityID, input.OptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOptionNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeOptionNotFound,
				"option not found",
				domainerror.ErrOptionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load option: %w", err)
	}

	if input.Name != nil {
		option.Name = *input.Name
	}
	if input.Price != nil {
		option.Price = *input.Price
	}

	if err := validateOptionFields(option.Name, option.Price); err != nil {
		return nil, err
	}

	option.UpdatedAt = time.Now().UTC()

	if err := uc.optionRepo.Update(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to update option: %w", err)
	}

	return &UpdateOptionOutput{Option: toOptionOutput(option)}, nil
}
