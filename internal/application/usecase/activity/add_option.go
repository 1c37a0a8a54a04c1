package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// AddOptionInput represents the input for adding an option to an activity.
type AddOptionInput struct {
	ActivityID uuid.UUID
	Name       string
	Price      decimal.Decimal
	Caller     entity.Caller
}

// AddOptionOutput represents the output of adding an option.
type AddOptionOutput struct {
	Option *OptionOutput
}

// AddOptionUseCase adds a participation option to an existing activity.
type AddOptionUseCase struct {
	activityRepo adapter.ActivityRepository
	optionRepo   adapter.OptionRepository
}

// NewAddOptionUseCase creates a new AddOptionUseCase instance.
func NewAddOptionUseCase(activityRepo adapter.ActivityRepository, optionRepo adapter.OptionRepository) *AddOptionUseCase {
	return &AddOptionUseCase{
		activityRepo: activityRepo,
		optionRepo:   optionRepo,
	}
}

// Execute performs the option addition.
func (uc *AddOptionUseCase) Execute(ctx context.Context, input AddOptionInput) (*AddOptionOutput, error) {
	if _, err := resolveManagedActivity(ctx, uc.activityRepo, input.ActivityID, input.Caller); err != nil {
		return nil, err
	}

	if err := validateOptionFields(input.Name, input.Price); err != nil {
		return nil, err
	}

	option := entity.NewOption(input.ActivityID, input.Name, input.Price)
	if err := uc.optionRepo.Create(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create option: %w", err)
	}

	return &AddOptionOutput{Option: toOptionOutput(option)}, nil
}

// resolveManagedActivity loads an activity and checks the caller may manage it.
func resolveManagedActivity(ctx context.Context, repo adapter.ActivityRepository, activityID uuid.UUID, caller entity.Caller) (*entity.Activity, error) {
	activity, err := repo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	if !caller.CanManageActivity(activityID) {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityForbidden,
			"caller may not manage this activity",
			domainerror.ErrNotAuthorizedToManageActivity,
		)
	}

	return activity, nil
}
