package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// CreateActivityOption represents an option supplied at activity creation.
type CreateActivityOption struct {
	Name  string
	Price decimal.Decimal
}

// CreateActivityInput represents the input for activity creation.
type CreateActivityInput struct {
	Title       string
	Description string
	Options     []CreateActivityOption
	Caller      entity.Caller
}

// CreateActivityOutput represents the output of activity creation.
type CreateActivityOutput struct {
	Activity *ActivityOutput
}

// CreateActivityUseCase handles activity creation. Admin only.
type CreateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewCreateActivityUseCase creates a new CreateActivityUseCase instance.
func NewCreateActivityUseCase(activityRepo adapter.ActivityRepository) *CreateActivityUseCase {
	return &CreateActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity creation.
func (uc *CreateActivityUseCase) Execute(ctx context.Context, input CreateActivityInput) (*CreateActivityOutput, error) {
	if !input.Caller.IsAdmin() {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityForbidden,
			"only admins may create activities",
			domainerror.ErrNotAuthorizedToManageActivity,
		)
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityTitleRequired,
			"title is required",
			domainerror.ErrActivityTitleRequired,
		)
	}

	activity := entity.NewActivity(input.Title, input.Description)

	for _, opt := range input.Options {
		if err := validateOptionFields(opt.Name, opt.Price); err != nil {
			return nil, err
		}
		activity.Options = append(activity.Options, entity.NewOption(activity.ID, opt.Name, opt.Price))
	}

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return &CreateActivityOutput{Activity: toActivityOutput(activity)}, nil
}

// validateOptionFields validates the user-supplied option fields.
func validateOptionFields(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewActivityError(
			domainerror.ErrCodeOptionNameRequired,
			"option name is required",
			domainerror.ErrOptionNameRequired,
		)
	}
	if price.IsNegative() {
		return domainerror.NewActivityError(
			domainerror.ErrCodeInvalidOptionPrice,
			"option price must not be negative",
			domainerror.ErrInvalidOptionPrice,
		)
	}
	return nil
}
