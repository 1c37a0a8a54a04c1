package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// RemoveOptionInput represents the input for removing an option.
type RemoveOptionInput struct {
	ActivityID uuid.UUID
	OptionID   uuid.UUID
	Caller     entity.Caller
}

// RemoveOptionUseCase removes an option from an activity. Orders already
// placed against the option survive; they carry their own cost snapshot.
type RemoveOptionUseCase struct {
	activityRepo adapter.ActivityRepository
	optionRepo   adapter.OptionRepository
}

// NewRemoveOptionUseCase creates a new RemoveOptionUseCase instance.
func NewRemoveOptionUseCase(activityRepo adapter.ActivityRepository, optionRepo adapter.OptionRepository) *RemoveOptionUseCase {
	return &RemoveOptionUseCase{
		activityRepo: activityRepo,
		optionRepo:   optionRepo,
	}
}

// Execute performs the option removal.
func (uc *RemoveOptionUseCase) Execute(ctx context.Context, input RemoveOptionInput) error {
	if _, err := resolveManagedActivity(ctx, uc.activityRepo, input.ActivityID, input.Caller); err != nil {
		return err
	}

	if _, err := uc.optionRepo.FindByID(ctx, input.ActivityID, input.OptionID); err != nil {
		if errors.Is(err, domainerror.ErrOptionNotFound) {
			return domainerror.NewActivityError(
				domainerror.ErrCodeOptionNotFound,
				"option not found",
				domainerror.ErrOptionNotFound,
			)
		}
		return fmt.Errorf("failed to load option: %w", err)
	}

	if err := uc.optionRepo.Delete(ctx, input.ActivityID, input.OptionID); err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}

	return nil
}
