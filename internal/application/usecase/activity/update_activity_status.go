package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// UpdateActivityStatusInput represents the input for an activity status change.
type UpdateActivityStatusInput struct {
	ActivityID uuid.UUID
	Status     entity.ActivityStatus
	Caller     entity.Caller
}

// UpdateActivityStatusOutput represents the output of a status change.
type UpdateActivityStatusOutput struct {
	Activity *ActivityOutput
}

// UpdateActivityStatusUseCase handles activity status transitions. Closing
// an activity (Finished/Cancelled) stops new orders from being placed but
// leaves existing orders and expenses untouched.
type UpdateActivityStatusUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewUpdateActivityStatusUseCase creates a new UpdateActivityStatusUseCase instance.
func NewUpdateActivityStatusUseCase(activityRepo adapter.ActivityRepository) *UpdateActivityStatusUseCase {
	return &UpdateActivityStatusUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the status change.
func (uc *UpdateActivityStatusUseCase) Execute(ctx context.Context, input UpdateActivityStatusInput) (*UpdateActivityStatusOutput, error) {
	if !input.Caller.CanManageActivity(input.ActivityID) {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityForbidden,
			"caller may not manage this activity",
			domainerror.ErrNotAuthorizedToManageActivity,
		)
	}

	if !entity.IsValidActivityStatus(input.Status) {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeInvalidActivityStatus,
			"status must be 'active', 'finished' or 'cancelled'",
			domainerror.ErrInvalidActivityStatus,
		)
	}

	activity, err := uc.activityRepo.FindByID(ctx, input.ActivityID)
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

	activity.Status = input.Status
	activity.UpdatedAt = time.Now().UTC()

	if err := uc.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return &UpdateActivityStatusOutput{Activity: toActivityOutput(activity)}, nil
}
