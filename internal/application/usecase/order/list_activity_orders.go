package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// ListActivityOrdersInput represents the input for listing an activity's orders.
type ListActivityOrdersInput struct {
	ActivityID uuid.UUID
	Caller     entity.Caller
}

// ListActivityOrdersOutput represents the output of listing an activity's orders.
type ListActivityOrdersOutput struct {
	Orders []*OrderOutput
}

// ListActivityOrdersUseCase lists all orders of one activity. Restricted to
// admins and activity-scoped admins of that activity.
type ListActivityOrdersUseCase struct {
	activityRepo adapter.ActivityRepository
	orderRepo    adapter.OrderRepository
}

// NewListActivityOrdersUseCase creates a new ListActivityOrdersUseCase instance.
func NewListActivityOrdersUseCase(
	activityRepo adapter.ActivityRepository,
	orderRepo adapter.OrderRepository,
) *ListActivityOrdersUseCase {
	return &ListActivityOrdersUseCase{
		activityRepo: activityRepo,
		orderRepo:    orderRepo,
	}
}

// Execute performs the listing.
func (uc *ListActivityOrdersUseCase) Execute(ctx context.Context, input ListActivityOrdersInput) (*ListActivityOrdersOutput, error) {
	if _, err := uc.activityRepo.FindByID(ctx, input.ActivityID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve activity: %w", err)
	}

	if !input.Caller.CanManageActivity(input.ActivityID) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderReadForbidden,
			"caller may not read orders of this activity",
			domainerror.ErrNotAuthorizedToReadOrders,
		)
	}

	orders, err := uc.orderRepo.FindByActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListActivityOrdersOutput{Orders: toOrderOutputs(orders)}, nil
}
