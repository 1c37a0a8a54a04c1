package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/pricing"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// PlaceOrderInput represents the input for placing an order.
type PlaceOrderInput struct {
	ActivityID uuid.UUID
	ClientID   uuid.UUID
	OptionID   uuid.UUID
	Quantity   int
	Caller     entity.Caller
}

// PlaceOrderOutput represents the output of placing an order. Merged is true
// when the quantity was folded into an existing order of the same triple
// instead of creating a new one.
type PlaceOrderOutput struct {
	Order  *OrderOutput
	Merged bool
}

// PlaceOrderUseCase handles order placement with merge-on-duplicate
// semantics: repeated orders for the same (activity, client, option) triple
// accumulate quantity on the one existing order.
type PlaceOrderUseCase struct {
	activityRepo  adapter.ActivityRepository
	clientRepo    adapter.ClientRepository
	orderRepo     adapter.OrderRepository
	priceResolver *pricing.ResolveOptionPriceUseCase
}

// NewPlaceOrderUseCase creates a new PlaceOrderUseCase instance.
func NewPlaceOrderUseCase(
	activityRepo adapter.ActivityRepository,
	clientRepo adapter.ClientRepository,
	orderRepo adapter.OrderRepository,
	priceResolver *pricing.ResolveOptionPriceUseCase,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		activityRepo:  activityRepo,
		clientRepo:    clientRepo,
		orderRepo:     orderRepo,
		priceResolver: priceResolver,
	}
}

// Execute performs the order placement.
//
// The write goes through the repository's atomic upsert, so two concurrent
// placements for the same triple still collapse into one order with the
// summed quantity. A merge keeps the existing row's identity, so the merged
// flag falls out of comparing the persisted ID with the candidate's.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderQuantity,
			"quantity must be at least 1",
			domainerror.ErrInvalidOrderQuantity,
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
		return nil, fmt.Errorf("failed to resolve activity: %w", err)
	}

	if !activity.AcceptsOrders() {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityNotActive,
			fmt.Sprintf("activity is %s and no longer accepts orders", activity.Status),
			domainerror.ErrActivityNotActive,
		)
	}

	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	// Self-service ordering only for one's own client record.
	if !input.Caller.IsAdmin() && !input.Caller.IsClient(input.ClientID) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderPlaceForbidden,
			"caller may only order for their own client record",
			domainerror.ErrNotAuthorizedToPlaceOrder,
		)
	}

	resolved, err := uc.priceResolver.Execute(ctx, pricing.ResolveOptionPriceInput{
		ActivityID: input.ActivityID,
		OptionID:   input.OptionID,
	})
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(input.ActivityID, input.ClientID, input.OptionID, input.Quantity, resolved.Option.Price)

	persisted, err := uc.orderRepo.Upsert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert order: %w", err)
	}

	return &PlaceOrderOutput{
		Order:  toOrderOutput(persisted),
		Merged: persisted.ID != order.ID,
	}, nil
}
