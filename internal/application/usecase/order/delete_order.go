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

// DeleteOrderInput represents the input for order deletion.
type DeleteOrderInput struct {
	OrderID uuid.UUID
	Caller  entity.Caller
}

// DeleteOrderUseCase handles hard removal of an order. Admin only.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order deletion.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) error {
	if !input.Caller.IsAdmin() {
		return domainerror.NewOrderError(
			domainerror.ErrCodeOrderModifyForbidden,
			"only admins may delete orders",
			domainerror.ErrNotAuthorizedToModifyOrder,
		)
	}

	if err := uc.orderRepo.Delete(ctx, input.OrderID); err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
