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

// ListClientOrdersInput represents the input for listing a client's orders.
type ListClientOrdersInput struct {
	ClientID uuid.UUID
	Caller   entity.Caller
}

// ListClientOrdersOutput represents the output of listing a client's orders.
type ListClientOrdersOutput struct {
	Orders []*OrderOutput
}

// ListClientOrdersUseCase lists all orders of one client. Non-admin callers
// may only read their own client's orders.
type ListClientOrdersUseCase struct {
	clientRepo adapter.ClientRepository
	orderRepo  adapter.OrderRepository
}

// NewListClientOrdersUseCase creates a new ListClientOrdersUseCase instance.
func NewListClientOrdersUseCase(
	clientRepo adapter.ClientRepository,
	orderRepo adapter.OrderRepository,
) *ListClientOrdersUseCase {
	return &ListClientOrdersUseCase{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
	}
}

// Execute performs the listing.
func (uc *ListClientOrdersUseCase) Execute(ctx context.Context, input ListClientOrdersInput) (*ListClientOrdersOutput, error) {
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

	if !input.Caller.IsAdmin() && !input.Caller.IsClient(input.ClientID) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderReadForbidden,
			"caller may only read their own orders",
			domainerror.ErrNotAuthorizedToReadOrders,
		)
	}

	orders, err := uc.orderRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListClientOrdersOutput{Orders: toOrderOutputs(orders)}, nil
}
