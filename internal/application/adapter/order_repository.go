package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// PaidOrderTotals represents the aggregated revenue of paid orders for one
// activity, computed in a single read pass.
type PaidOrderTotals struct {
	Revenue decimal.Decimal
	Count   int64
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByTriple retrieves the single order for the unique
	// (activity, client, option) triple.
	FindByTriple(ctx context.Context, activityID, clientID, optionID uuid.UUID) (*entity.Order, error)

	// Upsert inserts the order, or atomically merges it into the existing
	// order of the same triple by accumulating quantity and recomputing the
	// total from the existing unit cost. The store resolves the conflict in
	// one statement, so concurrent placements never duplicate the triple or
	// lose increments. It returns the persisted order.
	Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// Update writes quantity, unit cost, total, payment status and paid_at
	// in a single statement so no partial totals are ever stored.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByActivity retrieves all orders of an activity, newest first.
	FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Order, error)

	// FindByClient retrieves all orders of a client, newest first.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error)

	// PaidTotals sums total_cost over the activity's paid orders and counts
	// them in one aggregate query.
	PaidTotals(ctx context.Context, activityID uuid.UUID) (*PaidOrderTotals, error)
}
