package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order represents a client's quantity commitment to one option within one
// activity. At most one order exists per (activity, client, option) triple;
// repeated orders for the same triple merge by accumulating quantity.
type Order struct {
	ID            uuid.UUID
	ActivityID    uuid.UUID
	ClientID      uuid.UUID
	OptionID      uuid.UUID
	Quantity      int
	UnitCost      decimal.Decimal // Snapshot of the option price at order time
	TotalCost     decimal.Decimal
	PaymentStatus PaymentStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder creates a new pending Order with the total derived from
// quantity and unit cost.
func NewOrder(activityID, clientID, optionID uuid.UUID, quantity int, unitCost decimal.Decimal) *Order {
	now := time.Now().UTC()

	order := &Order{
		ID:            uuid.New(),
		ActivityID:    activityID,
		ClientID:      clientID,
		OptionID:      optionID,
		Quantity:      quantity,
		UnitCost:      unitCost,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.Recalculate()

	return order
}

// Recalculate rederives the total cost from quantity and unit cost.
// It must be called after any mutation of either field so the invariant
// total_cost == quantity * unit_cost holds before the order is written.
func (o *Order) Recalculate() {
	o.TotalCost = o.UnitCost.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// MarkPaid transitions the order into Paid and stamps the payment time.
// The stamp is one-way: a later transition back to Pending keeps it.
func (o *Order) MarkPaid(at time.Time) {
	o.PaymentStatus = PaymentStatusPaid
	if o.PaidAt == nil {
		o.PaidAt = &at
	}
}

// IsValidPaymentStatus validates a payment status value.
func IsValidPaymentStatus(status PaymentStatus) bool {
	return status == PaymentStatusPending || status == PaymentStatusPaid
}
