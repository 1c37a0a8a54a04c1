// Package order contains order ledger use cases.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// OrderOutput represents an order in use case outputs.
type OrderOutput struct {
	ID            uuid.UUID
	ActivityID    uuid.UUID
	ClientID      uuid.UUID
	OptionID      uuid.UUID
	Quantity      int
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	PaymentStatus entity.PaymentStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toOrderOutput(o *entity.Order) *OrderOutput {
	return &OrderOutput{
		ID:            o.ID,
		ActivityID:    o.ActivityID,
		ClientID:      o.ClientID,
		OptionID:      o.OptionID,
		Quantity:      o.Quantity,
		UnitCost:      o.UnitCost,
		TotalCost:     o.TotalCost,
		PaymentStatus: o.PaymentStatus,
		PaidAt:        o.PaidAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderOutputs(orders []*entity.Order) []*OrderOutput {
	outputs := make([]*OrderOutput, len(orders))
	for i, o := range orders {
		outputs[i] = toOrderOutput(o)
	}
	return outputs
}
