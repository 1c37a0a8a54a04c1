package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Option represents a priced choice within an activity that a client can order.
// Its price is a point-in-time value: orders snapshot it at order time, so
// later price changes never touch existing orders.
type Option struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	Name       string
	Price      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOption creates a new Option entity for the given activity.
func NewOption(activityID uuid.UUID, name string, price decimal.Decimal) *Option {
	now := time.Now().UTC()

	return &Option{
		ID:         uuid.New(),
		ActivityID: activityID,
		Name:       name,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
