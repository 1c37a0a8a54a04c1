package dto

import (
	"time"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/order"
)

// PlaceOrderRequest represents the request body for order placement.
type PlaceOrderRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
	ClientID   string `json:"client_id" binding:"required"`
	OptionID   string `json:"option_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// UpdateOrderRequest represents the request body for an order update.
type UpdateOrderRequest struct {
	OptionID      *string `json:"option_id,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty" binding:"omitempty,oneof=pending paid"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID            string     `json:"id"`
	ActivityID    string     `json:"activity_id"`
	ClientID      string     `json:"client_id"`
	OptionID      string     `json:"option_id"`
	Quantity      int        `json:"quantity"`
	UnitCost      string     `json:"unit_cost"`
	TotalCost     string     `json:"total_cost"`
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PlaceOrderResponse represents the response for order placement. Merged
// tells the caller their quantity was folded into an existing order.
type PlaceOrderResponse struct {
	Order  OrderResponse `json:"order"`
	Merged bool          `json:"merged"`
}

// OrderListResponse represents the response for listing orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts an order output to its API representation.
func ToOrderResponse(o *order.OrderOutput) OrderResponse {
	return OrderResponse{
		ID:            o.ID.String(),
		ActivityID:    o.ActivityID.String(),
		ClientID:      o.ClientID.String(),
		OptionID:      o.OptionID.String(),
		Quantity:      o.Quantity,
		UnitCost:      o.UnitCost.StringFixed(2),
		TotalCost:     o.TotalCost.StringFixed(2),
		PaymentStatus: string(o.PaymentStatus),
		PaidAt:        o.PaidAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToOrderListResponse converts a list of order outputs.
func ToOrderListResponse(orders []*order.OrderOutput) OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return OrderListResponse{Orders: responses}
}
