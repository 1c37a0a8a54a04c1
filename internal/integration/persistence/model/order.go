package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// OrderModel represents the orders table in the database. The composite
// unique index on (activity_id, client_id, option_id) is what lets the
// repository merge concurrent placements in a single upsert.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ActivityID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_triple;index"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_triple;index"`
	OptionID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_triple"`
	Quantity      int             `gorm:"not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(10);not null;index"`
	PaidAt        *time.Time      `gorm:"type:timestamp"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:            m.ID,
		ActivityID:    m.ActivityID,
		ClientID:      m.ClientID,
		OptionID:      m.OptionID,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		PaidAt:        m.PaidAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:            order.ID,
		ActivityID:    order.ActivityID,
		ClientID:      order.ClientID,
		OptionID:      order.OptionID,
		Quantity:      order.Quantity,
		UnitCost:      order.UnitCost,
		TotalCost:     order.TotalCost,
		PaymentStatus: string(order.PaymentStatus),
		PaidAt:        order.PaidAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
