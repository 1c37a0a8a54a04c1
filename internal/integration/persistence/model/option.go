package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// OptionModel represents the options table in the database.
type OptionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ActivityID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OptionModel.
func (OptionModel) TableName() string {
	return "options"
}

// ToEntity converts an OptionModel to a domain Option entity.
func (m *OptionModel) ToEntity() *entity.Option {
	return &entity.Option{
		ID:         m.ID,
		ActivityID: m.ActivityID,
		Name:       m.Name,
		Price:      m.Price,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// OptionFromEntity creates an OptionModel from a domain Option entity.
func OptionFromEntity(option *entity.Option) *OptionModel {
	return &OptionModel{
		ID:         option.ID,
		ActivityID: option.ActivityID,
		Name:       option.Name,
		Price:      option.Price,
		CreatedAt:  option.CreatedAt,
		UpdatedAt:  option.UpdatedAt,
	}
}
