// Package activity contains activity and option management use cases.
package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// OptionOutput represents an option in use case outputs.
type OptionOutput struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivityOutput represents an activity in use case outputs.
type ActivityOutput struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      entity.ActivityStatus
	Options     []*OptionOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toOptionOutput(o *entity.Option) *OptionOutput {
	return &OptionOutput{
		ID:        o.ID,
		Name:      o.Name,
		Price:     o.Price,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toActivityOutput(a *entity.Activity) *ActivityOutput {
	options := make([]*OptionOutput, len(a.Options))
	for i, o := range a.Options {
		options[i] = toOptionOutput(o)
	}

	return &ActivityOutput{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Status:      a.Status,
		Options:     options,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
