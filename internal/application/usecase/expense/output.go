// Package expense contains expense ledger use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ExpenseOutput represents an expense in use case outputs.
type ExpenseOutput struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	Concept    string
	Amount     decimal.Decimal
	Date       time.Time
	Category   entity.ExpenseCategory
	RecordedBy uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:         e.ID,
		ActivityID: e.ActivityID,
		Concept:    e.Concept,
		Amount:     e.Amount,
		Date:       e.Date,
		Category:   e.Category,
		RecordedBy: e.RecordedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
