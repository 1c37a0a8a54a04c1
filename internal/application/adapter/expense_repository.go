package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ExpenseCategoryTotals represents summed expense amounts per category for
// one activity, computed in a single read pass.
type ExpenseCategoryTotals struct {
	Fixed    decimal.Decimal
	Variable decimal.Decimal
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByActivity retrieves all expenses of an activity, newest first.
	FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByCategory sums expense amounts of an activity grouped by category
	// in one aggregate query.
	SumByCategory(ctx context.Context, activityID uuid.UUID) (*ExpenseCategoryTotals, error)
}
