package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense as fixed or variable cost.
type ExpenseCategory string

const (
	ExpenseCategoryFixed    ExpenseCategory = "fixed"
	ExpenseCategoryVariable ExpenseCategory = "variable"
)

// Expense represents a cost recorded against an activity.
type Expense struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	Concept    string
	Amount     decimal.Decimal
	Date       time.Time
	Category   ExpenseCategory
	RecordedBy uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	activityID uuid.UUID,
	concept string,
	amount decimal.Decimal,
	date time.Time,
	category ExpenseCategory,
	recordedBy uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:         uuid.New(),
		ActivityID: activityID,
		Concept:    concept,
		Amount:     amount,
		Date:       date,
		Category:   category,
		RecordedBy: recordedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsValidExpenseCategory validates an expense category value.
func IsValidExpenseCategory(category ExpenseCategory) bool {
	return category == ExpenseCategoryFixed || category == ExpenseCategoryVariable
}
