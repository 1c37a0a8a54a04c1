package dto

import (
	"time"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Concept  string  `json:"concept" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date" binding:"required"`
	Category string  `json:"category" binding:"required,oneof=fixed variable"`
}

// UpdateExpenseRequest represents the request body for an expense update.
type UpdateExpenseRequest struct {
	Concept  *string  `json:"concept,omitempty" binding:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount,omitempty"`
	Date     *string  `json:"date,omitempty"`
	Category *string  `json:"category,omitempty" binding:"omitempty,oneof=fixed variable"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activity_id"`
	Concept    string    `json:"concept"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	Category   string    `json:"category"`
	RecordedBy string    `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an expense output to its API representation.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID.String(),
		ActivityID: e.ActivityID.String(),
		Concept:    e.Concept,
		Amount:     e.Amount.StringFixed(2),
		Date:       e.Date.Format("2006-01-02"),
		Category:   string(e.Category),
		RecordedBy: e.RecordedBy.String(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expense outputs.
func ToExpenseListResponse(expenses []*expense.ExpenseOutput) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: responses}
}
