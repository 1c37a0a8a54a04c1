package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// GetExpenseInput represents the input for retrieving an expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	Caller    entity.Caller
}

// GetExpenseOutput represents the output of retrieving an expense.
type GetExpenseOutput struct {
	Expense *ExpenseOutput
}

// GetExpenseUseCase handles single expense retrieval.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense retrieval.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	if !input.Caller.CanManageActivity(expense.ActivityID) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseForbidden,
			"caller may not manage expenses for this activity",
			domainerror.ErrNotAuthorizedToManageExpenses,
		)
	}

	return &GetExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}
