package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ListExpensesInput represents the input for listing an activity's expenses.
type ListExpensesInput struct {
	ActivityID uuid.UUID
	Caller     entity.Caller
}

// ListExpensesOutput represents the output of listing expenses, newest first.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles expense listing for one activity.
type ListExpensesUseCase struct {
	activityRepo adapter.ActivityRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	activityRepo adapter.ActivityRepository,
	expenseRepo adapter.ExpenseRepository,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		activityRepo: activityRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if err := resolveActivityForExpense(ctx, uc.activityRepo, input.ActivityID, input.Caller); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	outputs := make([]*ExpenseOutput, len(expenses))
	for i, e := range expenses {
		outputs[i] = toExpenseOutput(e)
	}

	return &ListExpensesOutput{Expenses: outputs}, nil
}
