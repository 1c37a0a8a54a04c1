package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	ActivityID uuid.UUID
	Concept    string
	Amount     decimal.Decimal
	Date       time.Time
	Category   entity.ExpenseCategory
	Caller     entity.Caller
	RecordedBy uuid.UUID
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation. Expenses are never
// deduplicated or merged.
type CreateExpenseUseCase struct {
	activityRepo adapter.ActivityRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	activityRepo adapter.ActivityRepository,
	expenseRepo adapter.ExpenseRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		activityRepo: activityRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := resolveActivityForExpense(ctx, uc.activityRepo, input.ActivityID, input.Caller); err != nil {
		return nil, err
	}

	if err := validateExpenseFields(input.Concept, input.Amount, input.Category); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.ActivityID,
		input.Concept,
		input.Amount,
		input.Date,
		input.Category,
		input.RecordedBy,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

// resolveActivityForExpense checks that the activity exists and the caller
// may manage its expenses. Shared by all expense use cases.
func resolveActivityForExpense(ctx context.Context, activityRepo adapter.ActivityRepository, activityID uuid.UUID, caller entity.Caller) error {
	if _, err := activityRepo.FindByID(ctx, activityID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return fmt.Errorf("failed to resolve activity: %w", err)
	}

	if !caller.CanManageActivity(activityID) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseForbidden,
			"caller may not manage expenses for this activity",
			domainerror.ErrNotAuthorizedToManageExpenses,
		)
	}

	return nil
}

// validateExpenseFields validates the user-supplied expense fields.
func validateExpenseFields(concept string, amount decimal.Decimal, category entity.ExpenseCategory) error {
	if strings.TrimSpace(concept) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseConceptRequired,
			"concept is required",
			domainerror.ErrExpenseConceptRequired,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if !entity.IsValidExpenseCategory(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category must be 'fixed' or 'variable'",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	return nil
}
