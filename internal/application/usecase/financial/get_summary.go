// Package financial contains the financial summary use case.
package financial

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

var oneHundred = decimal.NewFromInt(100)

// GetSummaryInput represents the input for the financial summary.
type GetSummaryInput struct {
	ActivityID uuid.UUID
	Caller     entity.Caller
}

// GetSummaryOutput represents the output of the financial summary.
type GetSummaryOutput struct {
	Summary *entity.FinancialSummary
}

// GetSummaryUseCase computes the financial summary of one activity from the
// current order and expense state. Nothing is cached or persisted: every
// request is a fresh computation.
type GetSummaryUseCase struct {
	activityRepo adapter.ActivityRepository
	orderRepo    adapter.OrderRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	activityRepo adapter.ActivityRepository,
	orderRepo adapter.OrderRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		activityRepo: activityRepo,
		orderRepo:    orderRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute computes the summary. Each sum comes from one aggregate query, so
// a sum is never interleaved with a concurrent write; strict transactional
// consistency across the two collections is not required for this advisory
// report.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if _, err := uc.activityRepo.FindByID(ctx, input.ActivityID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewFinancialError(
				domainerror.ErrCodeSummaryActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve activity: %w", err)
	}

	if !input.Caller.CanManageActivity(input.ActivityID) {
		return nil, domainerror.NewFinancialError(
			domainerror.ErrCodeSummaryForbidden,
			"caller may not view the financial summary of this activity",
			domainerror.ErrNotAuthorizedToViewSummary,
		)
	}

	expenses, err := uc.expenseRepo.SumByCategory(ctx, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	orders, err := uc.orderRepo.PaidTotals(ctx, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid orders: %w", err)
	}

	expensesTotal := expenses.Fixed.Add(expenses.Variable)
	balance := orders.Revenue.Sub(expensesTotal)

	summary := &entity.FinancialSummary{
		RevenueTotal:         orders.Revenue,
		ExpensesTotal:        expensesTotal,
		ExpensesFixed:        expenses.Fixed,
		ExpensesVariable:     expenses.Variable,
		PaidOrderCount:       orders.Count,
		BreakEvenPoint:       breakEvenPoint(expenses.Fixed, expenses.Variable, orders.Revenue),
		Balance:              balance,
		ProfitabilityPercent: profitabilityPercent(balance, orders.Revenue),
	}

	return &GetSummaryOutput{Summary: summary}, nil
}

// breakEvenPoint computes the revenue level at which fixed costs are covered
// by the contribution margin.
//
// With no revenue or no variable cost signal the fixed total itself is
// reported as the floor to recover. That fallback is a deliberate modeling
// simplification kept for compatibility, not a rigorous break-even formula.
func breakEvenPoint(fixed, variable, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsPositive() && variable.IsPositive() {
		contributionMargin := decimal.NewFromInt(1).Sub(variable.Div(revenue))
		if contributionMargin.IsPositive() {
			return fixed.Div(contributionMargin)
		}
		return decimal.Zero
	}
	if fixed.IsPositive() {
		return fixed
	}
	return decimal.Zero
}

// profitabilityPercent computes balance/revenue*100, guarding the zero
// revenue case. Negative balances yield negative percentages; nothing is
// clamped.
func profitabilityPercent(balance, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return balance.Div(revenue).Mul(oneHundred)
}
