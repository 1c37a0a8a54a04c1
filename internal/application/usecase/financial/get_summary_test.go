package financial

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

type stubActivityRepo struct {
	activity *entity.Activity
}

func (r *stubActivityRepo) Create(ctx context.Context, activity *entity.Activity) error { return nil }
func (r *stubActivityRepo) FindAll(ctx context.Context) ([]*entity.Activity, error)     { return nil, nil }
func (r *stubActivityRepo) Update(ctx context.Context, activity *entity.Activity) error { return nil }

func (r *stubActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	if r.activity == nil || r.activity.ID != id {
		return nil, domainerror.ErrActivityNotFound
	}
	return r.activity, nil
}

type stubOrderRepo struct {
	totals adapter.PaidOrderTotals
}

func (r *stubOrderRepo) Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, domainerror.ErrOrderNotFound
}
func (r *stubOrderRepo) FindByTriple(ctx context.Context, activityID, clientID, optionID uuid.UUID) (*entity.Order, error) {
	return nil, domainerror.ErrOrderNotFound
}
func (r *stubOrderRepo) Update(ctx context.Context, order *entity.Order) error { return nil }
func (r *stubOrderRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *stubOrderRepo) FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) PaidTotals(ctx context.Context, activityID uuid.UUID) (*adapter.PaidOrderTotals, error) {
	totals := r.totals
	return &totals, nil
}

type stubExpenseRepo struct {
	totals adapter.ExpenseCategoryTotals
}

func (r *stubExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }
func (r *stubExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (r *stubExpenseRepo) FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (r *stubExpenseRepo) SumByCategory(ctx context.Context, activityID uuid.UUID) (*adapter.ExpenseCategoryTotals, error) {
	totals := r.totals
	return &totals, nil
}

func newSummaryUseCase(activity *entity.Activity, orders adapter.PaidOrderTotals, expenses adapter.ExpenseCategoryTotals) *GetSummaryUseCase {
	return NewGetSummaryUseCase(
		&stubActivityRepo{activity: activity},
		&stubOrderRepo{totals: orders},
		&stubExpenseRepo{totals: expenses},
	)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	admin := entity.Caller{Role: entity.RoleAdmin}

	t.Run("computes a losing activity end to end", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(
			activity,
			adapter.PaidOrderTotals{Revenue: decimal.NewFromInt(75), Count: 3},
			adapter.ExpenseCategoryTotals{Fixed: decimal.NewFromInt(100), Variable: decimal.NewFromInt(20)},
		)

		output, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: admin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := output.Summary

		if !s.RevenueTotal.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected revenue 75, got %s", s.RevenueTotal)
		}
		if !s.ExpensesTotal.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected expenses 120, got %s", s.ExpensesTotal)
		}
		if s.PaidOrderCount != 3 {
			t.Errorf("expected 3 paid orders, got %d", s.PaidOrderCount)
		}
		if !s.Balance.Equal(decimal.NewFromInt(-45)) {
			t.Errorf("expected balance -45, got %s", s.Balance)
		}
		if !s.ProfitabilityPercent.Equal(decimal.NewFromInt(-60)) {
			t.Errorf("expected profitability -60, got %s", s.ProfitabilityPercent)
		}
		// 100 / (1 - 20/75) = 136.36...
		want := decimal.NewFromFloat(136.36)
		if s.BreakEvenPoint.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
			t.Errorf("expected break-even near %s, got %s", want, s.BreakEvenPoint)
		}
	})

	t.Run("zero revenue reports the fixed total as break-even and zero profitability", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(
			activity,
			adapter.PaidOrderTotals{Revenue: decimal.Zero, Count: 0},
			adapter.ExpenseCategoryTotals{Fixed: decimal.NewFromInt(50), Variable: decimal.NewFromInt(10)},
		)

		output, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: admin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := output.Summary

		if !s.BreakEvenPoint.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected break-even 50, got %s", s.BreakEvenPoint)
		}
		if !s.ProfitabilityPercent.Equal(decimal.Zero) {
			t.Errorf("expected zero profitability, got %s", s.ProfitabilityPercent)
		}
		if !s.Balance.Equal(decimal.NewFromInt(-60)) {
			t.Errorf("expected balance -60, got %s", s.Balance)
		}
	})

	t.Run("no variable expenses reports the fixed total as break-even", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(
			activity,
			adapter.PaidOrderTotals{Revenue: decimal.NewFromInt(200), Count: 8},
			adapter.ExpenseCategoryTotals{Fixed: decimal.NewFromInt(80), Variable: decimal.Zero},
		)

		output, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: admin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.BreakEvenPoint.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected break-even 80, got %s", output.Summary.BreakEvenPoint)
		}
		if !output.Summary.ProfitabilityPercent.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected profitability 60, got %s", output.Summary.ProfitabilityPercent)
		}
	})

	t.Run("variable expenses at or above revenue zero the break-even", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(
			activity,
			adapter.PaidOrderTotals{Revenue: decimal.NewFromInt(50), Count: 2},
			adapter.ExpenseCategoryTotals{Fixed: decimal.NewFromInt(30), Variable: decimal.NewFromInt(60)},
		)

		output, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: admin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.BreakEvenPoint.Equal(decimal.Zero) {
			t.Errorf("expected zero break-even, got %s", output.Summary.BreakEvenPoint)
		}
	})

	t.Run("empty activity yields an all-zero summary", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(
			activity,
			adapter.PaidOrderTotals{Revenue: decimal.Zero, Count: 0},
			adapter.ExpenseCategoryTotals{Fixed: decimal.Zero, Variable: decimal.Zero},
		)

		output, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: admin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := output.Summary

		for name, value := range map[string]decimal.Decimal{
			"revenue":        s.RevenueTotal,
			"expenses":       s.ExpensesTotal,
			"break-even":     s.BreakEvenPoint,
			"balance":        s.Balance,
			"profitability":  s.ProfitabilityPercent,
			"fixed total":    s.ExpensesFixed,
			"variable total": s.ExpensesVariable,
		} {
			if !value.Equal(decimal.Zero) {
				t.Errorf("expected zero %s, got %s", name, value)
			}
		}
		if s.PaidOrderCount != 0 {
			t.Errorf("expected zero paid orders, got %d", s.PaidOrderCount)
		}
	})

	t.Run("unknown activity returns not found", func(t *testing.T) {
		uc := newSummaryUseCase(nil, adapter.PaidOrderTotals{}, adapter.ExpenseCategoryTotals{})

		_, err := uc.Execute(ctx, GetSummaryInput{ActivityID: uuid.New(), Caller: admin})

		var finErr *domainerror.FinancialError
		if !errors.As(err, &finErr) || finErr.Code != domainerror.ErrCodeSummaryActivityNotFound {
			t.Errorf("expected summary-activity-not-found error, got %v", err)
		}
	})

	t.Run("forbids callers outside the activity scope", func(t *testing.T) {
		activity := entity.NewActivity("Rifa", "")
		uc := newSummaryUseCase(activity, adapter.PaidOrderTotals{}, adapter.ExpenseCategoryTotals{})

		clientID := uuid.New()
		_, err := uc.Execute(ctx, GetSummaryInput{
			ActivityID: activity.ID,
			Caller:     entity.Caller{Role: entity.RoleClient, ClientID: &clientID},
		})

		var finErr *domainerror.FinancialError
		if !errors.As(err, &finErr) || finErr.Code != domainerror.ErrCodeSummaryForbidden {
			t.Errorf("expected summary-forbidden error, got %v", err)
		}

		scoped := entity.Caller{Role: entity.RoleActivityAdmin, AllowedActivityIDs: []uuid.UUID{activity.ID}}
		if _, err := uc.Execute(ctx, GetSummaryInput{ActivityID: activity.ID, Caller: scoped}); err != nil {
			t.Errorf("scoped activity admin should see the summary, got %v", err)
		}
	})
}
