package entity

import "github.com/shopspring/decimal"

// FinancialSummary is the derived financial report for one activity.
// It is never persisted: every request recomputes it from the current
// order and expense state.
type FinancialSummary struct {
	RevenueTotal         decimal.Decimal
	ExpensesTotal        decimal.Decimal
	ExpensesFixed        decimal.Decimal
	ExpensesVariable     decimal.Decimal
	PaidOrderCount       int64
	BreakEvenPoint       decimal.Decimal
	Balance              decimal.Decimal
	ProfitabilityPercent decimal.Decimal
}
