package models

import (
	"github.com/shopspring/decimal"
)

// CategoryTotal is the aggregated expense total for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is the aggregated expense total for one calendar month.
// Month is formatted "YYYY-MM".
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSnapshot is the computed, non-persisted aggregate view of a
// user's ledger at a given instant. It is rebuilt from the stores on
// every request; no derived state is written back.
type DashboardSnapshot struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	ThisMonthExpense decimal.Decimal `json:"this_month_expense"`
	CurrentBudget    decimal.Decimal `json:"current_budget"`

	// Expense totals per category present in the ledger, largest first
	CategoryBreakdown []CategoryTotal `json:"category_breakdown"`

	// Up to the 6 most recent months with expense activity, oldest first.
	// Months without expenses are absent, not zero-filled.
	MonthlyTrend []MonthTotal `json:"monthly_trend"`

	// The 5 most recently occurred transactions, newest first
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// BudgetRemaining returns how much of the current month's budget is
// left. Negative when the budget is exceeded; zero when no budget set.
func (s *DashboardSnapshot) BudgetRemaining() decimal.Decimal {
	if s.CurrentBudget.IsZero() {
		return decimal.Zero
	}
	return s.CurrentBudget.Sub(s.ThisMonthExpense)
}
