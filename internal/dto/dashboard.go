package dto

// CategoryTotalResponse is one slice of the expense breakdown
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// MonthTotalResponse is one month of the expense trend
type MonthTotalResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// DashboardResponse is the aggregate view of a user's ledger, computed
// fresh on every request
type DashboardResponse struct {
	TotalIncome        string                  `json:"totalIncome"`
	TotalExpense       string                  `json:"totalExpense"`
	Balance            string                  `json:"balance"`
	ThisMonthExpense   string                  `json:"thisMonthExpense"`
	CurrentBudget      string                  `json:"currentBudget"`
	BudgetRemaining    string                  `json:"budgetRemaining"`
	CategoryBreakdown  []CategoryTotalResponse `json:"categoryBreakdown"`
	MonthlyTrend       []MonthTotalResponse    `json:"monthlyTrend"`
	RecentTransactions []TransactionResponse   `json:"recentTransactions"`
}
