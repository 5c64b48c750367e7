package dto

// SetBudgetRequest sets the spending limit for one calendar month.
// Month is formatted "YYYY-MM"; setting the same month twice overwrites
// the limit.
type SetBudgetRequest struct {
	Limit string `json:"limit" validate:"required"`
	Month string `json:"month" validate:"required"`
}

// BudgetResponse represents a monthly budget
type BudgetResponse struct {
	ID    string `json:"id"`
	Limit string `json:"limit"`
	Month string `json:"month"`
}
