package models

// Spending categories form a closed set. They are deliberately not a
// database table: a transaction carries the category value directly and
// the set only changes with a code release.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryBills         = "bills"
	CategoryEntertainment = "entertainment"
	CategorySavings       = "savings"
	CategoryOther         = "other"
)

// AllCategories returns the valid categories in declaration order.
// The order doubles as the deterministic tiebreak for breakdowns
// where two categories have equal totals.
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryEntertainment,
		CategorySavings,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is a member of the closed set
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

// CategoryRank returns the position of a category in declaration order.
// Unknown categories sort last.
func CategoryRank(category string) int {
	for i, valid := range AllCategories() {
		if category == valid {
			return i
		}
	}
	return len(AllCategories())
}
