package models

import (
	"time"
)

// TransactionFilters narrows ledger listings. Zero values mean "no
// constraint" except Limit, which callers should always set.
type TransactionFilters struct {
	IsIncome  *bool
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}
