package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest records a new ledger entry. Amount is always
// positive; IsIncome selects the flow direction.
type CreateTransactionRequest struct {
	Amount   string `json:"amount" validate:"required"`
	IsIncome bool   `json:"isIncome"`
	Category string `json:"category,omitempty"`
	Note     string `json:"note,omitempty" validate:"max=255"`
	Date     string `json:"date" validate:"required"`
}

// TransactionResponse represents a single ledger entry
type TransactionResponse struct {
	ID         uuid.UUID `json:"id"`
	Amount     string    `json:"amount"`
	IsIncome   bool      `json:"isIncome"`
	Category   string    `json:"category"`
	Note       string    `json:"note,omitempty"`
	Date       string    `json:"date"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing ledger entries
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// ClearLedgerResponse reports how many entries a full clear removed
type ClearLedgerResponse struct {
	Deleted int64 `json:"deleted"`
}
