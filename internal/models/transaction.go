package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxNoteLength = 255
)

var (
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrMissingDate     = errors.New("transaction date is required")
	ErrInvalidCategory = errors.New("invalid transaction category")
	ErrNoteTooLong     = errors.New("transaction note too long")
)

// Transaction is a single ledger entry owned by exactly one user.
// The amount is always positive; the direction of the cash flow is
// carried by IsIncome. Entries are immutable once recorded.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	IsIncome   bool            `gorm:"not null;default:false" json:"is_income"`
	Category   string          `gorm:"type:varchar(32);not null;default:'other'" json:"category"`
	Note       string          `gorm:"type:varchar(255)" json:"note,omitempty"`
	OccurredOn time.Time       `gorm:"type:date;not null;index" json:"occurred_on"`
	RecordedAt time.Time       `gorm:"not null;index" json:"recorded_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Category == "" {
		t.Category = CategoryOther
	}

	// Set insertion timestamp if not already set (for tests)
	if t.RecordedAt.IsZero() {
		t.RecordedAt = time.Now().UTC()
	}

	return t.Validate()
}

// Validate validates the ledger entry fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.OccurredOn.IsZero() {
		return ErrMissingDate
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if len(t.Note) > MaxNoteLength {
		return ErrNoteTooLong
	}

	return nil
}

// Flow returns the signed cash-flow contribution of the entry:
// positive for income, negative for an expense.
func (t *Transaction) Flow() decimal.Decimal {
	if t.IsIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// MonthKey returns the calendar month of the entry as "YYYY-MM".
func (t *Transaction) MonthKey() string {
	return t.OccurredOn.Format("2006-01")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
