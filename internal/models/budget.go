package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeBudgetLimit = errors.New("budget limit must not be negative")
	ErrInvalidBudgetMonth  = errors.New("budget month is required")
)

// Budget is a per-user monthly spending limit. At most one row exists
// per (user, month); setting the budget again for the same month
// overwrites the limit, never the month.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_month" json:"user_id"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;column:limit_amount" json:"limit"`
	Month       time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_user_month" json:"month"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	b.Month = MonthStart(b.Month)

	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.LimitAmount.IsNegative() {
		return ErrNegativeBudgetLimit
	}

	if b.Month.IsZero() {
		return ErrInvalidBudgetMonth
	}

	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// MonthStart normalizes an instant to the first day of its calendar
// month at midnight UTC. Budgets are keyed on this value.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
