package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount = errors.New("goal target amount must be positive")
	ErrNegativeSavedAmount = errors.New("goal saved amount must not be negative")
	ErrMissingGoalName     = errors.New("goal name is required")
)

// SavingsGoal tracks progress toward a named saving target.
// SavedAmount is a progress counter maintained by the user, not a
// figure derived from the ledger, even though a "savings" spending
// category exists.
type SavingsGoal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"target_amount"`
	SavedAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"saved_amount"`
	Deadline     *time.Time      `gorm:"type:date" json:"deadline,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for SavingsGoal
func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields
func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Name == "" {
		return ErrMissingGoalName
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}

	if g.SavedAmount.IsNegative() {
		return ErrNegativeSavedAmount
	}

	return nil
}

// IsReached returns true once the saved amount meets the target
func (g *SavingsGoal) IsReached() bool {
	return g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns saved/target as a fraction in [0, 1]
func (g *SavingsGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	p := g.SavedAmount.Div(g.TargetAmount)
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return p
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
