package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// GetForMonth retrieves the user's budget for a calendar month
func (r *budgetRepository) GetForMonth(userID uuid.UUID, year int, month time.Month) (*models.Budget, error) {
	key := models.MonthStart(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	var budget models.Budget
	if err := r.db.Where("user_id = ? AND month = ?", userID, key).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// Upsert sets the user's limit for a calendar month. The (user, month)
// pair is unique; a second set for the same month overwrites the limit
// in place instead of creating another row.
func (r *budgetRepository) Upsert(userID uuid.UUID, year int, month time.Month, limit decimal.Decimal) (*models.Budget, error) {
	budget := models.Budget{
		UserID:      userID,
		LimitAmount: limit,
		Month:       models.MonthStart(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)),
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"limit_amount": limit}),
	}).Create(&budget).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	// Re-read so the caller sees the surviving row, not the candidate
	// discarded by the conflict clause
	return r.GetForMonth(userID, year, month)
}

// DeleteForMonth removes the user's budget for a calendar month
func (r *budgetRepository) DeleteForMonth(userID uuid.UUID, year int, month time.Month) error {
	key := models.MonthStart(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	result := r.db.Where("user_id = ? AND month = ?", userID, key).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
