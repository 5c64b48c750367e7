package repositories

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a new entry to the user's ledger
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID, scoped to the owner. A
// transaction owned by another user is reported as not found.
func (r *transactionRepository) GetByID(userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves a user's transactions with optional filters and pagination
func (r *transactionRepository) GetByUserID(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filters.IsIncome != nil {
		query = query.Where("is_income = ?", *filters.IsIncome)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.StartDate != nil {
		query = query.Where("occurred_on >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_on <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := query.Order("occurred_on DESC, recorded_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetRecentByUserID retrieves the most recent entries, newest occurrence
// first; entries on the same day sort by insertion time, newest first.
func (r *transactionRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("occurred_on DESC, recorded_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// Delete removes a single entry owned by the user
func (r *transactionRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteAllByUserID clears the user's entire ledger
func (r *transactionRepository) DeleteAllByUserID(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear ledger: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// amountRow is the minimal projection fetched for aggregation. Summing
// happens in Go with decimal arithmetic so results are exact and
// identical across the postgres and sqlite dialects.
type amountRow struct {
	Amount     decimal.Decimal
	Category   string
	OccurredOn time.Time
}

// SumAmount totals the user's entries of one flow direction, optionally
// restricted to entries occurring on or after a date
func (r *transactionRepository) SumAmount(userID uuid.UUID, isIncome bool, since *time.Time) (decimal.Decimal, error) {
	query := r.db.Model(&models.Transaction{}).
		Select("amount").
		Where("user_id = ? AND is_income = ?", userID, isIncome)

	if since != nil {
		query = query.Where("occurred_on >= ?", *since)
	}

	var rows []amountRow
	if err := query.Scan(&rows).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

// SumByCategory totals the user's entries per category, largest total
// first. Ties break on category declaration order so the result is
// deterministic.
func (r *transactionRepository) SumByCategory(userID uuid.UUID, isIncome bool) ([]models.CategoryTotal, error) {
	var rows []amountRow
	if err := r.db.Model(&models.Transaction{}).
		Select("category, amount").
		Where("user_id = ? AND is_income = ?", userID, isIncome).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum by category: %w", err)
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, row := range rows {
		byCategory[row.Category] = byCategory[row.Category].Add(row.Amount)
	}

	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, models.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return models.CategoryRank(totals[i].Category) < models.CategoryRank(totals[j].Category)
	})

	return totals, nil
}

// SumByMonth totals the user's entries per calendar month and returns
// the most recent months with activity, capped at the given count and
// ordered oldest first. Months without matching entries are absent
// rather than zero-filled.
func (r *transactionRepository) SumByMonth(userID uuid.UUID, isIncome bool, months int) ([]models.MonthTotal, error) {
	var rows []amountRow
	if err := r.db.Model(&models.Transaction{}).
		Select("occurred_on, amount").
		Where("user_id = ? AND is_income = ?", userID, isIncome).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum by month: %w", err)
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, row := range rows {
		key := row.OccurredOn.Format("2006-01")
		byMonth[key] = byMonth[key].Add(row.Amount)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}

	// "YYYY-MM" keys sort lexicographically in chronological order;
	// keep only the most recent window, then present oldest first.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if months > 0 && len(keys) > months {
		keys = keys[:months]
	}
	sort.Strings(keys)

	totals := make([]models.MonthTotal, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, models.MonthTotal{Month: key, Total: byMonth[key]})
	}

	return totals, nil
}
