package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

var (
	ErrInvalidLimitFormat = errors.New("limit must be a valid decimal number")
	ErrInvalidMonthFormat = errors.New("month must be formatted YYYY-MM")
)

// BudgetService handles monthly budget business logic
type BudgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	logger     *slog.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

// GetBudget retrieves the user's budget for a calendar month
func (s *BudgetService) GetBudget(userID uuid.UUID, year int, month time.Month) (*models.Budget, error) {
	return s.budgetRepo.GetForMonth(userID, year, month)
}

// SetBudget sets the user's spending limit for a calendar month.
// Setting the same month twice overwrites the limit; the month itself
// never changes.
func (s *BudgetService) SetBudget(userID uuid.UUID, req *dto.SetBudgetRequest) (*models.Budget, error) {
	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		return nil, ErrInvalidLimitFormat
	}

	if limit.IsNegative() {
		return nil, models.ErrNegativeBudgetLimit
	}

	monthStart, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		return nil, ErrInvalidMonthFormat
	}

	budget, err := s.budgetRepo.Upsert(userID, monthStart.Year(), monthStart.Month(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to set budget: %w", err)
	}

	s.logger.Info("budget set",
		"user_id", userID,
		"month", req.Month,
		"limit", limit.String())

	return budget, nil
}

// RemoveBudget deletes the user's budget for a calendar month
func (s *BudgetService) RemoveBudget(userID uuid.UUID, year int, month time.Month) error {
	if err := s.budgetRepo.DeleteForMonth(userID, year, month); err != nil {
		return err
	}

	s.logger.Info("budget removed",
		"user_id", userID,
		"year", year,
		"month", int(month))

	return nil
}
