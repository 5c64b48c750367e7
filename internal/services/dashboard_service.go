package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// RecentTransactionCount is the number of latest entries shown on
	// the dashboard
	RecentTransactionCount = 5

	// TrendMonths caps the expense trend at the most recent months
	// with activity
	TrendMonths = 6
)

// DashboardService assembles the aggregate ledger view. Nothing here
// is persisted; every call recomputes the snapshot from the stores, so
// a dashboard can never disagree with the ledger it was built from.
type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// ComputeDashboard builds the snapshot for one user. The reference
// instant decides which calendar month counts as "this month". An
// empty ledger yields zero totals and empty collections, never an
// error.
func (s *DashboardService) ComputeDashboard(userID uuid.UUID, now time.Time) (*models.DashboardSnapshot, error) {
	start := time.Now()

	totalIncome, err := s.transactionRepo.SumAmount(userID, true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total income: %w", err)
	}

	totalExpense, err := s.transactionRepo.SumAmount(userID, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total expense: %w", err)
	}

	monthStart := models.MonthStart(now)
	thisMonthExpense, err := s.transactionRepo.SumAmount(userID, false, &monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute this month expense: %w", err)
	}

	currentBudget, err := s.currentBudgetLimit(userID, now)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.transactionRepo.SumByCategory(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	trend, err := s.transactionRepo.SumByMonth(userID, false, TrendMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly trend: %w", err)
	}

	recent, err := s.transactionRepo.GetRecentByUserID(userID, RecentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}

	snapshot := &models.DashboardSnapshot{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Balance:            totalIncome.Sub(totalExpense),
		ThisMonthExpense:   thisMonthExpense,
		CurrentBudget:      currentBudget,
		CategoryBreakdown:  breakdown,
		MonthlyTrend:       trend,
		RecentTransactions: recent,
	}

	s.metrics.IncrementCounter("dashboard.computed", nil)
	s.metrics.RecordProcessingTime("dashboard.compute", time.Since(start))

	s.logger.Info("dashboard computed",
		"user_id", userID,
		"balance", snapshot.Balance.String(),
		"categories", len(breakdown),
		"trend_months", len(trend))

	return snapshot, nil
}

// currentBudgetLimit resolves the limit for the reference month. A
// missing budget reads as zero rather than an error.
func (s *DashboardService) currentBudgetLimit(userID uuid.UUID, now time.Time) (decimal.Decimal, error) {
	budget, err := s.budgetRepo.GetForMonth(userID, now.Year(), now.Month())
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to fetch current budget: %w", err)
	}
	return budget.LimitAmount, nil
}
