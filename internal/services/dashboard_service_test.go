package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies MetricsRecorderInterface for tests
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)        {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)    {}
func (noopMetrics) RecordGauge(name string, value float64, t map[string]string) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DashboardServiceSuite defines the test suite for DashboardService
type DashboardServiceSuite struct {
	suite.Suite
	db              *database.DB
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	service         DashboardServiceInterface
	testUser        *models.User
}

// SetupTest runs before each test
func (s *DashboardServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)
	s.budgetRepo = repositories.NewBudgetRepository(s.db.DB)
	s.service = NewDashboardService(s.transactionRepo, s.budgetRepo, noopMetrics{}, testLogger())
	s.testUser = database.CreateTestUser(s.T(), s.db, "dashboard@example.com")
}

// TearDownTest runs after each test
func (s *DashboardServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) record(amount string, isIncome bool, category, date string) {
	s.T().Helper()

	occurredOn, err := time.Parse("2006-01-02", date)
	s.Require().NoError(err)

	s.Require().NoError(s.transactionRepo.Create(&models.Transaction{
		UserID:     s.testUser.ID,
		Amount:     decimal.RequireFromString(amount),
		IsIncome:   isIncome,
		Category:   category,
		OccurredOn: occurredOn,
	}))
}

func (s *DashboardServiceSuite) TestComputeDashboard_TwoMonthLedger() {
	// January: salary plus food spending
	s.record("1000.00", true, models.CategoryOther, "2024-01-05")
	s.record("200.00", false, models.CategoryFood, "2024-01-10")
	// February: food and transport spending
	s.record("150.00", false, models.CategoryFood, "2024-02-03")
	s.record("100.00", false, models.CategoryTransport, "2024-02-07")

	_, err := s.budgetRepo.Upsert(s.testUser.ID, 2024, time.February, decimal.RequireFromString("400.00"))
	s.Require().NoError(err)

	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, now)
	s.Require().NoError(err)

	s.True(snapshot.TotalIncome.Equal(decimal.RequireFromString("1000.00")), "income %s", snapshot.TotalIncome)
	s.True(snapshot.TotalExpense.Equal(decimal.RequireFromString("450.00")), "expense %s", snapshot.TotalExpense)
	s.True(snapshot.Balance.Equal(decimal.RequireFromString("550.00")), "balance %s", snapshot.Balance)
	s.True(snapshot.ThisMonthExpense.Equal(decimal.RequireFromString("250.00")), "this month %s", snapshot.ThisMonthExpense)
	s.True(snapshot.CurrentBudget.Equal(decimal.RequireFromString("400.00")))
	s.True(snapshot.BudgetRemaining().Equal(decimal.RequireFromString("150.00")))

	// Largest category first
	s.Require().Len(snapshot.CategoryBreakdown, 2)
	s.Equal(models.CategoryFood, snapshot.CategoryBreakdown[0].Category)
	s.True(snapshot.CategoryBreakdown[0].Total.Equal(decimal.RequireFromString("350.00")))
	s.Equal(models.CategoryTransport, snapshot.CategoryBreakdown[1].Category)

	// Trend is oldest first and covers only months with expenses
	s.Require().Len(snapshot.MonthlyTrend, 2)
	s.Equal("2024-01", snapshot.MonthlyTrend[0].Month)
	s.True(snapshot.MonthlyTrend[0].Total.Equal(decimal.RequireFromString("200.00")))
	s.Equal("2024-02", snapshot.MonthlyTrend[1].Month)
	s.True(snapshot.MonthlyTrend[1].Total.Equal(decimal.RequireFromString("250.00")))

	s.Len(snapshot.RecentTransactions, 4)
	s.Equal("2024-02-07", snapshot.RecentTransactions[0].OccurredOn.Format("2006-01-02"))
}

func (s *DashboardServiceSuite) TestComputeDashboard_EmptyLedger() {
	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, time.Now().UTC())
	s.Require().NoError(err)

	s.True(snapshot.TotalIncome.IsZero())
	s.True(snapshot.TotalExpense.IsZero())
	s.True(snapshot.Balance.IsZero())
	s.True(snapshot.ThisMonthExpense.IsZero())
	s.True(snapshot.CurrentBudget.IsZero())
	s.True(snapshot.BudgetRemaining().IsZero())
	s.Empty(snapshot.CategoryBreakdown)
	s.Empty(snapshot.MonthlyTrend)
	s.Empty(snapshot.RecentTransactions)
}

func (s *DashboardServiceSuite) TestComputeDashboard_NoBudgetReadsAsZero() {
	s.record("50.00", false, models.CategoryFood, "2024-02-01")

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, now)
	s.Require().NoError(err)

	s.True(snapshot.CurrentBudget.IsZero())
	s.True(snapshot.BudgetRemaining().IsZero())
}

func (s *DashboardServiceSuite) TestComputeDashboard_BudgetExceeded() {
	s.record("500.00", false, models.CategoryBills, "2024-02-10")

	_, err := s.budgetRepo.Upsert(s.testUser.ID, 2024, time.February, decimal.RequireFromString("300.00"))
	s.Require().NoError(err)

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, now)
	s.Require().NoError(err)

	s.True(snapshot.BudgetRemaining().Equal(decimal.RequireFromString("-200.00")))
}

func (s *DashboardServiceSuite) TestComputeDashboard_BalancePartitionsFlows() {
	s.record("10.50", true, models.CategoryOther, "2024-01-01")
	s.record("20.25", true, models.CategoryOther, "2024-01-02")
	s.record("5.75", false, models.CategoryFood, "2024-01-03")
	s.record("4.00", false, models.CategorySavings, "2024-01-04")

	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.True(snapshot.Balance.Equal(snapshot.TotalIncome.Sub(snapshot.TotalExpense)))
	s.True(snapshot.Balance.Equal(decimal.RequireFromString("21.00")))
}

func (s *DashboardServiceSuite) TestComputeDashboard_TrendKeepsSixMostRecentMonths() {
	months := []string{
		"2023-06", "2023-07", "2023-08", "2023-09",
		"2023-10", "2023-11", "2023-12", "2024-01",
	}
	for _, month := range months {
		s.record("10.00", false, models.CategoryFood, month+"-15")
	}

	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.Require().Len(snapshot.MonthlyTrend, TrendMonths)
	s.Equal("2023-08", snapshot.MonthlyTrend[0].Month)
	s.Equal("2024-01", snapshot.MonthlyTrend[len(snapshot.MonthlyTrend)-1].Month)
}

func (s *DashboardServiceSuite) TestComputeDashboard_RecentCappedAtFive() {
	dates := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
	for _, date := range dates {
		s.record("10.00", false, models.CategoryFood, date)
	}

	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.Require().Len(snapshot.RecentTransactions, RecentTransactionCount)
	s.Equal("2024-01-07", snapshot.RecentTransactions[0].OccurredOn.Format("2006-01-02"))
	s.Equal("2024-01-03", snapshot.RecentTransactions[4].OccurredOn.Format("2006-01-02"))
}

func (s *DashboardServiceSuite) TestComputeDashboard_OtherUsersLedgerIsInvisible() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.Require().NoError(s.transactionRepo.Create(&models.Transaction{
		UserID:     other.ID,
		Amount:     decimal.RequireFromString("999.00"),
		IsIncome:   true,
		Category:   models.CategoryOther,
		OccurredOn: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	snapshot, err := s.service.ComputeDashboard(s.testUser.ID, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.True(snapshot.TotalIncome.IsZero())
	s.Empty(snapshot.RecentTransactions)
}
