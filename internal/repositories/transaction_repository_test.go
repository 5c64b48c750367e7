package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for transactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "ledger@example.com")
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) createEntry(amount string, isIncome bool, category, date string) *models.Transaction {
	s.T().Helper()

	occurredOn, err := time.Parse("2006-01-02", date)
	s.Require().NoError(err)

	entry := &models.Transaction{
		UserID:     s.testUser.ID,
		Amount:     decimal.RequireFromString(amount),
		IsIncome:   isIncome,
		Category:   category,
		OccurredOn: occurredOn,
	}
	s.Require().NoError(s.repo.Create(entry))
	return entry
}

func (s *TransactionRepositorySuite) TestCreate() {
	entry := s.createEntry("125.50", false, models.CategoryFood, "2024-03-10")

	s.NotEqual(uuid.Nil, entry.ID)
	s.NotZero(entry.RecordedAt)
}

func (s *TransactionRepositorySuite) TestCreate_DefaultsCategory() {
	occurredOn, _ := time.Parse("2006-01-02", "2024-03-10")
	entry := &models.Transaction{
		UserID:     s.testUser.ID,
		Amount:     decimal.RequireFromString("10.00"),
		OccurredOn: occurredOn,
	}

	s.NoError(s.repo.Create(entry))
	s.Equal(models.CategoryOther, entry.Category)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsNonPositiveAmount() {
	occurredOn, _ := time.Parse("2006-01-02", "2024-03-10")
	entry := &models.Transaction{
		UserID:     s.testUser.ID,
		Amount:     decimal.Zero,
		Category:   models.CategoryFood,
		OccurredOn: occurredOn,
	}

	err := s.repo.Create(entry)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	entry := s.createEntry("42.00", false, models.CategoryTransport, "2024-02-01")

	found, err := s.repo.GetByID(s.testUser.ID, entry.ID)
	s.NoError(err)
	s.Equal(entry.ID, found.ID)
	s.True(found.Amount.Equal(decimal.RequireFromString("42.00")))

	_, err = s.repo.GetByID(s.testUser.ID, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByID_OtherUsersEntryIsNotFound() {
	entry := s.createEntry("42.00", false, models.CategoryTransport, "2024-02-01")

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	_, err := s.repo.GetByID(other.ID, entry.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByUserID_Filters() {
	s.createEntry("1000.00", true, models.CategoryOther, "2024-01-05")
	s.createEntry("50.00", false, models.CategoryFood, "2024-01-10")
	s.createEntry("30.00", false, models.CategoryFood, "2024-02-10")
	s.createEntry("20.00", false, models.CategoryBills, "2024-02-15")

	expenses := false
	entries, total, err := s.repo.GetByUserID(s.testUser.ID, models.TransactionFilters{
		IsIncome: &expenses,
		Limit:    10,
	})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(entries, 3)

	entries, total, err = s.repo.GetByUserID(s.testUser.ID, models.TransactionFilters{
		Category: models.CategoryFood,
		Limit:    10,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(entries, 2)

	start, _ := time.Parse("2006-01-02", "2024-02-01")
	entries, total, err = s.repo.GetByUserID(s.testUser.ID, models.TransactionFilters{
		StartDate: &start,
		Limit:     10,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(entries, 2)
}

func (s *TransactionRepositorySuite) TestGetByUserID_Pagination() {
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"} {
		s.createEntry("10.00", false, models.CategoryFood, date)
	}

	page, total, err := s.repo.GetByUserID(s.testUser.ID, models.TransactionFilters{
		Offset: 1,
		Limit:  2,
	})
	s.NoError(err)
	s.Equal(int64(4), total)
	s.Len(page, 2)
	s.Equal("2024-01-03", page[0].OccurredOn.Format("2006-01-02"))
	s.Equal("2024-01-02", page[1].OccurredOn.Format("2006-01-02"))
}

func (s *TransactionRepositorySuite) TestGetRecentByUserID_Ordering() {
	s.createEntry("10.00", false, models.CategoryFood, "2024-01-01")
	s.createEntry("20.00", false, models.CategoryFood, "2024-03-01")
	s.createEntry("30.00", false, models.CategoryFood, "2024-02-01")

	recent, err := s.repo.GetRecentByUserID(s.testUser.ID, 2)
	s.NoError(err)
	s.Len(recent, 2)
	s.Equal("2024-03-01", recent[0].OccurredOn.Format("2006-01-02"))
	s.Equal("2024-02-01", recent[1].OccurredOn.Format("2006-01-02"))
}

func (s *TransactionRepositorySuite) TestGetRecentByUserID_EmptyLedger() {
	recent, err := s.repo.GetRecentByUserID(s.testUser.ID, 5)
	s.NoError(err)
	s.Empty(recent)
}

func (s *TransactionRepositorySuite) TestDelete() {
	entry := s.createEntry("15.00", false, models.CategoryOther, "2024-01-01")

	s.NoError(s.repo.Delete(s.testUser.ID, entry.ID))

	_, err := s.repo.GetByID(s.testUser.ID, entry.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_OtherUsersEntryIsNotFound() {
	entry := s.createEntry("15.00", false, models.CategoryOther, "2024-01-01")

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	err := s.repo.Delete(other.ID, entry.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	// The entry survives for its owner
	_, err = s.repo.GetByID(s.testUser.ID, entry.ID)
	s.NoError(err)
}

func (s *TransactionRepositorySuite) TestDeleteAllByUserID() {
	s.createEntry("10.00", false, models.CategoryFood, "2024-01-01")
	s.createEntry("20.00", true, models.CategoryOther, "2024-01-02")

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	otherEntry := &models.Transaction{
		UserID:     other.ID,
		Amount:     decimal.RequireFromString("99.00"),
		Category:   models.CategoryFood,
		OccurredOn: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Create(otherEntry))

	deleted, err := s.repo.DeleteAllByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(2), deleted)

	// Other users' ledgers are untouched
	_, err = s.repo.GetByID(other.ID, otherEntry.ID)
	s.NoError(err)
}

func (s *TransactionRepositorySuite) TestDeleteAllByUserID_EmptyLedger() {
	deleted, err := s.repo.DeleteAllByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *TransactionRepositorySuite) TestSumAmount() {
	s.createEntry("1000.00", true, models.CategoryOther, "2024-01-05")
	s.createEntry("200.50", true, models.CategoryOther, "2024-02-05")
	s.createEntry("50.25", false, models.CategoryFood, "2024-01-10")
	s.createEntry("30.00", false, models.CategoryBills, "2024-02-10")

	income, err := s.repo.SumAmount(s.testUser.ID, true, nil)
	s.NoError(err)
	s.True(income.Equal(decimal.RequireFromString("1200.50")), "got %s", income)

	expense, err := s.repo.SumAmount(s.testUser.ID, false, nil)
	s.NoError(err)
	s.True(expense.Equal(decimal.RequireFromString("80.25")), "got %s", expense)

	since := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	recent, err := s.repo.SumAmount(s.testUser.ID, false, &since)
	s.NoError(err)
	s.True(recent.Equal(decimal.RequireFromString("30.00")), "got %s", recent)
}

func (s *TransactionRepositorySuite) TestSumAmount_EmptyLedgerIsZero() {
	total, err := s.repo.SumAmount(s.testUser.ID, false, nil)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *TransactionRepositorySuite) TestSumByCategory_OrderedByTotalDescending() {
	s.createEntry("10.00", false, models.CategoryBills, "2024-01-01")
	s.createEntry("40.00", false, models.CategoryFood, "2024-01-02")
	s.createEntry("25.00", false, models.CategoryFood, "2024-01-03")
	s.createEntry("30.00", false, models.CategoryTransport, "2024-01-04")
	s.createEntry("500.00", true, models.CategoryOther, "2024-01-05")

	totals, err := s.repo.SumByCategory(s.testUser.ID, false)
	s.NoError(err)
	s.Require().Len(totals, 3)

	s.Equal(models.CategoryFood, totals[0].Category)
	s.True(totals[0].Total.Equal(decimal.RequireFromString("65.00")))
	s.Equal(models.CategoryTransport, totals[1].Category)
	s.Equal(models.CategoryBills, totals[2].Category)
}

func (s *TransactionRepositorySuite) TestSumByCategory_EqualTotalsBreakOnDeclarationOrder() {
	s.createEntry("20.00", false, models.CategoryBills, "2024-01-01")
	s.createEntry("20.00", false, models.CategoryTransport, "2024-01-02")

	totals, err := s.repo.SumByCategory(s.testUser.ID, false)
	s.NoError(err)
	s.Require().Len(totals, 2)

	// transport is declared before bills
	s.Equal(models.CategoryTransport, totals[0].Category)
	s.Equal(models.CategoryBills, totals[1].Category)
}

func (s *TransactionRepositorySuite) TestSumByMonth_WindowAndOrdering() {
	dates := []string{
		"2023-08-15", "2023-09-15", "2023-10-15", "2023-11-15",
		"2023-12-15", "2024-01-15", "2024-02-15", "2024-02-20",
	}
	for _, date := range dates {
		s.createEntry("10.00", false, models.CategoryFood, date)
	}

	totals, err := s.repo.SumByMonth(s.testUser.ID, false, 6)
	s.NoError(err)
	s.Require().Len(totals, 6)

	// Oldest of the kept window first, 2023-08 dropped
	s.Equal("2023-09", totals[0].Month)
	s.Equal("2024-02", totals[5].Month)
	s.True(totals[5].Total.Equal(decimal.RequireFromString("20.00")))
}

func (s *TransactionRepositorySuite) TestSumByMonth_GapsAreAbsentNotZero() {
	s.createEntry("10.00", false, models.CategoryFood, "2024-01-15")
	s.createEntry("10.00", false, models.CategoryFood, "2024-03-15")

	totals, err := s.repo.SumByMonth(s.testUser.ID, false, 6)
	s.NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("2024-01", totals[0].Month)
	s.Equal("2024-03", totals[1].Month)
}
