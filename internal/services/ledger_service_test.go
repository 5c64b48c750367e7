package services

import (
	"strings"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceSuite defines the test suite for LedgerService
type LedgerServiceSuite struct {
	suite.Suite
	db       *database.DB
	service  LedgerServiceInterface
	testUser *models.User
}

// SetupTest runs before each test
func (s *LedgerServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewTransactionRepository(s.db.DB)
	s.service = NewLedgerService(repo, noopMetrics{}, testLogger())
	s.testUser = database.CreateTestUser(s.T(), s.db, "ledger@example.com")
}

// TearDownTest runs after each test
func (s *LedgerServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLedgerServiceSuite runs the test suite
func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) TestRecordTransaction() {
	transaction, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount:   "125.50",
		IsIncome: false,
		Category: models.CategoryFood,
		Note:     "Groceries",
		Date:     "2024-03-10",
	})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.True(transaction.Amount.Equal(decimal.RequireFromString("125.50")))
	s.False(transaction.IsIncome)
	s.Equal("2024-03-10", transaction.OccurredOn.Format("2006-01-02"))
	s.NotZero(transaction.RecordedAt)
}

func (s *LedgerServiceSuite) TestRecordTransaction_EmptyCategoryDefaultsToOther() {
	transaction, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "10.00",
		Date:   "2024-03-10",
	})

	s.Require().NoError(err)
	s.Equal(models.CategoryOther, transaction.Category)
}

func (s *LedgerServiceSuite) TestRecordTransaction_MalformedAmount() {
	_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "not-a-number",
		Date:   "2024-03-10",
	})
	s.ErrorIs(err, ErrInvalidAmountFormat)
}

func (s *LedgerServiceSuite) TestRecordTransaction_NonPositiveAmount() {
	for _, amount := range []string{"0", "-5.00"} {
		_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
			Amount: amount,
			Date:   "2024-03-10",
		})
		s.ErrorIs(err, models.ErrInvalidAmount, "amount %s", amount)
	}
}

func (s *LedgerServiceSuite) TestRecordTransaction_MalformedDate() {
	_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "10.00",
		Date:   "10/03/2024",
	})
	s.ErrorIs(err, ErrInvalidDateFormat)
}

func (s *LedgerServiceSuite) TestRecordTransaction_UnknownCategory() {
	_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount:   "10.00",
		Category: "crypto",
		Date:     "2024-03-10",
	})
	s.ErrorIs(err, models.ErrInvalidCategory)
}

func (s *LedgerServiceSuite) TestRecordTransaction_NoteTooLong() {
	_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "10.00",
		Note:   strings.Repeat("x", models.MaxNoteLength+1),
		Date:   "2024-03-10",
	})
	s.ErrorIs(err, models.ErrNoteTooLong)
}

func (s *LedgerServiceSuite) TestListTransactions() {
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
			Amount:   "10.00",
			Category: models.CategoryFood,
			Date:     date,
		})
		s.Require().NoError(err)
	}

	entries, total, err := s.service.ListTransactions(s.testUser.ID, models.TransactionFilters{Limit: 2})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(entries, 2)
	s.Equal("2024-01-03", entries[0].OccurredOn.Format("2006-01-02"))
}

func (s *LedgerServiceSuite) TestListTransactions_InvalidFilterCategory() {
	_, _, err := s.service.ListTransactions(s.testUser.ID, models.TransactionFilters{
		Category: "crypto",
		Limit:    10,
	})
	s.ErrorIs(err, models.ErrInvalidCategory)
}

func (s *LedgerServiceSuite) TestDeleteTransaction() {
	transaction, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "10.00",
		Date:   "2024-01-01",
	})
	s.Require().NoError(err)

	s.NoError(s.service.DeleteTransaction(s.testUser.ID, transaction.ID))
	s.ErrorIs(s.service.DeleteTransaction(s.testUser.ID, transaction.ID), repositories.ErrTransactionNotFound)
}

func (s *LedgerServiceSuite) TestClearLedger() {
	for i := 0; i < 3; i++ {
		_, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
			Amount: "10.00",
			Date:   "2024-01-01",
		})
		s.Require().NoError(err)
	}

	deleted, err := s.service.ClearLedger(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(3), deleted)

	// Clearing again is not an error
	deleted, err = s.service.ClearLedger(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *LedgerServiceSuite) TestGetTransaction_Ownership() {
	transaction, err := s.service.RecordTransaction(s.testUser.ID, &dto.CreateTransactionRequest{
		Amount: "10.00",
		Date:   "2024-01-01",
	})
	s.Require().NoError(err)

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	_, err = s.service.GetTransaction(other.ID, transaction.ID)
	s.ErrorIs(err, repositories.ErrTransactionNotFound)

	found, err := s.service.GetTransaction(s.testUser.ID, transaction.ID)
	s.NoError(err)
	s.Equal(transaction.ID, found.ID)
}
