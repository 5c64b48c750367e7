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

const dateLayout = "2006-01-02"

var (
	ErrInvalidAmountFormat = errors.New("amount must be a valid decimal number")
	ErrInvalidDateFormat   = errors.New("date must be formatted YYYY-MM-DD")
)

// LedgerService handles ledger business logic
type LedgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &LedgerService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// RecordTransaction validates the request and appends a new entry to
// the user's ledger. The amount is always positive; IsIncome decides
// whether the entry adds to or subtracts from the balance.
func (s *LedgerService) RecordTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}

	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	occurredOn, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	category := req.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !models.IsValidCategory(category) {
		return nil, models.ErrInvalidCategory
	}

	transaction := &models.Transaction{
		UserID:     userID,
		Amount:     amount,
		IsIncome:   req.IsIncome,
		Category:   category,
		Note:       req.Note,
		OccurredOn: occurredOn,
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.metrics.IncrementCounter("ledger.transaction.recorded", map[string]string{
		"category": transaction.Category,
		"flow":     flowLabel(transaction.IsIncome),
	})

	s.logger.Info("transaction recorded",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"amount", transaction.Amount.String(),
		"is_income", transaction.IsIncome,
		"category", transaction.Category)

	return transaction, nil
}

// GetTransaction retrieves one ledger entry owned by the user
func (s *LedgerService) GetTransaction(userID, id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(userID, id)
}

// ListTransactions retrieves the user's ledger entries with filters
func (s *LedgerService) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.Category != "" && !models.IsValidCategory(filters.Category) {
		return nil, 0, models.ErrInvalidCategory
	}
	return s.transactionRepo.GetByUserID(userID, filters)
}

// DeleteTransaction removes one ledger entry owned by the user
func (s *LedgerService) DeleteTransaction(userID, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(userID, id); err != nil {
		return err
	}

	s.metrics.IncrementCounter("ledger.transaction.deleted", nil)

	s.logger.Info("transaction deleted",
		"user_id", userID,
		"transaction_id", id)

	return nil
}

// ClearLedger removes every entry in the user's ledger and reports how
// many were deleted. Clearing an empty ledger is not an error.
func (s *LedgerService) ClearLedger(userID uuid.UUID) (int64, error) {
	deleted, err := s.transactionRepo.DeleteAllByUserID(userID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("ledger cleared",
		"user_id", userID,
		"deleted", deleted)

	return deleted, nil
}

func flowLabel(isIncome bool) string {
	if isIncome {
		return "income"
	}
	return "expense"
}
