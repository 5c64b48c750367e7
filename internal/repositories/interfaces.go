package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for ledger operations.
// Every method is scoped to an explicit owner; there is no ambient
// "current user". Reads over an empty ledger return empty or zero
// results, never an error.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(userID, id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	Delete(userID, id uuid.UUID) error
	DeleteAllByUserID(userID uuid.UUID) (int64, error)

	// Aggregations for the dashboard projection
	SumAmount(userID uuid.UUID, isIncome bool, since *time.Time) (decimal.Decimal, error)
	SumByCategory(userID uuid.UUID, isIncome bool) ([]models.CategoryTotal, error)
	SumByMonth(userID uuid.UUID, isIncome bool, months int) ([]models.MonthTotal, error)
}

// BudgetRepositoryInterface defines the contract for monthly budget operations
type BudgetRepositoryInterface interface {
	GetForMonth(userID uuid.UUID, year int, month time.Month) (*models.Budget, error)
	Upsert(userID uuid.UUID, year int, month time.Month, limit decimal.Decimal) (*models.Budget, error)
	DeleteForMonth(userID uuid.UUID, year int, month time.Month) error
}

// GoalRepositoryInterface defines the contract for savings goal operations
type GoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(userID, id uuid.UUID) (*models.SavingsGoal, error)
	GetByUserID(userID uuid.UUID) ([]models.SavingsGoal, error)
	Update(goal *models.SavingsGoal) error
	Delete(userID, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFailedLoginAttempts(user *models.User) error
	Delete(id uuid.UUID) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
