package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface defines ledger business operations. Every
// operation takes an explicit user ID; there is no ambient current user.
type LedgerServiceInterface interface {
	RecordTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(userID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	DeleteTransaction(userID, id uuid.UUID) error
	ClearLedger(userID uuid.UUID) (int64, error)
}

// BudgetServiceInterface defines monthly budget business operations
type BudgetServiceInterface interface {
	GetBudget(userID uuid.UUID, year int, month time.Month) (*models.Budget, error)
	SetBudget(userID uuid.UUID, req *dto.SetBudgetRequest) (*models.Budget, error)
	RemoveBudget(userID uuid.UUID, year int, month time.Month) error
}

// GoalServiceInterface defines savings goal business operations
type GoalServiceInterface interface {
	CreateGoal(userID uuid.UUID, req *dto.CreateGoalRequest) (*models.SavingsGoal, error)
	GetGoal(userID, id uuid.UUID) (*models.SavingsGoal, error)
	ListGoals(userID uuid.UUID) ([]models.SavingsGoal, error)
	UpdateGoal(userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*models.SavingsGoal, error)
	DeleteGoal(userID, id uuid.UUID) error
}

// DashboardServiceInterface computes the aggregate ledger view. The
// reference instant decides which month counts as "this month".
type DashboardServiceInterface interface {
	ComputeDashboard(userID uuid.UUID, now time.Time) (*models.DashboardSnapshot, error)
}

// SeedServiceInterface generates realistic demo data for development
type SeedServiceInterface interface {
	SeedUserLedger(userID uuid.UUID, months int) ([]*models.Transaction, error)
	GenerateTransaction(userID uuid.UUID, occurredOn time.Time) *models.Transaction
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
