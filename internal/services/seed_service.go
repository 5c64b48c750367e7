package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minExpensesPerMonth = 8
	maxExpensesPerMonth = 25
	salaryDayOfMonth    = 1
)

// categoryProfile drives how the seeder spreads spending across the
// closed category set. Weights are relative, not percentages.
type categoryProfile struct {
	category string
	weight   int
	minAmt   float64
	maxAmt   float64
}

// SeedService generates plausible ledger data for development and demo
// environments. It is never wired in production configuration.
type SeedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	profiles        []categoryProfile
	rng             *rand.Rand
}

// NewSeedService creates a new seed service
func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &SeedService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
		profiles:        spendingProfiles(),
		rng:             rand.New(source),
	}
}

func spendingProfiles() []categoryProfile {
	return []categoryProfile{
		{models.CategoryFood, 35, 5, 120},
		{models.CategoryTransport, 20, 2, 80},
		{models.CategoryBills, 15, 20, 300},
		{models.CategoryEntertainment, 15, 5, 90},
		{models.CategorySavings, 5, 50, 500},
		{models.CategoryOther, 10, 3, 150},
	}
}

// SeedUserLedger fills the user's ledger with `months` months of
// history ending in the current month: one salary deposit per month
// plus a random spread of expenses. Returns the created entries.
func (s *SeedService) SeedUserLedger(userID uuid.UUID, months int) ([]*models.Transaction, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now().UTC()
	created := make([]*models.Transaction, 0, months*maxExpensesPerMonth)

	for offset := months - 1; offset >= 0; offset-- {
		monthStart := models.MonthStart(now).AddDate(0, -offset, 0)

		salary := s.generateSalary(userID, monthStart)
		if err := s.transactionRepo.Create(salary); err != nil {
			return created, fmt.Errorf("failed to seed salary for %s: %w", salary.MonthKey(), err)
		}
		created = append(created, salary)

		count := minExpensesPerMonth + s.rng.Intn(maxExpensesPerMonth-minExpensesPerMonth+1)
		for i := 0; i < count; i++ {
			day := s.dayWithinMonth(monthStart, now)
			entry := s.GenerateTransaction(userID, day)
			if err := s.transactionRepo.Create(entry); err != nil {
				return created, fmt.Errorf("failed to seed transaction: %w", err)
			}
			created = append(created, entry)
			s.metrics.IncrementCounter("seed.transaction.generated", nil)
		}
	}

	s.logger.Info("ledger seeded",
		"user_id", userID,
		"months", months,
		"entries", len(created))

	return created, nil
}

// GenerateTransaction produces a single random expense entry dated on
// the given day. The entry is not persisted.
func (s *SeedService) GenerateTransaction(userID uuid.UUID, occurredOn time.Time) *models.Transaction {
	profile := s.pickProfile()
	amount := decimal.NewFromFloat(gofakeit.Price(profile.minAmt, profile.maxAmt))

	return &models.Transaction{
		UserID:     userID,
		Amount:     amount,
		IsIncome:   false,
		Category:   profile.category,
		Note:       s.noteFor(profile.category),
		OccurredOn: occurredOn,
	}
}

func (s *SeedService) generateSalary(userID uuid.UUID, monthStart time.Time) *models.Transaction {
	amount := decimal.NewFromFloat(gofakeit.Price(2800, 4200))
	return &models.Transaction{
		UserID:     userID,
		Amount:     amount,
		IsIncome:   true,
		Category:   models.CategoryOther,
		Note:       fmt.Sprintf("Salary %s", gofakeit.Company()),
		OccurredOn: monthStart.AddDate(0, 0, salaryDayOfMonth-1),
	}
}

// pickProfile does a weighted draw over the spending profiles.
func (s *SeedService) pickProfile() categoryProfile {
	total := 0
	for _, p := range s.profiles {
		total += p.weight
	}

	draw := s.rng.Intn(total)
	for _, p := range s.profiles {
		if draw < p.weight {
			return p
		}
		draw -= p.weight
	}
	return s.profiles[len(s.profiles)-1]
}

// dayWithinMonth picks a random day of the month, clamped to today for
// the current month so no seeded entry lands in the future.
func (s *SeedService) dayWithinMonth(monthStart, now time.Time) time.Time {
	lastDay := monthStart.AddDate(0, 1, -1).Day()
	if monthStart.Year() == now.Year() && monthStart.Month() == now.Month() {
		lastDay = now.Day()
	}
	return monthStart.AddDate(0, 0, s.rng.Intn(lastDay))
}

func (s *SeedService) noteFor(category string) string {
	switch category {
	case models.CategoryFood:
		return gofakeit.Dinner()
	case models.CategoryTransport:
		return fmt.Sprintf("%s ride", gofakeit.CarMaker())
	case models.CategoryBills:
		return fmt.Sprintf("%s bill", gofakeit.Company())
	case models.CategoryEntertainment:
		return gofakeit.MovieName()
	case models.CategorySavings:
		return "Transfer to savings"
	default:
		return gofakeit.ProductName()
	}
}
