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

var (
	ErrInvalidTargetFormat   = errors.New("target amount must be a valid decimal number")
	ErrInvalidSavedFormat    = errors.New("saved amount must be a valid decimal number")
	ErrInvalidDeadlineFormat = errors.New("deadline must be formatted YYYY-MM-DD")
)

// GoalService handles savings goal business logic
type GoalService struct {
	goalRepo repositories.GoalRepositoryInterface
	logger   *slog.Logger
}

// NewGoalService creates a new savings goal service
func NewGoalService(
	goalRepo repositories.GoalRepositoryInterface,
	logger *slog.Logger,
) GoalServiceInterface {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// CreateGoal validates the request and stores a new savings goal
func (s *GoalService) CreateGoal(userID uuid.UUID, req *dto.CreateGoalRequest) (*models.SavingsGoal, error) {
	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, ErrInvalidTargetFormat
	}

	saved := decimal.Zero
	if req.SavedAmount != "" {
		saved, err = decimal.NewFromString(req.SavedAmount)
		if err != nil {
			return nil, ErrInvalidSavedFormat
		}
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(dateLayout, req.Deadline)
		if err != nil {
			return nil, ErrInvalidDeadlineFormat
		}
		deadline = &parsed
	}

	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: target,
		SavedAmount:  saved,
		Deadline:     deadline,
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	s.logger.Info("savings goal created",
		"user_id", userID,
		"goal_id", goal.ID,
		"target", goal.TargetAmount.String())

	return goal, nil
}

// GetGoal retrieves one savings goal owned by the user
func (s *GoalService) GetGoal(userID, id uuid.UUID) (*models.SavingsGoal, error) {
	return s.goalRepo.GetByID(userID, id)
}

// ListGoals retrieves all of the user's savings goals
func (s *GoalService) ListGoals(userID uuid.UUID) ([]models.SavingsGoal, error) {
	return s.goalRepo.GetByUserID(userID)
}

// UpdateGoal applies partial changes to an existing goal. Fields left
// nil in the request keep their stored values.
func (s *GoalService) UpdateGoal(userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*models.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}

	if req.TargetAmount != nil {
		target, err := decimal.NewFromString(*req.TargetAmount)
		if err != nil {
			return nil, ErrInvalidTargetFormat
		}
		goal.TargetAmount = target
	}

	if req.SavedAmount != nil {
		saved, err := decimal.NewFromString(*req.SavedAmount)
		if err != nil {
			return nil, ErrInvalidSavedFormat
		}
		goal.SavedAmount = saved
	}

	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			parsed, err := time.Parse(dateLayout, *req.Deadline)
			if err != nil {
				return nil, ErrInvalidDeadlineFormat
			}
			goal.Deadline = &parsed
		}
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	s.logger.Info("savings goal updated",
		"user_id", userID,
		"goal_id", goal.ID)

	return goal, nil
}

// DeleteGoal removes a savings goal owned by the user
func (s *GoalService) DeleteGoal(userID, id uuid.UUID) error {
	if err := s.goalRepo.Delete(userID, id); err != nil {
		return err
	}

	s.logger.Info("savings goal deleted",
		"user_id", userID,
		"goal_id", id)

	return nil
}
