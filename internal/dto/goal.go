package dto

import "time"

// CreateGoalRequest creates a new savings goal
type CreateGoalRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	TargetAmount string `json:"targetAmount" validate:"required"`
	SavedAmount  string `json:"savedAmount,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
}

// UpdateGoalRequest updates an existing savings goal. Nil fields are
// left unchanged.
type UpdateGoalRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetAmount *string `json:"targetAmount,omitempty"`
	SavedAmount  *string `json:"savedAmount,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

// GoalResponse represents a savings goal with computed progress
type GoalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TargetAmount string    `json:"targetAmount"`
	SavedAmount  string    `json:"savedAmount"`
	Deadline     string    `json:"deadline,omitempty"`
	Progress     string    `json:"progress"`
	Reached      bool      `json:"reached"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListGoalsResponse represents the response for listing savings goals
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
