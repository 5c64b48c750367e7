package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new savings goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal creates a new savings goal
// @Summary Create a savings goal
// @Description Create a named saving target for the authenticated user
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse "Goal created"
// @Failure 400 {object} errors.ErrorResponse "GOAL_002..004 - Invalid goal data"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(userID, &req)
	if err != nil {
		return sendGoalError(c, err)
	}

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// ListGoals retrieves all of the user's savings goals
// @Summary List savings goals
// @Description Retrieve the authenticated user's savings goals, newest first
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse "Savings goals"
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.ListGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, toGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: responses})
}

// GetGoal retrieves a single savings goal
// @Summary Get a savings goal
// @Description Retrieve one savings goal owned by the authenticated user
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.GoalResponse "Savings goal"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(userID, id)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// UpdateGoal applies partial changes to a savings goal
// @Summary Update a savings goal
// @Description Update name, amounts, or deadline of a goal; omitted fields are left unchanged
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} dto.GoalResponse "Updated goal"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.UpdateGoal(userID, id, &req)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return sendGoalError(c, err)
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal removes a savings goal
// @Summary Delete a savings goal
// @Description Remove one savings goal owned by the authenticated user
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse "Goal deleted"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(userID, id); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Goal deleted",
	})
}

// sendGoalError maps goal service errors to API error codes
func sendGoalError(c echo.Context, err error) error {
	switch err {
	case services.ErrInvalidTargetFormat, models.ErrInvalidTargetAmount:
		return SendError(c, errors.GoalInvalidTarget)
	case services.ErrInvalidSavedFormat, models.ErrNegativeSavedAmount:
		return SendError(c, errors.GoalInvalidSaved)
	case services.ErrInvalidDeadlineFormat:
		return SendError(c, errors.ValidationInvalidDate)
	case models.ErrMissingGoalName:
		return SendError(c, errors.GoalMissingName)
	default:
		return SendSystemError(c, err)
	}
}

func toGoalResponse(goal *models.SavingsGoal) dto.GoalResponse {
	response := dto.GoalResponse{
		ID:           goal.ID.String(),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount.StringFixed(2),
		SavedAmount:  goal.SavedAmount.StringFixed(2),
		Progress:     goal.Progress().StringFixed(4),
		Reached:      goal.IsReached(),
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}

	if goal.Deadline != nil {
		response.Deadline = goal.Deadline.Format(filterDateLayout)
	}

	return response
}
