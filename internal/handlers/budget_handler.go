package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

const budgetMonthLayout = "2006-01"

// BudgetHandler handles monthly budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetBudget retrieves the budget for a calendar month
// @Summary Get monthly budget
// @Description Retrieve the authenticated user's budget for the current month, or for ?year=&month=
// @Tags Budget
// @Security BearerAuth
// @Produce json
// @Param year query int false "Calendar year" default(current)
// @Param month query int false "Calendar month (1-12)" default(current)
// @Success 200 {object} dto.BudgetResponse "Monthly budget"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget set for this month"
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year, month, ok := budgetMonthParams(c)
	if !ok {
		return SendError(c, errors.BudgetInvalidMonth)
	}

	budget, err := h.budgetService.GetBudget(userID, year, month)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// SetBudget creates or overwrites the budget for a calendar month
// @Summary Set monthly budget
// @Description Set the authenticated user's spending limit for a month; setting the same month twice overwrites the limit
// @Tags Budget
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetBudgetRequest true "Budget limit and month"
// @Success 200 {object} dto.BudgetResponse "Monthly budget"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 or BUDGET_003 - Invalid limit or month"
// @Router /budget [put]
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.SetBudget(userID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidLimitFormat, models.ErrNegativeBudgetLimit:
			return SendError(c, errors.BudgetInvalidLimit)
		case services.ErrInvalidMonthFormat:
			return SendError(c, errors.BudgetInvalidMonth)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// RemoveBudget deletes the budget for a calendar month
// @Summary Remove monthly budget
// @Description Delete the authenticated user's budget for the current month, or for ?year=&month=
// @Tags Budget
// @Security BearerAuth
// @Produce json
// @Param year query int false "Calendar year" default(current)
// @Param month query int false "Calendar month (1-12)" default(current)
// @Success 200 {object} SuccessResponse "Budget removed"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget set for this month"
// @Router /budget [delete]
func (h *BudgetHandler) RemoveBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year, month, ok := budgetMonthParams(c)
	if !ok {
		return SendError(c, errors.BudgetInvalidMonth)
	}

	if err := h.budgetService.RemoveBudget(userID, year, month); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget removed",
	})
}

// budgetMonthParams resolves ?year=&month= query overrides, defaulting to
// the current calendar month
func budgetMonthParams(c echo.Context) (int, time.Month, bool) {
	now := time.Now().UTC()

	year := getIntParam(c, "year", now.Year())
	month := getIntParam(c, "month", int(now.Month()))

	if year < 1 || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, time.Month(month), true
}

func toBudgetResponse(budget *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:    budget.ID.String(),
		Limit: budget.LimitAmount.StringFixed(2),
		Month: budget.Month.Format(budgetMonthLayout),
	}
}
