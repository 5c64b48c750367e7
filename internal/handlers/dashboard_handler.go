package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the aggregate dashboard endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard computes the aggregate view of the user's ledger
// @Summary Get dashboard
// @Description Compute totals, balance, current budget status, category breakdown, monthly trend, and recent transactions for the authenticated user
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard snapshot"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshot, err := h.dashboardService.ComputeDashboard(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(snapshot))
}

func toDashboardResponse(snapshot *models.DashboardSnapshot) dto.DashboardResponse {
	breakdown := make([]dto.CategoryTotalResponse, 0, len(snapshot.CategoryBreakdown))
	for _, entry := range snapshot.CategoryBreakdown {
		breakdown = append(breakdown, dto.CategoryTotalResponse{
			Category: entry.Category,
			Total:    entry.Total.StringFixed(2),
		})
	}

	trend := make([]dto.MonthTotalResponse, 0, len(snapshot.MonthlyTrend))
	for _, entry := range snapshot.MonthlyTrend {
		trend = append(trend, dto.MonthTotalResponse{
			Month: entry.Month,
			Total: entry.Total.StringFixed(2),
		})
	}

	recent := make([]dto.TransactionResponse, 0, len(snapshot.RecentTransactions))
	for i := range snapshot.RecentTransactions {
		recent = append(recent, toTransactionResponse(&snapshot.RecentTransactions[i]))
	}

	return dto.DashboardResponse{
		TotalIncome:        snapshot.TotalIncome.StringFixed(2),
		TotalExpense:       snapshot.TotalExpense.StringFixed(2),
		Balance:            snapshot.Balance.StringFixed(2),
		ThisMonthExpense:   snapshot.ThisMonthExpense.StringFixed(2),
		CurrentBudget:      snapshot.CurrentBudget.StringFixed(2),
		BudgetRemaining:    snapshot.BudgetRemaining().StringFixed(2),
		CategoryBreakdown:  breakdown,
		MonthlyTrend:       trend,
		RecentTransactions: recent,
	}
}
