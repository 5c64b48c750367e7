package handlers

import (
	"net/http"

	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths = 3
	maxSeedMonths     = 24
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seedService services.SeedServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface) *DevHandler {
	return &DevHandler{
		seedService: seedService,
	}
}

// SeedLedger fills the authenticated user's ledger with realistic demo data
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Number of months of history to generate (default: 3, max: 24)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of ledger entries created
//   - months: Number of months covered
func (h *DevHandler) SeedLedger(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	months := getIntParam(c, "months", defaultSeedMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSeedMonths {
		months = maxSeedMonths
	}

	transactions, err := h.seedService.SeedUserLedger(userID, months)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed ledger")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "demo data generated successfully",
		"transactions_created": len(transactions),
		"months":               months,
	})
}
