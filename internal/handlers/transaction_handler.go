package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	filterDateLayout = "2006-01-02"
)

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new ledger handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// CreateTransaction records a new ledger entry
// @Summary Record a transaction
// @Description Append an income or expense entry to the authenticated user's ledger
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002..005 - Invalid transaction data"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.ledgerService.RecordTransaction(userID, &req)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// ListTransactions retrieves the user's ledger with filters and pagination
// @Summary List transactions
// @Description Retrieve the authenticated user's ledger entries, newest occurrence first
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by flow direction" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Ledger entries with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.ledgerService.ListTransactions(userID, filters)
	if err != nil {
		if err == models.ErrInvalidCategory {
			return SendError(c, errors.TransactionInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		Pagination: dto.PaginationInfo{
			Offset: filters.Offset,
			Limit:  filters.Limit,
			Total:  total,
		},
	})
}

// GetTransaction retrieves a single ledger entry
// @Summary Get a transaction
// @Description Retrieve one ledger entry owned by the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Ledger entry"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.ledgerService.GetTransaction(userID, id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction removes a single ledger entry
// @Summary Delete a transaction
// @Description Remove one ledger entry owned by the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.ledgerService.DeleteTransaction(userID, id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted",
	})
}

// ClearLedger removes every entry in the user's ledger
// @Summary Clear the ledger
// @Description Remove all ledger entries owned by the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ClearLedgerResponse "Number of entries removed"
// @Router /transactions [delete]
func (h *TransactionHandler) ClearLedger(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	deleted, err := h.ledgerService.ClearLedger(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ClearLedgerResponse{Deleted: deleted})
}

// parseTransactionFilters builds repository filters from query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Category: c.QueryParam("category"),
		Offset:   getIntParam(c, "offset", 0),
		Limit:    getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Offset < 0 {
		return filters, fmt.Errorf("offset must not be negative")
	}
	if filters.Limit < 1 || filters.Limit > maxPageLimit {
		return filters, fmt.Errorf("limit must be between 1 and %d", maxPageLimit)
	}

	switch flow := c.QueryParam("type"); flow {
	case "":
	case "income":
		isIncome := true
		filters.IsIncome = &isIncome
	case "expense":
		isIncome := false
		filters.IsIncome = &isIncome
	default:
		return filters, fmt.Errorf("type must be income or expense")
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		startDate, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return filters, fmt.Errorf("startDate must be formatted YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if raw := c.QueryParam("endDate"); raw != "" {
		endDate, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return filters, fmt.Errorf("endDate must be formatted YYYY-MM-DD")
		}
		filters.EndDate = &endDate
	}

	return filters, nil
}

// sendLedgerError maps ledger service errors to API error codes
func sendLedgerError(c echo.Context, err error) error {
	switch err {
	case services.ErrInvalidAmountFormat, models.ErrInvalidAmount:
		return SendError(c, errors.TransactionInvalidAmount)
	case services.ErrInvalidDateFormat, models.ErrMissingDate:
		return SendError(c, errors.TransactionInvalidDate)
	case models.ErrInvalidCategory:
		return SendError(c, errors.TransactionInvalidCategory)
	case models.ErrNoteTooLong:
		return SendError(c, errors.TransactionNoteTooLong)
	default:
		return SendSystemError(c, err)
	}
}

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         transaction.ID,
		Amount:     transaction.Amount.StringFixed(2),
		IsIncome:   transaction.IsIncome,
		Category:   transaction.Category,
		Note:       transaction.Note,
		Date:       transaction.OccurredOn.Format(filterDateLayout),
		RecordedAt: transaction.RecordedAt,
	}
}
