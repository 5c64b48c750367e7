package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies the metrics recorder without a registry, so
// handler tests do not touch Prometheus global state.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type TransactionHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *TransactionHandler
	userID  uuid.UUID
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	ledgerService := services.NewLedgerService(transactionRepo, noopMetrics{}, testLogger())
	s.handler = NewTransactionHandler(ledgerService)

	user := database.CreateTestUser(s.T(), s.db, "ledger@example.com")
	s.userID = user.ID
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *TransactionHandlerTestSuite) recordEntry(amount, date string, isIncome bool) dto.TransactionResponse {
	body, err := json.Marshal(dto.CreateTransactionRequest{
		Amount:   amount,
		IsIncome: isIncome,
		Category: "food",
		Date:     date,
	})
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", string(body))
	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"amount":"42.50","isIncome":false,"category":"transport","note":"Train ticket","date":"2024-03-10"}`)

	err := s.handler.CreateTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("42.50", response.Amount)
	s.False(response.IsIncome)
	s.Equal("transport", response.Category)
	s.Equal("Train ticket", response.Note)
	s.Equal("2024-03-10", response.Date)
	s.NotEqual(uuid.UUID{}, response.ID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidAmount() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"amount":"not-a-number","date":"2024-03-10"}`)

	err := s.handler.CreateTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_002")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_UnknownCategory() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"amount":"10.00","category":"crypto","date":"2024-03-10"}`)

	err := s.handler.CreateTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_004")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MissingAuth() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
		strings.NewReader(`{"amount":"10.00","date":"2024-03-10"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.CreateTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	s.recordEntry("100.00", "2024-03-01", true)
	s.recordEntry("25.00", "2024-03-05", false)
	s.recordEntry("10.00", "2024-03-08", false)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", "")

	err := s.handler.ListTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 3)
	s.Equal(int64(3), response.Pagination.Total)
	s.Equal("2024-03-08", response.Transactions[0].Date)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_TypeFilter() {
	s.recordEntry("100.00", "2024-03-01", true)
	s.recordEntry("25.00", "2024-03-05", false)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?type=expense", "")

	err := s.handler.ListTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 1)
	s.Equal("25.00", response.Transactions[0].Amount)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidType() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?type=transfer", "")

	err := s.handler.ListTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?limit=500", "")

	err := s.handler.ListTransactions(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction() {
	created := s.recordEntry("15.00", "2024-03-02", false)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+created.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	err := s.handler.GetTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.ID, response.ID)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := s.handler.GetTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_001")
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	created := s.recordEntry("15.00", "2024-03-02", false)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/"+created.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	err := s.handler.DeleteTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_MalformedID() {
	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := s.handler.DeleteTransaction(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestClearLedger() {
	s.recordEntry("10.00", "2024-03-01", false)
	s.recordEntry("20.00", "2024-03-02", false)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions", "")

	err := s.handler.ClearLedger(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ClearLedgerResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(2), response.Deleted)
}
