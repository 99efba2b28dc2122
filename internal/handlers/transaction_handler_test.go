package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	txLog     *service_mocks.MockTransactionLogServiceInterface
	budgetSvc *service_mocks.MockBudgetLedgerServiceInterface
	handler   *TransactionHandler
	echo      *echo.Echo
	ownerID   string
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txLog = service_mocks.NewMockTransactionLogServiceInterface(s.ctrl)
	s.budgetSvc = service_mocks.NewMockBudgetLedgerServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.txLog, s.budgetSvc)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ownerID = gofakeit.Username()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) TestListTransactions_InSequenceOrder() {
	log := []models.Transaction{
		*models.NewTransaction(s.ownerID, models.CategoryFood, decimal.NewFromInt(500), 1),
		*models.NewTransaction(s.ownerID, models.CategoryHousing, decimal.RequireFromString("1200.5"), 2),
	}
	s.txLog.EXPECT().List(gomock.Any(), s.ownerID).Return(log, nil)
	s.txLog.EXPECT().PendingCount(s.ownerID).Return(0)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/transactions", nil, s.ownerID)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data dto.ListTransactionsResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Data.Transactions, 2)
	s.Equal(int64(1), resp.Data.Transactions[0].Sequence)
	s.Equal("1200.50", resp.Data.Transactions[1].AmountPaid)
	s.Equal(0, resp.Data.Pending)
}

func (s *TransactionHandlerSuite) TestListTransactions_StoreOffline() {
	s.txLog.EXPECT().List(gomock.Any(), s.ownerID).
		Return(nil, fmt.Errorf("failed to load transactions: %w", repositories.ErrPersistenceUnavailable))

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/transactions", nil, s.ownerID)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("LEDGER_002", decodeError(rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestGetSummary_UsesBudgetIncome() {
	snapshot, err := models.NewBudgetSnapshot(decimal.NewFromInt(5000), models.DefaultCategories())
	s.Require().NoError(err)
	s.budgetSvc.EXPECT().Snapshot(gomock.Any(), s.ownerID).
		Return(&models.BudgetState{OwnerID: s.ownerID, Snapshot: snapshot}, nil)
	s.txLog.EXPECT().Summary(gomock.Any(), s.ownerID, decimal.NewFromInt(5000)).
		Return(&models.ExpenseSummary{
			Categories: []models.CategorySummary{{
				Category:         models.CategoryFood,
				TransactionCount: 2,
				TotalAmount:      decimal.NewFromInt(600),
				AverageAmount:    decimal.NewFromInt(300),
				Share:            decimal.NewFromInt(100),
			}},
			TotalExpenses:    decimal.NewFromInt(600),
			TransactionCount: 2,
			Income:           decimal.NewFromInt(5000),
			Balance:          decimal.NewFromInt(4400),
		}, nil)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/transactions/summary", nil, s.ownerID)

	s.NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data dto.ExpenseSummaryResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("4400.00", resp.Data.Balance)
	s.Equal("600.00", resp.Data.TotalExpenses)
	s.Equal("100.00", resp.Data.Categories[0].Share)
}

func (s *TransactionHandlerSuite) TestGetSummary_WithoutBudgetUsesZeroIncome() {
	s.budgetSvc.EXPECT().Snapshot(gomock.Any(), s.ownerID).Return(nil, services.ErrBudgetNotInitialized)
	s.txLog.EXPECT().Summary(gomock.Any(), s.ownerID, decimal.Zero).
		Return(&models.ExpenseSummary{}, nil)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/transactions/summary", nil, s.ownerID)

	s.NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestFlushTransactions_Success() {
	s.txLog.EXPECT().Flush(gomock.Any(), s.ownerID).Return(2, nil)
	s.txLog.EXPECT().PendingCount(s.ownerID).Return(0)

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/transactions/flush", nil, s.ownerID)

	s.NoError(s.handler.FlushTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data dto.FlushResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(dto.FlushResponse{Flushed: 2, Remaining: 0}, resp.Data)
}

func (s *TransactionHandlerSuite) TestFlushTransactions_StillPending() {
	s.txLog.EXPECT().Flush(gomock.Any(), s.ownerID).
		Return(0, fmt.Errorf("%w: connection refused", repositories.ErrPersistenceUnavailable))
	s.txLog.EXPECT().PendingCount(s.ownerID).Return(3)

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/transactions/flush", nil, s.ownerID)

	s.NoError(s.handler.FlushTransactions(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	errResp := decodeError(rec)
	s.Equal("LEDGER_001", errResp.Error.Code)
	s.Equal([]string{"pending_entries: 3"}, errResp.Error.Details)
}

func (s *TransactionHandlerSuite) TestListTransactions_MissingOwner() {
	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/transactions", nil, "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
