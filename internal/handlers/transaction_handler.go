package handlers

import (
	stderrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes the payment log and the expense profile
type TransactionHandler struct {
	txLog         services.TransactionLogServiceInterface
	budgetService services.BudgetLedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txLog services.TransactionLogServiceInterface, budgetService services.BudgetLedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		txLog:         txLog,
		budgetService: budgetService,
	}
}

// ListTransactions returns the owner's payments in sequence order
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.ListTransactionsResponse}
// @Failure 503 {object} errors.ErrorResponse "LEDGER_002 - Store offline"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	log, err := h.txLog.List(c.Request().Context(), ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToListTransactionsResponse(log, h.txLog.PendingCount(ownerID)),
	})
}

// GetSummary returns expenses per category and the balance against income.
// Income is zero until a budget is initialized.
// @Summary Expense summary
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.ExpenseSummaryResponse}
// @Failure 503 {object} errors.ErrorResponse "LEDGER_002 - Store offline"
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	ctx := c.Request().Context()
	income := decimal.Zero
	state, err := h.budgetService.Snapshot(ctx, ownerID)
	switch {
	case err == nil:
		income = state.Snapshot.Income
	case !stderrors.Is(err, services.ErrBudgetNotInitialized):
		return sendServiceError(c, err)
	}

	summary, err := h.txLog.Summary(ctx, ownerID, income)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseSummaryResponse(summary),
	})
}

// FlushTransactions retries payments whose storage write failed
// @Summary Flush pending transactions
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.FlushResponse}
// @Failure 503 {object} errors.ErrorResponse "LEDGER_001 - Entries still pending"
// @Router /transactions/flush [post]
func (h *TransactionHandler) FlushTransactions(c echo.Context) error {
	return flushPending(c, h.txLog)
}

func flushPending(c echo.Context, flusher services.PendingFlusherInterface) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	flushed, err := flusher.Flush(c.Request().Context(), ownerID)
	remaining := flusher.PendingCount(ownerID)
	if err != nil {
		return SendPersistenceError(c, err, remaining)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.FlushResponse{Flushed: flushed, Remaining: remaining},
	})
}
