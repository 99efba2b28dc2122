package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget allocation and spending requests
type BudgetHandler struct {
	budgetService services.BudgetLedgerServiceInterface
	txLog         services.TransactionLogServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetLedgerServiceInterface, txLog services.TransactionLogServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		txLog:         txLog,
	}
}

// InitializeBudget allocates income across categories. An owner that already
// has a budget gets it back unchanged with 200.
// @Summary Initialize budget
// @Tags Budget
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Param request body dto.InitializeBudgetRequest true "Income and optional categories"
// @Success 201 {object} SuccessResponse{data=dto.BudgetResponse}
// @Success 200 {object} SuccessResponse{data=dto.BudgetResponse} "Budget already allocated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, BUDGET_002 or BUDGET_003"
// @Failure 503 {object} errors.ErrorResponse "LEDGER_002 - Store offline"
// @Router /budget [post]
func (h *BudgetHandler) InitializeBudget(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.InitializeBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	state, err := h.budgetService.Initialize(c.Request().Context(), ownerID, req.Income, req.ToCategories())
	if err != nil {
		return sendServiceError(c, err)
	}

	status := http.StatusOK
	if state.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, SuccessResponse{
		Data: dto.ToBudgetStateResponse(state),
	})
}

// GetBudget returns the current snapshot
// @Summary Get budget
// @Tags Budget
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.BudgetResponse}
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not initialized"
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	state, err := h.budgetService.Snapshot(c.Request().Context(), ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToBudgetStateResponse(state),
	})
}

// Spend pays an amount out of a category. Rejected outcomes are not errors:
// they are returned with the unchanged snapshot.
// @Summary Spend from a category
// @Tags Budget
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Param request body dto.SpendRequest true "Category and amount"
// @Success 200 {object} SuccessResponse{data=dto.SpendResponse}
// @Success 202 {object} SuccessResponse{data=dto.SpendResponse} "Paid, transaction pending storage"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not initialized"
// @Router /budget/payments [post]
func (h *BudgetHandler) Spend(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.SpendRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	result, err := h.budgetService.Spend(c.Request().Context(), ownerID, req.Category, req.Amount)
	if result == nil {
		return sendServiceError(c, err)
	}

	resp := dto.ToSpendResponse(ownerID, result)
	if err != nil {
		return SendAcceptedUnpersisted(c, resp, err, h.txLog.PendingCount(ownerID))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}

// SaveBudget writes the in-memory snapshot to the store
// @Summary Save budget
// @Tags Budget
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.BudgetResponse}
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not initialized"
// @Failure 503 {object} errors.ErrorResponse "LEDGER_002 - Store offline"
// @Router /budget/save [post]
func (h *BudgetHandler) SaveBudget(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	state, err := h.budgetService.Reconcile(c.Request().Context(), ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ToBudgetStateResponse(state),
		Message: "Budget saved",
	})
}
