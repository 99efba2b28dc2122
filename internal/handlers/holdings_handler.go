package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// HoldingsHandler handles simulated stock purchases
type HoldingsHandler struct {
	holdings services.HoldingsLedgerServiceInterface
}

// NewHoldingsHandler creates a new holdings handler
func NewHoldingsHandler(holdings services.HoldingsLedgerServiceInterface) *HoldingsHandler {
	return &HoldingsHandler{holdings: holdings}
}

// RecordPurchase records a stock purchase at the given unit price
// @Summary Record purchase
// @Tags Holdings
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Param request body dto.PurchaseRequest true "Symbol, unit price and quantity"
// @Success 201 {object} SuccessResponse{data=dto.HoldingResponse}
// @Success 202 {object} SuccessResponse{data=dto.HoldingResponse} "Recorded, storage write pending"
// @Failure 400 {object} errors.ErrorResponse "HOLDING_001 - Invalid purchase"
// @Router /holdings [post]
func (h *HoldingsHandler) RecordPurchase(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	holding, err := h.holdings.RecordPurchase(c.Request().Context(), ownerID, req.Symbol, req.UnitPrice, req.Quantity)
	if holding == nil {
		return sendServiceError(c, err)
	}

	resp := dto.ToHoldingResponse(*holding)
	if err != nil {
		return SendAcceptedUnpersisted(c, resp, err, h.holdings.PendingCount(ownerID))
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: resp})
}

// ListHoldings returns the owner's purchases in sequence order
// @Summary List holdings
// @Tags Holdings
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.ListHoldingsResponse}
// @Router /holdings [get]
func (h *HoldingsHandler) ListHoldings(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	holdings, err := h.holdings.List(c.Request().Context(), ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToListHoldingsResponse(holdings, h.holdings.PendingCount(ownerID)),
	})
}

// GetSummary returns total investment and the distribution per symbol
// @Summary Investment summary
// @Tags Holdings
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.InvestmentSummaryResponse}
// @Router /holdings/summary [get]
func (h *HoldingsHandler) GetSummary(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	summary, err := h.holdings.Summary(c.Request().Context(), ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToInvestmentSummaryResponse(summary),
	})
}

// FlushHoldings retries purchases whose storage write failed
// @Summary Flush pending holdings
// @Tags Holdings
// @Produce json
// @Param X-Owner-ID header string true "Owner ID"
// @Success 200 {object} SuccessResponse{data=dto.FlushResponse}
// @Failure 503 {object} errors.ErrorResponse "LEDGER_001 - Entries still pending"
// @Router /holdings/flush [post]
func (h *HoldingsHandler) FlushHoldings(c echo.Context) error {
	return flushPending(c, h.holdings)
}
