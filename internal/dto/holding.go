package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseRequest records a simulated stock purchase. Price and quantity are
// checked by the holdings ledger so that bad values report an invalid purchase.
type PurchaseRequest struct {
	Symbol    string          `json:"symbol" validate:"omitempty,stock_symbol"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
}

type HoldingResponse struct {
	ID        uuid.UUID `json:"id"`
	Sequence  int64     `json:"sequence"`
	Symbol    string    `json:"symbol"`
	UnitPrice string    `json:"unitPrice"`
	Quantity  int64     `json:"quantity"`
	TotalCost string    `json:"totalCost"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListHoldingsResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
	Pending  int               `json:"pending"`
}

type HoldingSummaryResponse struct {
	Symbol           string `json:"symbol"`
	Quantity         int64  `json:"quantity"`
	PurchaseCount    int64  `json:"purchaseCount"`
	TotalCost        string `json:"totalCost"`
	AverageUnitPrice string `json:"averageUnitPrice"`
}

// InvestmentSummaryResponse is the holdings side of the owner profile
type InvestmentSummaryResponse struct {
	Holdings        []HoldingSummaryResponse `json:"holdings"`
	TotalInvestment string                   `json:"totalInvestment"`
	PurchaseCount   int64                    `json:"purchaseCount"`
}

func ToHoldingResponse(h models.StockHolding) HoldingResponse {
	return HoldingResponse{
		ID:        h.ID,
		Sequence:  h.Sequence,
		Symbol:    h.Symbol,
		UnitPrice: h.UnitPrice.String(),
		Quantity:  h.Quantity,
		TotalCost: money(h.TotalCost),
		CreatedAt: h.CreatedAt,
	}
}

func ToListHoldingsResponse(holdings []models.StockHolding, pending int) ListHoldingsResponse {
	out := make([]HoldingResponse, len(holdings))
	for i, h := range holdings {
		out[i] = ToHoldingResponse(h)
	}
	return ListHoldingsResponse{Holdings: out, Pending: pending}
}

func ToInvestmentSummaryResponse(s *models.InvestmentSummary) InvestmentSummaryResponse {
	holdings := make([]HoldingSummaryResponse, len(s.Holdings))
	for i, h := range s.Holdings {
		holdings[i] = HoldingSummaryResponse{
			Symbol:           h.Symbol,
			Quantity:         h.Quantity,
			PurchaseCount:    h.PurchaseCount,
			TotalCost:        money(h.TotalCost),
			AverageUnitPrice: h.AverageUnitPrice.String(),
		}
	}
	return InvestmentSummaryResponse{
		Holdings:        holdings,
		TotalInvestment: money(s.TotalInvestment),
		PurchaseCount:   s.PurchaseCount,
	}
}
