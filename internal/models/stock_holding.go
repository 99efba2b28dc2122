package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	maxSymbolLength = 20

	// UnitPricePrecision is the number of decimal places stored for unit prices
	UnitPricePrecision = 4
)

// column limits of DECIMAL(15,4) unit_price and DECIMAL(18,4) total_cost
var (
	maxUnitPrice = decimal.New(1, 11)
	maxTotalCost = decimal.New(1, 14)
)

var (
	ErrInvalidPurchase = errors.New("invalid purchase")
)

// StockHolding is a single recorded stock purchase
type StockHolding struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_stock_holdings_owner_sequence" json:"owner_id"`
	Sequence  int64           `gorm:"not null;uniqueIndex:idx_stock_holdings_owner_sequence" json:"sequence"`
	Symbol    string          `gorm:"type:varchar(20);not null;index" json:"symbol"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,4);not null" json:"unit_price"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	TotalCost decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_cost"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
}

// NormalizeSymbol trims and upper-cases a ticker symbol
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// NewStockHolding validates a purchase and computes its total cost.
// The sequence is assigned by the ledger when the holding is appended.
func NewStockHolding(ownerID, symbol string, unitPrice decimal.Decimal, quantity int64) (*StockHolding, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidPurchase)
	}
	if len(symbol) > maxSymbolLength {
		return nil, fmt.Errorf("%w: symbol too long", ErrInvalidPurchase)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", ErrInvalidPurchase)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidPurchase)
	}
	if !unitPrice.Equal(unitPrice.Round(UnitPricePrecision)) {
		return nil, fmt.Errorf("%w: unit price has more than %d decimal places", ErrInvalidPurchase, UnitPricePrecision)
	}
	totalCost := unitPrice.Mul(decimal.NewFromInt(quantity))
	if !unitPrice.LessThan(maxUnitPrice) || !totalCost.LessThan(maxTotalCost) {
		return nil, fmt.Errorf("%w: purchase amount too large", ErrInvalidPurchase)
	}

	return &StockHolding{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Symbol:    symbol,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		TotalCost: totalCost,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// BeforeCreate hook for StockHolding
func (h *StockHolding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	return h.Validate()
}

// Validate checks the stored invariant total = unit price x quantity
func (h *StockHolding) Validate() error {
	if h.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if h.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidPurchase)
	}
	if !h.UnitPrice.IsPositive() || h.Quantity < 1 {
		return ErrInvalidPurchase
	}
	if !h.TotalCost.Equal(h.UnitPrice.Mul(decimal.NewFromInt(h.Quantity))) {
		return fmt.Errorf("total cost mismatch: expected %s, got %s",
			h.UnitPrice.Mul(decimal.NewFromInt(h.Quantity)).String(), h.TotalCost.String())
	}
	return nil
}

// TableName returns the table name for StockHolding
func (h *StockHolding) TableName() string {
	return "stock_holdings"
}

// AggregateBySymbol sums total cost and quantity per symbol, in order of
// first purchase.
func AggregateBySymbol(holdings []StockHolding) []HoldingSummary {
	index := make(map[string]int)
	var out []HoldingSummary
	for _, h := range holdings {
		i, ok := index[h.Symbol]
		if !ok {
			i = len(out)
			index[h.Symbol] = i
			out = append(out, HoldingSummary{Symbol: h.Symbol, TotalCost: decimal.Zero})
		}
		out[i].Quantity += h.Quantity
		out[i].TotalCost = out[i].TotalCost.Add(h.TotalCost)
		out[i].PurchaseCount++
	}

	for i := range out {
		if out[i].Quantity > 0 {
			out[i].AverageUnitPrice = out[i].TotalCost.Div(decimal.NewFromInt(out[i].Quantity)).Round(4)
		}
	}
	return out
}

// TotalCost sums the cost of every holding
func TotalCost(holdings []StockHolding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.TotalCost)
	}
	return total
}
