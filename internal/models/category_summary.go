package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	Share            decimal.Decimal `json:"share"`
}

// HoldingSummary contains aggregated purchases for one symbol
type HoldingSummary struct {
	Symbol           string          `json:"symbol"`
	Quantity         int64           `json:"quantity"`
	PurchaseCount    int64           `json:"purchase_count"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	AverageUnitPrice decimal.Decimal `json:"average_unit_price"`
}

// ExpenseSummary is the expense side of the owner profile
type ExpenseSummary struct {
	Categories       []CategorySummary `json:"categories"`
	TotalExpenses    decimal.Decimal   `json:"total_expenses"`
	TransactionCount int64             `json:"transaction_count"`
	Income           decimal.Decimal   `json:"income"`
	Balance          decimal.Decimal   `json:"balance"`
}

// InvestmentSummary is the holdings side of the owner profile
type InvestmentSummary struct {
	Holdings        []HoldingSummary `json:"holdings"`
	TotalInvestment decimal.Decimal  `json:"total_investment"`
	PurchaseCount   int64            `json:"purchase_count"`
}

// SummarizeCategories builds per-category summaries sorted by total amount
// descending. Share is the percentage of all expenses.
func SummarizeCategories(log []Transaction) []CategorySummary {
	totals := AggregateByCategory(log)
	counts := make(map[string]int64, len(totals))
	for _, t := range log {
		counts[t.Category]++
	}
	grand := TotalPaid(log)

	out := make([]CategorySummary, 0, len(totals))
	for category, total := range totals {
		s := CategorySummary{
			Category:         category,
			TransactionCount: counts[category],
			TotalAmount:      total,
			AverageAmount:    total.Div(decimal.NewFromInt(counts[category])).Round(CurrencyPrecision),
			Share:            decimal.Zero,
		}
		if grand.IsPositive() {
			s.Share = total.Mul(hundred).Div(grand).Round(CurrencyPrecision)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalAmount.Equal(out[j].TotalAmount) {
			return out[i].Category < out[j].Category
		}
		return out[i].TotalAmount.GreaterThan(out[j].TotalAmount)
	})
	return out
}
