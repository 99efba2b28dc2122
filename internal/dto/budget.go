package dto

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryRequest is one category of a budget allocation
type CategoryRequest struct {
	Label      string          `json:"label" validate:"required,max=50"`
	Percentage decimal.Decimal `json:"percentage" validate:"percentage"`
}

// InitializeBudgetRequest allocates income. Categories default to the
// standard six-way split when omitted.
type InitializeBudgetRequest struct {
	Income     decimal.Decimal   `json:"income" validate:"money_amount"`
	Categories []CategoryRequest `json:"categories" validate:"omitempty,max=20,dive"`
}

// ToCategories converts the request categories into domain categories
func (r InitializeBudgetRequest) ToCategories() []models.Category {
	if len(r.Categories) == 0 {
		return nil
	}
	out := make([]models.Category, len(r.Categories))
	for i, c := range r.Categories {
		out[i] = models.Category{Label: c.Label, Percentage: c.Percentage}
	}
	return out
}

// SpendRequest pays amount out of a category. The amount is not validated
// here; non-positive amounts come back as the invalid_amount outcome.
type SpendRequest struct {
	Category string          `json:"category" validate:"required,max=50"`
	Amount   decimal.Decimal `json:"amount"`
}

type BudgetLineResponse struct {
	Category   string `json:"category"`
	Percentage string `json:"percentage"`
	Allocated  string `json:"allocated"`
	Remaining  string `json:"remaining"`
}

type BudgetResponse struct {
	OwnerID        string               `json:"ownerId"`
	Income         string               `json:"income"`
	Lines          []BudgetLineResponse `json:"lines"`
	TotalAllocated string               `json:"totalAllocated"`
	TotalRemaining string               `json:"totalRemaining"`
	Unsaved        *bool                `json:"unsaved,omitempty"`
}

type SpendResponse struct {
	Outcome     models.SpendOutcome  `json:"outcome"`
	Paid        bool                 `json:"paid"`
	Budget      BudgetResponse       `json:"budget"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(models.CurrencyPrecision)
}

// ToBudgetResponse renders a snapshot with amounts fixed to two decimals
func ToBudgetResponse(ownerID string, snapshot models.BudgetSnapshot) BudgetResponse {
	lines := make([]BudgetLineResponse, len(snapshot.Lines))
	for i, l := range snapshot.Lines {
		lines[i] = BudgetLineResponse{
			Category:   l.Category,
			Percentage: l.Percentage.String(),
			Allocated:  money(l.Allocated),
			Remaining:  money(l.Remaining),
		}
	}
	return BudgetResponse{
		OwnerID:        ownerID,
		Income:         money(snapshot.Income),
		Lines:          lines,
		TotalAllocated: money(snapshot.TotalAllocated()),
		TotalRemaining: money(snapshot.TotalRemaining()),
	}
}

func ToBudgetStateResponse(state *models.BudgetState) BudgetResponse {
	resp := ToBudgetResponse(state.OwnerID, state.Snapshot)
	unsaved := state.Unsaved
	resp.Unsaved = &unsaved
	return resp
}

func ToSpendResponse(ownerID string, result *models.SpendResult) SpendResponse {
	resp := SpendResponse{
		Outcome: result.Outcome,
		Paid:    result.Outcome.IsPaid(),
		Budget:  ToBudgetResponse(ownerID, result.Snapshot),
	}
	if result.Transaction != nil {
		t := ToTransactionResponse(*result.Transaction)
		resp.Transaction = &t
	}
	return resp
}
