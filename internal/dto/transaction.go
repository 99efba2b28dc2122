package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID         uuid.UUID `json:"id"`
	Sequence   int64     `json:"sequence"`
	Category   string    `json:"category"`
	AmountPaid string    `json:"amountPaid"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListTransactionsResponse is the owner's payment log in sequence order
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pending      int                   `json:"pending"`
}

type CategorySummaryResponse struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transactionCount"`
	TotalAmount      string `json:"totalAmount"`
	AverageAmount    string `json:"averageAmount"`
	Share            string `json:"share"`
}

// ExpenseSummaryResponse is the expense side of the owner profile
type ExpenseSummaryResponse struct {
	Categories       []CategorySummaryResponse `json:"categories"`
	TotalExpenses    string                    `json:"totalExpenses"`
	TransactionCount int64                     `json:"transactionCount"`
	Income           string                    `json:"income"`
	Balance          string                    `json:"balance"`
}

// FlushResponse reports a persistence retry
type FlushResponse struct {
	Flushed   int `json:"flushed"`
	Remaining int `json:"remaining"`
}

func ToTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		Sequence:   t.Sequence,
		Category:   t.Category,
		AmountPaid: money(t.AmountPaid),
		CreatedAt:  t.CreatedAt,
	}
}

func ToListTransactionsResponse(log []models.Transaction, pending int) ListTransactionsResponse {
	out := make([]TransactionResponse, len(log))
	for i, t := range log {
		out[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{Transactions: out, Pending: pending}
}

func ToExpenseSummaryResponse(s *models.ExpenseSummary) ExpenseSummaryResponse {
	categories := make([]CategorySummaryResponse, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = CategorySummaryResponse{
			Category:         c.Category,
			TransactionCount: c.TransactionCount,
			TotalAmount:      money(c.TotalAmount),
			AverageAmount:    money(c.AverageAmount),
			Share:            c.Share.StringFixed(2),
		}
	}
	return ExpenseSummaryResponse{
		Categories:       categories,
		TotalExpenses:    money(s.TotalExpenses),
		TransactionCount: s.TransactionCount,
		Income:           money(s.Income),
		Balance:          money(s.Balance),
	}
}
