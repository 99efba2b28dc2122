package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive with at most 2 decimal places")
)

// Transaction is a completed payment against a budget category
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_transactions_owner_sequence" json:"owner_id"`
	Sequence   int64           `gorm:"not null;uniqueIndex:idx_transactions_owner_sequence" json:"sequence"`
	Category   string          `gorm:"type:varchar(50);not null" json:"category"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	CreatedAt  time.Time       `gorm:"not null;index" json:"created_at"`
}

// NewTransaction builds a transaction with its identity already assigned so
// that retried writes stay idempotent.
func NewTransaction(ownerID, category string, amountPaid decimal.Decimal, sequence int64) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Sequence:   sequence,
		Category:   category,
		AmountPaid: amountPaid,
		CreatedAt:  time.Now().UTC(),
	}
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if t.Category == "" {
		return errors.New("category is required")
	}
	if len(t.Category) > maxCategoryLabelLength {
		return errors.New("category code too long")
	}
	if !t.AmountPaid.IsPositive() || !FitsCurrency(t.AmountPaid) {
		return ErrInvalidAmount
	}
	if t.Sequence < 1 {
		return errors.New("sequence must be positive")
	}
	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// AggregateByCategory sums amounts paid per category
func AggregateByCategory(log []Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range log {
		totals[t.Category] = totals[t.Category].Add(t.AmountPaid)
	}
	return totals
}

// TotalPaid sums every amount in the log
func TotalPaid(log []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range log {
		total = total.Add(t.AmountPaid)
	}
	return total
}
