package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CurrencyPrecision is the number of decimal places kept for money amounts
const CurrencyPrecision = 2

// maxMoneyAmount is the smallest value a DECIMAL(15,2) column cannot hold
var maxMoneyAmount = decimal.New(1, 13)

var (
	ErrInvalidIncome     = errors.New("income must be a positive amount with at most 2 decimal places")
	ErrNegativeRemaining = errors.New("remaining amount cannot be negative")
	ErrRemainingExceeds  = errors.New("remaining amount cannot exceed allocation")
)

// BudgetLine is the state of one category within a snapshot
type BudgetLine struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
	Allocated  decimal.Decimal `json:"allocated"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// BudgetSnapshot is the remaining balance of every category for one owner.
// Lines keep the order the categories were defined in.
type BudgetSnapshot struct {
	Income decimal.Decimal `json:"income"`
	Lines  []BudgetLine    `json:"lines"`
}

// FitsCurrency reports whether amount is stored exactly by a money column:
// at most CurrencyPrecision decimal places and within the column's range.
func FitsCurrency(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(CurrencyPrecision)) && amount.Abs().LessThan(maxMoneyAmount)
}

// NewBudgetSnapshot allocates income across categories, rounding every
// allocation to CurrencyPrecision. Labels are stored trimmed.
func NewBudgetSnapshot(income decimal.Decimal, categories []Category) (BudgetSnapshot, error) {
	if !income.IsPositive() || !FitsCurrency(income) {
		return BudgetSnapshot{}, ErrInvalidIncome
	}
	if err := ValidateCategories(categories); err != nil {
		return BudgetSnapshot{}, err
	}

	lines := make([]BudgetLine, 0, len(categories))
	for _, c := range categories {
		allocated := income.Mul(c.Percentage).Div(hundred).Round(CurrencyPrecision)
		lines = append(lines, BudgetLine{
			Category:   strings.TrimSpace(c.Label),
			Percentage: c.Percentage,
			Allocated:  allocated,
			Remaining:  allocated,
		})
	}

	return BudgetSnapshot{Income: income, Lines: lines}, nil
}

// IsZero reports whether the snapshot has never been initialized
func (s BudgetSnapshot) IsZero() bool {
	return len(s.Lines) == 0
}

// Line returns the line for a category
func (s BudgetSnapshot) Line(category string) (BudgetLine, bool) {
	for _, l := range s.Lines {
		if l.Category == category {
			return l, true
		}
	}
	return BudgetLine{}, false
}

// Remaining returns the remaining amount for a category
func (s BudgetSnapshot) Remaining(category string) (decimal.Decimal, bool) {
	l, ok := s.Line(category)
	return l.Remaining, ok
}

// Categories returns the category labels in definition order
func (s BudgetSnapshot) Categories() []string {
	labels := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		labels[i] = l.Category
	}
	return labels
}

// TotalAllocated returns the sum of all allocations
func (s BudgetSnapshot) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Allocated)
	}
	return total
}

// TotalRemaining returns the sum of all remaining amounts
func (s BudgetSnapshot) TotalRemaining() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Remaining)
	}
	return total
}

// Clone returns a deep copy of the snapshot
func (s BudgetSnapshot) Clone() BudgetSnapshot {
	lines := make([]BudgetLine, len(s.Lines))
	copy(lines, s.Lines)
	return BudgetSnapshot{Income: s.Income, Lines: lines}
}

// Spend deducts amount from a category. Only a Paid outcome returns a
// modified copy; every other outcome returns the receiver unchanged.
// Amounts with sub-cent digits are invalid.
func (s BudgetSnapshot) Spend(category string, amount decimal.Decimal) (SpendOutcome, BudgetSnapshot) {
	if !amount.IsPositive() || !FitsCurrency(amount) {
		return SpendOutcomeInvalidAmount, s
	}
	category = strings.TrimSpace(category)

	idx := -1
	for i, l := range s.Lines {
		if l.Category == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SpendOutcomeUnknownCategory, s
	}

	if amount.GreaterThan(s.Lines[idx].Remaining) {
		return SpendOutcomeInsufficientFunds, s
	}

	updated := s.Clone()
	updated.Lines[idx].Remaining = updated.Lines[idx].Remaining.Sub(amount)
	return SpendOutcomePaid, updated
}

// Entries converts the snapshot into persistence rows for an owner
func (s BudgetSnapshot) Entries(ownerID string) []BudgetEntry {
	entries := make([]BudgetEntry, len(s.Lines))
	for i, l := range s.Lines {
		entries[i] = BudgetEntry{
			OwnerID:    ownerID,
			Category:   l.Category,
			Percentage: l.Percentage,
			Income:     s.Income,
			Allocated:  l.Allocated,
			Remaining:  l.Remaining,
			Position:   i,
		}
	}
	return entries
}

// SnapshotFromEntries rebuilds a snapshot from rows ordered by position
func SnapshotFromEntries(entries []BudgetEntry) BudgetSnapshot {
	if len(entries) == 0 {
		return BudgetSnapshot{}
	}

	lines := make([]BudgetLine, len(entries))
	for i, e := range entries {
		lines[i] = BudgetLine{
			Category:   e.Category,
			Percentage: e.Percentage,
			Allocated:  e.Allocated,
			Remaining:  e.Remaining,
		}
	}
	return BudgetSnapshot{Income: entries[0].Income, Lines: lines}
}

// BudgetEntry is the persisted form of one snapshot line
type BudgetEntry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budget_entries_owner_category" json:"owner_id"`
	Category   string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_entries_owner_category" json:"category"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	Income     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
	Allocated  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"allocated"`
	Remaining  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"remaining"`
	Position   int             `gorm:"not null" json:"position"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BudgetEntry
func (e *BudgetEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// Validate enforces 0 <= remaining <= allocated
func (e *BudgetEntry) Validate() error {
	if e.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if e.Category == "" {
		return errors.New("category is required")
	}
	if e.Remaining.IsNegative() {
		return ErrNegativeRemaining
	}
	if e.Remaining.GreaterThan(e.Allocated) {
		return ErrRemainingExceeds
	}
	return nil
}

// TableName returns the table name for BudgetEntry
func (e *BudgetEntry) TableName() string {
	return "budget_entries"
}

// BudgetState is a snapshot plus whether it differs from the stored copy.
// Created is set only by the call that allocated the budget.
type BudgetState struct {
	OwnerID  string         `json:"owner_id"`
	Snapshot BudgetSnapshot `json:"budget"`
	Unsaved  bool           `json:"unsaved"`
	Created  bool           `json:"-"`
}
