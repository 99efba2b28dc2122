package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Default budget categories
const (
	CategoryHousing        = "Housing"
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryUtilities      = "Utilities"
	CategorySavings        = "Savings"
)

const maxCategoryLabelLength = 50

var (
	ErrInvalidAllocation = errors.New("invalid category allocation")

	hundred = decimal.NewFromInt(100)
)

// Category is a budget bucket receiving a fixed share of income
type Category struct {
	Label      string          `json:"label"`
	Percentage decimal.Decimal `json:"percentage"`
}

// NewCategory builds a category from an integer percentage
func NewCategory(label string, percentage int64) Category {
	return Category{Label: label, Percentage: decimal.NewFromInt(percentage)}
}

// DefaultCategories returns the standard monthly split
func DefaultCategories() []Category {
	return []Category{
		NewCategory(CategoryHousing, 30),
		NewCategory(CategoryFood, 20),
		NewCategory(CategoryTransportation, 15),
		NewCategory(CategoryEntertainment, 10),
		NewCategory(CategoryUtilities, 10),
		NewCategory(CategorySavings, 15),
	}
}

// ValidateCategories checks that the set is non-empty, labels are unique and
// percentages lie in [0,100] and add up to exactly 100.
func ValidateCategories(categories []Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidAllocation)
	}

	seen := make(map[string]struct{}, len(categories))
	total := decimal.Zero
	for _, c := range categories {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			return fmt.Errorf("%w: category label is required", ErrInvalidAllocation)
		}
		if len(label) > maxCategoryLabelLength {
			return fmt.Errorf("%w: category label %q too long", ErrInvalidAllocation, label)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidAllocation, label)
		}
		seen[label] = struct{}{}

		if c.Percentage.IsNegative() || c.Percentage.GreaterThan(hundred) {
			return fmt.Errorf("%w: percentage for %q must be between 0 and 100", ErrInvalidAllocation, label)
		}
		if !c.Percentage.Equal(c.Percentage.Round(CurrencyPrecision)) {
			return fmt.Errorf("%w: percentage for %q has more than 2 decimal places", ErrInvalidAllocation, label)
		}
		total = total.Add(c.Percentage)
	}

	if !total.Equal(hundred) {
		return fmt.Errorf("%w: percentages sum to %s, expected 100", ErrInvalidAllocation, total.String())
	}

	return nil
}
