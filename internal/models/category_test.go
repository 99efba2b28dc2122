package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	assert.Len(t, categories, 6)
	assert.NoError(t, ValidateCategories(categories))
	assert.Equal(t, CategoryHousing, categories[0].Label)
	assert.True(t, categories[0].Percentage.Equal(decimal.NewFromInt(30)))
}

func TestValidateCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		errMsg     string
	}{
		{"single full category", []Category{NewCategory("All", 100)}, ""},
		{"zero percentage allowed", []Category{NewCategory("A", 100), NewCategory("B", 0)}, ""},
		{"fractional split", []Category{
			{Label: "A", Percentage: decimal.RequireFromString("33.5")},
			{Label: "B", Percentage: decimal.RequireFromString("66.5")},
		}, ""},
		{"empty", nil, "at least one category"},
		{"long label", []Category{NewCategory(strings.Repeat("x", 51), 100)}, "too long"},
		{"duplicate", []Category{NewCategory("A", 50), NewCategory("A", 50)}, "duplicate category"},
		{"above 100", []Category{NewCategory("A", 101), NewCategory("B", -1)}, "between 0 and 100"},
		{"sum mismatch", []Category{NewCategory("A", 99)}, "expected 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategories(tt.categories)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidAllocation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
