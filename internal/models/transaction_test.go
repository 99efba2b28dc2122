package models

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid payment",
			transaction: Transaction{OwnerID: "alice", Category: CategoryFood, AmountPaid: decimal.NewFromFloat(42.50), Sequence: 1},
		},
		{
			name:        "missing owner",
			transaction: Transaction{Category: CategoryFood, AmountPaid: decimal.NewFromInt(1), Sequence: 1},
			wantErr:     true,
			errMsg:      "owner ID is required",
		},
		{
			name:        "missing category",
			transaction: Transaction{OwnerID: "alice", AmountPaid: decimal.NewFromInt(1), Sequence: 1},
			wantErr:     true,
			errMsg:      "category is required",
		},
		{
			name:        "zero amount",
			transaction: Transaction{OwnerID: "alice", Category: CategoryFood, AmountPaid: decimal.Zero, Sequence: 1},
			wantErr:     true,
			errMsg:      "amount must be positive with at most 2 decimal places",
		},
		{
			name:        "negative amount",
			transaction: Transaction{OwnerID: "alice", Category: CategoryFood, AmountPaid: decimal.NewFromInt(-5), Sequence: 1},
			wantErr:     true,
			errMsg:      "amount must be positive with at most 2 decimal places",
		},
		{
			name:        "sub-cent amount",
			transaction: Transaction{OwnerID: "alice", Category: CategoryFood, AmountPaid: decimal.RequireFromString("0.004"), Sequence: 1},
			wantErr:     true,
			errMsg:      "at most 2 decimal places",
		},
		{
			name:        "unsequenced",
			transaction: Transaction{OwnerID: "alice", Category: CategoryFood, AmountPaid: decimal.NewFromInt(1)},
			wantErr:     true,
			errMsg:      "sequence must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewTransaction(t *testing.T) {
	txn := NewTransaction("alice", CategoryFood, decimal.NewFromInt(500), 3)

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.Equal(t, "alice", txn.OwnerID)
	assert.Equal(t, CategoryFood, txn.Category)
	assert.Equal(t, int64(3), txn.Sequence)
	assert.True(t, txn.AmountPaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, time.Since(txn.CreatedAt) < time.Second)
}

func TestTransaction_BeforeCreate(t *testing.T) {
	txn := Transaction{
		OwnerID:    "alice",
		Category:   CategoryHousing,
		AmountPaid: decimal.NewFromFloat(100.00),
		Sequence:   1,
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.NotZero(t, txn.CreatedAt)
}

func TestAggregateByCategory(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		assert.Empty(t, AggregateByCategory(nil))
		assert.True(t, TotalPaid(nil).IsZero())
	})

	t.Run("sums per category", func(t *testing.T) {
		log := []Transaction{
			{Category: CategoryFood, AmountPaid: decimal.NewFromInt(100)},
			{Category: CategoryFood, AmountPaid: decimal.NewFromInt(50)},
			{Category: CategoryHousing, AmountPaid: decimal.NewFromInt(900)},
		}

		totals := AggregateByCategory(log)
		require.Len(t, totals, 2)
		assert.True(t, totals[CategoryFood].Equal(decimal.NewFromInt(150)))
		assert.True(t, totals[CategoryHousing].Equal(decimal.NewFromInt(900)))
		assert.True(t, TotalPaid(log).Equal(decimal.NewFromInt(1050)))
	})

	t.Run("independent of log order", func(t *testing.T) {
		log := []Transaction{
			{Category: CategoryFood, AmountPaid: decimal.RequireFromString("12.34")},
			{Category: CategoryHousing, AmountPaid: decimal.NewFromInt(900)},
			{Category: CategoryFood, AmountPaid: decimal.RequireFromString("0.01")},
			{Category: CategoryUtilities, AmountPaid: decimal.RequireFromString("75.50")},
			{Category: CategoryHousing, AmountPaid: decimal.RequireFromString("99.99")},
			{Category: CategoryFood, AmountPaid: decimal.RequireFromString("40.10")},
		}
		want := AggregateByCategory(log)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			shuffled := append([]Transaction(nil), log...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

			got := AggregateByCategory(shuffled)
			require.Len(t, got, len(want))
			for category, total := range want {
				assert.True(t, got[category].Equal(total), "%s: %s != %s", category, got[category], total)
			}
			assert.True(t, TotalPaid(shuffled).Equal(TotalPaid(log)))
		}
	})
}

func TestSummarizeCategories(t *testing.T) {
	log := []Transaction{
		{Category: CategoryFood, AmountPaid: decimal.NewFromInt(100)},
		{Category: CategoryFood, AmountPaid: decimal.NewFromInt(50)},
		{Category: CategoryHousing, AmountPaid: decimal.NewFromInt(150)},
		{Category: CategoryUtilities, AmountPaid: decimal.NewFromInt(300)},
	}

	summaries := SummarizeCategories(log)
	require.Len(t, summaries, 3)

	assert.Equal(t, CategoryUtilities, summaries[0].Category)
	assert.Equal(t, "50.00", summaries[0].Share.StringFixed(2))

	// equal totals are ordered by name
	assert.Equal(t, CategoryFood, summaries[1].Category)
	assert.Equal(t, int64(2), summaries[1].TransactionCount)
	assert.Equal(t, "75.00", summaries[1].AverageAmount.StringFixed(2))
	assert.Equal(t, CategoryHousing, summaries[2].Category)

	assert.Empty(t, SummarizeCategories(nil))
}
