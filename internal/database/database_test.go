package database

import (
	"context"
	"path/filepath"
	"testing"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesModels(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range testTables {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	txn := models.NewTransaction("alice", models.CategoryFood, decimal.NewFromInt(10), 1)
	require.NoError(t, db.Create(txn).Error)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     filepath.Join(t.TempDir(), "fintrack.db"),
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable(&models.BudgetEntry{}))
	assert.True(t, db.Migrator().HasIndex(&models.StockHolding{}, "idx_stock_holdings_owner_symbol"))
}
