package repositories

import (
	"context"

	"fintrack/internal/models"
)

// BudgetRepositoryInterface persists the budget snapshot of each owner
type BudgetRepositoryInterface interface {
	LoadBudget(ctx context.Context, ownerID string) (models.BudgetSnapshot, error)
	ReplaceBudget(ctx context.Context, ownerID string, snapshot models.BudgetSnapshot) error
}

// TransactionRepositoryInterface persists the append-only payment log
type TransactionRepositoryInterface interface {
	LoadTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error)
	AppendTransaction(ctx context.Context, transaction *models.Transaction) error
}

// HoldingRepositoryInterface persists the append-only purchase log
type HoldingRepositoryInterface interface {
	LoadHoldings(ctx context.Context, ownerID string) ([]models.StockHolding, error)
	AppendHolding(ctx context.Context, holding *models.StockHolding) error
}

// PersistenceGatewayInterface is the single store boundary used by the ledgers
type PersistenceGatewayInterface interface {
	BudgetRepositoryInterface
	TransactionRepositoryInterface
	HoldingRepositoryInterface
	Ping(ctx context.Context) error
}
