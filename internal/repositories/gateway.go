package repositories

import (
	"context"

	"gorm.io/gorm"
)

type persistenceGateway struct {
	BudgetRepositoryInterface
	TransactionRepositoryInterface
	HoldingRepositoryInterface
	db *gorm.DB
}

// NewPersistenceGateway composes the record repositories over one connection
func NewPersistenceGateway(db *gorm.DB) PersistenceGatewayInterface {
	return &persistenceGateway{
		BudgetRepositoryInterface:      NewBudgetRepository(db),
		TransactionRepositoryInterface: NewTransactionRepository(db),
		HoldingRepositoryInterface:     NewHoldingRepository(db),
		db:                             db,
	}
}

func (g *persistenceGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return unavailable("get connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("ping database", err)
	}
	return nil
}
