package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// LoadTransactions returns the owner's log in sequence order
func (r *transactionRepository) LoadTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("sequence ASC").
		Find(&transactions).Error; err != nil {
		return nil, unavailable("load transactions", err)
	}
	return transactions, nil
}

// AppendTransaction stores one entry. Re-appending an entry that is already
// stored succeeds, which makes retries of a half-acknowledged write safe.
func (r *transactionRepository) AppendTransaction(ctx context.Context, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	db := r.db.WithContext(ctx)
	err := db.Create(transaction).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.Transaction
		if lookupErr := db.Where("id = ?", transaction.ID).First(&existing).Error; lookupErr == nil {
			return nil
		}
		return fmt.Errorf("%w: transaction %d for owner %s", ErrSequenceConflict, transaction.Sequence, transaction.OwnerID)
	}

	return unavailable("append transaction", err)
}
