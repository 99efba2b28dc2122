package repositories

import (
	"context"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// LoadBudget returns the stored snapshot, or ErrBudgetNotFound when the
// owner has never saved one.
func (r *budgetRepository) LoadBudget(ctx context.Context, ownerID string) (models.BudgetSnapshot, error) {
	var entries []models.BudgetEntry
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return models.BudgetSnapshot{}, unavailable("load budget", err)
	}

	if len(entries) == 0 {
		return models.BudgetSnapshot{}, ErrBudgetNotFound
	}

	return models.SnapshotFromEntries(entries), nil
}

// ReplaceBudget swaps the stored snapshot for the given one inside a single
// database transaction, so readers never observe an empty budget.
func (r *budgetRepository) ReplaceBudget(ctx context.Context, ownerID string, snapshot models.BudgetSnapshot) error {
	if snapshot.IsZero() {
		return fmt.Errorf("cannot store an empty budget for owner %s", ownerID)
	}

	entries := snapshot.Entries(ownerID)
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return fmt.Errorf("invalid budget line %s: %w", entries[i].Category, err)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.BudgetEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return unavailable("replace budget", err)
	}
	return nil
}
