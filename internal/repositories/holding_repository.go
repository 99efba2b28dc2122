package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

type holdingRepository struct {
	db *gorm.DB
}

// NewHoldingRepository creates a new stock holding repository
func NewHoldingRepository(db *gorm.DB) HoldingRepositoryInterface {
	return &holdingRepository{
		db: db,
	}
}

func (r *holdingRepository) LoadHoldings(ctx context.Context, ownerID string) ([]models.StockHolding, error) {
	var holdings []models.StockHolding
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("sequence ASC").
		Find(&holdings).Error; err != nil {
		return nil, unavailable("load holdings", err)
	}
	return holdings, nil
}

func (r *holdingRepository) AppendHolding(ctx context.Context, holding *models.StockHolding) error {
	if err := holding.Validate(); err != nil {
		return fmt.Errorf("invalid holding: %w", err)
	}

	db := r.db.WithContext(ctx)
	err := db.Create(holding).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.StockHolding
		if lookupErr := db.Where("id = ?", holding.ID).First(&existing).Error; lookupErr == nil {
			return nil
		}
		return fmt.Errorf("%w: holding %d for owner %s", ErrSequenceConflict, holding.Sequence, holding.OwnerID)
	}

	return unavailable("append holding", err)
}
