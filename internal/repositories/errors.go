package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistenceUnavailable wraps every failure of the underlying store
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrSequenceConflict       = errors.New("sequence already recorded by a different entry")
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrPersistenceUnavailable, op, err)
}
