package services

import (
	"errors"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

var (
	ErrBudgetNotInitialized     = errors.New("budget not initialized")
	ErrInvalidOwner             = errors.New("owner ID is required")
	ErrInsufficientHistory      = errors.New("insufficient price history")
	ErrPriceProviderUnavailable = errors.New("price provider unavailable")

	ErrPersistenceUnavailable = repositories.ErrPersistenceUnavailable
	ErrInvalidPurchase        = models.ErrInvalidPurchase
	ErrInvalidSymbol          = models.ErrInvalidSymbol
	ErrInvalidAllocation      = models.ErrInvalidAllocation
)
