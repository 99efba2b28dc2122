package services

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetLedgerServiceInterface owns the in-memory budget of each owner
type BudgetLedgerServiceInterface interface {
	Initialize(ctx context.Context, ownerID string, income decimal.Decimal, categories []models.Category) (*models.BudgetState, error)
	Spend(ctx context.Context, ownerID, category string, amount decimal.Decimal) (*models.SpendResult, error)
	Reconcile(ctx context.Context, ownerID string) (*models.BudgetState, error)
	Snapshot(ctx context.Context, ownerID string) (*models.BudgetState, error)
}

// TransactionLogServiceInterface is the ordered payment log of each owner
type TransactionLogServiceInterface interface {
	Append(ctx context.Context, ownerID, category string, amountPaid decimal.Decimal) (*models.Transaction, error)
	List(ctx context.Context, ownerID string) ([]models.Transaction, error)
	Summary(ctx context.Context, ownerID string, income decimal.Decimal) (*models.ExpenseSummary, error)
	PendingFlusherInterface
}

// HoldingsLedgerServiceInterface is the ordered purchase log of each owner
type HoldingsLedgerServiceInterface interface {
	RecordPurchase(ctx context.Context, ownerID, symbol string, unitPrice decimal.Decimal, quantity int64) (*models.StockHolding, error)
	List(ctx context.Context, ownerID string) ([]models.StockHolding, error)
	Summary(ctx context.Context, ownerID string) (*models.InvestmentSummary, error)
	PendingFlusherInterface
}

// PendingFlusherInterface retries entries whose persistence failed
type PendingFlusherInterface interface {
	Flush(ctx context.Context, ownerID string) (int, error)
	PendingOwners() []string
	PendingCount(ownerID string) int
}

// ForecastingServiceInterface projects future prices of a symbol
type ForecastingServiceInterface interface {
	Forecast(ctx context.Context, symbol string) (*models.ForecastResult, error)
	ForecastSeries(series models.PriceSeries) (*models.ForecastResult, error)
}

// PriceProviderInterface returns the time-ordered price history of a symbol.
// A symbol without data yields models.ErrInvalidSymbol.
type PriceProviderInterface interface {
	GetHistory(ctx context.Context, symbol string) (models.PriceSeries, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type LedgerLoggerInterface interface {
	LogBudgetInitialized(ctx context.Context, ownerID string, income string, categories int, restored bool)
	LogSpendOutcome(ctx context.Context, ownerID, category, amount string, outcome models.SpendOutcome)
	LogBudgetReconciled(ctx context.Context, ownerID string, lines int, durationMs int64)
	LogPersistenceFailure(ctx context.Context, ownerID, operation, errorMsg string, pending int)
	LogEntriesFlushed(ctx context.Context, ownerID, logName string, flushed, remaining int)
	LogPurchaseRecorded(ctx context.Context, ownerID, symbol string, quantity int64, totalCost string)
	LogForecastGenerated(ctx context.Context, symbol string, samples, horizon int, durationMs int64)
	LogForecastFailed(ctx context.Context, symbol, errorMsg string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
