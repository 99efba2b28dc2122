package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/models"
)

type contextKey string

// TraceIDContextKey carries the request trace id through service calls
const TraceIDContextKey contextKey = "trace_id"

// WithTraceID returns a context carrying the trace id
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, traceID)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{
		logger: logger,
	}
}

func (l *LedgerLogger) LogBudgetInitialized(ctx context.Context, ownerID string, income string, categories int, restored bool) {
	l.logger.InfoContext(ctx, "budget initialized",
		slog.String("event_type", "budget_initialized"),
		slog.String("owner_id", ownerID),
		slog.String("income", income),
		slog.Int("categories", categories),
		slog.Bool("restored", restored),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogSpendOutcome(ctx context.Context, ownerID, category, amount string, outcome models.SpendOutcome) {
	level := slog.LevelInfo
	if !outcome.IsPaid() {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, "spend outcome",
		slog.String("event_type", "spend_outcome"),
		slog.String("owner_id", ownerID),
		slog.String("category", category),
		slog.String("amount", amount),
		slog.String("outcome", string(outcome)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogBudgetReconciled(ctx context.Context, ownerID string, lines int, durationMs int64) {
	l.logger.InfoContext(ctx, "budget reconciled",
		slog.String("event_type", "budget_reconciled"),
		slog.String("owner_id", ownerID),
		slog.Int("lines", lines),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogPersistenceFailure(ctx context.Context, ownerID, operation, errorMsg string, pending int) {
	l.logger.ErrorContext(ctx, "persistence failure",
		slog.String("event_type", "persistence_failure"),
		slog.String("owner_id", ownerID),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Int("pending", pending),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogEntriesFlushed(ctx context.Context, ownerID, logName string, flushed, remaining int) {
	l.logger.InfoContext(ctx, "pending entries flushed",
		slog.String("event_type", "entries_flushed"),
		slog.String("owner_id", ownerID),
		slog.String("log", logName),
		slog.Int("flushed", flushed),
		slog.Int("remaining", remaining),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogPurchaseRecorded(ctx context.Context, ownerID, symbol string, quantity int64, totalCost string) {
	l.logger.InfoContext(ctx, "purchase recorded",
		slog.String("event_type", "purchase_recorded"),
		slog.String("owner_id", ownerID),
		slog.String("symbol", symbol),
		slog.Int64("quantity", quantity),
		slog.String("total_cost", totalCost),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogForecastGenerated(ctx context.Context, symbol string, samples, horizon int, durationMs int64) {
	l.logger.InfoContext(ctx, "forecast generated",
		slog.String("event_type", "forecast_generated"),
		slog.String("symbol", symbol),
		slog.Int("samples", samples),
		slog.Int("horizon", horizon),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogForecastFailed(ctx context.Context, symbol, errorMsg string, durationMs int64) {
	l.logger.WarnContext(ctx, "forecast failed",
		slog.String("event_type", "forecast_failed"),
		slog.String("symbol", symbol),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}
