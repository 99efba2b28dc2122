package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (LedgerLoggerInterface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLedgerLogger(slog.New(handler)), buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLedgerLogger_SpendOutcomeCarriesTraceID(t *testing.T) {
	logger, buf := captureLogger()
	ctx := WithTraceID(context.Background(), "trace-123")

	logger.LogSpendOutcome(ctx, "owner-1", models.CategoryFood, "500", models.SpendOutcomePaid)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "spend_outcome", entry["event_type"])
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.Equal(t, "paid", entry["outcome"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestLedgerLogger_RejectedSpendLogsWarning(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogSpendOutcome(context.Background(), "owner-1", models.CategoryFood, "5000", models.SpendOutcomeInsufficientFunds)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "", entry["trace_id"])
}

func TestLedgerLogger_PersistenceFailure(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogPersistenceFailure(context.Background(), "owner-1", "append_transaction", "connection refused", 2)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "persistence_failure", entry["event_type"])
	assert.Equal(t, "append_transaction", entry["operation"])
	assert.EqualValues(t, 2, entry["pending"])
}

func TestNewLedgerLogger_NilFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewLedgerLogger(nil))
}
