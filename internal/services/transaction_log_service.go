package services

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

const transactionLogName = "transactions"

type TransactionLogService struct {
	repo    repositories.TransactionRepositoryInterface
	log     *ownerLog[models.Transaction]
	logger  LedgerLoggerInterface
	metrics MetricsRecorderInterface
}

func NewTransactionLogService(
	repo repositories.TransactionRepositoryInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionLogServiceInterface {
	s := &TransactionLogService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
	s.log = newOwnerLog(repo.LoadTransactions, repo.AppendTransaction)
	return s
}

// Append records a completed payment. The entry is kept in memory even when
// the store rejects it; in that case the returned transaction is non-nil and
// the error wraps ErrPersistenceUnavailable.
func (s *TransactionLogService) Append(ctx context.Context, ownerID, category string, amountPaid decimal.Decimal) (*models.Transaction, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}
	if !amountPaid.IsPositive() || !models.FitsCurrency(amountPaid) {
		return nil, models.ErrInvalidAmount
	}

	txn, pending, err := s.log.append(ctx, ownerID, func(sequence int64) (*models.Transaction, error) {
		return models.NewTransaction(ownerID, category, amountPaid, sequence), nil
	})
	if txn != nil {
		s.metrics.IncrementCounter(MetricEntryAppended, map[string]string{"log": transactionLogName})
	}
	s.recordPending()

	if err != nil {
		s.metrics.IncrementCounter(MetricPersistenceFailure, map[string]string{"operation": "append_transaction"})
		s.logger.LogPersistenceFailure(ctx, ownerID, "append_transaction", err.Error(), pending)
		return txn, fmt.Errorf("failed to persist transaction: %w", err)
	}

	return txn, nil
}

// Flush retries pending entries in insertion order, stopping at the first failure
func (s *TransactionLogService) Flush(ctx context.Context, ownerID string) (int, error) {
	flushed, remaining, err := s.log.flush(ctx, ownerID)
	s.recordPending()

	if flushed > 0 {
		for i := 0; i < flushed; i++ {
			s.metrics.IncrementCounter(MetricEntriesFlushed, map[string]string{"log": transactionLogName})
		}
		s.logger.LogEntriesFlushed(ctx, ownerID, transactionLogName, flushed, remaining)
	}
	if err != nil {
		s.logger.LogPersistenceFailure(ctx, ownerID, "flush_transactions", err.Error(), remaining)
		return flushed, fmt.Errorf("failed to flush transactions: %w", err)
	}
	return flushed, nil
}

func (s *TransactionLogService) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}
	return s.log.list(ctx, ownerID)
}

// Summary aggregates the log by category and compares it with income
func (s *TransactionLogService) Summary(ctx context.Context, ownerID string, income decimal.Decimal) (*models.ExpenseSummary, error) {
	log, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	total := models.TotalPaid(log)
	return &models.ExpenseSummary{
		Categories:       models.SummarizeCategories(log),
		TotalExpenses:    total,
		TransactionCount: int64(len(log)),
		Income:           income,
		Balance:          income.Sub(total),
	}, nil
}

func (s *TransactionLogService) PendingOwners() []string {
	return s.log.pendingOwners()
}

func (s *TransactionLogService) PendingCount(ownerID string) int {
	return s.log.pendingCount(ownerID)
}

func (s *TransactionLogService) recordPending() {
	s.metrics.RecordGauge(MetricPendingEntries, float64(s.log.totalPending()), map[string]string{"log": transactionLogName})
}
