package services

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

const holdingsLogName = "holdings"

type HoldingsLedgerService struct {
	repo    repositories.HoldingRepositoryInterface
	log     *ownerLog[models.StockHolding]
	logger  LedgerLoggerInterface
	metrics MetricsRecorderInterface
}

func NewHoldingsLedgerService(
	repo repositories.HoldingRepositoryInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) HoldingsLedgerServiceInterface {
	s := &HoldingsLedgerService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
	s.log = newOwnerLog(repo.LoadHoldings, repo.AppendHolding)
	return s
}

// RecordPurchase validates and appends a simulated stock purchase. Invalid
// input yields ErrInvalidPurchase and records nothing.
func (s *HoldingsLedgerService) RecordPurchase(ctx context.Context, ownerID, symbol string, unitPrice decimal.Decimal, quantity int64) (*models.StockHolding, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}

	// validate before touching the log so a bad purchase never loads or mutates it
	if _, err := models.NewStockHolding(ownerID, symbol, unitPrice, quantity); err != nil {
		return nil, err
	}

	holding, pending, err := s.log.append(ctx, ownerID, func(sequence int64) (*models.StockHolding, error) {
		h, err := models.NewStockHolding(ownerID, symbol, unitPrice, quantity)
		if err != nil {
			return nil, err
		}
		h.Sequence = sequence
		return h, nil
	})
	if holding != nil {
		s.metrics.IncrementCounter(MetricEntryAppended, map[string]string{"log": holdingsLogName})
		s.metrics.RecordGauge(MetricPurchaseAmount, holding.TotalCost.InexactFloat64(), nil)
		s.logger.LogPurchaseRecorded(ctx, ownerID, holding.Symbol, holding.Quantity, holding.TotalCost.String())
	}
	s.recordPending()

	if err != nil {
		s.metrics.IncrementCounter(MetricPersistenceFailure, map[string]string{"operation": "append_holding"})
		s.logger.LogPersistenceFailure(ctx, ownerID, "append_holding", err.Error(), pending)
		return holding, fmt.Errorf("failed to persist holding: %w", err)
	}

	return holding, nil
}

func (s *HoldingsLedgerService) Flush(ctx context.Context, ownerID string) (int, error) {
	flushed, remaining, err := s.log.flush(ctx, ownerID)
	s.recordPending()

	if flushed > 0 {
		for i := 0; i < flushed; i++ {
			s.metrics.IncrementCounter(MetricEntriesFlushed, map[string]string{"log": holdingsLogName})
		}
		s.logger.LogEntriesFlushed(ctx, ownerID, holdingsLogName, flushed, remaining)
	}
	if err != nil {
		s.logger.LogPersistenceFailure(ctx, ownerID, "flush_holdings", err.Error(), remaining)
		return flushed, fmt.Errorf("failed to flush holdings: %w", err)
	}
	return flushed, nil
}

func (s *HoldingsLedgerService) List(ctx context.Context, ownerID string) ([]models.StockHolding, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}
	return s.log.list(ctx, ownerID)
}

func (s *HoldingsLedgerService) Summary(ctx context.Context, ownerID string) (*models.InvestmentSummary, error) {
	holdings, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &models.InvestmentSummary{
		Holdings:        models.AggregateBySymbol(holdings),
		TotalInvestment: models.TotalCost(holdings),
		PurchaseCount:   int64(len(holdings)),
	}, nil
}

func (s *HoldingsLedgerService) PendingOwners() []string {
	return s.log.pendingOwners()
}

func (s *HoldingsLedgerService) PendingCount(ownerID string) int {
	return s.log.pendingCount(ownerID)
}

func (s *HoldingsLedgerService) recordPending() {
	s.metrics.RecordGauge(MetricPendingEntries, float64(s.log.totalPending()), map[string]string{"log": holdingsLogName})
}
