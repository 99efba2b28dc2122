package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

type budgetSession struct {
	mu       sync.Mutex
	snapshot models.BudgetSnapshot
	unsaved  bool
}

type BudgetLedgerService struct {
	mu       sync.Mutex
	sessions map[string]*budgetSession
	repo     repositories.BudgetRepositoryInterface
	txLog    TransactionLogServiceInterface
	logger   LedgerLoggerInterface
	metrics  MetricsRecorderInterface
}

func NewBudgetLedgerService(
	repo repositories.BudgetRepositoryInterface,
	txLog TransactionLogServiceInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetLedgerServiceInterface {
	return &BudgetLedgerService{
		sessions: make(map[string]*budgetSession),
		repo:     repo,
		txLog:    txLog,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *BudgetLedgerService) sessionFor(ownerID string) *budgetSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ownerID]
	if !ok {
		sess = &budgetSession{}
		s.sessions[ownerID] = sess
	}
	return sess
}

// restoreLocked loads a persisted snapshot into an empty session. It must be
// called with sess.mu held. A missing budget leaves the session empty.
func (s *BudgetLedgerService) restoreLocked(ctx context.Context, ownerID string, sess *budgetSession) (bool, error) {
	if !sess.snapshot.IsZero() {
		return false, nil
	}

	stored, err := s.repo.LoadBudget(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load budget: %w", err)
	}

	sess.snapshot = stored
	sess.unsaved = false
	return true, nil
}

// Initialize allocates income across categories. The first allocation wins:
// an owner that already has a budget, in session or in the store, gets it
// back unchanged.
func (s *BudgetLedgerService) Initialize(ctx context.Context, ownerID string, income decimal.Decimal, categories []models.Category) (*models.BudgetState, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}
	if len(categories) == 0 {
		categories = models.DefaultCategories()
	}

	sess := s.sessionFor(ownerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.snapshot.IsZero() {
		return s.stateLocked(ownerID, sess), nil
	}

	restored, err := s.restoreLocked(ctx, ownerID, sess)
	if err != nil {
		s.logger.LogPersistenceFailure(ctx, ownerID, "load_budget", err.Error(), 0)
		return nil, err
	}
	if restored {
		s.logger.LogBudgetInitialized(ctx, ownerID, sess.snapshot.Income.StringFixed(models.CurrencyPrecision), len(sess.snapshot.Lines), true)
		return s.stateLocked(ownerID, sess), nil
	}

	snapshot, err := models.NewBudgetSnapshot(income, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate budget: %w", err)
	}

	sess.snapshot = snapshot
	sess.unsaved = true
	s.logger.LogBudgetInitialized(ctx, ownerID, income.StringFixed(models.CurrencyPrecision), len(snapshot.Lines), false)

	state := s.stateLocked(ownerID, sess)
	state.Created = true
	return state, nil
}

// Spend applies a payment to the owner's budget. Business outcomes are
// reported in the result; the error is reserved for a missing budget and for
// store failures. A paid spend whose transaction could not be persisted is
// still applied and the error wraps ErrPersistenceUnavailable.
func (s *BudgetLedgerService) Spend(ctx context.Context, ownerID, category string, amount decimal.Decimal) (*models.SpendResult, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}
	category = strings.TrimSpace(category)

	sess := s.sessionFor(ownerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := s.restoreLocked(ctx, ownerID, sess); err != nil {
		return nil, err
	}
	if sess.snapshot.IsZero() {
		return nil, ErrBudgetNotInitialized
	}

	outcome, updated := sess.snapshot.Spend(category, amount)
	s.metrics.IncrementCounter(MetricSpendOutcome, map[string]string{"outcome": string(outcome)})
	s.logger.LogSpendOutcome(ctx, ownerID, category, amount.String(), outcome)

	result := &models.SpendResult{Outcome: outcome}
	if !outcome.IsPaid() {
		result.Snapshot = sess.snapshot.Clone()
		return result, nil
	}

	txn, err := s.txLog.Append(ctx, ownerID, category, amount)
	if txn == nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	sess.snapshot = updated
	sess.unsaved = true
	result.Snapshot = updated.Clone()
	result.Transaction = txn

	return result, err
}

// Reconcile writes the session snapshot to the store in one replace
func (s *BudgetLedgerService) Reconcile(ctx context.Context, ownerID string) (*models.BudgetState, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}

	start := time.Now()
	sess := s.sessionFor(ownerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.snapshot.IsZero() {
		return nil, ErrBudgetNotInitialized
	}

	if err := s.repo.ReplaceBudget(ctx, ownerID, sess.snapshot); err != nil {
		s.metrics.IncrementCounter(MetricBudgetReconciled, map[string]string{"status": "failed"})
		s.metrics.IncrementCounter(MetricPersistenceFailure, map[string]string{"operation": "replace_budget"})
		s.logger.LogPersistenceFailure(ctx, ownerID, "replace_budget", err.Error(), 0)
		return nil, fmt.Errorf("failed to reconcile budget: %w", err)
	}

	sess.unsaved = false
	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricBudgetReconciled, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricReconcileDuration, duration)
	s.logger.LogBudgetReconciled(ctx, ownerID, len(sess.snapshot.Lines), duration.Milliseconds())

	return s.stateLocked(ownerID, sess), nil
}

func (s *BudgetLedgerService) Snapshot(ctx context.Context, ownerID string) (*models.BudgetState, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwner
	}

	sess := s.sessionFor(ownerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := s.restoreLocked(ctx, ownerID, sess); err != nil {
		return nil, err
	}
	if sess.snapshot.IsZero() {
		return nil, ErrBudgetNotInitialized
	}
	return s.stateLocked(ownerID, sess), nil
}

func (s *BudgetLedgerService) stateLocked(ownerID string, sess *budgetSession) *models.BudgetState {
	return &models.BudgetState{
		OwnerID:  ownerID,
		Snapshot: sess.snapshot.Clone(),
		Unsaved:  sess.unsaved,
	}
}
