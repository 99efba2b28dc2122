package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// PersistenceRetryJob periodically flushes ledger entries whose write to the
// store failed.
type PersistenceRetryJob struct {
	cron     *cron.Cron
	flushers map[string]PendingFlusherInterface
	timeout  time.Duration
	logger   *slog.Logger
	mu       sync.Mutex
	running  bool
}

func NewPersistenceRetryJob(flushers map[string]PendingFlusherInterface, timeout time.Duration, logger *slog.Logger) *PersistenceRetryJob {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PersistenceRetryJob{
		cron:     cron.New(),
		flushers: flushers,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "persistence_retry")),
	}
}

// Start registers the job with a cron schedule such as "@every 1m"
func (j *PersistenceRetryJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Warn("pending entries remain after retry", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule persistence retry: %w", err)
	}

	j.cron.Start()
	j.logger.Info("persistence retry scheduled", slog.String("schedule", schedule))
	return nil
}

func (j *PersistenceRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("persistence retry stopped")
}

// RunOnce flushes every owner with pending entries and returns how many
// entries reached the store. Overlapping runs are skipped.
func (j *PersistenceRetryJob) RunOnce(ctx context.Context) (int, error) {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return 0, nil
	}
	j.running = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.running = false
		j.mu.Unlock()
	}()

	total := 0
	var errs []error
	for name, flusher := range j.flushers {
		for _, ownerID := range flusher.PendingOwners() {
			flushed, err := flusher.Flush(ctx, ownerID)
			total += flushed
			if err != nil {
				errs = append(errs, fmt.Errorf("%s/%s: %w", name, ownerID, err))
			}
		}
	}

	if total > 0 {
		j.logger.Info("pending entries persisted", slog.Int("flushed", total))
	}
	return total, errors.Join(errs...)
}
