package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ownerLog is an append-only, per-owner ordered log kept in memory and
// written through to the store. Entries whose write failed stay in memory
// as pending until a flush persists them, always in insertion order.
type ownerLog[T any] struct {
	mu      sync.Mutex
	owners  map[string]*ownerEntries[T]
	load    func(ctx context.Context, ownerID string) ([]T, error)
	persist func(ctx context.Context, entry *T) error
}

type ownerEntries[T any] struct {
	mu      sync.Mutex
	loaded  bool
	entries []T
	pending []int
}

func newOwnerLog[T any](
	load func(ctx context.Context, ownerID string) ([]T, error),
	persist func(ctx context.Context, entry *T) error,
) *ownerLog[T] {
	return &ownerLog[T]{
		owners:  make(map[string]*ownerEntries[T]),
		load:    load,
		persist: persist,
	}
}

func (l *ownerLog[T]) entriesFor(ownerID string) *ownerEntries[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	oe, ok := l.owners[ownerID]
	if !ok {
		oe = &ownerEntries[T]{}
		l.owners[ownerID] = oe
	}
	return oe
}

// ensureLoaded must be called with oe.mu held
func (l *ownerLog[T]) ensureLoaded(ctx context.Context, ownerID string, oe *ownerEntries[T]) error {
	if oe.loaded {
		return nil
	}
	stored, err := l.load(ctx, ownerID)
	if err != nil {
		return err
	}
	oe.entries = stored
	oe.loaded = true
	return nil
}

// append builds the next entry with sequence = position in the owner log,
// keeps it in memory, then persists it. When persistence fails the entry is
// still returned together with the error.
func (l *ownerLog[T]) append(ctx context.Context, ownerID string, build func(sequence int64) (*T, error)) (*T, int, error) {
	oe := l.entriesFor(ownerID)
	oe.mu.Lock()
	defer oe.mu.Unlock()

	if err := l.ensureLoaded(ctx, ownerID, oe); err != nil {
		return nil, len(oe.pending), err
	}

	entry, err := build(int64(len(oe.entries) + 1))
	if err != nil {
		return nil, len(oe.pending), err
	}

	oe.entries = append(oe.entries, *entry)
	idx := len(oe.entries) - 1
	appended := oe.entries[idx]

	// earlier pending entries go first so the store keeps insertion order
	if len(oe.pending) > 0 {
		oe.pending = append(oe.pending, idx)
		if _, err := l.flushLocked(ctx, oe); err != nil {
			return &appended, len(oe.pending), err
		}
		return &appended, 0, nil
	}

	if err := l.persist(ctx, &oe.entries[idx]); err != nil {
		oe.pending = append(oe.pending, idx)
		return &appended, len(oe.pending), err
	}
	return &appended, 0, nil
}

// flushLocked must be called with oe.mu held
func (l *ownerLog[T]) flushLocked(ctx context.Context, oe *ownerEntries[T]) (int, error) {
	flushed := 0
	for len(oe.pending) > 0 {
		idx := oe.pending[0]
		if err := l.persist(ctx, &oe.entries[idx]); err != nil {
			return flushed, err
		}
		oe.pending = oe.pending[1:]
		flushed++
	}
	oe.pending = nil
	return flushed, nil
}

func (l *ownerLog[T]) flush(ctx context.Context, ownerID string) (int, int, error) {
	oe := l.entriesFor(ownerID)
	oe.mu.Lock()
	defer oe.mu.Unlock()

	flushed, err := l.flushLocked(ctx, oe)
	return flushed, len(oe.pending), err
}

func (l *ownerLog[T]) list(ctx context.Context, ownerID string) ([]T, error) {
	oe := l.entriesFor(ownerID)
	oe.mu.Lock()
	defer oe.mu.Unlock()

	if err := l.ensureLoaded(ctx, ownerID, oe); err != nil {
		return nil, fmt.Errorf("failed to load log: %w", err)
	}

	out := make([]T, len(oe.entries))
	copy(out, oe.entries)
	return out, nil
}

func (l *ownerLog[T]) pendingCount(ownerID string) int {
	oe := l.entriesFor(ownerID)
	oe.mu.Lock()
	defer oe.mu.Unlock()
	return len(oe.pending)
}

func (l *ownerLog[T]) totalPending() int {
	total := 0
	for _, ownerID := range l.ownerIDs() {
		total += l.pendingCount(ownerID)
	}
	return total
}

func (l *ownerLog[T]) pendingOwners() []string {
	var owners []string
	for _, ownerID := range l.ownerIDs() {
		if l.pendingCount(ownerID) > 0 {
			owners = append(owners, ownerID)
		}
	}
	return owners
}

func (l *ownerLog[T]) ownerIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]string, 0, len(l.owners))
	for id := range l.owners {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
