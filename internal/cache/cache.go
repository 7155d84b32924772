// Package cache provides a read-through TTL cache for materialized tables.
// The handle is passed explicitly to whoever needs it; there is no package
// state. Writers call Invalidate so the next read sees fresh data.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL matches the store's staleness budget: reads may serve data up
// to five minutes old unless a write invalidated the cache first.
const DefaultTTL = 5 * time.Minute

type Loader[T any] func(ctx context.Context) ([]T, error)

// Table caches one materialized table in front of a loader.
type Table[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	load      Loader[T]
	data      []T
	fetchedAt time.Time
	valid     bool
}

func NewTable[T any](ttl time.Duration, load Loader[T]) *Table[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Table[T]{ttl: ttl, load: load}
}

// Get returns the cached table, loading through on miss or expiry. Callers
// get a copy of the slice header's backing array, so appends on their side
// never reach the cache.
func (t *Table[T]) Get(ctx context.Context) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.valid && time.Since(t.fetchedAt) < t.ttl {
		return append([]T(nil), t.data...), nil
	}

	data, err := t.load(ctx)
	if err != nil {
		// Serve nothing rather than stale data on a failed refresh.
		return nil, err
	}
	t.data = data
	t.fetchedAt = time.Now()
	t.valid = true
	return append([]T(nil), t.data...), nil
}

// Invalidate drops the cached table so the next Get reloads.
func (t *Table[T]) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.valid = false
	t.data = nil
}
