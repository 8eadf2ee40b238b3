// Package sequence tracks per-key monotonic sequence numbers so that only
// the most recently issued asynchronous operation for a key may publish
// its result.
package sequence

import (
	"context"
	"sync"
)

// Tracker issues sequence numbers per key and answers whether a given
// number is still the latest. A stale number means a newer operation has
// since been scheduled and the older result must be discarded.
type Tracker interface {
	// Issue allocates the next sequence number for key.
	Issue(ctx context.Context, key string) uint64

	// IsCurrent reports whether seq is the latest number issued for key.
	// Unknown keys are never current.
	IsCurrent(ctx context.Context, key string, seq uint64) bool

	// Size returns the number of tracked keys.
	Size() int
}

// inMemoryTracker implements Tracker with a mutex-guarded map. Keys are
// few (one per validated field) so no eviction is needed.
type inMemoryTracker struct {
	mu     sync.RWMutex
	latest map[string]uint64
}

// NewTracker creates an in-memory sequence tracker.
func NewTracker() Tracker {
	return &inMemoryTracker{
		latest: make(map[string]uint64),
	}
}

func (t *inMemoryTracker) Issue(_ context.Context, key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[key]++
	return t.latest[key]
}

func (t *inMemoryTracker) IsCurrent(_ context.Context, key string, seq uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	current, ok := t.latest[key]
	return ok && current == seq
}

func (t *inMemoryTracker) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.latest)
}
