// Package debounce schedules trailing-edge debounced work per key.
//
// Each key has at most one pending invocation: scheduling again before the
// delay elapses replaces the previous callback and restarts the timer, so
// a burst of edits produces exactly one invocation for the last edit.
package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/ohack/teamforge/pkg/logger"
	"github.com/ohack/teamforge/pkg/metrics"
)

// DefaultDelay is the trailing-edge delay applied when no option overrides it.
const DefaultDelay = 800 * time.Millisecond

// Debouncer coalesces per-key work onto a single trailing invocation.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[string]*time.Timer
	closed bool

	// Callbacks run on this context, not the (short-lived) caller context.
	ctx    context.Context
	cancel context.CancelFunc

	logger logger.Logger
}

// New creates a debouncer with the default delay.
func New(opts ...Option) *Debouncer {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Debouncer{
		delay:  DefaultDelay,
		timers: make(map[string]*time.Timer),
		ctx:    ctx,
		cancel: cancel,
		logger: logger.Get().Named("debounce"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule arranges for fn to run after the configured delay. A pending
// invocation for the same key is superseded and never runs. The callback
// receives the debouncer's own context, which outlives the caller's
// request but ends when the debouncer closes.
func (d *Debouncer) Schedule(key string, fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if prev, ok := d.timers[key]; ok {
		prev.Stop()
		metrics.RecordDebounceSuperseded(key)
		d.logger.Debug(d.ctx, "superseded pending invocation", logger.String("key", key))
	}

	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A fired timer may reach here after a replacement was installed
		// for the same key; only the owning timer may drop the map entry.
		if d.timers[key] == timer {
			delete(d.timers, key)
		}
		closed := d.closed
		d.mu.Unlock()
		if closed {
			return
		}
		metrics.RecordDebounceFired(key)
		fn(d.ctx)
	})
	d.timers[key] = timer
	metrics.RecordDebounceScheduled(key)
}

// Cancel drops any pending invocation for key. Returns true if one was
// pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	timer, ok := d.timers[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(d.timers, key)
	return true
}

// Pending returns the number of keys with an unfired invocation.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Close stops all pending timers and cancels the callback context. The
// debouncer accepts no further work after closing.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.cancel()
}
