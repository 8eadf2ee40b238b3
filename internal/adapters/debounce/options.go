package debounce

import (
	"time"

	"github.com/ohack/teamforge/pkg/logger"
)

// Option applies a configuration option to the Debouncer.
type Option func(*Debouncer)

// WithDelay sets the trailing-edge delay. Zero means fire on the next
// timer tick, which tests rely on; negative values are ignored.
func WithDelay(delay time.Duration) Option {
	return func(d *Debouncer) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithLogger sets a custom logger for the debouncer.
func WithLogger(l logger.Logger) Option {
	return func(d *Debouncer) {
		if l != nil {
			d.logger = l
		}
	}
}
