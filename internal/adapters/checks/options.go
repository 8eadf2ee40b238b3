package checks

import (
	"net/http"
	"time"

	"github.com/ohack/teamforge/pkg/logger"
)

// Option applies a configuration option to a checker client.
type Option func(*client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.httpc.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *client) {
		if l != nil {
			c.logger = l
		}
	}
}
