// Package checks implements the remote existence checks the team-creation
// wizard depends on: "does this GitHub username exist" and "is this Slack
// channel name available".
//
// Checks fail closed: any transport, status, or decode problem marks the
// value invalid with a fixed fallback message and is logged, never
// surfaced as an error to the caller.
package checks

import (
	"context"
	"net/http"
	"time"

	"github.com/ohack/teamforge/pkg/logger"
)

// DefaultTimeout bounds a single remote check request.
const DefaultTimeout = 8 * time.Second

// Result is the outcome of a remote existence check.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Checker performs a remote existence check for a single field value.
type Checker interface {
	// Check validates value remotely. It always returns a usable Result;
	// failures collapse to an invalid result with a fallback message.
	Check(ctx context.Context, value string) Result
}

// client carries the pieces shared by the concrete checkers.
type client struct {
	baseURL string
	httpc   *http.Client
	logger  logger.Logger
}

func newClient(baseURL, name string, opts ...Option) client {
	c := client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: DefaultTimeout},
		logger:  logger.Get().Named(name),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
