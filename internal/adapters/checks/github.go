package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ohack/teamforge/pkg/logger"
	"github.com/ohack/teamforge/pkg/metrics"
)

// Fallback message when the GitHub check cannot complete.
const githubFallbackMessage = "Unable to verify GitHub username. Please try again."

// GithubChecker verifies that a GitHub username exists via the portal's
// validation endpoint.
type GithubChecker struct {
	client
}

// NewGithubChecker creates a checker against baseURL, e.g.
// "https://api.example.org/validate/github".
func NewGithubChecker(baseURL string, opts ...Option) *GithubChecker {
	return &GithubChecker{client: newClient(baseURL, "checks.github", opts...)}
}

// githubResponse mirrors the remote check's wire shape.
type githubResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Check validates the username remotely. Fail-closed on any failure.
func (g *GithubChecker) Check(ctx context.Context, username string) Result {
	endpoint := fmt.Sprintf("%s/%s", g.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return g.failClosed(ctx, username, err)
	}

	start := time.Now()
	resp, err := g.httpc.Do(req)
	metrics.RecordRemoteCheckLatency("github", float64(time.Since(start).Milliseconds()))
	if err != nil {
		return g.failClosed(ctx, username, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return g.failClosed(ctx, username, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var wire githubResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return g.failClosed(ctx, username, fmt.Errorf("decode response: %w", err))
	}

	metrics.RecordRemoteCheck("github", wire.Valid)
	message := wire.Message
	if message == "" && !wire.Valid {
		message = "GitHub username not found."
	}
	return Result{Valid: wire.Valid, Message: message}
}

func (g *GithubChecker) failClosed(ctx context.Context, username string, err error) Result {
	metrics.RecordRemoteCheckFailure("github")
	g.logger.Error(ctx, "github check failed",
		logger.String("username", username),
		logger.Error(err),
	)
	return Result{Valid: false, Message: githubFallbackMessage}
}
