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

// Messages for the Slack channel availability check.
const (
	slackFallbackMessage = "Unable to verify Slack channel. Please try again."
	slackTakenMessage    = "That Slack channel already exists. Pick another name."
)

// SlackChecker verifies that a Slack channel name is available. The remote
// endpoint reports existence; an existing channel is *unavailable*, so
// exists=true maps to an invalid result.
type SlackChecker struct {
	client
}

// NewSlackChecker creates a checker against baseURL, e.g.
// "https://api.example.org/validate/slack".
func NewSlackChecker(baseURL string, opts ...Option) *SlackChecker {
	return &SlackChecker{client: newClient(baseURL, "checks.slack", opts...)}
}

// slackResponse mirrors the remote check's wire shape.
type slackResponse struct {
	Valid   bool   `json:"valid"`
	Exists  *bool  `json:"exists,omitempty"`
	Message string `json:"message,omitempty"`
}

// Check validates channel availability remotely. Fail-closed on any failure.
func (s *SlackChecker) Check(ctx context.Context, channel string) Result {
	endpoint := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(channel))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return s.failClosed(ctx, channel, err)
	}

	start := time.Now()
	resp, err := s.httpc.Do(req)
	metrics.RecordRemoteCheckLatency("slack", float64(time.Since(start).Milliseconds()))
	if err != nil {
		return s.failClosed(ctx, channel, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return s.failClosed(ctx, channel, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var wire slackResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return s.failClosed(ctx, channel, fmt.Errorf("decode response: %w", err))
	}

	valid := wire.Valid
	message := wire.Message
	if wire.Exists != nil && *wire.Exists {
		valid = false
		if message == "" {
			message = slackTakenMessage
		}
	}

	metrics.RecordRemoteCheck("slack", valid)
	return Result{Valid: valid, Message: message}
}

func (s *SlackChecker) failClosed(ctx context.Context, channel string, err error) Result {
	metrics.RecordRemoteCheckFailure("slack")
	s.logger.Error(ctx, "slack check failed",
		logger.String("channel", channel),
		logger.Error(err),
	)
	return Result{Valid: false, Message: slackFallbackMessage}
}
