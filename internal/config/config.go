// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TeamSize sets the target team size for greedy formation.
	TeamSize int `koanf:"team_size"`

	// ShardCount configures the number of shards in the roster store.
	ShardCount int `koanf:"shard_count"`

	// DebounceMS sets the trailing-edge debounce delay for remote
	// handle checks, in milliseconds.
	DebounceMS int `koanf:"debounce_ms"`

	// CheckTimeoutMS bounds a single outbound GitHub/Slack check.
	CheckTimeoutMS int `koanf:"check_timeout_ms"`

	// GithubAPIURL and SlackAPIURL point at the handle verification
	// services. Overridable for staging and tests.
	GithubAPIURL string `koanf:"github_api_url"`
	SlackAPIURL  string `koanf:"slack_api_url"`

	// SessionTTLMS sets how long an untouched wizard session survives
	// before the reaper abandons it.
	SessionTTLMS int `koanf:"session_ttl_ms"`
}

// New creates a Config populated with service defaults.
func New() *Config {
	c := &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		TeamSize:       4,
		ShardCount:     8,
		DebounceMS:     800,
		CheckTimeoutMS: 8_000,
		GithubAPIURL:   "https://api.github.com/users",
		SlackAPIURL:    "https://slack.ohack.dev/api/channels",
		SessionTTLMS:   1_800_000,
	}
	return c
}
