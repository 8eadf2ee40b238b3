package config

import (
	"errors"
)

// Sentinel kinds so callers can errors.Is on config failures.
var (
	// ErrLoadConfig wraps provider failures (unreadable file, bad YAML).
	ErrLoadConfig = errors.New("load config failed")

	// ErrInvalidConfig wraps validation failures on loaded values.
	ErrInvalidConfig = errors.New("invalid config")
)
