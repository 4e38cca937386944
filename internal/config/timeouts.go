package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout and polling values.
// These values can be customized via environment variables.
type Timeouts struct {
	Create            time.Duration // Timeout for computer creation
	Ready             time.Duration // Timeout waiting for the computer to accept commands
	Destroy           time.Duration // Timeout for destroy operations
	PollInterval      time.Duration // Interval between background-install log checks
	PollMaxAttempts   int           // Attempt budget for background-install polling
	PollProgressEvery int           // Emit a progress message every Nth attempt
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - ORGO_TIMEOUT_CREATE (default: 10m)
//   - ORGO_TIMEOUT_READY (default: 2m)
//   - ORGO_TIMEOUT_DESTROY (default: 5m)
//   - ORGO_POLL_INTERVAL (default: 10s)
//   - ORGO_POLL_MAX_ATTEMPTS (default: 60)
//   - ORGO_POLL_PROGRESS_EVERY (default: 6)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Create:            parseDuration("ORGO_TIMEOUT_CREATE", 10*time.Minute),
		Ready:             parseDuration("ORGO_TIMEOUT_READY", 2*time.Minute),
		Destroy:           parseDuration("ORGO_TIMEOUT_DESTROY", 5*time.Minute),
		PollInterval:      parseDuration("ORGO_POLL_INTERVAL", 10*time.Second),
		PollMaxAttempts:   parseInt("ORGO_POLL_MAX_ATTEMPTS", 60),
		PollProgressEvery: parseInt("ORGO_POLL_PROGRESS_EVERY", 6),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
