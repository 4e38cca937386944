// Package preflight verifies the environment before a setup run. It
// backs the doctor command: credentials present, API reachable, artifact
// store credentials available when an artifact target is configured.
package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/util/async"
)

// Check is a single named preflight verification.
type Check struct {
	// Name identifies the check in output.
	Name string

	// Required indicates whether a failure blocks setup.
	Required bool

	// Hint tells the user how to fix a failure.
	Hint string

	// Run performs the check.
	Run func(ctx context.Context) error
}

// Result contains the outcome of one check.
type Result struct {
	Check Check
	Err   error
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Results contains the outcomes of a full preflight pass.
type Results struct {
	Results []Result
}

// HasErrors returns true if any required check failed.
func (r *Results) HasErrors() bool {
	for _, res := range r.Results {
		if res.Check.Required && res.Err != nil {
			return true
		}
	}
	return false
}

// Error returns an error naming every failed required check, or nil.
func (r *Results) Error() error {
	var failed []string
	for _, res := range r.Results {
		if res.Check.Required && res.Err != nil {
			failed = append(failed, fmt.Sprintf("%s (%s)", res.Check.Name, res.Check.Hint))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("preflight failed: %s", strings.Join(failed, ", "))
}

// APIPinger verifies connectivity to the Orgo API.
type APIPinger interface {
	Ping(ctx context.Context) error
}

// DefaultChecks builds the standard preflight checks for a config.
// The API reachability check is skipped when pinger is nil.
func DefaultChecks(cfg *config.Config, creds *config.Credentials, pinger APIPinger) []Check {
	checks := []Check{
		{
			Name:     "orgo-api-key",
			Required: true,
			Hint:     "set " + config.EnvAPIKey,
			Run: func(ctx context.Context) error {
				if creds == nil || creds.APIKey == "" {
					return fmt.Errorf("%s is not set", config.EnvAPIKey)
				}
				return nil
			},
		},
		{
			Name:     "anthropic-api-key",
			Required: false,
			Hint:     "set " + config.EnvAnthropicKey + " to use the example script",
			Run: func(ctx context.Context) error {
				if creds == nil || creds.AnthropicKey == "" {
					return fmt.Errorf("%s is not set", config.EnvAnthropicKey)
				}
				return nil
			},
		},
	}

	if pinger != nil {
		checks = append(checks, Check{
			Name:     "orgo-api",
			Required: true,
			Hint:     "check network connectivity and " + config.EnvBaseURL,
			Run:      pinger.Ping,
		})
	}

	if cfg != nil && cfg.Artifact != nil {
		checks = append(checks, Check{
			Name:     "artifact-credentials",
			Required: true,
			Hint:     "set " + config.EnvArtifactAccessKey + " and " + config.EnvArtifactSecretKey,
			Run: func(ctx context.Context) error {
				if creds == nil || creds.ArtifactAccessKey == "" || creds.ArtifactSecretKey == "" {
					return fmt.Errorf("artifact credentials are not set")
				}
				return nil
			},
		})
	}

	return checks
}

// Run executes all checks concurrently and collects their results.
// Check order in the results matches the input order.
func Run(ctx context.Context, checks []Check) *Results {
	results := &Results{Results: make([]Result, len(checks))}

	tasks := make([]async.Task, len(checks))
	for i, check := range checks {
		tasks[i] = async.Task{
			Name: check.Name,
			Func: func(ctx context.Context) error {
				results.Results[i] = Result{Check: check, Err: check.Run(ctx)}
				return nil
			},
		}
	}

	// Task funcs always return nil; failures land in results instead.
	_ = async.RunParallel(ctx, tasks)

	return results
}
