package handlers

import (
	"context"
	"fmt"

	"github.com/prakshal-jain/vaultsetup/internal/util/preflight"
)

// Doctor handles the doctor command. It never aborts early: every check
// runs and reports, and the command fails only if a required check
// failed.
func Doctor(ctx context.Context, configPath string) error {
	// A missing config file is fine; doctor then only checks credentials
	// and connectivity.
	cfg, err := loadConfig(configPath)
	if err != nil {
		cfg = nil
	}

	// A missing credential is itself a finding, not an abort.
	creds, credsErr := loadCredentials()
	if credsErr != nil {
		creds = nil
	}

	var pinger preflight.APIPinger
	if creds != nil {
		manager, err := newComputerManager(creds)
		if err == nil {
			pinger, _ = manager.(preflight.APIPinger)
		}
	}

	results := preflight.Run(ctx, preflight.DefaultChecks(cfg, creds, pinger))

	for _, res := range results.Results {
		switch {
		case res.Passed():
			fmt.Printf("[OK] %s\n", res.Check.Name)
		case res.Check.Required:
			fmt.Printf("[!!] %s: %v (%s)\n", res.Check.Name, res.Err, res.Check.Hint)
		default:
			fmt.Printf("[--] %s: %v (%s)\n", res.Check.Name, res.Err, res.Check.Hint)
		}
	}

	return results.Error()
}
