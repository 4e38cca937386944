package stages

import (
	"fmt"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// SystemPackages installs the base OS packages the later stages depend
// on: python, git, curl, and build tooling.
type SystemPackages struct{}

// NewSystemPackages creates the system package stage.
func NewSystemPackages() *SystemPackages {
	return &SystemPackages{}
}

// Name implements the provisioning.Stage interface.
func (s *SystemPackages) Name() string {
	return "system-packages"
}

// Run implements the provisioning.Stage interface. Each command is
// attempted even when an earlier one failed; a failure only degrades
// the stage.
func (s *SystemPackages) Run(ctx *provisioning.Context) error {
	commands := []string{
		"sudo apt-get update -qq",
		"sudo apt-get install -y -qq python3 python3-pip python3-venv git curl wget unzip",
		"sudo apt-get install -y -qq build-essential libssl-dev libffi-dev",
	}

	failed := 0
	for _, cmd := range commands {
		result, err := run(ctx, cmd)
		if err != nil {
			return err
		}
		if !result.Ok() {
			provisioning.LogCommandFailed(ctx.Observer, s.Name(), cmd, result.ExitCode)
			ctx.Observer.Printf("   output: %s", result.Output)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d package commands failed", failed, len(commands))
	}
	return nil
}
