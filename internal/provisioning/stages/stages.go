package stages

import (
	"fmt"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
)

// ForConfig returns the ordered stage list for a setup run. Gated stages
// are always present; they skip themselves at run time based on config
// and earlier results, so every run produces a report with the same
// stage names.
func ForConfig() []provisioning.Stage {
	return []provisioning.Stage{
		NewSystemPackages(),
		NewGitConfig(),
		NewSSHKey(),
		NewCloneRepo(),
		NewRepoDeps(),
		NewBrowserUse(),
		NewExampleScript(),
		NewScreenshot(),
		NewArtifactUpload(),
	}
}

// run executes one remote command. A transport failure is an error; a
// non-zero remote exit status is returned in the result for the caller
// to interpret.
func run(ctx *provisioning.Context, command string) (*remote.ExecResult, error) {
	result, err := ctx.Exec.Run(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("remote execution failed: %w", err)
	}
	return result, nil
}
