package commands

import (
	"github.com/spf13/cobra"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/handlers"
)

// Up returns the up command.
//
// Up creates an Orgo computer and runs the full setup sequence against
// it: system packages, git identity, optional SSH key, repository clone,
// repository dependencies, browser-use install, example script,
// screenshot, and optional artifact upload. A failed stage degrades the
// run but does not stop it.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create a computer and run the full setup sequence",
		Long: `Up provisions a new Orgo computer and drives the setup stages.

The ORGO_API_KEY environment variable must be set. A stage failure is
reported but does not stop the run; VM creation failure does.

The computer is left running afterwards. Destroy it explicitly:

  vaultsetup destroy --id <computer-id>`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: vaultsetup.yaml in the working directory)")

	return cmd
}
