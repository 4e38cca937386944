package commands

import (
	"github.com/spf13/cobra"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/handlers"
)

// Doctor returns the doctor command.
//
// Doctor runs the preflight checks a setup run depends on: the Orgo
// credential is present, the API is reachable, and artifact storage
// credentials are usable when an artifact target is configured.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check credentials and API connectivity before a run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")

	return cmd
}
