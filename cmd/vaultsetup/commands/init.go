package commands

import (
	"github.com/spf13/cobra"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "vaultsetup.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a setup configuration",
		Long: `Interactively create a setup configuration file.

This command guides you through configuring a setup run step by step:

  - Orgo project and computer name
  - Machine size (RAM and vCPU)
  - The repository to clone onto the computer
  - Git author identity
  - Whether to install browser-use and Chromium

Without a terminal attached, a commented default configuration is
written instead of running the wizard.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "vaultsetup.yaml", "Output file path")

	return cmd
}
