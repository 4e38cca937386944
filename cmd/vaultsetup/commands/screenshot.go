package commands

import (
	"github.com/spf13/cobra"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/handlers"
)

// Screenshot returns the screenshot command for one-off captures of an
// existing computer.
func Screenshot() *cobra.Command {
	var (
		computerID string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture a screenshot of a running computer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Screenshot(cmd.Context(), computerID, outputPath)
		},
	}

	cmd.Flags().StringVar(&computerID, "id", "", "Computer ID (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "screenshot.png", "Local file the PNG is written to")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
