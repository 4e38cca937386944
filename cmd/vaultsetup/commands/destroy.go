package commands

import (
	"github.com/spf13/cobra"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/handlers"
)

// Destroy returns the destroy command.
//
// Destroy deletes a computer by ID. Destroying an already-deleted
// computer succeeds, so the command is safe to repeat.
func Destroy() *cobra.Command {
	var computerID string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy a computer",
		Long: `Destroy deletes the computer and everything on it.

Example:
  vaultsetup destroy --id comp-abc123

WARNING: This operation is irreversible. All data on the computer is lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), computerID)
		},
	}

	cmd.Flags().StringVar(&computerID, "id", "", "Computer ID to destroy (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
