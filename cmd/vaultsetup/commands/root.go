// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the vaultsetup CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaultsetup",
		Short: "Provision an Orgo VM with a vault repository and browser-use",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Up())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Screenshot())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())

	return cmd
}
