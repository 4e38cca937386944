// Package main is the entry point for the vaultsetup CLI.
//
// vaultsetup provisions a cloud VM through the Orgo API and runs a fixed
// sequence of setup stages against it: system packages, git identity,
// repository clone, browser-use with a headless Chromium runtime, and a
// final screenshot.
//
// Commands: init, up, destroy, screenshot, doctor, version.
//
// For detailed usage information, run:
//
//	vaultsetup --help
package main

import (
	"fmt"
	"os"

	"github.com/prakshal-jain/vaultsetup/cmd/vaultsetup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
