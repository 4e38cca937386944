package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/prakshal-jain/vaultsetup/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// hasTTY reports whether a terminal is attached.
	hasTTY = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// defaultConfigYAML is written when no terminal is attached to run the
// wizard.
const defaultConfigYAML = `# vaultsetup configuration
# Credentials come from the environment, never from this file:
#   ORGO_API_KEY        (required)
#   ANTHROPIC_API_KEY   (optional, baked into the example script)

project: samantha-vault
name: vault-vm
ram: 4
cpu: 2
os: linux

repo:
  # Replace with your vault repository.
  url: https://github.com/Prakshal-Jain/example-vault.git
  dest: ~/vault

git:
  name: Samantha AI
  email: samantha@example.com

# ssh_key:
#   enabled: true

browser_use:
  enabled: true
  venv: ~/browser-use-env

example_script:
  enabled: true
  path: /root/browser-use-example.py

screenshot: vault-setup.png

# artifact:
#   endpoint: https://s3.example.com
#   region: us-east-1
#   bucket: vault-artifacts
#   prefix: screenshots
`

// Init runs the configuration wizard and writes the result to a file.
// Without a TTY it writes a commented default configuration instead.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	if !hasTTY() {
		if err := os.WriteFile(outputPath, []byte(defaultConfigYAML), 0o644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
		fmt.Printf("No terminal attached; wrote a default configuration to %s. Edit it before running `vaultsetup up`.\n", outputPath)
		return nil
	}

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	if err := writeConfig(result.ToConfig(), outputPath); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", outputPath)
	fmt.Println("Set ORGO_API_KEY and run `vaultsetup up` to provision the computer.")
	return nil
}
