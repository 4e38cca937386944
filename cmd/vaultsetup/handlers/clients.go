// Package handlers implements the command logic behind the CLI.
//
// Handlers are framework-agnostic: they take plain arguments, not cobra
// commands. External collaborators are created through package-level
// factory variables so tests can substitute mocks.
package handlers

import (
	"fmt"
	"os"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/platform/orgo"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
)

// Factory function variables - can be replaced in tests.
var (
	// loadCredentials reads secrets from the environment.
	loadCredentials = config.LoadCredentials

	// newComputerManager builds the Orgo API client.
	newComputerManager = func(creds *config.Credentials) (orgo.ComputerManager, error) {
		var opts []orgo.ClientOption
		if creds.BaseURL != "" {
			opts = append(opts, orgo.WithBaseURL(creds.BaseURL))
		}
		return orgo.NewClient(creds.APIKey, opts...)
	}

	// newSSHExecutor builds the direct SSH transport from the config's
	// ssh block, reading the private key from disk.
	newSSHExecutor = func(sshCfg *config.SSHConfig) (remote.Executor, error) {
		key, err := os.ReadFile(sshCfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ssh key_file: %w", err)
		}
		return remote.NewSSHExecutor(&remote.SSHConfig{
			Host:       sshCfg.Host,
			Port:       sshCfg.Port,
			User:       sshCfg.User,
			PrivateKey: key,
		})
	}
)

// loadConfig loads the configuration from the given path, falling back
// to the default file in the working directory.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf("%w (run `vaultsetup init` to create one)", err)
		}
		path = found
	}
	return config.LoadFile(path)
}
