// Package config defines the configuration structure and loading for vaultsetup.
package config

import (
	"fmt"
	"strings"
)

// Config holds the full setup configuration.
type Config struct {
	// Project is the Orgo project the computer is created in.
	Project string `mapstructure:"project" yaml:"project"`

	// Name is the computer's display name.
	Name string `mapstructure:"name" yaml:"name"`

	// RAM is the computer's memory in GB. Default: 4.
	RAM int `mapstructure:"ram" yaml:"ram"`

	// CPU is the computer's vCPU count. Default: 2.
	CPU int `mapstructure:"cpu" yaml:"cpu"`

	// OS is the computer's operating system. Default: linux.
	OS string `mapstructure:"os" yaml:"os"`

	// Repo is the repository cloned onto the computer.
	Repo RepoConfig `mapstructure:"repo" yaml:"repo"`

	// Git is the version-control identity configured on the computer.
	Git GitConfig `mapstructure:"git" yaml:"git"`

	// SSHKey controls local key generation and installation on the computer.
	SSHKey SSHKeyConfig `mapstructure:"ssh_key" yaml:"ssh_key"`

	// SSH selects direct SSH command transport instead of the Orgo exec
	// endpoint. Optional; screenshots still go through the API.
	SSH *SSHConfig `mapstructure:"ssh" yaml:"ssh,omitempty"`

	// BrowserUse controls the browser-use + Chromium installation.
	BrowserUse BrowserUseConfig `mapstructure:"browser_use" yaml:"browser_use"`

	// ExampleScript controls writing the browser-use example script.
	ExampleScript ExampleScriptConfig `mapstructure:"example_script" yaml:"example_script"`

	// Screenshot is the local path the final screenshot is written to.
	// Default: vault-setup.png.
	Screenshot string `mapstructure:"screenshot" yaml:"screenshot"`

	// Artifact configures optional screenshot upload to object storage.
	Artifact *ArtifactConfig `mapstructure:"artifact" yaml:"artifact,omitempty"`
}

// RepoConfig identifies the repository cloned onto the computer.
type RepoConfig struct {
	// URL is the clone URL. HTTPS for public repositories; SSH URLs
	// require ssh_key.enabled and the public key registered with the host.
	URL string `mapstructure:"url" yaml:"url"`

	// Dest is the clone destination on the computer. Default: ~/vault.
	Dest string `mapstructure:"dest" yaml:"dest"`
}

// GitConfig is the git identity configured on the computer.
type GitConfig struct {
	// Name is the commit author name. Default: "Samantha AI".
	Name string `mapstructure:"name" yaml:"name"`

	// Email is the commit author email. Default: samantha@example.com.
	Email string `mapstructure:"email" yaml:"email"`
}

// SSHKeyConfig controls the optional SSH key stage.
type SSHKeyConfig struct {
	// Enabled generates an RSA key pair locally and installs the public
	// key on the computer. The public key is printed so the operator can
	// register it with the git host. Default: false.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// SSHConfig selects SSH as the command transport for computers that
// expose it directly. The private key is typically the one a previous
// run with ssh_key.enabled generated.
type SSHConfig struct {
	// Host is the computer's SSH address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the SSH port. Default: 22.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the login user. Default: root.
	User string `mapstructure:"user" yaml:"user"`

	// KeyFile is the path to the private key on the local machine.
	// Default: vaultsetup_id_rsa, the file the key stage writes.
	KeyFile string `mapstructure:"key_file" yaml:"key_file"`
}

// BrowserUseConfig controls the browser-use installation stage.
type BrowserUseConfig struct {
	// Enabled installs browser-use, Playwright, and Chromium. Defaults to
	// true; a nil pointer means unset.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`

	// Venv is the Python virtual environment directory on the computer.
	// Default: ~/browser-use-env.
	Venv string `mapstructure:"venv" yaml:"venv"`
}

// ExampleScriptConfig controls the generated example script.
type ExampleScriptConfig struct {
	// Enabled writes the example script after a successful browser-use
	// install. Defaults to true; a nil pointer means unset.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is where the script is written on the computer.
	// Default: /root/browser-use-example.py.
	Path string `mapstructure:"path" yaml:"path"`
}

// ArtifactConfig describes an S3-compatible upload target for the
// screenshot. Credentials come from ARTIFACT_ACCESS_KEY and
// ARTIFACT_SECRET_KEY, never from the config file.
type ArtifactConfig struct {
	// Endpoint is the S3-compatible endpoint URL. Empty targets AWS S3.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Region is the bucket region.
	Region string `mapstructure:"region" yaml:"region"`

	// Bucket is the target bucket name.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`

	// Prefix is prepended to uploaded object keys.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
}

// BrowserUseEnabled reports the effective browser_use.enabled value.
func (c *Config) BrowserUseEnabled() bool {
	return c.BrowserUse.Enabled == nil || *c.BrowserUse.Enabled
}

// ExampleScriptEnabled reports the effective example_script.enabled value.
func (c *Config) ExampleScriptEnabled() bool {
	return c.ExampleScript.Enabled == nil || *c.ExampleScript.Enabled
}

// Validate checks the configuration and returns a detailed error if
// validation fails.
func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.RAM < 1 {
		return fmt.Errorf("ram must be at least 1 GB, got %d", c.RAM)
	}
	if c.CPU < 1 {
		return fmt.Errorf("cpu must be at least 1, got %d", c.CPU)
	}
	if c.Repo.URL == "" {
		return fmt.Errorf("repo.url is required")
	}
	if strings.HasPrefix(c.Repo.URL, "git@") && !c.SSHKey.Enabled {
		return fmt.Errorf("repo.url uses SSH but ssh_key.enabled is false")
	}
	if c.SSH != nil && c.SSH.Host == "" {
		return fmt.Errorf("ssh.host is required when ssh is configured")
	}
	if c.Artifact != nil {
		if c.Artifact.Bucket == "" {
			return fmt.Errorf("artifact.bucket is required when artifact is configured")
		}
		if c.Artifact.Region == "" {
			return fmt.Errorf("artifact.region is required when artifact is configured")
		}
	}
	return nil
}

// applyDefaults fills unset fields with their documented defaults.
func (c *Config) applyDefaults() {
	if c.RAM == 0 {
		c.RAM = 4
	}
	if c.CPU == 0 {
		c.CPU = 2
	}
	if c.OS == "" {
		c.OS = "linux"
	}
	if c.Repo.Dest == "" {
		c.Repo.Dest = "~/vault"
	}
	if c.Git.Name == "" {
		c.Git.Name = "Samantha AI"
	}
	if c.Git.Email == "" {
		c.Git.Email = "samantha@example.com"
	}
	if c.SSH != nil {
		if c.SSH.User == "" {
			c.SSH.User = "root"
		}
		if c.SSH.KeyFile == "" {
			c.SSH.KeyFile = "vaultsetup_id_rsa"
		}
	}
	if c.BrowserUse.Venv == "" {
		c.BrowserUse.Venv = "~/browser-use-env"
	}
	if c.ExampleScript.Path == "" {
		c.ExampleScript.Path = "/root/browser-use-example.py"
	}
	if c.Screenshot == "" {
		c.Screenshot = "vault-setup.png"
	}
}
