package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/prakshal-jain/vaultsetup/internal/util/retry"
)

const (
	defaultSSHPort     = 22
	defaultDialTimeout = 10 * time.Second
	defaultMaxRetries  = 10
	defaultRetryDelay  = 5 * time.Second
	defaultMaxDelay    = 10 * time.Second
)

// SSHConfig holds SSH executor configuration.
type SSHConfig struct {
	Host       string
	Port       int
	User       string
	PrivateKey []byte

	// DialTimeout is the timeout for establishing the TCP connection.
	// If zero, a default is used.
	DialTimeout time.Duration

	// MaxRetries is the maximum number of connection attempts. Freshly
	// provisioned VMs can take a while to accept connections.
	MaxRetries int

	// RetryDelay is the initial delay between connection attempts.
	RetryDelay time.Duration

	// HostKeyCallback handles host key verification. If nil,
	// ssh.InsecureIgnoreHostKey() is used, which is acceptable for
	// ephemeral VMs that are destroyed after use.
	HostKeyCallback ssh.HostKeyCallback
}

// SSHExecutor runs commands on a remote host over SSH. It parses the
// private key once during construction and dials per Run call.
type SSHExecutor struct {
	config *SSHConfig
	signer ssh.Signer
}

var _ Executor = (*SSHExecutor)(nil)

// NewSSHExecutor creates an SSH executor and validates the private key.
func NewSSHExecutor(cfg *SSHConfig) (*SSHExecutor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("config host cannot be empty")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("config user cannot be empty")
	}
	if len(cfg.PrivateKey) == 0 {
		return nil, fmt.Errorf("config private key cannot be empty")
	}

	// Copy config to avoid mutating the caller's struct.
	configCopy := *cfg
	if configCopy.Port == 0 {
		configCopy.Port = defaultSSHPort
	}
	if configCopy.DialTimeout == 0 {
		configCopy.DialTimeout = defaultDialTimeout
	}
	if configCopy.MaxRetries == 0 {
		configCopy.MaxRetries = defaultMaxRetries
	}
	if configCopy.RetryDelay == 0 {
		configCopy.RetryDelay = defaultRetryDelay
	}
	if configCopy.HostKeyCallback == nil {
		configCopy.HostKeyCallback = ssh.InsecureIgnoreHostKey() //nolint:gosec // Ephemeral VMs only
	}

	signer, err := ssh.ParsePrivateKey(configCopy.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &SSHExecutor{
		config: &configCopy,
		signer: signer,
	}, nil
}

// Run executes a command on the remote host. A command that exits
// non-zero produces an ExecResult with the exit code, not an error.
func (e *SSHExecutor) Run(ctx context.Context, command string) (*ExecResult, error) {
	client, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH session on %s: %w", e.config.Host, err)
	}
	defer func() { _ = session.Close() }()

	output, err := session.CombinedOutput(command)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return &ExecResult{ExitCode: exitErr.ExitStatus(), Output: string(output)}, nil
		}
		return nil, fmt.Errorf("command failed on %s: %w\nCommand: %s\nOutput: %s",
			e.config.Host, err, command, string(output))
	}

	return &ExecResult{ExitCode: 0, Output: string(output)}, nil
}

// connect establishes the SSH connection with backoff.
func (e *SSHExecutor) connect(ctx context.Context) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: e.config.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(e.signer),
		},
		HostKeyCallback: e.config.HostKeyCallback,
		Timeout:         e.config.DialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	var client *ssh.Client

	err := retry.WithExponentialBackoff(ctx, func() error {
		var dialErr error
		client, dialErr = ssh.Dial("tcp", addr, config)
		return dialErr
	},
		retry.WithMaxAttempts(e.config.MaxRetries),
		retry.WithInitialDelay(e.config.RetryDelay),
		retry.WithMaxDelay(defaultMaxDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to establish SSH connection to %s after %d attempts: %w",
			addr, e.config.MaxRetries, err)
	}

	return client, nil
}
