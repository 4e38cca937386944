// Package remote defines the command-execution abstraction the setup
// stages run against, decoupling them from how the VM is reached.
//
// Two implementations exist: the Orgo API session (internal/platform/orgo),
// which executes commands through the cloud provider's exec endpoint, and
// the SSH executor in this package for VMs that expose SSH directly.
package remote

import "context"

// ExecResult is the outcome of one remote command: the command's exit
// status and its combined stdout/stderr text. A non-zero exit status is
// data, not an error; errors are reserved for transport failures.
type ExecResult struct {
	ExitCode int
	Output   string
}

// Ok reports whether the command exited successfully.
func (r *ExecResult) Ok() bool {
	return r.ExitCode == 0
}

// Executor runs shell commands on a remote machine.
type Executor interface {
	// Run executes a shell command and returns its result. The returned
	// error indicates a transport or session failure; command failures are
	// reported via ExecResult.ExitCode.
	Run(ctx context.Context, command string) (*ExecResult, error)
}

// Screenshotter captures the remote machine's display.
type Screenshotter interface {
	// Screenshot returns a PNG image of the current display.
	Screenshot(ctx context.Context) ([]byte, error)
}
