package provisioning

import (
	"context"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
)

// Stage defines the interface for one setup stage.
type Stage interface {
	// Name returns the human-readable name of this stage.
	Name() string

	// Run executes the stage against the target computer.
	Run(ctx *Context) error
}

// Context wraps all dependencies and state needed by setup stages.
type Context struct {
	context.Context
	Config   *config.Config
	Creds    *config.Credentials
	Timeouts *config.Timeouts
	State    *State
	Exec     remote.Executor
	Screen   remote.Screenshotter
	Observer Observer
}

// NewContext creates a setup context for a run against one computer.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	creds *config.Credentials,
	exec remote.Executor,
	screen remote.Screenshotter,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Creds:    creds,
		Timeouts: config.LoadTimeouts(),
		State:    NewState(),
		Exec:     exec,
		Screen:   screen,
		Observer: NewConsoleObserver(),
	}
}
