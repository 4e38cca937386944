package orgo

import (
	"context"
	"fmt"
	"time"

	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/prakshal-jain/vaultsetup/internal/util/poll"
)

// Session binds a ComputerManager to one computer. It is the handle the
// provisioning sequencer runs against and satisfies remote.Executor and
// remote.Screenshotter. A Session holds no connection state; every call
// goes through the API.
type Session struct {
	manager  ComputerManager
	computer *Computer
}

var (
	_ remote.Executor      = (*Session)(nil)
	_ remote.Screenshotter = (*Session)(nil)
)

// NewSession wraps an already-provisioned computer.
func NewSession(manager ComputerManager, computer *Computer) *Session {
	return &Session{manager: manager, computer: computer}
}

// Computer returns the underlying computer record.
func (s *Session) Computer() *Computer {
	return s.computer
}

// Run executes a shell command on the session's computer.
func (s *Session) Run(ctx context.Context, command string) (*remote.ExecResult, error) {
	return s.manager.Exec(ctx, s.computer.ID, command)
}

// Screenshot captures the computer's display.
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	return s.manager.Screenshot(ctx, s.computer.ID)
}

// Destroy deletes the session's computer.
func (s *Session) Destroy(ctx context.Context) error {
	return s.manager.DestroyComputer(ctx, s.computer.ID)
}

// WaitReady polls the API until the computer reports running status.
// A freshly created computer needs time to boot before it will accept
// commands.
func (s *Session) WaitReady(ctx context.Context, interval, timeout time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	attempts := int(timeout / interval)
	if attempts < 1 {
		attempts = 1
	}

	err := poll.Until(ctx, func(ctx context.Context) (bool, error) {
		computer, err := s.manager.GetComputer(ctx, s.computer.ID)
		if err != nil {
			return false, err
		}
		s.computer = computer
		return computer.Status == StatusRunning, nil
	}, poll.WithInterval(interval), poll.WithMaxAttempts(attempts))
	if err != nil {
		return fmt.Errorf("computer %s not ready within %v: %w", s.computer.ID, timeout, err)
	}
	return nil
}
