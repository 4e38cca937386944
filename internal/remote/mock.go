package remote

import (
	"context"
	"strings"
	"sync"
)

// MockExecutor is a func-field mock implementation of Executor and
// Screenshotter for tests. Zero-value behavior succeeds with empty output.
type MockExecutor struct {
	RunFunc        func(ctx context.Context, command string) (*ExecResult, error)
	ScreenshotFunc func(ctx context.Context) ([]byte, error)

	mu       sync.Mutex
	commands []string
}

var (
	_ Executor      = (*MockExecutor)(nil)
	_ Screenshotter = (*MockExecutor)(nil)
)

func (m *MockExecutor) Run(ctx context.Context, command string) (*ExecResult, error) {
	m.mu.Lock()
	m.commands = append(m.commands, command)
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, command)
	}
	return &ExecResult{ExitCode: 0, Output: ""}, nil
}

func (m *MockExecutor) Screenshot(ctx context.Context) ([]byte, error) {
	if m.ScreenshotFunc != nil {
		return m.ScreenshotFunc(ctx)
	}
	return []byte("\x89PNG\r\n"), nil
}

// Commands returns all commands Run received, in order.
func (m *MockExecutor) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.commands))
	copy(out, m.commands)
	return out
}

// Saw reports whether any executed command contains the given substring.
func (m *MockExecutor) Saw(substr string) bool {
	for _, c := range m.Commands() {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// Rule maps a command substring to a canned result, for scripting mock
// behavior per command without writing a RunFunc by hand.
type Rule struct {
	Contains string
	Result   *ExecResult
	Err      error
}

// Script builds a RunFunc from rules. The first matching rule wins;
// commands matching no rule succeed with empty output.
func Script(rules ...Rule) func(ctx context.Context, command string) (*ExecResult, error) {
	return func(_ context.Context, command string) (*ExecResult, error) {
		for _, r := range rules {
			if strings.Contains(command, r.Contains) {
				if r.Err != nil {
					return nil, r.Err
				}
				return r.Result, nil
			}
		}
		return &ExecResult{ExitCode: 0, Output: ""}, nil
	}
}
