package orgo

import (
	"context"

	"github.com/prakshal-jain/vaultsetup/internal/remote"
)

// MockManager is a func-field mock implementation of ComputerManager for
// tests. Zero-value behavior returns sensible defaults.
type MockManager struct {
	CreateComputerFunc  func(ctx context.Context, opts CreateOpts) (*Computer, error)
	GetComputerFunc     func(ctx context.Context, id string) (*Computer, error)
	DestroyComputerFunc func(ctx context.Context, id string) error
	ExecFunc            func(ctx context.Context, id, command string) (*remote.ExecResult, error)
	ScreenshotFunc      func(ctx context.Context, id string) ([]byte, error)
}

var _ ComputerManager = (*MockManager)(nil)

func (m *MockManager) CreateComputer(ctx context.Context, opts CreateOpts) (*Computer, error) {
	if m.CreateComputerFunc != nil {
		return m.CreateComputerFunc(ctx, opts)
	}
	return &Computer{ID: "mock-id", Name: opts.Name, URL: "https://orgo.ai/c/mock-id", Status: StatusRunning}, nil
}

func (m *MockManager) GetComputer(ctx context.Context, id string) (*Computer, error) {
	if m.GetComputerFunc != nil {
		return m.GetComputerFunc(ctx, id)
	}
	return &Computer{ID: id, Status: StatusRunning}, nil
}

func (m *MockManager) DestroyComputer(ctx context.Context, id string) error {
	if m.DestroyComputerFunc != nil {
		return m.DestroyComputerFunc(ctx, id)
	}
	return nil
}

func (m *MockManager) Exec(ctx context.Context, id, command string) (*remote.ExecResult, error) {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, id, command)
	}
	return &remote.ExecResult{ExitCode: 0, Output: ""}, nil
}

func (m *MockManager) Screenshot(ctx context.Context, id string) ([]byte, error) {
	if m.ScreenshotFunc != nil {
		return m.ScreenshotFunc(ctx, id)
	}
	return []byte("\x89PNG\r\n"), nil
}
