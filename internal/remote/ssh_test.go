package remote

import (
	"context"
	"strings"
	"testing"

	"github.com/prakshal-jain/vaultsetup/internal/util/keygen"
)

func generateTestKey(t *testing.T) *keygen.KeyPair {
	t.Helper()
	keyPair, err := keygen.GenerateRSAKeyPair(2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	return keyPair
}

func TestNewSSHExecutor_Defaults(t *testing.T) {
	keyPair := generateTestKey(t)

	cfg := &SSHConfig{
		Host:       "192.0.2.10",
		User:       "root",
		PrivateKey: keyPair.PrivateKey,
	}

	exec, err := NewSSHExecutor(cfg)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if exec.config.Port != defaultSSHPort {
		t.Errorf("expected port %d, got %d", defaultSSHPort, exec.config.Port)
	}
	if exec.config.DialTimeout != defaultDialTimeout {
		t.Errorf("expected timeout %v, got %v", defaultDialTimeout, exec.config.DialTimeout)
	}
	if exec.config.MaxRetries != defaultMaxRetries {
		t.Errorf("expected max retries %d, got %d", defaultMaxRetries, exec.config.MaxRetries)
	}

	// Caller's struct must not be mutated by defaulting.
	if cfg.Port != 0 {
		t.Errorf("caller config mutated: port = %d", cfg.Port)
	}
}

func TestNewSSHExecutor_Validation(t *testing.T) {
	keyPair := generateTestKey(t)

	tests := []struct {
		name    string
		cfg     *SSHConfig
		wantErr string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"empty host", &SSHConfig{User: "root", PrivateKey: keyPair.PrivateKey}, "host cannot be empty"},
		{"empty user", &SSHConfig{Host: "h", PrivateKey: keyPair.PrivateKey}, "user cannot be empty"},
		{"no key", &SSHConfig{Host: "h", User: "root"}, "private key cannot be empty"},
		{"bad key", &SSHConfig{Host: "h", User: "root", PrivateKey: []byte("junk")}, "failed to parse private key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSSHExecutor(tt.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestMockExecutor_RecordsCommands(t *testing.T) {
	m := &MockExecutor{}
	ctx := context.Background()

	if _, err := m.Run(ctx, "apt-get update"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Run(ctx, "git clone https://example.com/repo.git"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(m.Commands()); got != 2 {
		t.Fatalf("expected 2 recorded commands, got %d", got)
	}
	if !m.Saw("git clone") {
		t.Error("expected Saw to match recorded command")
	}
	if m.Saw("reboot") {
		t.Error("Saw matched a command that never ran")
	}
}

func TestScript_FirstMatchWins(t *testing.T) {
	run := Script(
		Rule{Contains: "git clone", Result: &ExecResult{ExitCode: 128, Output: "fatal: not found"}},
		Rule{Contains: "git", Result: &ExecResult{ExitCode: 0, Output: "ok"}},
	)

	res, err := run(context.Background(), "git clone https://example.com/x.git ~/vault")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 128 {
		t.Errorf("expected exit 128, got %d", res.ExitCode)
	}

	res, err = run(context.Background(), `git config --global user.name "x"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Ok() {
		t.Errorf("expected success, got exit %d", res.ExitCode)
	}

	res, err = run(context.Background(), "unrelated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Ok() {
		t.Error("unmatched command should succeed")
	}
}
