package stages

import (
	"context"
	"strings"
	"testing"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/prakshal-jain/vaultsetup/internal/util/poll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sentinelAfter returns a RunFunc where the log check reports the
// sentinel only from the given poll attempt onward.
func sentinelAfter(n int) func(ctx context.Context, command string) (*remote.ExecResult, error) {
	polls := 0
	return func(_ context.Context, command string) (*remote.ExecResult, error) {
		if strings.Contains(command, "grep -q") {
			polls++
			if polls >= n {
				return &remote.ExecResult{ExitCode: 0, Output: "DONE\n"}, nil
			}
			return &remote.ExecResult{ExitCode: 0, Output: "PENDING\n"}, nil
		}
		return &remote.ExecResult{ExitCode: 0, Output: "Verified\n"}, nil
	}
}

func TestBrowserUseSkippedWhenDisabled(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.BrowserUse.Enabled = &disabled

	exec := &remote.MockExecutor{}
	ctx := newStageContext(t, cfg, exec)

	err := NewBrowserUse().Run(ctx)

	_, skipped := provisioning.SkipReason(err)
	assert.True(t, skipped)
	assert.Empty(t, exec.Commands())
}

func TestBrowserUseSentinelOnSecondPoll(t *testing.T) {
	exec := &remote.MockExecutor{RunFunc: sentinelAfter(2)}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewBrowserUse().Run(ctx)

	require.NoError(t, err)
	assert.True(t, ctx.State.BrowserUseReady)
	assert.True(t, exec.Saw("cat > /tmp/install-browser-use.sh"))
	assert.True(t, exec.Saw("chmod +x /tmp/install-browser-use.sh"))
	assert.True(t, exec.Saw("nohup /tmp/install-browser-use.sh > /tmp/browser-use-install.log 2>&1 &"))

	// Exactly one verification command after the sentinel.
	verifications := 0
	for _, cmd := range exec.Commands() {
		if strings.Contains(cmd, "import browser_use") && !strings.Contains(cmd, "cat >") {
			verifications++
		}
	}
	assert.Equal(t, 1, verifications)
}

func TestBrowserUsePollBudgetExhausted(t *testing.T) {
	exec := &remote.MockExecutor{
		RunFunc: remote.Script(remote.Rule{
			Contains: "grep -q",
			Result:   &remote.ExecResult{ExitCode: 0, Output: "PENDING\n"},
		}),
	}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewBrowserUse().Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, poll.ErrAttemptsExhausted)
	assert.False(t, ctx.State.BrowserUseReady)
	assert.True(t, exec.Saw("tail -20 /tmp/browser-use-install.log"))

	// The poll loop respected its attempt budget.
	polls := 0
	for _, cmd := range exec.Commands() {
		if strings.Contains(cmd, "grep -q") {
			polls++
		}
	}
	assert.Equal(t, ctx.Timeouts.PollMaxAttempts, polls)
}

func TestBrowserUseVerificationFailure(t *testing.T) {
	exec := &remote.MockExecutor{
		RunFunc: remote.Script(
			remote.Rule{
				Contains: "grep -q",
				Result:   &remote.ExecResult{ExitCode: 0, Output: "DONE\n"},
			},
			remote.Rule{
				Contains: "import browser_use; print('Verified')",
				Result:   &remote.ExecResult{ExitCode: 1, Output: "ModuleNotFoundError"},
			},
		),
	}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewBrowserUse().Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification")
	assert.False(t, ctx.State.BrowserUseReady)
}

func TestBrowserUseScriptWriteFailure(t *testing.T) {
	exec := &remote.MockExecutor{
		RunFunc: remote.Script(remote.Rule{
			Contains: "cat > /tmp/install-browser-use.sh",
			Result:   &remote.ExecResult{ExitCode: 1, Output: "No space left on device"},
		}),
	}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewBrowserUse().Run(ctx)

	require.Error(t, err)
	assert.False(t, exec.Saw("nohup"))
}
