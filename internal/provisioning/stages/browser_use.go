package stages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/util/poll"
)

const (
	installScriptPath = "/tmp/install-browser-use.sh"
	installLogPath    = "/tmp/browser-use-install.log"

	// installSentinel is the marker the install script writes to its log
	// on success. The poll loop watches for it.
	installSentinel = "INSTALL_COMPLETE"
)

// BrowserUse installs the browser-use library and its Chromium runtime.
// The install takes several minutes, longer than a single remote command
// should block, so the stage materializes a script on the computer,
// launches it detached with its output redirected to a log file, and
// polls the log for a completion sentinel.
type BrowserUse struct{}

// NewBrowserUse creates the browser-use install stage.
func NewBrowserUse() *BrowserUse {
	return &BrowserUse{}
}

// Name implements the provisioning.Stage interface.
func (s *BrowserUse) Name() string {
	return "browser-use"
}

// installScript renders the script executed on the computer.
func (s *BrowserUse) installScript(venv string) string {
	return fmt.Sprintf(`#!/bin/bash
set -e

echo "Creating Python virtual environment..."
python3 -m venv %[1]s

echo "Installing browser-use..."
%[1]s/bin/pip install --upgrade pip
%[1]s/bin/pip install browser-use playwright

echo "Installing Chromium browser..."
%[1]s/bin/playwright install chromium

echo "Installing system dependencies for Chromium..."
sudo %[1]s/bin/playwright install-deps chromium

echo "Verifying installation..."
%[1]s/bin/python -c "import browser_use; print('browser-use installed successfully')"

echo "%[2]s"
`, venv, installSentinel)
}

// Run implements the provisioning.Stage interface.
func (s *BrowserUse) Run(ctx *provisioning.Context) error {
	if !ctx.Config.BrowserUseEnabled() {
		return provisioning.Skip("browser_use.enabled is false")
	}

	venv := ctx.Config.BrowserUse.Venv

	write := fmt.Sprintf("cat > %s << 'SCRIPT_EOF'\n%sSCRIPT_EOF", installScriptPath, s.installScript(venv))
	result, err := run(ctx, write)
	if err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("failed to write install script: %s", result.Output)
	}

	result, err = run(ctx, "chmod +x "+installScriptPath)
	if err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("failed to make install script executable: %s", result.Output)
	}

	// Detach the install from the command's lifetime so we can poll
	// instead of blocking on one multi-minute call.
	if _, err := run(ctx, fmt.Sprintf("nohup %s > %s 2>&1 &", installScriptPath, installLogPath)); err != nil {
		return err
	}
	ctx.State.InstallLogPath = installLogPath
	ctx.Observer.Printf("Installation running in the background (this may take 5-10 minutes)...")

	checkCmd := fmt.Sprintf("grep -q %q %s 2>/dev/null && echo \"DONE\" || echo \"PENDING\"", installSentinel, installLogPath)
	err = poll.Until(ctx,
		func(pollCtx context.Context) (bool, error) {
			check, err := ctx.Exec.Run(pollCtx, checkCmd)
			if err != nil {
				return false, err
			}
			return strings.Contains(check.Output, "DONE"), nil
		},
		poll.WithInterval(ctx.Timeouts.PollInterval),
		poll.WithMaxAttempts(ctx.Timeouts.PollMaxAttempts),
		poll.WithProgress(ctx.Timeouts.PollProgressEvery, func(attempt int, elapsed time.Duration) {
			ctx.Observer.Progress(s.Name(), attempt, ctx.Timeouts.PollMaxAttempts)
			ctx.Observer.Printf("   Still installing... (%v elapsed)", elapsed)
		}),
	)
	if err != nil {
		if errors.Is(err, poll.ErrAttemptsExhausted) {
			tail, tailErr := run(ctx, "tail -20 "+installLogPath)
			if tailErr == nil {
				provisioning.LogWarning(ctx.Observer, s.Name(),
					fmt.Sprintf("install did not finish in time; the process may still be running, check %s. Last log entries:\n%s",
						installLogPath, tail.Output))
			}
			return fmt.Errorf("install timed out: %w", err)
		}
		return err
	}

	// One verification past the sentinel: the import must actually work.
	verify, err := run(ctx, fmt.Sprintf("%s/bin/python -c \"import browser_use; print('Verified')\"", venv))
	if err != nil {
		return err
	}
	if !verify.Ok() {
		provisioning.LogWarning(ctx.Observer, s.Name(), "installation completed but verification failed")
		return fmt.Errorf("verification exited with status %d", verify.ExitCode)
	}

	ctx.State.BrowserUseReady = true
	return nil
}
