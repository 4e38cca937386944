package stages

import (
	"os"
	"strings"
	"testing"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSHKeySkippedWhenDisabled(t *testing.T) {
	exec := &remote.MockExecutor{}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewSSHKey().Run(ctx)

	reason, skipped := provisioning.SkipReason(err)
	require.True(t, skipped)
	assert.Contains(t, reason, "ssh_key.enabled")
	assert.Empty(t, exec.Commands())
}

func TestSSHKeyInstallsPublicKey(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := testConfig()
	cfg.SSHKey.Enabled = true
	exec := &remote.MockExecutor{}
	ctx := newStageContext(t, cfg, exec)

	err := (&SSHKey{Bits: 2048}).Run(ctx)

	require.NoError(t, err)
	assert.True(t, exec.Saw("authorized_keys"))
	assert.True(t, strings.HasPrefix(ctx.State.SSHPublicKey, "ssh-rsa "))

	info, statErr := os.Stat(privateKeyFile)
	require.NoError(t, statErr)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSSHKeyInstallFailure(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := testConfig()
	cfg.SSHKey.Enabled = true
	exec := &remote.MockExecutor{
		RunFunc: remote.Script(remote.Rule{
			Contains: "authorized_keys",
			Result:   &remote.ExecResult{ExitCode: 1, Output: "permission denied"},
		}),
	}
	ctx := newStageContext(t, cfg, exec)

	err := (&SSHKey{Bits: 2048}).Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "install public key")
}
