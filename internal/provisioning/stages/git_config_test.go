package stages

import (
	"testing"

	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitConfigSetsIdentity(t *testing.T) {
	exec := &remote.MockExecutor{}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewGitConfig().Run(ctx)

	require.NoError(t, err)
	assert.True(t, exec.Saw(`user.name "Samantha AI"`))
	assert.True(t, exec.Saw(`user.email "samantha@example.com"`))
	assert.True(t, exec.Saw("init.defaultBranch main"))
	assert.True(t, exec.Saw("ssh-keyscan github.com"))
}

func TestGitConfigFailureIsDegraded(t *testing.T) {
	exec := &remote.MockExecutor{
		RunFunc: remote.Script(remote.Rule{
			Contains: "user.email",
			Result:   &remote.ExecResult{ExitCode: 1, Output: "could not lock config file"},
		}),
	}
	ctx := newStageContext(t, testConfig(), exec)

	err := NewGitConfig().Run(ctx)

	require.Error(t, err)
	// The later commands still ran.
	assert.True(t, exec.Saw("ssh-keyscan github.com"))
}
