package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/platform/orgo"
)

func TestDestroy(t *testing.T) {
	var destroyed string
	manager := &orgo.MockManager{
		DestroyComputerFunc: func(_ context.Context, id string) error {
			destroyed = id
			return nil
		},
	}
	withMockManager(t, manager)

	err := Destroy(context.Background(), "comp-123")

	require.NoError(t, err)
	assert.Equal(t, "comp-123", destroyed)
}

func TestDestroyFailure(t *testing.T) {
	manager := &orgo.MockManager{
		DestroyComputerFunc: func(context.Context, string) error {
			return errors.New("internal server error")
		},
	}
	withMockManager(t, manager)

	err := Destroy(context.Background(), "comp-123")

	require.Error(t, err)
}

func TestDestroyMissingCredential(t *testing.T) {
	orig := loadCredentials
	t.Cleanup(func() { loadCredentials = orig })
	loadCredentials = func() (*config.Credentials, error) {
		return nil, errors.New("ORGO_API_KEY environment variable is required")
	}

	err := Destroy(context.Background(), "comp-123")

	require.Error(t, err)
}
