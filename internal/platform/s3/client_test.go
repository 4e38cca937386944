package s3

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient("https://storage.example.com", "us-east-1", "ak", "sk")
	require.NoError(t, err)
	assert.NotNil(t, client.s3)
	assert.Equal(t, "us-east-1", client.region)
}

func TestIsBucketAlreadyOwnedByYou(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"typed owned", &types.BucketAlreadyOwnedByYou{}, true},
		{"typed exists", &types.BucketAlreadyExists{}, true},
		{"api code owned", &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"}, true},
		{"api code exists", &smithy.GenericAPIError{Code: "BucketAlreadyExists"}, true},
		{"api code other", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBucketAlreadyOwnedByYou(tt.err))
		})
	}
}
