package config

import (
	"fmt"
	"os"
)

// Environment variable names for credentials. Credentials never live in
// the config file.
const (
	EnvAPIKey            = "ORGO_API_KEY"
	EnvAnthropicKey      = "ANTHROPIC_API_KEY"
	EnvBaseURL           = "ORGO_BASE_URL"
	EnvArtifactAccessKey = "ARTIFACT_ACCESS_KEY"
	EnvArtifactSecretKey = "ARTIFACT_SECRET_KEY"
)

// Credentials holds secrets read from the environment.
type Credentials struct {
	// APIKey is the Orgo API credential. Mandatory.
	APIKey string

	// AnthropicKey is forwarded into the generated example script.
	// Optional, defaults to empty.
	AnthropicKey string

	// BaseURL overrides the Orgo API endpoint. Optional.
	BaseURL string

	// ArtifactAccessKey and ArtifactSecretKey authenticate artifact
	// uploads. Required only when an artifact target is configured.
	ArtifactAccessKey string
	ArtifactSecretKey string
}

// LoadCredentials reads credentials from the environment. It fails fast
// when the mandatory Orgo API key is absent, before any API client is
// constructed.
func LoadCredentials() (*Credentials, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvAPIKey)
	}

	return &Credentials{
		APIKey:            apiKey,
		AnthropicKey:      os.Getenv(EnvAnthropicKey),
		BaseURL:           os.Getenv(EnvBaseURL),
		ArtifactAccessKey: os.Getenv(EnvArtifactAccessKey),
		ArtifactSecretKey: os.Getenv(EnvArtifactSecretKey),
	}, nil
}
