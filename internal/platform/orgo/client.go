package orgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/prakshal-jain/vaultsetup/internal/util/retry"
)

const (
	// DefaultBaseURL is the production Orgo API endpoint. Override with
	// ORGO_BASE_URL or WithBaseURL for staging environments.
	DefaultBaseURL = "https://api.orgo.ai/v1"

	defaultHTTPTimeout = 5 * time.Minute

	// StatusRunning is the computer status once the VM is ready for commands.
	StatusRunning = "running"
)

// Computer describes a provisioned Orgo machine.
type Computer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

// CreateOpts holds all parameters for creating a computer.
type CreateOpts struct {
	Project string `json:"project"`
	Name    string `json:"name"`
	RAM     int    `json:"ram"`
	CPU     int    `json:"cpu"`
	OS      string `json:"os"`
}

// ComputerManager defines the interface for managing Orgo computers.
type ComputerManager interface {
	// CreateComputer provisions a new computer in the given project.
	CreateComputer(ctx context.Context, opts CreateOpts) (*Computer, error)
	// GetComputer fetches current computer state, used for readiness polling.
	GetComputer(ctx context.Context, id string) (*Computer, error)
	// DestroyComputer deletes a computer. Destroying an already-deleted
	// computer is not an error.
	DestroyComputer(ctx context.Context, id string) error
	// Exec runs a shell command on the computer. A non-zero remote exit
	// status is reported in the result, not as an error.
	Exec(ctx context.Context, id, command string) (*remote.ExecResult, error)
	// Screenshot captures the computer's display as PNG bytes.
	Screenshot(ctx context.Context, id string) ([]byte, error)
}

// Client is the real ComputerManager backed by the Orgo REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ ComputerManager = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient injects an *http.Client, used by tests and for custom
// transport settings.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates an Orgo API client. The API key is mandatory; the
// caller is expected to have failed fast before reaching this point if
// the credential is absent.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("orgo: API key cannot be empty")
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ping verifies API reachability and that the credential is accepted.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("orgo API unreachable: %w", err)
	}
	return nil
}

// CreateComputer provisions a new computer.
func (c *Client) CreateComputer(ctx context.Context, opts CreateOpts) (*Computer, error) {
	if opts.Project == "" {
		return nil, fmt.Errorf("orgo: project cannot be empty")
	}

	var computer Computer
	path := fmt.Sprintf("/projects/%s/computers", opts.Project)
	if err := c.doJSON(ctx, http.MethodPost, path, opts, &computer); err != nil {
		return nil, fmt.Errorf("failed to create computer %q: %w", opts.Name, err)
	}
	return &computer, nil
}

// GetComputer fetches a computer by ID, retrying transient failures.
func (c *Client) GetComputer(ctx context.Context, id string) (*Computer, error) {
	var computer Computer
	err := retry.WithExponentialBackoff(ctx, func() error {
		err := c.doJSON(ctx, http.MethodGet, "/computers/"+id, nil, &computer)
		if err != nil && !IsRetryable(err) {
			return retry.Fatal(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get computer %s: %w", id, err)
	}
	return &computer, nil
}

// DestroyComputer deletes a computer. NotFound is treated as success so
// destroy stays idempotent.
func (c *Client) DestroyComputer(ctx context.Context, id string) error {
	err := c.doJSON(ctx, http.MethodDelete, "/computers/"+id, nil, nil)
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to destroy computer %s: %w", id, err)
	}
	return nil
}

// execResponse is the wire format of the exec endpoint.
type execResponse struct {
	ExitCode int    `json:"exit_code"`
	Output   string `json:"output"`
}

// Exec runs a shell command on the computer. Not retried: commands may
// have side effects.
func (c *Client) Exec(ctx context.Context, id, command string) (*remote.ExecResult, error) {
	body := map[string]string{"command": command}

	var resp execResponse
	if err := c.doJSON(ctx, http.MethodPost, "/computers/"+id+"/exec", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to execute command on %s: %w", id, err)
	}

	return &remote.ExecResult{ExitCode: resp.ExitCode, Output: resp.Output}, nil
}

// Screenshot captures the display, retrying transient failures.
func (c *Client) Screenshot(ctx context.Context, id string) ([]byte, error) {
	var png []byte
	err := retry.WithExponentialBackoff(ctx, func() error {
		data, err := c.doRaw(ctx, http.MethodGet, "/computers/"+id+"/screenshot")
		if err != nil {
			if !IsRetryable(err) {
				return retry.Fatal(err)
			}
			return err
		}
		png = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot of %s: %w", id, err)
	}
	return png, nil
}

// doJSON performs a JSON request against the API. A nil out discards the
// response body.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doRaw performs a request returning the raw response body.
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}

	return io.ReadAll(resp.Body)
}
