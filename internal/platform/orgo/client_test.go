package orgo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return client
}

func TestNewClient_EmptyKey(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestCreateComputer(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody CreateOpts

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Computer{
			ID:     "c-123",
			Name:   gotBody.Name,
			URL:    "https://orgo.ai/c/c-123",
			Status: "booting",
		})
	}))

	computer, err := client.CreateComputer(context.Background(), CreateOpts{
		Project: "samantha-vault",
		Name:    "vault-vm",
		RAM:     4,
		CPU:     2,
		OS:      "linux",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/projects/samantha-vault/computers", gotPath)
	assert.Equal(t, 4, gotBody.RAM)
	assert.Equal(t, "c-123", computer.ID)
	assert.Equal(t, "booting", computer.Status)
}

func TestCreateComputer_EmptyProject(t *testing.T) {
	client, err := NewClient("test-key")
	require.NoError(t, err)

	_, err = client.CreateComputer(context.Background(), CreateOpts{Name: "x"})
	assert.ErrorContains(t, err, "project")
}

func TestExec_NonZeroExitIsData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/computers/c-123/exec", r.URL.Path)
		_ = json.NewEncoder(w).Encode(execResponse{ExitCode: 128, Output: "fatal: repository not found"})
	}))

	res, err := client.Exec(context.Background(), "c-123", "git clone https://example.com/missing.git")
	require.NoError(t, err)
	assert.Equal(t, 128, res.ExitCode)
	assert.Contains(t, res.Output, "not found")
	assert.False(t, res.Ok())
}

func TestExec_APIErrorIsError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.Exec(context.Background(), "c-123", "true")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestDestroyComputer_NotFoundIsSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"not_found","message":"no such computer"}}`))
	}))

	assert.NoError(t, client.DestroyComputer(context.Background(), "gone"))
}

func TestGetComputer_UnauthorizedNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"invalid api key"}}`))
	}))

	_, err := client.GetComputer(context.Background(), "c-123")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), calls.Load(), "unauthorized must not be retried")
}

func TestScreenshot_ReturnsRawBytes(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nimage-bytes")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/computers/c-123/screenshot", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))

	got, err := client.Screenshot(context.Background(), "c-123")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		unauth    bool
		retryable bool
	}{
		{"nil", nil, false, false, false},
		{"plain error", errors.New("dial tcp: refused"), false, false, true},
		{"404", &APIError{StatusCode: 404}, true, false, false},
		{"401", &APIError{StatusCode: 401}, false, true, false},
		{"403", &APIError{StatusCode: 403}, false, true, false},
		{"429", &APIError{StatusCode: 429}, false, false, true},
		{"500", &APIError{StatusCode: 500}, false, false, true},
		{"400", &APIError{StatusCode: 400}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				assert.False(t, IsRetryable(nil))
				return
			}
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.unauth, IsUnauthorized(tt.err))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestAPIError_MessageFallbacks(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusServiceUnavailable)
	rec.Body.WriteString("upstream down")

	apiErr := newAPIError(rec.Result())
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "503")
}
