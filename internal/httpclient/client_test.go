package httpclient

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	logger := zerolog.Nop()

	client, err := NewBuilder(logger).
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithFollowRedirects(false).
		WithInsecureSkipVerify(true).
		WithMaxRedirects(5).
		WithEnableHTTP2(false).
		Build()

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.False(t, client.config.FollowRedirects)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.Equal(t, 5, client.config.MaxRedirects)
	assert.False(t, client.config.EnableHTTP2)
}

func TestNew_InvalidProxy(t *testing.T) {
	config := DefaultConfig()
	config.Proxy = "://bad-proxy"

	_, err := New(config, zerolog.Nop())
	assert.Error(t, err)
}

func TestClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-value", r.Header.Get("X-Test-Header"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client, err := NewBuilder(zerolog.Nop()).WithUserAgent("test-agent").Build()
	require.NoError(t, err)

	resp, err := client.Do(&Request{
		URL:    server.URL,
		Method: http.MethodGet,
		Headers: map[string]string{
			"X-Test-Header": "test-value",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestClient_DoPostBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(body)
		assert.Equal(t, `{"content":"hi"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewDefault(zerolog.Nop())

	resp, err := client.Do(&Request{
		URL:    server.URL,
		Method: http.MethodPost,
		Body:   strings.NewReader(`{"content":"hi"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClient_DoNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewDefault(zerolog.Nop())

	_, err := client.Do(&Request{URL: server.URL, Method: http.MethodGet})
	assert.Error(t, err)
}

func TestClient_DoCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "always", r.Header.Get("X-Default"))
		// per-request headers win over configured defaults
		assert.Equal(t, "override", r.Header.Get("X-Both"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewBuilder(zerolog.Nop()).
		WithCustomHeader("X-Default", "always").
		WithCustomHeader("X-Both", "default").
		Build()
	require.NoError(t, err)

	_, err = client.Do(&Request{
		URL:     server.URL,
		Method:  http.MethodGet,
		Headers: map[string]string{"X-Both": "override"},
	})
	require.NoError(t, err)
}
