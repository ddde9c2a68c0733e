package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"header-shim-go/internal/config"
	"header-shim-go/shim"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// setupTestServer creates a test server and a Fetcher configured to use it.
func setupTestServer(handler http.Handler, cfg *config.Client) (*Fetcher, *httptest.Server) {
	server := httptest.NewServer(handler)

	if cfg == nil {
		cfg = &config.Client{
			TimeoutSeconds: 10,
			RateLimit:      1000, // effectively unlimited in tests
			RateLimitBurst: 1000,
		}
	}
	logger := zap.NewNop() // Use a no-op logger for tests

	return NewFetcher(cfg, logger), server
}

func TestFetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ticker", r.URL.Path)
			// The configured identity must win over the HTTP library's own
			// default agent string.
			assert.Equal(t, shim.DefaultUserAgent, r.Header.Get(shim.HeaderUserAgent))
			assert.NotContains(t, r.Header.Get(shim.HeaderUserAgent), "go-resty")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"symbol":"BTCUSDT","price":"50000.00"}`))
		})

		f, server := setupTestServer(handler, nil)
		defer server.Close()

		// Act
		resp, err := f.Fetch(context.Background(), server.URL+"/ticker")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Contains(t, resp.String(), "BTCUSDT")
	})

	t.Run("ErrorStatusPassesThrough", func(t *testing.T) {
		// Arrange
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code": -1003, "msg": "Too many requests"}`))
		})

		f, server := setupTestServer(handler, nil)
		defer server.Close()

		// Act
		resp, err := f.Fetch(context.Background(), server.URL+"/ticker")

		// Assert: the status surfaces unchanged, no retry or recovery.
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
	})

	t.Run("ConnectionError", func(t *testing.T) {
		// Arrange
		f, server := setupTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), nil)
		url := server.URL
		server.Close()

		// Act
		resp, err := f.Fetch(context.Background(), url+"/ticker")

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed")
		assert.Nil(t, resp)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		// Arrange: burst 0 makes the limiter unable to admit the request,
		// so cancellation surfaces from the wait.
		cfg := &config.Client{TimeoutSeconds: 10, RateLimit: 1, RateLimitBurst: 0}
		f, server := setupTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), cfg)
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Act
		resp, err := f.Fetch(ctx, server.URL)

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate limiter wait failed")
		assert.Nil(t, resp)
	})
}

func TestNewFetcherCustomIdentity(t *testing.T) {
	// Arrange
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "scanner/2.1", r.Header.Get("X-Client-Identity"))
		w.WriteHeader(http.StatusOK)
	})
	cfg := &config.Client{
		HeaderName:     "X-Client-Identity",
		UserAgent:      "scanner/2.1",
		TimeoutSeconds: 10,
		RateLimit:      1000,
		RateLimitBurst: 1000,
	}

	f, server := setupTestServer(handler, cfg)
	defer server.Close()

	// Act
	resp, err := f.Fetch(context.Background(), server.URL)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}
