package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/newsnotes"
	nnhttp "github.com/fwojciec/newsnotes/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := nnhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		var got atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Store(r.UserAgent())
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := nnhttp.NewFetcher(nnhttp.WithUserAgent("test-agent/2"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent/2", got.Load())
	})

	t.Run("times out with EFETCH", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nnhttp.NewFetcher(nnhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsnotes.EFETCH, newsnotes.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nnhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.Equal(t, newsnotes.EFETCH, newsnotes.ErrorCode(err))
	})

	t.Run("returns EFETCH for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := nnhttp.NewFetcher(nnhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, newsnotes.EFETCH, newsnotes.ErrorCode(err))
	})

	t.Run("returns EFETCH for invalid URL", func(t *testing.T) {
		t.Parallel()

		fetcher := nnhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "://missing-scheme")
		require.Error(t, err)
		assert.Equal(t, newsnotes.EFETCH, newsnotes.ErrorCode(err))
	})

	t.Run("returns EFETCH for non-200 status codes without retrying", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := nnhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, newsnotes.EFETCH, newsnotes.ErrorCode(err))
		assert.Contains(t, newsnotes.ErrorMessage(err), "503")
		assert.Equal(t, int32(1), calls.Load())
	})
}

// Compile-time verification that Fetcher implements newsnotes.Fetcher
var _ newsnotes.Fetcher = (*nnhttp.Fetcher)(nil)
