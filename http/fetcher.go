// Package http provides an HTTP-based implementation of newsnotes.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newsnotes"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to listing sites.
const DefaultUserAgent = "newsnotes/1.0 (+https://github.com/fwojciec/newsnotes)"

// Ensure Fetcher implements newsnotes.Fetcher at compile time.
var _ newsnotes.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves markup from URLs using plain HTTP GET requests.
// Each call makes exactly one attempt.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL. Any failure, including a
// non-200 status, is returned as an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsnotes.Errorf(newsnotes.EFETCH, "invalid request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", newsnotes.Errorf(newsnotes.EFETCH, "timeout fetching %s", url)
		}
		return "", newsnotes.Errorf(newsnotes.EFETCH, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newsnotes.Errorf(newsnotes.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newsnotes.Errorf(newsnotes.EFETCH, "failed to read body of %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
