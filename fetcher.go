package newsnotes

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch makes a single attempt to retrieve the URL and returns the
	// response body. Failures are reported as EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
