package mock

import (
	"context"

	"github.com/fwojciec/newsnotes"
)

var (
	_ newsnotes.ListingExtractor = (*ListingExtractor)(nil)
	_ newsnotes.ListingScraper   = (*ListingScraper)(nil)
	_ newsnotes.DomainLimiter    = (*DomainLimiter)(nil)
)

// ListingExtractor is a mock implementation of newsnotes.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(html string) ([]*newsnotes.Article, error)
}

func (e *ListingExtractor) Extract(html string) ([]*newsnotes.Article, error) {
	return e.ExtractFn(html)
}

// ListingScraper is a mock implementation of newsnotes.ListingScraper.
type ListingScraper struct {
	ScrapeListingFn func(ctx context.Context, url string) ([]*newsnotes.Article, error)
}

func (s *ListingScraper) ScrapeListing(ctx context.Context, url string) ([]*newsnotes.Article, error) {
	return s.ScrapeListingFn(ctx, url)
}

// DomainLimiter is a mock implementation of newsnotes.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
