// Package scrape coordinates fetching listing pages, extracting article
// drafts and saving them to the article store.
package scrape

import (
	"context"
	"net/url"

	"github.com/fwojciec/newsnotes"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds Listings when no concurrency is given.
const DefaultConcurrency = 4

var _ newsnotes.ListingScraper = (*Scraper)(nil)

// Scraper fetches a listing page once and extracts its drafts.
type Scraper struct {
	Fetcher   newsnotes.Fetcher
	Extractor newsnotes.ListingExtractor

	// RateLimiter, if set, is waited on per host before each fetch.
	RateLimiter newsnotes.DomainLimiter
}

// ScrapeListing fetches rawURL and returns its drafts in document order.
// Fetch and parse errors are returned unchanged; nothing is retried.
func (s *Scraper) ScrapeListing(ctx context.Context, rawURL string) ([]*newsnotes.Article, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, newsnotes.Errorf(newsnotes.EFETCH, "invalid listing URL %q: %v", rawURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, newsnotes.Errorf(newsnotes.EFETCH, "rate limit wait for %s: %v", u.Host, err)
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return s.Extractor.Extract(html)
}

// ScrapeAll scrapes several listings concurrently. See Listings.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, concurrency int) ([]*newsnotes.Article, error) {
	return Listings(ctx, s, urls, concurrency)
}

// Listings scrapes several listings through ls concurrently and returns
// their drafts concatenated in the order of urls. The first failure cancels
// the remaining scrapes and is returned.
func Listings(ctx context.Context, ls newsnotes.ListingScraper, urls []string, concurrency int) ([]*newsnotes.Article, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([][]*newsnotes.Article, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			articles, err := ls.ScrapeListing(gctx, u)
			if err != nil {
				return err
			}
			results[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := []*newsnotes.Article{}
	for _, articles := range results {
		all = append(all, articles...)
	}
	return all, nil
}
