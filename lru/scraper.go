// Package lru caches scraped listings in memory for a bounded time.
package lru

import (
	"context"
	"time"

	"github.com/fwojciec/newsnotes"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize bounds the number of cached listings.
const DefaultSize = 64

// Ensure CachingListingScraper implements newsnotes.ListingScraper.
var _ newsnotes.ListingScraper = (*CachingListingScraper)(nil)

// CachingListingScraper wraps a ListingScraper and reuses a listing's
// drafts until they are older than the TTL. Failures are never cached.
type CachingListingScraper struct {
	next  newsnotes.ListingScraper
	cache *expirable.LRU[string, []*newsnotes.Article]
}

// NewCachingListingScraper creates a cache holding up to size listings for
// ttl each.
func NewCachingListingScraper(next newsnotes.ListingScraper, size int, ttl time.Duration) *CachingListingScraper {
	if size <= 0 {
		size = DefaultSize
	}
	return &CachingListingScraper{
		next:  next,
		cache: expirable.NewLRU[string, []*newsnotes.Article](size, nil, ttl),
	}
}

// ScrapeListing returns copies of the cached drafts for url, scraping it
// on a miss.
func (s *CachingListingScraper) ScrapeListing(ctx context.Context, url string) ([]*newsnotes.Article, error) {
	if cached, ok := s.cache.Get(url); ok {
		return cloneDrafts(cached), nil
	}

	articles, err := s.next.ScrapeListing(ctx, url)
	if err != nil {
		return nil, err
	}
	s.cache.Add(url, cloneDrafts(articles))
	return articles, nil
}

// cloneDrafts copies drafts so callers may persist or edit them without
// touching the cache.
func cloneDrafts(articles []*newsnotes.Article) []*newsnotes.Article {
	out := make([]*newsnotes.Article, len(articles))
	for i, a := range articles {
		c := *a
		out[i] = &c
	}
	return out
}
