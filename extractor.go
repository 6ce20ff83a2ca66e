package newsnotes

import "context"

// ListingExtractor turns listing markup into article drafts.
type ListingExtractor interface {
	// Extract parses markup and returns one draft per listing entry, in
	// document order. A missing node only empties the field read from it.
	// A document without entries yields an empty slice and no error;
	// markup that cannot be parsed at all is EPARSE.
	Extract(html string) ([]*Article, error)
}

// ListingScraper fetches a listing page and extracts its drafts.
type ListingScraper interface {
	ScrapeListing(ctx context.Context, url string) ([]*Article, error)
}

// DomainLimiter provides per-domain rate limiting for outbound fetches.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	Wait(ctx context.Context, domain string) error
}
