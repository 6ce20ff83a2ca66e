package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/bloom"
	"github.com/fwojciec/newsnotes/xxhash"
)

// saveFalsePositiveRate is the acceptable false positive rate of the
// known-hash filter. Positives are confirmed against the store.
const saveFalsePositiveRate = 0.01

// SaveResult holds the outcome of a save operation.
type SaveResult struct {
	// Saved holds the persisted articles in draft order.
	Saved []*newsnotes.Article

	// Duplicates counts drafts whose content was already stored.
	Duplicates int

	// Invalid counts drafts rejected by validation, such as entries whose
	// markup yielded no fields at all.
	Invalid int
}

// Saver persists scraped drafts, skipping content that is already stored.
type Saver struct {
	Articles newsnotes.ArticleService
}

// Save creates one article per new draft. Each create is an independent
// write; on failure the articles saved so far stay saved and are reported
// in the returned result along with the error.
func (s *Saver) Save(ctx context.Context, drafts []*newsnotes.Article) (*SaveResult, error) {
	existing, err := s.Articles.FindContentHashes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stored content hashes: %w", err)
	}

	known := bloom.NewFilter(uint(len(existing)+len(drafts)), saveFalsePositiveRate)
	for _, hash := range existing {
		known.Add(hash)
	}

	result := &SaveResult{Saved: []*newsnotes.Article{}}
	for _, draft := range drafts {
		if err := draft.Validate(); err != nil {
			result.Invalid++
			continue
		}

		hash := xxhash.ContentHash(draft)
		if known.Test(hash) {
			dup, err := s.isStored(ctx, hash)
			if err != nil {
				return result, err
			}
			if dup {
				result.Duplicates++
				continue
			}
		}

		draft.ContentHash = hash
		if err := s.Articles.CreateArticle(ctx, draft); err != nil {
			return result, fmt.Errorf("save article %q: %w", draft.Title, err)
		}
		known.Add(hash)
		result.Saved = append(result.Saved, draft)
	}

	return result, nil
}

// isStored confirms a filter positive with an exact lookup.
func (s *Saver) isStored(ctx context.Context, hash string) (bool, error) {
	found, err := s.Articles.FindArticles(ctx, newsnotes.ArticleFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		return false, fmt.Errorf("look up content hash: %w", err)
	}
	return len(found) > 0, nil
}
