package lru_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/lru"
	"github.com/fwojciec/newsnotes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingListingScraper_ScrapeListing(t *testing.T) {
	t.Parallel()

	t.Run("reuses drafts within the TTL", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.ListingScraper{
			ScrapeListingFn: func(context.Context, string) ([]*newsnotes.Article, error) {
				calls++
				return []*newsnotes.Article{{Title: "T"}}, nil
			},
		}
		s := lru.NewCachingListingScraper(inner, 0, time.Minute)

		first, err := s.ScrapeListing(context.Background(), "https://example.com/")
		require.NoError(t, err)
		second, err := s.ScrapeListing(context.Background(), "https://example.com/")
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
	})

	t.Run("caches listings per URL", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.ListingScraper{
			ScrapeListingFn: func(_ context.Context, url string) ([]*newsnotes.Article, error) {
				calls++
				return []*newsnotes.Article{{Title: url}}, nil
			},
		}
		s := lru.NewCachingListingScraper(inner, 0, time.Minute)

		a, err := s.ScrapeListing(context.Background(), "a")
		require.NoError(t, err)
		b, err := s.ScrapeListing(context.Background(), "b")
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
		assert.Equal(t, "a", a[0].Title)
		assert.Equal(t, "b", b[0].Title)
	})

	t.Run("scrapes again after the TTL", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.ListingScraper{
			ScrapeListingFn: func(context.Context, string) ([]*newsnotes.Article, error) {
				calls++
				return []*newsnotes.Article{}, nil
			},
		}
		s := lru.NewCachingListingScraper(inner, 0, 10*time.Millisecond)

		_, err := s.ScrapeListing(context.Background(), "u")
		require.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
		_, err = s.ScrapeListing(context.Background(), "u")
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.ListingScraper{
			ScrapeListingFn: func(context.Context, string) ([]*newsnotes.Article, error) {
				calls++
				return nil, errors.New("bad gateway")
			},
		}
		s := lru.NewCachingListingScraper(inner, 0, time.Minute)

		_, err1 := s.ScrapeListing(context.Background(), "u")
		_, err2 := s.ScrapeListing(context.Background(), "u")

		require.Error(t, err1)
		require.Error(t, err2)
		assert.Equal(t, 2, calls)
	})

	t.Run("callers cannot modify cached drafts", func(t *testing.T) {
		t.Parallel()

		inner := &mock.ListingScraper{
			ScrapeListingFn: func(context.Context, string) ([]*newsnotes.Article, error) {
				return []*newsnotes.Article{{Title: "T"}}, nil
			},
		}
		s := lru.NewCachingListingScraper(inner, 0, time.Minute)

		first, err := s.ScrapeListing(context.Background(), "u")
		require.NoError(t, err)
		first[0].ID = "saved"

		second, err := s.ScrapeListing(context.Background(), "u")
		require.NoError(t, err)
		assert.Empty(t, second[0].ID)
	})
}
