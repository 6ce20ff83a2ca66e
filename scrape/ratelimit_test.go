package scrape_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements newsnotes.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ newsnotes.DomainLimiter = scrape.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "other.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests all complete", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "example.com"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}
