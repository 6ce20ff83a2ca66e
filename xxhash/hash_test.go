package xxhash_test

import (
	"testing"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/xxhash"
	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	t.Parallel()

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		a := xxhash.ContentHash(&newsnotes.Article{Title: "T", Summary: "S", Link: "/x"})
		b := xxhash.ContentHash(&newsnotes.Article{ID: "other", SourceIndex: "a9", Title: "T", Summary: "S", Link: "/x"})

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("field boundaries matter", func(t *testing.T) {
		t.Parallel()

		a := xxhash.ContentHash(&newsnotes.Article{Title: "ab", Summary: "c"})
		b := xxhash.ContentHash(&newsnotes.Article{Title: "a", Summary: "bc"})

		assert.NotEqual(t, a, b)
	})
}
