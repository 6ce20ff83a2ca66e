// Package xxhash computes article content hashes.
package xxhash

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsnotes"
)

// ContentHash returns the hex xxHash of an article's link, title and
// summary. Fields are separated by a NUL byte so that ("ab", "c") and
// ("a", "bc") hash differently.
func ContentHash(a *newsnotes.Article) string {
	h := xxhash.New()
	_, _ = h.WriteString(a.Link)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(a.Title)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(a.Summary)
	return hex.EncodeToString(h.Sum(nil))
}
