package newsnotes

import (
	"context"
	"time"
)

// Article represents a news item scraped from a listing page.
//
// An Article with an empty ID is a draft: it has been extracted but not yet
// persisted. Text fields are empty when the source markup lacks the node
// they are read from.
type Article struct {
	ID          string    `json:"id,omitempty"`
	SourceIndex string    `json:"sourceIndex,omitempty"`
	Title       string    `json:"title,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Link        string    `json:"link,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	Notes       []string  `json:"notes"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" && a.Summary == "" && a.Link == "" {
		return Errorf(EINVALID, "article title, summary or link required")
	}
	return nil
}

// ArticleWithNotes is an article together with the notes it references.
// Notes follow the order of Article.Notes; references to notes that no
// longer exist are left out.
type ArticleWithNotes struct {
	Article *Article `json:"article"`
	Notes   []*Note  `json:"notes"`
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle persists a draft. It assigns ID, CreatedAt and
	// ContentHash and resets Notes to an empty sequence.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// FindContentHashes returns the content hash of every stored article.
	FindContentHashes(ctx context.Context) ([]string, error)

	// DeleteArticle permanently removes an article. Notes it references
	// are left in place.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error

	// FindArticleWithNotes retrieves an article and resolves its notes.
	// Returns ENOTFOUND if article does not exist.
	FindArticleWithNotes(ctx context.Context, id string) (*ArticleWithNotes, error)

	// AssociateNote appends noteID to the article's note sequence.
	// Returns ENOTFOUND if either the article or the note does not exist.
	AssociateNote(ctx context.Context, articleID, noteID string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID          *string `json:"id"`
	Link        *string `json:"link"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
