package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/xxhash"
)

// Compile-time interface verification.
var _ newsnotes.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsnotes.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle creates a new article from a draft. A ContentHash already
// set on the draft is kept; otherwise it is computed from link, title and
// summary.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsnotes.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	id, err := newID()
	if err != nil {
		return err
	}
	createdAt := time.Now().UTC()
	hash := article.ContentHash
	if hash == "" {
		hash = xxhash.ContentHash(article)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_index, title, summary, link, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, article.SourceIndex, article.Title, article.Summary, article.Link,
		hash, createdAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	article.ID = id
	article.CreatedAt = createdAt
	article.ContentHash = hash
	article.Notes = []string{}
	return nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsnotes.Article, error) {
	articles, err := s.FindArticles(ctx, newsnotes.ArticleFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, newsnotes.Errorf(newsnotes.ENOTFOUND, "article not found")
	}
	return articles[0], nil
}

// FindArticles retrieves articles matching the filter, ordered by
// descending ID.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsnotes.ArticleFilter) ([]*newsnotes.Article, error) {
	selection, args := articleSelection(filter)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source_index, title, summary, link, content_hash, created_at FROM articles"+selection,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*newsnotes.Article{}
	byID := make(map[string]*newsnotes.Article)
	for rows.Next() {
		var a newsnotes.Article
		var createdAt string

		if err := rows.Scan(&a.ID, &a.SourceIndex, &a.Title, &a.Summary, &a.Link,
			&a.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		a.Notes = []string{}

		articles = append(articles, &a)
		byID[a.ID] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		return articles, nil
	}
	if err := s.attachNoteIDs(ctx, byID, selection, args); err != nil {
		return nil, err
	}
	return articles, nil
}

// FindContentHashes returns the content hash of every stored article.
func (s *ArticleService) FindContentHashes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT content_hash FROM articles WHERE content_hash != ''")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := []string{}
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}

// articleSelection builds the WHERE, ORDER BY and pagination clauses for a
// filter. The same clauses select the articles whose notes are attached, so
// the number of bound variables does not grow with the result.
func articleSelection(filter newsnotes.ArticleFilter) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString(" WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Link != nil {
		query.WriteString(" AND link = ?")
		args = append(args, *filter.Link)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	return query.String(), args
}

// attachNoteIDs fills Notes on each article with its note sequence. The
// selection is the one that produced the articles.
func (s *ArticleService) attachNoteIDs(ctx context.Context, byID map[string]*newsnotes.Article, selection string, args []any) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT article_id, note_id FROM article_notes
		WHERE article_id IN (SELECT id FROM articles`+selection+`)
		ORDER BY article_id, position
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var articleID, noteID string
		if err := rows.Scan(&articleID, &noteID); err != nil {
			return err
		}
		if a, ok := byID[articleID]; ok {
			a.Notes = append(a.Notes, noteID)
		}
	}
	return rows.Err()
}

// DeleteArticle permanently removes an article. Its note sequence goes with
// it through the foreign key; the notes themselves stay.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsnotes.Errorf(newsnotes.ENOTFOUND, "article not found")
	}

	return nil
}

// FindArticleWithNotes retrieves an article and the notes it references.
// References to deleted notes drop out of the join.
func (s *ArticleService) FindArticleWithNotes(ctx context.Context, id string) (*newsnotes.ArticleWithNotes, error) {
	article, err := s.FindArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT n.id, n.fields, n.created_at
		FROM article_notes an
		JOIN notes n ON n.id = an.note_id
		WHERE an.article_id = ?
		ORDER BY an.position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []*newsnotes.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &newsnotes.ArticleWithNotes{Article: article, Notes: notes}, nil
}

// AssociateNote appends noteID to the article's note sequence.
// The existence checks run inside the insert statement.
func (s *ArticleService) AssociateNote(ctx context.Context, articleID, noteID string) error {
	return appendNote(ctx, s.db, articleID, noteID)
}

// execer is satisfied by *DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// appendNote adds noteID after the last entry of the article's sequence.
// It inserts nothing unless both the article and the note exist, and then
// reports which one is missing.
func appendNote(ctx context.Context, e execer, articleID, noteID string) error {
	result, err := e.ExecContext(ctx, `
		INSERT INTO article_notes (article_id, position, note_id)
		SELECT a.id,
			COALESCE((SELECT MAX(position) + 1 FROM article_notes WHERE article_id = a.id), 0),
			n.id
		FROM articles a, notes n
		WHERE a.id = ? AND n.id = ?
	`, articleID, noteID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	if err := requireRow(ctx, e, "articles", articleID); err != nil {
		return err
	}
	if err := requireRow(ctx, e, "notes", noteID); err != nil {
		return err
	}
	return newsnotes.Errorf(newsnotes.ENOTFOUND, "article or note not found")
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanNote reads a note row of (id, fields, created_at).
func scanNote(row scanner) (*newsnotes.Note, error) {
	var note newsnotes.Note
	var fields, createdAt string

	if err := row.Scan(&note.ID, &fields, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(fields), &note.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode note fields: %w", err)
	}
	var err error
	if note.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &note, nil
}
