package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateNote(t *testing.T) {
	t.Parallel()

	t.Run("creates note with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		ctx := context.Background()

		note := &newsnotes.Note{Fields: map[string]any{"title": "Later", "body": "read this"}}

		err := svc.CreateNote(ctx, note)
		require.NoError(t, err)

		assert.NotEmpty(t, note.ID, "ID should be generated")
		assert.False(t, note.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("round-trips loosely typed fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		ctx := context.Background()

		note := &newsnotes.Note{Fields: map[string]any{
			"text":   "n1",
			"rating": 4,
			"tags":   []any{"ai", "funding"},
			"read":   true,
		}}
		require.NoError(t, svc.CreateNote(ctx, note))

		found, err := svc.FindNoteByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "n1", found.Fields["text"])
		assert.Equal(t, float64(4), found.Fields["rating"])
		assert.Equal(t, []any{"ai", "funding"}, found.Fields["tags"])
		assert.Equal(t, true, found.Fields["read"])
	})

	t.Run("accepts note without fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		ctx := context.Background()

		note := &newsnotes.Note{}
		require.NoError(t, svc.CreateNote(ctx, note))

		found, err := svc.FindNoteByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Fields)
	})

	t.Run("returns error for invalid note", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)

		err := svc.CreateNote(context.Background(), &newsnotes.Note{Fields: map[string]any{"": "x"}})
		require.Error(t, err)
		assert.Equal(t, newsnotes.EINVALID, newsnotes.ErrorCode(err))
	})
}

func TestNoteService_FindNoteByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)

		_, err := svc.FindNoteByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, newsnotes.ENOTFOUND, newsnotes.ErrorCode(err))
	})
}

func TestNoteService_DeleteNote(t *testing.T) {
	t.Parallel()

	t.Run("deletes note but keeps article reference", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		articles := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := createTestArticle(t, db, "alpha")
		note := createTestNote(t, db, "n")
		require.NoError(t, articles.AssociateNote(ctx, article.ID, note.ID))

		require.NoError(t, svc.DeleteNote(ctx, note.ID))

		_, err := svc.FindNoteByID(ctx, note.ID)
		assert.Equal(t, newsnotes.ENOTFOUND, newsnotes.ErrorCode(err))

		found, err := articles.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{note.ID}, found.Notes)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)

		err := svc.DeleteNote(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, newsnotes.ENOTFOUND, newsnotes.ErrorCode(err))
	})
}

func TestNoteService_CreateArticleNote(t *testing.T) {
	t.Parallel()

	t.Run("creates and associates in one step", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		articles := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := createTestArticle(t, db, "alpha")
		first := &newsnotes.Note{Fields: map[string]any{"text": "first"}}
		second := &newsnotes.Note{Fields: map[string]any{"text": "second"}}

		require.NoError(t, svc.CreateArticleNote(ctx, article.ID, first))
		require.NoError(t, svc.CreateArticleNote(ctx, article.ID, second))

		got, err := articles.FindArticleWithNotes(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID, second.ID}, got.Article.Notes)
		require.Len(t, got.Notes, 2)
		assert.Equal(t, "first", got.Notes[0].Fields["text"])
		assert.Equal(t, "second", got.Notes[1].Fields["text"])
	})

	t.Run("missing article creates no note", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)
		ctx := context.Background()

		note := &newsnotes.Note{Fields: map[string]any{"text": "orphan"}}

		err := svc.CreateArticleNote(ctx, "nonexistent-id", note)
		require.Error(t, err)
		assert.Equal(t, newsnotes.ENOTFOUND, newsnotes.ErrorCode(err))
		assert.Empty(t, note.ID)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("invalid note is rejected", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNoteService(db)

		article := createTestArticle(t, db, "alpha")

		err := svc.CreateArticleNote(context.Background(), article.ID, &newsnotes.Note{Fields: map[string]any{"": 1}})
		assert.Equal(t, newsnotes.EINVALID, newsnotes.ErrorCode(err))
	})
}
