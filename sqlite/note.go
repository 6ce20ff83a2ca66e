package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/newsnotes"
)

// Compile-time interface verification.
var _ newsnotes.NoteService = (*NoteService)(nil)

// NoteService implements newsnotes.NoteService using SQLite.
type NoteService struct {
	db *DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db}
}

// CreateNote creates a new note.
func (s *NoteService) CreateNote(ctx context.Context, note *newsnotes.Note) error {
	return s.insertNote(ctx, s.db, note)
}

// insertNote validates, assigns an ID and writes the note using e.
func (s *NoteService) insertNote(ctx context.Context, e execer, note *newsnotes.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	fields := note.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return newsnotes.Errorf(newsnotes.EINVALID, "note fields: %v", err)
	}

	id, err := newID()
	if err != nil {
		return err
	}
	createdAt := time.Now().UTC()

	if _, err := e.ExecContext(ctx, `
		INSERT INTO notes (id, fields, created_at)
		VALUES (?, ?, ?)
	`, id, string(data), createdAt.Format(time.RFC3339)); err != nil {
		return err
	}

	note.ID = id
	note.Fields = fields
	note.CreatedAt = createdAt
	return nil
}

// FindNoteByID retrieves a note by ID.
func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*newsnotes.Note, error) {
	note, err := scanNote(s.db.QueryRowContext(ctx, `
		SELECT id, fields, created_at
		FROM notes
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, newsnotes.Errorf(newsnotes.ENOTFOUND, "note not found")
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote permanently removes a note. Article note sequences are not
// touched.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsnotes.Errorf(newsnotes.ENOTFOUND, "note not found")
	}

	return nil
}

// CreateArticleNote creates a note and appends it to the article within one
// transaction.
func (s *NoteService) CreateArticleNote(ctx context.Context, articleID string, note *newsnotes.Note) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = requireRow(ctx, tx, "articles", articleID); err != nil {
		return err
	}

	// Work on a copy so a rolled back insert leaves the caller's note unchanged.
	created := *note
	if err = s.insertNote(ctx, tx, &created); err != nil {
		return err
	}
	if err = appendNote(ctx, tx, articleID, created.ID); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	*note = created
	return nil
}
