package newsnotes

import (
	"context"
	"time"
)

// Note is a user-authored annotation. Its content is free-form: whatever
// key/value pairs the caller supplied when creating it.
type Note struct {
	ID        string         `json:"id,omitempty"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"createdAt,omitzero"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	for k := range n.Fields {
		if k == "" {
			return Errorf(EINVALID, "note field name required")
		}
	}
	return nil
}

// NoteService represents a service for managing notes.
type NoteService interface {
	// CreateNote creates a new note that is not attached to any article.
	CreateNote(ctx context.Context, note *Note) error

	// FindNoteByID retrieves a note by ID.
	// Returns ENOTFOUND if note does not exist.
	FindNoteByID(ctx context.Context, id string) (*Note, error)

	// DeleteNote permanently removes a note. Articles referencing it keep
	// the reference.
	// Returns ENOTFOUND if note does not exist.
	DeleteNote(ctx context.Context, id string) error

	// CreateArticleNote creates a note and appends it to the article in a
	// single transaction, so a failure never leaves an orphaned note.
	// Returns ENOTFOUND if article does not exist.
	CreateArticleNote(ctx context.Context, articleID string, note *Note) error
}
