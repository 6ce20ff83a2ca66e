package mock

import (
	"context"

	"github.com/fwojciec/newsnotes"
)

var _ newsnotes.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of newsnotes.NoteService.
type NoteService struct {
	CreateNoteFn        func(ctx context.Context, note *newsnotes.Note) error
	FindNoteByIDFn      func(ctx context.Context, id string) (*newsnotes.Note, error)
	DeleteNoteFn        func(ctx context.Context, id string) error
	CreateArticleNoteFn func(ctx context.Context, articleID string, note *newsnotes.Note) error
}

func (s *NoteService) CreateNote(ctx context.Context, note *newsnotes.Note) error {
	return s.CreateNoteFn(ctx, note)
}

func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*newsnotes.Note, error) {
	return s.FindNoteByIDFn(ctx, id)
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	return s.DeleteNoteFn(ctx, id)
}

func (s *NoteService) CreateArticleNote(ctx context.Context, articleID string, note *newsnotes.Note) error {
	return s.CreateArticleNoteFn(ctx, articleID, note)
}
