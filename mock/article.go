package mock

import (
	"context"

	"github.com/fwojciec/newsnotes"
)

var _ newsnotes.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsnotes.ArticleService.
type ArticleService struct {
	CreateArticleFn        func(ctx context.Context, article *newsnotes.Article) error
	FindArticleByIDFn      func(ctx context.Context, id string) (*newsnotes.Article, error)
	FindArticlesFn         func(ctx context.Context, filter newsnotes.ArticleFilter) ([]*newsnotes.Article, error)
	FindContentHashesFn    func(ctx context.Context) ([]string, error)
	DeleteArticleFn        func(ctx context.Context, id string) error
	FindArticleWithNotesFn func(ctx context.Context, id string) (*newsnotes.ArticleWithNotes, error)
	AssociateNoteFn        func(ctx context.Context, articleID, noteID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsnotes.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsnotes.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsnotes.ArticleFilter) ([]*newsnotes.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) FindContentHashes(ctx context.Context) ([]string, error) {
	return s.FindContentHashesFn(ctx)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

func (s *ArticleService) FindArticleWithNotes(ctx context.Context, id string) (*newsnotes.ArticleWithNotes, error) {
	return s.FindArticleWithNotesFn(ctx, id)
}

func (s *ArticleService) AssociateNote(ctx context.Context, articleID, noteID string) error {
	return s.AssociateNoteFn(ctx, articleID, noteID)
}
