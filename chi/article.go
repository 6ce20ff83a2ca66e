package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fwojciec/newsnotes"
	"github.com/go-chi/chi/v5"
)

// ArticleRequest is the body accepted by POST /articles.
type ArticleRequest struct {
	SourceIndex string `json:"sourceIndex"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		url = s.ListingURL
	}
	if url == "" {
		url = DefaultListingURL
	}

	articles, err := s.Scraper.ScrapeListing(r.Context(), url)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	var filter newsnotes.ArticleFilter
	var err error
	if filter.Offset, err = intParam(r, "offset"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if filter.Limit, err = intParam(r, "limit"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if link := r.URL.Query().Get("link"); link != "" {
		filter.Link = &link
	}

	articles, err := s.Articles.FindArticles(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, newsnotes.Errorf(newsnotes.EINVALID, "invalid request body: %v", err))
		return
	}

	article := &newsnotes.Article{
		SourceIndex: req.SourceIndex,
		Title:       req.Title,
		Summary:     req.Summary,
		Link:        req.Link,
	}
	if err := s.Articles.CreateArticle(r.Context(), article); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	awn, err := s.Articles.FindArticleWithNotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, awn)
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := s.Articles.DeleteArticle(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// intParam parses a non-negative integer query parameter. Missing is zero.
func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, newsnotes.Errorf(newsnotes.EINVALID, "%s must be a non-negative integer", name)
	}
	return n, nil
}
