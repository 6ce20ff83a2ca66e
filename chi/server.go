// Package chi exposes the newsnotes services as a JSON HTTP API.
package chi

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/newsnotes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultListingURL is the listing scraped when a request names none.
const DefaultListingURL = "https://techcrunch.com/popular/"

// Server routes API requests to the newsnotes services.
type Server struct {
	Articles newsnotes.ArticleService
	Notes    newsnotes.NoteService
	Scraper  newsnotes.ListingScraper

	// ListingURL is scraped by GET /scrape when no url parameter is given.
	ListingURL string

	// AllowedOrigins lists the origins allowed by CORS. Empty allows all.
	AllowedOrigins []string

	// Metrics, if set, records request metrics and is served at /metrics.
	Metrics *Metrics

	Logger *slog.Logger
}

// Handler builds the router with its middleware stack.
func (s *Server) Handler() http.Handler {
	origins := s.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if s.Metrics != nil {
		r.Use(s.Metrics.middleware)
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Get("/scrape", s.handleScrape)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", s.handleListArticles)
		r.Post("/", s.handleCreateArticle)
		r.Get("/{id}", s.handleGetArticle)
		r.Delete("/{id}", s.handleDeleteArticle)
		r.Post("/{id}/notes", s.handleCreateArticleNote)
		r.Post("/{id}/notes/{noteID}", s.handleAssociateNote)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", s.handleCreateNote)
		r.Get("/{id}", s.handleGetNote)
		r.Delete("/{id}", s.handleDeleteNote)
	})

	return r
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
