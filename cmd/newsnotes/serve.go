package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	nnchi "github.com/fwojciec/newsnotes/chi"
	"github.com/fwojciec/newsnotes/lru"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled
// or the process is interrupted, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scraper := deps.Scraper
	if c.ScrapeTTL > 0 {
		scraper = lru.NewCachingListingScraper(scraper, lru.DefaultSize, c.ScrapeTTL)
	}

	api := &nnchi.Server{
		Articles:       deps.Articles,
		Notes:          deps.Notes,
		Scraper:        scraper,
		ListingURL:     deps.ListingURL,
		AllowedOrigins: c.Origins,
		Metrics:        nnchi.NewMetrics(),
		Logger:         deps.Logger,
	}
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
