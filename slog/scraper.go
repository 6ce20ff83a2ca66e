package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsnotes"
)

// Ensure LoggingListingScraper implements newsnotes.ListingScraper.
var _ newsnotes.ListingScraper = (*LoggingListingScraper)(nil)

// LoggingListingScraper wraps a ListingScraper with debug logging.
type LoggingListingScraper struct {
	next   newsnotes.ListingScraper
	logger *slog.Logger
}

// NewLoggingListingScraper creates a new LoggingListingScraper.
func NewLoggingListingScraper(next newsnotes.ListingScraper, logger *slog.Logger) *LoggingListingScraper {
	return &LoggingListingScraper{next: next, logger: logger}
}

// ScrapeListing delegates to the wrapped scraper and logs the operation.
func (s *LoggingListingScraper) ScrapeListing(ctx context.Context, url string) (articles []*newsnotes.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape listing",
			"url", url,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScrapeListing(ctx, url)
}
