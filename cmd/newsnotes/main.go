package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/goquery"
	nnhttp "github.com/fwojciec/newsnotes/http"
	"github.com/fwojciec/newsnotes/scrape"
	nnslog "github.com/fwojciec/newsnotes/slog"
	"github.com/fwojciec/newsnotes/sqlite"
	"github.com/lmittmann/tint"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). Overridden by --db or
	// NEWSNOTES_DB.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService newsnotes.ArticleService
	NoteService    newsnotes.NoteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsnotes"),
		kong.Description("Scrape news listings and keep notes on saved articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsnotes --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.ListingURL = cli.Listing

	fetcher := nnhttp.NewFetcher(nnhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	var f newsnotes.Fetcher = fetcher
	if cli.Verbose {
		f = nnslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	scraper := &scrape.Scraper{
		Fetcher:   f,
		Extractor: goquery.NewListingExtractor(),
	}
	if cli.Rate > 0 {
		scraper.RateLimiter = scrape.NewDomainLimiter(cli.Rate)
	}
	deps.Scraper = scraper
	if cli.Verbose {
		deps.Scraper = nnslog.NewLoggingListingScraper(scraper, deps.Logger)
	}

	// Scraping alone never touches the database.
	if cmd == "scrape" {
		return kongCtx.Run(deps)
	}

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSNOTES_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.NoteService = sqlite.NewNoteService(m.DB)
	deps.Articles = m.ArticleService
	deps.Notes = m.NoteService

	return kongCtx.Run(deps)
}

// newLogger returns a tint logger writing to w. Color is used only when w
// is a file such as a terminal.
func newLogger(w io.Writer) *slog.Logger {
	_, isFile := w.(*os.File)
	return slog.New(tint.NewHandler(w, &tint.Options{
		TimeFormat: time.Kitchen,
		NoColor:    !isFile,
	}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsnotes.db"
	}
	dir := filepath.Join(home, ".newsnotes")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsnotes.db")
}
