package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsnotes"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Articles newsnotes.ArticleService
	Notes    newsnotes.NoteService
	Scraper  newsnotes.ListingScraper

	// ListingURL is scraped when a command is given no URLs.
	ListingURL string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" env:"NEWSNOTES_DB" help:"Database path (default ~/.newsnotes/newsnotes.db)"`
	Listing string        `name:"listing" env:"NEWSNOTES_URL" default:"https://techcrunch.com/popular/" help:"Listing URL scraped when none is given"`
	Timeout time.Duration `env:"NEWSNOTES_TIMEOUT" default:"10s" help:"Fetch timeout"`
	Rate    float64       `env:"NEWSNOTES_RATE" default:"1" help:"Fetches per second per host (0 disables limiting)"`
	Verbose bool          `short:"v" help:"Log fetches and scrapes to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape listings and print the articles found"`
	Save   SaveCmd   `cmd:"" help:"Scrape listings and save new articles"`
	List   ListCmd   `cmd:"" help:"List saved articles, newest first"`
	Show   ShowCmd   `cmd:"" help:"Show a saved article with its notes"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved article"`
	Note   NoteCmd   `cmd:"" help:"Manage notes"`
	Serve  ServeCmd  `cmd:"" help:"Serve the JSON API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Listing URLs (default --listing)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Listing URLs (default --listing)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Offset int `help:"Skip this many articles"`
	Limit  int `short:"n" help:"Show at most this many articles"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}

// NoteCmd groups the "note" subcommands.
type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a note to an article"`
	Create NoteCreateCmd `cmd:"" help:"Create a note without an article"`
	Attach NoteAttachCmd `cmd:"" help:"Append an existing note to an article"`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note"`
}

// NoteAddCmd is the "note add" subcommand.
type NoteAddCmd struct {
	ArticleID string   `arg:"" name:"article-id" help:"Article ID"`
	Fields    []string `arg:"" name:"field" help:"Note fields as key=value"`
}

// NoteCreateCmd is the "note create" subcommand.
type NoteCreateCmd struct {
	Fields []string `arg:"" optional:"" name:"field" help:"Note fields as key=value"`
}

// NoteAttachCmd is the "note attach" subcommand.
type NoteAttachCmd struct {
	ArticleID string `arg:"" name:"article-id" help:"Article ID"`
	NoteID    string `arg:"" name:"note-id" help:"Note ID"`
}

// NoteDeleteCmd is the "note delete" subcommand.
type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string        `env:"NEWSNOTES_ADDR" default:":3000" help:"Listen address"`
	Origins   []string      `name:"cors-origin" help:"Allowed CORS origin (repeatable, default any)"`
	ScrapeTTL time.Duration `name:"scrape-ttl" default:"5m" help:"How long scraped listings are reused (0 disables caching)"`
}
