package main

import (
	"fmt"

	"github.com/fwojciec/newsnotes"
	"github.com/fwojciec/newsnotes/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	articles, err := scrape.Listings(deps.Ctx, deps.Scraper, listingURLs(c.URLs, deps), c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, newsnotes.FormatArticles(articles))
	return nil
}

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	drafts, err := scrape.Listings(deps.Ctx, deps.Scraper, listingURLs(c.URLs, deps), c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	saver := &scrape.Saver{Articles: deps.Articles}
	result, err := saver.Save(deps.Ctx, drafts)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Saved %d articles (%d already saved, %d empty)\n",
			len(result.Saved), result.Duplicates, result.Invalid)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}
	return nil
}

func listingURLs(urls []string, deps *Dependencies) []string {
	if len(urls) > 0 {
		return urls
	}
	return []string{deps.ListingURL}
}
