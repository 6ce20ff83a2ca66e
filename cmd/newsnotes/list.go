package main

import (
	"fmt"

	"github.com/fwojciec/newsnotes"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, newsnotes.ArticleFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved articles. Use 'newsnotes save' to store some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, newsnotes.FormatArticles(articles))
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	awn, err := deps.Articles.FindArticleWithNotes(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, newsnotes.FormatArticles([]*newsnotes.Article{awn.Article}))
	for _, n := range awn.Notes {
		fmt.Fprintf(deps.Stdout, "\n--- note %s\n", n.ID)
		if s := newsnotes.FormatNote(n); s != "" {
			fmt.Fprintln(deps.Stdout, s)
		}
	}
	return nil
}
