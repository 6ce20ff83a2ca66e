package main

import (
	"fmt"

	"github.com/fwojciec/newsnotes"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsnotes.Errorf(newsnotes.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if newsnotes.ErrorCode(err) == newsnotes.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'newsnotes list' to see saved articles.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
