package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/newsnotes"
)

// Run executes the note add command.
func (c *NoteAddCmd) Run(deps *Dependencies) error {
	fields, err := parseFields(c.Fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	note := &newsnotes.Note{Fields: fields}
	if err := deps.Notes.CreateArticleNote(deps.Ctx, c.ArticleID, note); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added note %s to article %s\n", note.ID, c.ArticleID)
	return nil
}

// Run executes the note create command.
func (c *NoteCreateCmd) Run(deps *Dependencies) error {
	fields, err := parseFields(c.Fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	note := &newsnotes.Note{Fields: fields}
	if err := deps.Notes.CreateNote(deps.Ctx, note); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created note %s\n", note.ID)
	return nil
}

// Run executes the note attach command.
func (c *NoteAttachCmd) Run(deps *Dependencies) error {
	if err := deps.Articles.AssociateNote(deps.Ctx, c.ArticleID, c.NoteID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Attached note %s to article %s\n", c.NoteID, c.ArticleID)
	return nil
}

// Run executes the note delete command.
func (c *NoteDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Notes.DeleteNote(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted note %s\n", c.ID)
	return nil
}

// parseFields turns key=value arguments into note fields. Later keys win.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, newsnotes.Errorf(newsnotes.EINVALID, "invalid field %q, expected key=value", arg)
		}
		fields[k] = v
	}
	return fields, nil
}
