// Package goquery extracts article drafts from listing markup using
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsnotes"
)

// Ensure ListingExtractor implements newsnotes.ListingExtractor at compile time.
var _ newsnotes.ListingExtractor = (*ListingExtractor)(nil)

// ListingPlan is the fixed chain of selectors applied to a listing page.
// All selectors after Container are evaluated relative to a candidate.
type ListingPlan struct {
	// Container matches one node per listing entry.
	Container string

	// Heading matches direct children of a candidate holding the title.
	Heading string

	// HeadingLink matches anchors directly inside the heading.
	HeadingLink string

	// Excerpt matches direct children of a candidate holding the summary.
	Excerpt string

	// ExcerptLink matches links inside the excerpt that are removed before
	// the summary is read.
	ExcerptLink string

	// Parent and GrandParent filter the two ancestors walked to reach the
	// provenance attribute.
	Parent      string
	GrandParent string

	// IndexAttr is the grandparent attribute holding the source index.
	IndexAttr string
}

// DefaultListingPlan returns the plan for the TechCrunch "popular" listing.
func DefaultListingPlan() ListingPlan {
	return ListingPlan{
		Container:   ".block-content",
		Heading:     "h2",
		HeadingLink: "a",
		Excerpt:     "p.excerpt",
		ExcerptLink: "a",
		Parent:      "div",
		GrandParent: "li",
		IndexAttr:   "id",
	}
}

// ListingExtractor applies a ListingPlan to listing markup.
type ListingExtractor struct {
	plan ListingPlan
}

// Option configures a ListingExtractor.
type Option func(*ListingExtractor)

// WithPlan replaces the default selector plan.
func WithPlan(plan ListingPlan) Option {
	return func(e *ListingExtractor) {
		e.plan = plan
	}
}

// NewListingExtractor creates a new ListingExtractor.
func NewListingExtractor(opts ...Option) *ListingExtractor {
	e := &ListingExtractor{plan: DefaultListingPlan()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses markup and returns one draft per candidate in document
// order.
func (e *ListingExtractor) Extract(html string) ([]*newsnotes.Article, error) {
	candidates, err := e.Candidates(html)
	if err != nil {
		return nil, err
	}

	articles := make([]*newsnotes.Article, 0, len(candidates))
	for _, c := range candidates {
		articles = append(articles, c.Article())
	}
	return articles, nil
}

// Candidates parses markup and returns the nodes matched by the container
// selector, in document order.
func (e *ListingExtractor) Candidates(html string) ([]*Candidate, error) {
	root, err := parseTree(html)
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)

	var candidates []*Candidate
	doc.Find(e.plan.Container).Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, &Candidate{sel: sel, plan: e.plan})
	})
	return candidates, nil
}

// Candidate is a single listing entry. Each accessor reports whether the
// node it reads from exists; a missing node never affects other fields.
type Candidate struct {
	sel  *goquery.Selection
	plan ListingPlan
}

// StripExcerptLinks removes links nested in the excerpt. It mutates the
// parsed document, so later reads of the same candidate see the stripped
// excerpt. Calling it again is a no-op.
func (c *Candidate) StripExcerptLinks() {
	c.sel.ChildrenFiltered(c.plan.Excerpt).Find(c.plan.ExcerptLink).Remove()
}

// SourceIndex returns the index attribute of the candidate's grandparent.
func (c *Candidate) SourceIndex() (string, bool) {
	return c.sel.
		ParentFiltered(c.plan.Parent).
		ParentFiltered(c.plan.GrandParent).
		Attr(c.plan.IndexAttr)
}

// Title returns the text of the candidate's heading.
func (c *Candidate) Title() (string, bool) {
	return text(c.sel.ChildrenFiltered(c.plan.Heading))
}

// Summary strips excerpt links and returns the excerpt text.
func (c *Candidate) Summary() (string, bool) {
	c.StripExcerptLinks()
	return text(c.sel.ChildrenFiltered(c.plan.Excerpt))
}

// Link returns the href of the anchor inside the heading.
func (c *Candidate) Link() (string, bool) {
	return c.sel.
		ChildrenFiltered(c.plan.Heading).
		ChildrenFiltered(c.plan.HeadingLink).
		Attr("href")
}

// Article normalizes the candidate into a draft. Missing fields are left
// empty.
func (c *Candidate) Article() *newsnotes.Article {
	var a newsnotes.Article
	a.SourceIndex, _ = c.SourceIndex()
	a.Title, _ = c.Title()
	a.Summary, _ = c.Summary()
	a.Link, _ = c.Link()
	a.Link = strings.TrimSpace(a.Link)
	return &a
}

// text returns the trimmed text of sel, or false when sel is empty.
func text(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}
