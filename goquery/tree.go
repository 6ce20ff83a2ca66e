package goquery

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/newsnotes"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never contain children.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// parseTree builds a node tree that mirrors the nesting written in the
// markup.
//
// html.Parse applies the HTML5 tree construction rules, which close an open
// <p> when a heading or another <p> starts. Listing pages put headings and
// excerpts inside a <p> container, so that would move them out of the
// container the selectors look in. Here an end tag closes the nearest open
// element with the same name and unmatched end tags are dropped.
func parseTree(markup string) (*html.Node, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, newsnotes.Errorf(newsnotes.EPARSE, "empty markup")
	}

	root := &html.Node{Type: html.DocumentNode}
	cur := root

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, newsnotes.Errorf(newsnotes.EPARSE, "failed to tokenize markup: %v", err)
			}
			return root, nil
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: tok.Data})
		case html.CommentToken:
			cur.AppendChild(&html.Node{Type: html.CommentNode, Data: tok.Data})
		case html.DoctypeToken:
			root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: tok.Data})
		case html.StartTagToken, html.SelfClosingTagToken:
			n := &html.Node{
				Type:     html.ElementNode,
				Data:     tok.Data,
				DataAtom: tok.DataAtom,
				Attr:     tok.Attr,
			}
			cur.AppendChild(n)
			if tt == html.StartTagToken && !voidElements[tok.DataAtom] {
				cur = n
			}
		case html.EndTagToken:
			for n := cur; n != nil && n != root; n = n.Parent {
				if n.Data == tok.Data {
					cur = n.Parent
					break
				}
			}
		}
	}
}
