package newsnotes

import (
	"fmt"
	"slices"
	"strings"
)

// FormatArticles formats articles for terminal display.
// Uses title if available, falls back to link. Articles are separated by
// blank lines; drafts are shown without an ID line.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.Title
		if header == "" {
			header = a.Link
		}
		if header == "" {
			header = "(untitled)"
		}

		var b strings.Builder
		b.WriteString("## " + header + "\n")
		if a.ID != "" {
			fmt.Fprintf(&b, "id: %s\n", a.ID)
		}
		if a.Link != "" && a.Link != header {
			fmt.Fprintf(&b, "link: %s\n", a.Link)
		}
		if len(a.Notes) > 0 {
			fmt.Fprintf(&b, "notes: %d\n", len(a.Notes))
		}
		if a.Summary != "" {
			b.WriteString(a.Summary + "\n")
		}
		parts = append(parts, strings.TrimSuffix(b.String(), "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// FormatNote formats a note's fields as sorted key: value lines.
func FormatNote(note *Note) string {
	keys := make([]string, 0, len(note.Fields))
	for k := range note.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, note.Fields[k]))
	}
	return strings.Join(lines, "\n")
}
