package pipeline

import (
	"context"
	"html"
	"strings"

	"github.com/alnah/go-research2pdf/internal/manifest"
)

// AnchorMap maps effective titles to slugs and remembers insertion order.
// Setting a title twice overwrites its slug but keeps its first position,
// so a later duplicate wins in lookups.
type AnchorMap struct {
	titles []string
	slugs  map[string]string
}

// NewAnchorMap creates an empty AnchorMap.
func NewAnchorMap() *AnchorMap {
	return &AnchorMap{slugs: make(map[string]string)}
}

// BuildAnchorMap slugifies each entry's title, in entry order.
func BuildAnchorMap(entries []manifest.Entry) *AnchorMap {
	m := NewAnchorMap()
	for _, e := range entries {
		m.Set(e.Title, Slugify(e.Title))
	}
	return m
}

// Set records slug for title.
func (m *AnchorMap) Set(title, slug string) {
	if _, ok := m.slugs[title]; !ok {
		m.titles = append(m.titles, title)
	}
	m.slugs[title] = slug
}

// Lookup returns the slug recorded for title.
func (m *AnchorMap) Lookup(title string) (string, bool) {
	slug, ok := m.slugs[title]
	return slug, ok
}

// Titles returns the titles in insertion order.
func (m *AnchorMap) Titles() []string {
	return append([]string(nil), m.titles...)
}

// Len returns the number of distinct titles.
func (m *AnchorMap) Len() int {
	return len(m.titles)
}

// TOCEntry is one line of the table of contents.
type TOCEntry struct {
	Label string
	Title string
	Slug  string
}

// BuildTOC returns one TOCEntry per entry, in entry order.
func BuildTOC(entries []manifest.Entry) []TOCEntry {
	toc := make([]TOCEntry, 0, len(entries))
	for _, e := range entries {
		toc = append(toc, TOCEntry{
			Label: e.Label,
			Title: e.Title,
			Slug:  Slugify(e.Title),
		})
	}
	return toc
}

// TOCRenderer defines the contract for rendering a table of contents.
type TOCRenderer interface {
	RenderTOC(ctx context.Context, title string, toc []TOCEntry) (string, error)
}

// TOCRendering renders a table of contents as a <nav> list of links.
type TOCRendering struct{}

// NewTOCRendering creates a TOC renderer.
func NewTOCRendering() *TOCRendering {
	return &TOCRendering{}
}

// RenderTOC renders the table of contents. An empty toc renders nothing.
func (r *TOCRendering) RenderTOC(ctx context.Context, title string, toc []TOCEntry) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return RenderTOC(title, toc), nil
}

// RenderTOC produces:
//
//	<nav class="toc"><h2 class="toc-title">Title</h2><ul>
//	<li><a href="#slug">label. title</a></li>
//	</ul></nav>
//
// Label, title and heading are HTML-escaped.
func RenderTOC(title string, toc []TOCEntry) string {
	if len(toc) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)
	if title != "" {
		buf.WriteString(`<h2 class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</h2>`)
	}
	buf.WriteString("<ul>\n")

	for _, e := range toc {
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(e.Slug))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(e.Label))
		buf.WriteString(`. `)
		buf.WriteString(html.EscapeString(e.Title))
		buf.WriteString("</a></li>\n")
	}

	buf.WriteString(`</ul></nav>`)
	return buf.String()
}

// Compile-time interface check.
var _ TOCRenderer = (*TOCRendering)(nil)
