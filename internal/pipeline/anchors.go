package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrAnchorReconcile indicates the converted HTML could not be tokenized.
var ErrAnchorReconcile = errors.New("anchor reconciliation failed")

// FuzzyPrefixLength is the number of runes compared by the fuzzy match.
const FuzzyPrefixLength = 40

// MatchKind says how a heading was tied to an anchor.
type MatchKind int

const (
	MatchExact    MatchKind = iota + 1 // heading text equals an effective title
	MatchFuzzy                         // titles share a leading prefix
	MatchFallback                      // slug derived from the heading itself
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	case MatchFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Matcher resolves heading text to a slug: exact title lookup first, then the
// first title in insertion order sharing a FuzzyPrefixLength-rune prefix in
// either direction, then Slugify of the heading text.
type Matcher struct {
	anchors *AnchorMap
}

// NewMatcher creates a Matcher over anchors. A nil map only yields fallbacks.
func NewMatcher(anchors *AnchorMap) *Matcher {
	if anchors == nil {
		anchors = NewAnchorMap()
	}
	return &Matcher{anchors: anchors}
}

// Resolve returns the slug for plain heading text and how it was found.
func (m *Matcher) Resolve(plain string) (string, MatchKind) {
	if slug, ok := m.anchors.Lookup(plain); ok {
		return slug, MatchExact
	}
	if slug, ok := m.fuzzy(plain); ok {
		return slug, MatchFuzzy
	}
	return Slugify(plain), MatchFallback
}

// fuzzy accepts a title when the heading starts with the title's leading
// runes, or the title starts with the heading's. Empty strings never match.
func (m *Matcher) fuzzy(plain string) (string, bool) {
	if plain == "" {
		return "", false
	}
	plainPrefix := runePrefix(plain, FuzzyPrefixLength)
	for _, title := range m.anchors.titles {
		if title == "" {
			continue
		}
		if strings.HasPrefix(plain, runePrefix(title, FuzzyPrefixLength)) ||
			strings.HasPrefix(title, plainPrefix) {
			return m.anchors.slugs[title], true
		}
	}
	return "", false
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ReconcileStats counts headings by how their anchor was resolved.
type ReconcileStats struct {
	Exact    int
	Fuzzy    int
	Fallback int
}

// Total returns the number of headings annotated.
func (s ReconcileStats) Total() int {
	return s.Exact + s.Fuzzy + s.Fallback
}

func (s *ReconcileStats) add(kind MatchKind) {
	switch kind {
	case MatchExact:
		s.Exact++
	case MatchFuzzy:
		s.Fuzzy++
	case MatchFallback:
		s.Fallback++
	}
}

// ReconcileAnchors sets the id of every <h1> element in htmlContent to the
// slug the matcher resolves from the heading's plain text. Existing ids are
// replaced. Only h1 start tags are rewritten; every other byte is copied
// through, so running it twice gives the same output.
func ReconcileAnchors(ctx context.Context, htmlContent string, m *Matcher) (string, ReconcileStats, error) {
	var stats ReconcileStats
	if ctx.Err() != nil {
		return "", stats, ctx.Err()
	}

	z := xhtml.NewTokenizer(strings.NewReader(htmlContent))
	var out bytes.Buffer
	out.Grow(len(htmlContent) + 64)

	var (
		inHeading bool
		startTag  xhtml.Token
		startRaw  []byte
		raw       []byte
		inner     bytes.Buffer
		text      strings.Builder
	)

	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", stats, fmt.Errorf("%w: %v", ErrAnchorReconcile, err)
			}
			break
		}
		// TagName and Token lowercase the tokenizer's buffer in place.
		raw = append(raw[:0], z.Raw()...)

		if !inHeading {
			if tt == xhtml.StartTagToken {
				if tok := z.Token(); tok.DataAtom == atom.H1 {
					inHeading = true
					startTag = tok
					startRaw = append(startRaw[:0], raw...)
					inner.Reset()
					text.Reset()
					continue
				}
			}
			out.Write(raw)
			continue
		}

		// Inside an h1: buffer until its end tag.
		if tt == xhtml.EndTagToken {
			if name, _ := z.TagName(); atom.Lookup(name) == atom.H1 {
				plain := strings.TrimSpace(text.String())
				slug, kind := m.Resolve(plain)
				stats.add(kind)

				out.WriteString(renderStartTag(startTag, slug))
				out.Write(inner.Bytes())
				out.Write(raw)
				inHeading = false
				continue
			}
		}
		if tt == xhtml.TextToken {
			text.WriteString(html.UnescapeString(string(raw)))
		}
		inner.Write(raw)
	}

	// Unterminated heading: leave it as found.
	if inHeading {
		out.Write(startRaw)
		out.Write(inner.Bytes())
	}

	return out.String(), stats, nil
}

// renderStartTag writes tok as a start tag with its id set to id. The id
// keeps its position when present and is appended otherwise.
func renderStartTag(tok xhtml.Token, id string) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tok.Data)

	replaced := false
	for _, a := range tok.Attr {
		val := a.Val
		if a.Namespace == "" && a.Key == "id" {
			if replaced {
				continue
			}
			val = id
			replaced = true
		}
		b.WriteString(" ")
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteString(":")
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(val))
		b.WriteString(`"`)
	}
	if !replaced {
		b.WriteString(` id="`)
		b.WriteString(html.EscapeString(id))
		b.WriteString(`"`)
	}

	b.WriteString(">")
	return b.String()
}
