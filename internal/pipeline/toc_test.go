package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-research2pdf/internal/manifest"
)

func testEntries(titles ...string) []manifest.Entry {
	entries := make([]manifest.Entry, 0, len(titles))
	for i, title := range titles {
		entries = append(entries, manifest.Entry{
			Label:   string(rune('A' + i)),
			Title:   title,
			Content: "# " + title + "\n\nBody of " + title + ".\n",
		})
	}
	return entries
}

// ---------------------------------------------------------------------------
// TestConcatenate - Order and separators
// ---------------------------------------------------------------------------

func TestConcatenate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []manifest.Entry
		want    string
	}{
		{"none", nil, ""},
		{"one", []manifest.Entry{{Content: "# A\n"}}, "# A\n"},
		{
			"three in order",
			[]manifest.Entry{{Content: "one"}, {Content: "two"}, {Content: "three"}},
			"one" + ReportSeparator + "two" + ReportSeparator + "three",
		},
		{
			"content untouched",
			[]manifest.Entry{{Content: "  a\r\n"}, {Content: "---\n"}},
			"  a\r\n" + ReportSeparator + "---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Concatenate(tt.entries); got != tt.want {
				t.Errorf("Concatenate() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAnchorMap - Insertion order and duplicate shadowing
// ---------------------------------------------------------------------------

func TestAnchorMap(t *testing.T) {
	t.Parallel()

	m := BuildAnchorMap(testEntries("Market Sizing", "Competitive Landscape"))

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if got, want := m.Titles(), []string{"Market Sizing", "Competitive Landscape"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
	if slug, ok := m.Lookup("Competitive Landscape"); !ok || slug != "competitive-landscape" {
		t.Errorf("Lookup() = %q, %v", slug, ok)
	}
	if _, ok := m.Lookup("Pricing"); ok {
		t.Error("Lookup(Pricing) found a slug, want none")
	}

	t.Run("later duplicate wins and keeps first position", func(t *testing.T) {
		t.Parallel()

		m := NewAnchorMap()
		m.Set("Overview", "overview")
		m.Set("Pricing", "pricing")
		m.Set("Overview", "overview-2")

		if got, want := m.Titles(), []string{"Overview", "Pricing"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Titles() = %v, want %v", got, want)
		}
		if slug, _ := m.Lookup("Overview"); slug != "overview-2" {
			t.Errorf("Lookup(Overview) = %q, want overview-2", slug)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildTOC / TestRenderTOC - Navigation entries and escaping
// ---------------------------------------------------------------------------

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	got := BuildTOC(testEntries("Market Sizing", "Competitive Landscape"))
	want := []TOCEntry{
		{Label: "A", Title: "Market Sizing", Slug: "market-sizing"},
		{Label: "B", Title: "Competitive Landscape", Slug: "competitive-landscape"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTOC() = %+v, want %+v", got, want)
	}
}

func TestRenderTOC(t *testing.T) {
	t.Parallel()

	t.Run("links in order", func(t *testing.T) {
		t.Parallel()

		got := RenderTOC("Table of Contents", BuildTOC(testEntries("Market Sizing", "Competitive Landscape")))

		first := strings.Index(got, `<li><a href="#market-sizing">A. Market Sizing</a></li>`)
		second := strings.Index(got, `<li><a href="#competitive-landscape">B. Competitive Landscape</a></li>`)
		if first == -1 || second == -1 {
			t.Fatalf("RenderTOC() missing links:\n%s", got)
		}
		if first > second {
			t.Error("TOC links out of order")
		}
		if !strings.HasPrefix(got, `<nav class="toc"><h2 class="toc-title">Table of Contents</h2>`) {
			t.Errorf("RenderTOC() prefix = %q", got[:min(len(got), 60)])
		}
	})

	t.Run("escapes label title and heading", func(t *testing.T) {
		t.Parallel()

		toc := []TOCEntry{{Label: "<1>", Title: `R&D "Lab" <b>`, Slug: "rd-lab-b"}}
		got := RenderTOC("Q&A", toc)

		for _, want := range []string{
			`<h2 class="toc-title">Q&amp;A</h2>`,
			`&lt;1&gt;. R&amp;D &#34;Lab&#34; &lt;b&gt;`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("RenderTOC() missing %q in:\n%s", want, got)
			}
		}
		if strings.Contains(got, "<b>") {
			t.Error("RenderTOC() left markup unescaped")
		}
	})

	t.Run("no title", func(t *testing.T) {
		t.Parallel()

		got := RenderTOC("", []TOCEntry{{Label: "A", Title: "T", Slug: "t"}})
		if strings.Contains(got, "toc-title") {
			t.Errorf("RenderTOC() rendered a heading without a title: %s", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		if got := RenderTOC("Contents", nil); got != "" {
			t.Errorf("RenderTOC(nil) = %q, want empty", got)
		}
	})
}

func TestTOCRendering_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTOCRendering().RenderTOC(ctx, "Contents", []TOCEntry{{Label: "A", Title: "T", Slug: "t"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderTOC() error = %v, want context.Canceled", err)
	}
}
