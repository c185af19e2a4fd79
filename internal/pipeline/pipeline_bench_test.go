//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-research2pdf/internal/manifest"
)

func benchEntries(n int) []manifest.Entry {
	entries := make([]manifest.Entry, n)
	for i := range entries {
		title := fmt.Sprintf("Angle %d: Market Dynamics in Region %d", i, i)
		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", title)
		for j := 0; j < 10; j++ {
			fmt.Fprintf(&b, "## Finding %d\n\nParagraph with **bold** and a [link](https://example.com).\n\n", j)
		}
		b.WriteString("| A | B |\n|---|---|\n| 1 | 2 |\n")
		entries[i] = manifest.Entry{Label: fmt.Sprint(i + 1), Title: title, Content: b.String()}
	}
	return entries
}

// BenchmarkGoldmarkToHTML benchmarks conversion of the composite body.
func BenchmarkGoldmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter()
	ctx := context.Background()

	for _, n := range []int{1, 10, 50} {
		composite := Concatenate(benchEntries(n))
		b.Run(fmt.Sprintf("reports_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(composite)))
			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, composite); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReconcileAnchors benchmarks the h1 rewrite over converted HTML.
func BenchmarkReconcileAnchors(b *testing.B) {
	ctx := context.Background()

	for _, n := range []int{1, 10, 50} {
		entries := benchEntries(n)
		body, err := NewGoldmarkConverter().ToHTML(ctx, Concatenate(entries))
		if err != nil {
			b.Fatal(err)
		}
		matcher := NewMatcher(BuildAnchorMap(entries))

		b.Run(fmt.Sprintf("reports_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(body)))
			for i := 0; i < b.N; i++ {
				if _, _, err := ReconcileAnchors(ctx, body, matcher); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSlugify benchmarks slug generation on accented titles.
func BenchmarkSlugify(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Slugify("Économie Régionale: Études de Marché 2026")
	}
}
