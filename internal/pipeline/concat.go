package pipeline

import (
	"strings"

	"github.com/alnah/go-research2pdf/internal/manifest"
)

// ReportSeparator sits between adjacent reports in the composite Markdown.
// The blank lines keep "---" a thematic break instead of a setext underline
// for a report's last paragraph.
const ReportSeparator = "\n\n---\n\n"

// Concatenate joins the entries' content in order, separated by
// ReportSeparator. Content is not modified.
func Concatenate(entries []manifest.Entry) string {
	switch len(entries) {
	case 0:
		return ""
	case 1:
		return entries[0].Content
	}

	size := len(ReportSeparator) * (len(entries) - 1)
	for _, e := range entries {
		size += len(e.Content)
	}

	var b strings.Builder
	b.Grow(size)
	for i, e := range entries {
		if i > 0 {
			b.WriteString(ReportSeparator)
		}
		b.WriteString(e.Content)
	}
	return b.String()
}
