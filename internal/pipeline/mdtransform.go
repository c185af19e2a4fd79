package pipeline

import (
	"context"
	"regexp"
)

var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A byte order mark at the start of any line, left behind when reports
	// saved with one are concatenated.
	lineBOM = regexp.MustCompile(`(?m)^\x{FEFF}`)
)

// MarkdownPreprocessor prepares composite Markdown for conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CompositePreprocessor normalizes the concatenated reports: line endings
// become \n and per-report byte order marks are dropped so each first-line
// heading still parses. Report text is otherwise left untouched.
type CompositePreprocessor struct{}

// PreprocessMarkdown applies all transformations. A cancelled context
// returns content unchanged.
func (p *CompositePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	return lineBOM.ReplaceAllString(content, "")
}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*CompositePreprocessor)(nil)
