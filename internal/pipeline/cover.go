package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrCoverRender indicates the cover template failed to execute.
var ErrCoverRender = errors.New("cover template rendering failed")

// CoverData holds the front-matter fields. Count is the number of reports
// included; Date is already formatted.
type CoverData struct {
	Project     string
	Description string
	Count       int
	Date        string
}

// CoverRenderer defines the contract for rendering front matter.
type CoverRenderer interface {
	Build(ctx context.Context, data CoverData) (string, error)
}

// CoverBuilder renders the cover page from an html/template, which escapes
// every field.
type CoverBuilder struct {
	tmpl *template.Template
}

// NewCoverBuilder parses the cover template.
func NewCoverBuilder(tmplContent string) (*CoverBuilder, error) {
	tmpl, err := template.New("cover").Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing cover template: %w", err)
	}
	return &CoverBuilder{tmpl: tmpl}, nil
}

// Build renders the cover page for data.
func (c *CoverBuilder) Build(ctx context.Context, data CoverData) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCoverRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ CoverRenderer = (*CoverBuilder)(nil)
