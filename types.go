package research2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-research2pdf/internal/manifest"
	"github.com/alnah/go-research2pdf/internal/pipeline"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.8
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size   string  // "a4", "letter", "legal"
	Margin float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 with DefaultMargin.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:   PageSizeA4,
		Margin: DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, _, ok := paperDimensions(p.Size); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// paperDimensions returns width and height in inches (case-insensitive).
func paperDimensions(size string) (width, height float64, ok bool) {
	switch strings.ToLower(size) {
	case PageSizeA4:
		return 8.27, 11.69, true
	case PageSizeLetter:
		return 8.5, 11, true
	case PageSizeLegal:
		return 8.5, 14, true
	}
	return 0, 0, false
}

// Project is a research project ready to assemble: its metadata and the
// selected reports in manifest order.
type Project struct {
	Name        string
	Description string
	Dir         string   // project root, base for relative asset paths
	Reports     []Report // selected reports, never reordered
}

// Report is a report selected for publication. Title is the effective title:
// the report's own first-line heading when present, the manifest title
// otherwise.
type Report struct {
	Label   string
	Title   string
	Content string
	Path    string
}

// Markdown returns the composite Markdown body the reports are assembled
// from, in report order.
func (p Project) Markdown() string {
	return pipeline.Concatenate(toEntries(p.Reports))
}

// toEntries converts public reports to pipeline entries, keeping order.
func toEntries(reports []Report) []manifest.Entry {
	entries := make([]manifest.Entry, len(reports))
	for i, r := range reports {
		entries[i] = manifest.Entry(r)
	}
	return entries
}

// Input contains assembly parameters.
type Input struct {
	Project  Project
	Date     string // cover date, already formatted
	CSS      string // extra CSS appended after the style (optional)
	HTMLOnly bool   // skip PDF rendering
}

// Result is the outcome of Assemble.
type Result struct {
	HTML  []byte
	PDF   []byte // nil when Input.HTMLOnly
	Pages int    // page count of PDF, 0 when not rendered or uncountable
	Stats Stats
}

// Stats describes what went into the publication.
type Stats struct {
	Reports       int
	MarkdownChars int // runes in the composite Markdown
	Anchors       AnchorStats
}

// AnchorStats counts report headings by how their anchor was found: exact
// title match, fuzzy prefix match, or derived from the heading text alone.
// A fallback usually means a dangling table of contents link.
type AnchorStats struct {
	Exact    int
	Fuzzy    int
	Fallback int
}

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	timeout         time.Duration
	styleInput      string // name, file path, or CSS content
	resolvedStyle   string
	assetPath       string
	templateSetName string
	page            *PageSettings
	tocTitle        string
	headerFooter    bool
}

// defaultTimeout bounds a single PDF render when no timeout is given.
const defaultTimeout = 2 * time.Minute

// DefaultTOCTitle heads the table of contents.
const DefaultTOCTitle = "Table of Contents"

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("research2pdf: WithTimeout duration must be positive")
	}
	return func(a *Assembler) {
		a.cfg.timeout = d
	}
}

// WithStyle sets the stylesheet: a built-in name ("research", "plain"), a
// CSS file path, or raw CSS content.
func WithStyle(style string) Option {
	return func(a *Assembler) {
		a.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory of custom styles and templates. Assets
// missing there fall back to the built-in ones.
func WithAssetPath(path string) Option {
	return func(a *Assembler) {
		a.cfg.assetPath = path
	}
}

// WithTemplateSet selects a template set by name.
func WithTemplateSet(name string) Option {
	return func(a *Assembler) {
		a.cfg.templateSetName = name
	}
}

// WithPage sets the paper size and margins.
func WithPage(p *PageSettings) Option {
	return func(a *Assembler) {
		a.cfg.page = p
	}
}

// WithTOCTitle sets the table of contents heading. Empty means no heading.
func WithTOCTitle(title string) Option {
	return func(a *Assembler) {
		a.cfg.tocTitle = title
	}
}

// WithHeaderFooter toggles the running header (project name) and the
// "Page N of M" footer.
func WithHeaderFooter(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.headerFooter = enabled
	}
}
