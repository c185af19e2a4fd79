package research2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/alnah/go-research2pdf/internal/assets"
	"github.com/alnah/go-research2pdf/internal/fileutil"
	"github.com/alnah/go-research2pdf/internal/pipeline"
)

// Assembler turns a Project into one linked publication.
// Create with NewAssembler, call Assemble, and Close when done.
type Assembler struct {
	cfg           assemblerConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	tocRenderer   pipeline.TOCRenderer
	coverRenderer pipeline.CoverRenderer
	header        *template.Template
	footer        *template.Template
	pdfConverter  pdfConverter
	pageCounter   func([]byte) (int, error)
}

// NewAssembler creates an Assembler. Options override the defaults: the
// "research" style, the "default" template set, A4 paper, a titled table of
// contents and a header/footer band.
func NewAssembler(opts ...Option) (*Assembler, error) {
	a := &Assembler{
		cfg: assemblerConfig{
			timeout:         defaultTimeout,
			styleInput:      assets.DefaultStyleName,
			templateSetName: assets.DefaultTemplateSetName,
			tocTitle:        DefaultTOCTitle,
			headerFooter:    true,
		},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CompositePreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		tocRenderer:   pipeline.NewTOCRendering(),
		pageCounter:   PageCount,
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := a.cfg.page.Validate(); err != nil {
		return nil, err
	}

	if a.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(a.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		a.assetLoader = resolver
	}

	if err := a.resolveStyle(); err != nil {
		return nil, err
	}

	templateSet, err := a.assetLoader.LoadTemplateSet(a.cfg.templateSetName)
	if err != nil {
		return nil, fmt.Errorf("loading template set: %w", mapAssetError(err))
	}

	if a.coverRenderer == nil {
		a.coverRenderer, err = pipeline.NewCoverBuilder(templateSet.Cover)
		if err != nil {
			return nil, fmt.Errorf("initializing cover builder: %w", err)
		}
	}

	if a.header, err = template.New("header").Parse(templateSet.Header); err != nil {
		return nil, fmt.Errorf("parsing header template: %w", err)
	}
	if a.footer, err = template.New("footer").Parse(templateSet.Footer); err != nil {
		return nil, fmt.Errorf("parsing footer template: %w", err)
	}

	if a.pdfConverter == nil {
		a.pdfConverter = newRodConverter(a.cfg.timeout)
	}

	return a, nil
}

// Assemble runs the pipeline: concatenate the reports, convert to HTML,
// reconcile <h1> anchors against the table of contents, prepend cover and
// table of contents, inject the stylesheet, and render the PDF unless
// in.HTMLOnly is set. A project without reports returns ErrNoReports.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (a *Assembler) Assemble(ctx context.Context, in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(in.Project.Reports) == 0 {
		return nil, ErrNoReports
	}

	// One ordered slice feeds the TOC, the anchor map and the body.
	entries := toEntries(in.Project.Reports)

	composite := pipeline.Concatenate(entries)
	stats := Stats{Reports: len(entries), MarkdownChars: utf8.RuneCountInString(composite)}

	markdown := a.preprocessor.PreprocessMarkdown(ctx, composite)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, err := a.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if in.Project.Dir != "" {
		body, err = pipeline.RewriteRelativePaths(body, assetDirs(in.Project)...)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	matcher := pipeline.NewMatcher(pipeline.BuildAnchorMap(entries))
	body, anchorStats, err := pipeline.ReconcileAnchors(ctx, body, matcher)
	if err != nil {
		return nil, fmt.Errorf("reconciling anchors: %w", err)
	}
	stats.Anchors = AnchorStats(anchorStats)

	toc, err := a.tocRenderer.RenderTOC(ctx, a.cfg.tocTitle, pipeline.BuildTOC(entries))
	if err != nil {
		return nil, fmt.Errorf("rendering table of contents: %w", err)
	}

	cover, err := a.coverRenderer.Build(ctx, pipeline.CoverData{
		Project:     in.Project.Name,
		Description: in.Project.Description,
		Count:       len(entries),
		Date:        in.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("building cover: %w", err)
	}

	css := a.cfg.resolvedStyle
	if in.CSS != "" {
		css += "\n" + in.CSS
	}

	document, err := pipeline.AssembleDocument(ctx, pipeline.Document{
		Title: in.Project.Name,
		Cover: cover,
		TOC:   toc,
		Body:  body,
	}, css, a.cssInjector)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HTML:  []byte(document),
		Stats: stats,
	}

	if in.HTMLOnly {
		return res, nil
	}

	pdfOpts, err := a.pdfOptions(in.Project)
	if err != nil {
		return nil, err
	}

	pdf, err := a.pdfConverter.ToPDF(ctx, document, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf

	// The count is informational: an unreadable count leaves Pages at 0.
	if pages, err := a.pageCounter(pdf); err == nil {
		res.Pages = pages
	}

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (a *Assembler) Close() error {
	if a.pdfConverter != nil {
		return a.pdfConverter.Close()
	}
	return nil
}

// pdfOptions renders the header and footer templates for the project.
func (a *Assembler) pdfOptions(p Project) (*pdfOptions, error) {
	opts := &pdfOptions{Page: a.cfg.page}
	if !a.cfg.headerFooter {
		return opts, nil
	}

	data := struct{ Project string }{Project: p.Name}

	var header, footer bytes.Buffer
	if err := a.header.Execute(&header, data); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrHeaderFooterRender, err)
	}
	if err := a.footer.Execute(&footer, data); err != nil {
		return nil, fmt.Errorf("%w: footer: %v", ErrHeaderFooterRender, err)
	}

	opts.Header = header.String()
	opts.Footer = footer.String()
	return opts, nil
}

// assetDirs lists where relative image and link paths may point: the
// project root first, then each report's directory in report order.
func assetDirs(p Project) []string {
	dirs := []string{p.Dir}
	for _, r := range p.Reports {
		if r.Path != "" {
			dirs = append(dirs, filepath.Dir(r.Path))
		}
	}
	return dirs
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (a *Assembler) resolveStyle() error {
	input := a.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		a.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		a.cfg.resolvedStyle = input
		return nil
	}

	css, err := a.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, mapAssetError(err))
	}
	a.cfg.resolvedStyle = css
	return nil
}

// mapAssetError translates internal asset errors to the public sentinels so
// callers can match them with errors.Is without importing internal packages.
func mapAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return fmt.Errorf("%w: %v", ErrTemplateSetNotFound, err)
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return fmt.Errorf("%w: %v", ErrIncompleteTemplateSet, err)
	case errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
