package pipeline

import (
	"context"
	"html"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot end the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Document is the set of fragments making up the publication, in page order.
type Document struct {
	Title string // <title>, escaped
	Cover string
	TOC   string
	Body  string
}

// documentTemplate wraps the fragments. Body sits in <main class="report-body">
// so stylesheets can tell report headings from cover and TOC headings.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{TITLE}}</title>
</head>
<body>
{{COVER}}
{{TOC}}
<main class="report-body">
{{BODY}}
</main>
</body>
</html>`

// AssembleDocument builds the final HTML document: cover, then table of
// contents, then the report body, with css injected into the head.
func AssembleDocument(ctx context.Context, doc Document, css string, injector CSSInjector) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	r := strings.NewReplacer(
		"{{TITLE}}", html.EscapeString(doc.Title),
		"{{COVER}}", doc.Cover,
		"{{TOC}}", doc.TOC,
		"{{BODY}}", doc.Body,
	)
	out := r.Replace(documentTemplate)

	if injector == nil {
		injector = &CSSInjection{}
	}
	return injector.InjectCSS(ctx, out, css), nil
}

// Compile-time interface check.
var _ CSSInjector = (*CSSInjection)(nil)
