// Package pipeline implements the publication assembly stages:
//   - Slug generation for heading anchors
//   - Report concatenation into one composite Markdown body
//   - Markdown preprocessing and Markdown to HTML conversion via goldmark
//   - Relative asset path rewriting
//   - Anchor reconciliation between the table of contents and rendered <h1>s
//   - Table of contents and cover page rendering
//   - Final document assembly with CSS injection
//
// PDF generation is handled separately by the root research2pdf package
// using headless Chrome (go-rod), so this package deals only with document
// structure and content.
package pipeline
