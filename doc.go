// Package research2pdf assembles the reports of a research project into one
// linked publication: cover page, table of contents, and every completed
// report, rendered to PDF with headless Chrome.
//
// # Quick Start
//
// Load a project, assemble it, and close when done:
//
//	loaded, err := research2pdf.LoadProject(ctx, "research/acme", "_Key findings will appear here_")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	asm, err := research2pdf.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer asm.Close()
//
//	result, err := asm.Assemble(ctx, research2pdf.Input{
//	    Project: loaded.Project,
//	    Date:    "October 2026",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("acme-report.pdf", result.PDF, 0644)
//
// LoadProject reads the project manifest (specs.json, or specs.yaml) and
// keeps the angles whose report exists and is no longer a stub; the others
// come back in Loaded.Skips. Use Input.HTMLOnly to skip PDF generation.
//
// # Assembly Pipeline
//
//  1. Reports concatenated in manifest order, separated by horizontal rules
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Relative image and link paths rewritten to file:// URLs
//  4. Every <h1> given the anchor its table of contents entry links to
//  5. Cover page, table of contents and CSS injected around the body
//  6. PDF rendering via headless Chrome (go-rod), pages counted with pdfcpu
//
// Anchors are matched by exact title first, then by a 40 character title
// prefix, then derived from the heading text alone. Result.Stats.Anchors
// counts each kind.
//
// # Configuration
//
// Use functional options to customize the assembler:
//
//	asm, err := research2pdf.NewAssembler(
//	    research2pdf.WithTimeout(2 * time.Minute),
//	    research2pdf.WithStyle("plain"),
//	    research2pdf.WithPage(&research2pdf.PageSettings{Size: "letter", Margin: 1}),
//	    research2pdf.WithTOCTitle("Contents"),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package research2pdf
