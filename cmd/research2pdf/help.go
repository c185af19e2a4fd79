package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: research2pdf [flags] <project-path>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble the completed reports of a research project into one PDF with")
	fmt.Fprintln(w, "a cover page and a linked table of contents. The project directory must")
	fmt.Fprintln(w, "contain specs.json (or specs.yaml) listing the research angles.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <name>       Output file (default: <project>-report.pdf in the project)")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: research2pdf.yaml in the project)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html                Also write the assembled HTML")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --toc-title <s>       Table of contents heading")
	fmt.Fprintln(w, "      --date <s>            Cover date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --stub-marker <s>     Text marking an unfinished report")
	fmt.Fprintln(w, "      --no-header-footer    Disable running header and page numbers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name (research, plain) or CSS file path")
	fmt.Fprintln(w, "      --template-set <s>    Template set name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show anchor statistics and timing")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --check               Diagnose the rendering environment")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RESEARCH2PDF_CONFIG, RESEARCH2PDF_STYLE, RESEARCH2PDF_TIMEOUT,")
	fmt.Fprintln(w, "  RESEARCH2PDF_PAGE_SIZE, RESEARCH2PDF_ASSET_PATH, RESEARCH2PDF_DATE,")
	fmt.Fprintln(w, "  RESEARCH2PDF_STUB_MARKER")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN (custom Chrome), ROD_NO_SANDBOX=1 (containers/CI)")
}
