package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling operator output.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size   string
	margin float64
}

// assetFlags holds asset-related flags (CSS, templates, custom asset path).
type assetFlags struct {
	style       string // Name or path for CSS
	templateSet string
	assetPath   string // Override asset directory
}

// documentFlags holds publication content flags.
type documentFlags struct {
	tocTitle       string
	date           string
	stubMarker     string
	noHeaderFooter bool
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// cliFlags holds every flag of the research2pdf command.
type cliFlags struct {
	common     commonFlags
	output     string
	timeout    string
	page       pageFlags
	assets     assetFlags
	document   documentFlags
	outputMode outputFlags
	check      bool
	version    bool
	help       bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show anchor statistics and timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.templateSet, "template-set", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addDocumentFlags adds publication content flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
	fs.StringVar(&f.date, "date", "", "cover date (\"auto\", \"auto:FORMAT\", or literal)")
	fs.StringVar(&f.stubMarker, "stub-marker", "", "text marking an unfinished report")
	fs.BoolVar(&f.noHeaderFooter, "no-header-footer", false, "disable running header and page numbers")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// parseFlags parses command-line arguments (without the program name) and
// returns the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("research2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file name (default: <project>-report.pdf)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)
	addDocumentFlags(fs, &f.document)
	addOutputFlags(fs, &f.outputMode)

	fs.BoolVar(&f.check, "check", false, "diagnose the rendering environment and exit")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
