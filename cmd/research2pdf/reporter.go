package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reporter prints operator progress. Steps and details go to stdout and are
// silenced by --quiet; warnings and errors go to stderr.
type reporter struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	verbose bool
	numbers *message.Printer

	skipTag *color.Color
	okTag   *color.Color
	warnTag *color.Color
	errTag  *color.Color
}

// newReporter creates a reporter. Color follows fatih/color's terminal
// detection unless noColor forces it off.
func newReporter(stdout, stderr io.Writer, quiet, verbose, noColor bool) *reporter {
	r := &reporter{
		out:     stdout,
		errOut:  stderr,
		quiet:   quiet,
		verbose: verbose,
		numbers: message.NewPrinter(language.English),
		skipTag: color.New(color.FgYellow),
		okTag:   color.New(color.FgGreen, color.Bold),
		warnTag: color.New(color.FgYellow, color.Bold),
		errTag:  color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.skipTag, r.okTag, r.warnTag, r.errTag} {
			c.DisableColor()
		}
	}
	return r
}

// step prints a progress line.
func (r *reporter) step(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// detail prints a line in verbose mode only.
func (r *reporter) detail(format string, args ...any) {
	if r.quiet || !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "  "+format+"\n", args...)
}

// skip reports an angle left out of the publication by its report path.
func (r *reporter) skip(path string, reason fmt.Stringer) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "  %s %s — %s\n", r.skipTag.Sprint("[SKIP]"), path, reason)
}

// markdownSize prints the composite Markdown length in characters, with
// digit grouping.
func (r *reporter) markdownSize(chars int) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out, r.numbers.Sprintf("Total markdown: %d chars", chars))
}

// done reports a written file with its size and, for PDFs, its page count.
func (r *reporter) done(path string, size int, pages int) {
	if r.quiet {
		return
	}
	mb := float64(size) / (1024 * 1024)
	if pages > 0 {
		fmt.Fprintf(r.out, "%s %s (%.1f MB, %d pages)\n", r.okTag.Sprint("Done:"), path, mb, pages)
		return
	}
	fmt.Fprintf(r.out, "%s %s (%.1f MB)\n", r.okTag.Sprint("Done:"), path, mb)
}

// warn prints a warning to stderr, even in quiet mode.
func (r *reporter) warn(format string, args ...any) {
	fmt.Fprintf(r.errOut, "%s %s\n", r.warnTag.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// error prints an error to stderr, even in quiet mode.
func (r *reporter) error(err error) {
	fmt.Fprintf(r.errOut, "%s %v\n", r.errTag.Sprint("Error:"), err)
}
