package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	research2pdf "github.com/alnah/go-research2pdf"
	"github.com/alnah/go-research2pdf/internal/assets"
	"github.com/alnah/go-research2pdf/internal/config"
	"github.com/alnah/go-research2pdf/internal/dateutil"
	"github.com/alnah/go-research2pdf/internal/hints"
	"github.com/alnah/go-research2pdf/internal/manifest"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrWriteOutput = errors.New("failed to write output file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "research2pdf %s\n", Version)
		return ExitSuccess
	case flags.check:
		return runCheck(env, newReporter(env.Stdout, env.Stderr, false, true, flags.common.noColor))
	}

	rep := newReporter(env.Stdout, env.Stderr, flags.common.quiet, flags.common.verbose, flags.common.noColor)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, positional, env, rep); err != nil {
		rep.error(fmt.Errorf("%w%s", err, hintFor(err)))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run assembles the publication of the project named by the single
// positional argument.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment, rep *reporter) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one project path, got %d", ErrUsage, len(args))
	}
	projectDir := args[0]

	warnUnknownEnvVars(rep, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath, projectDir)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rep.step("Collecting reports...")
	loaded, err := research2pdf.LoadProject(ctx, projectDir, cfg.StubMarker)
	if err != nil {
		return err
	}
	for _, s := range loaded.Skips {
		rep.skip(displayPath(loaded.Project.Dir, s.Path), s.Reason)
	}

	project := loaded.Project
	if len(project.Reports) == 0 {
		rep.step("No completed reports found. Nothing to generate.")
		return nil
	}

	rep.step("Found %d completed reports", len(project.Reports))
	rep.markdownSize(utf8.RuneCountInString(project.Markdown()))

	date, err := dateutil.ResolveDate(cfg.Cover.Date, env.Now())
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	asm, err := env.NewAssembler(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = asm.Close() }()

	htmlOnly := flags.outputMode.htmlOnly
	if htmlOnly {
		rep.step("Assembling HTML...")
	} else {
		rep.step("Rendering PDF...")
	}

	start := env.Now()
	result, err := asm.Assemble(ctx, research2pdf.Input{
		Project:  project,
		Date:     date,
		HTMLOnly: htmlOnly,
	})
	if err != nil {
		return err
	}
	rep.detail("Anchors: %d exact, %d fuzzy, %d fallback",
		result.Stats.Anchors.Exact, result.Stats.Anchors.Fuzzy, result.Stats.Anchors.Fallback)
	rep.detail("Elapsed: %v", env.Now().Sub(start).Round(time.Millisecond))

	filename := cfg.Output.Filename
	if flags.output != "" {
		filename = flags.output
	}
	outPath := resolveOutputPath(filename, project)

	if htmlOnly || cfg.Output.HTML {
		htmlPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".html"
		if err := writeOutput(htmlPath, result.HTML); err != nil {
			return err
		}
		rep.done(htmlPath, len(result.HTML), 0)
	}

	if htmlOnly {
		return nil
	}

	if err := writeOutput(outPath, result.PDF); err != nil {
		return err
	}
	rep.done(outPath, len(result.PDF), result.Pages)

	return nil
}

// loadConfig picks the config file: --config, then RESEARCH2PDF_CONFIG,
// then research2pdf.yaml in the project directory. Defaults apply when
// none is given.
func loadConfig(flagPath, envPath, projectDir string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = envPath
	}
	if path == "" {
		path = config.FindProjectConfig(projectDir)
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over the config (CLI wins). --output is
// applied by run: unlike output.filename it may carry a directory.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.outputMode.html {
		cfg.Output.HTML = true
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.assets.style != "" {
		if isPath(flags.assets.style) {
			cfg.Style.Path = flags.assets.style
		} else {
			cfg.Style.Name = flags.assets.style
			cfg.Style.Path = ""
		}
	}
	if flags.assets.templateSet != "" {
		cfg.Assets.TemplateSet = flags.assets.templateSet
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.document.tocTitle != "" {
		cfg.TOC.Title = flags.document.tocTitle
	}
	if flags.document.date != "" {
		cfg.Cover.Date = flags.document.date
	}
	if flags.document.stubMarker != "" {
		cfg.StubMarker = flags.document.stubMarker
	}
	if flags.document.noHeaderFooter {
		cfg.HeaderFooter.Enabled = false
	}
}

// buildOptions translates the config into assembler options.
func buildOptions(cfg *config.Config) ([]research2pdf.Option, error) {
	opts := []research2pdf.Option{
		research2pdf.WithTOCTitle(cfg.TOC.Title),
		research2pdf.WithHeaderFooter(cfg.HeaderFooter.Enabled),
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, research2pdf.WithTimeout(timeout))
	}

	switch {
	case cfg.Style.Path != "":
		// Absolute, so a bare "custom.css" is not taken for a style name.
		path, err := filepath.Abs(cfg.Style.Path)
		if err != nil {
			return nil, fmt.Errorf("resolving style path: %w", err)
		}
		opts = append(opts, research2pdf.WithStyle(path))
	case cfg.Style.Name != "":
		opts = append(opts, research2pdf.WithStyle(cfg.Style.Name))
	}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, research2pdf.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.TemplateSet != "" {
		opts = append(opts, research2pdf.WithTemplateSet(cfg.Assets.TemplateSet))
	}

	page := research2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	opts = append(opts, research2pdf.WithPage(page))

	return opts, nil
}

// resolveOutputPath returns where the PDF goes. Relative names resolve
// inside the project directory; the default is <project>-report.pdf.
func resolveOutputPath(filename string, p research2pdf.Project) string {
	if filename == "" {
		name := strings.NewReplacer("/", "-", `\`, "-").Replace(p.Name)
		filename = name + "-report.pdf"
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.Dir, filename)
}

// displayPath shows p relative to the project directory when it lies inside
// it, and unchanged otherwise.
func displayPath(dir, p string) string {
	rel, err := filepath.Rel(dir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

// writeOutput writes data to path.
func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePermissions); err != nil { // #nosec G306 -- publication is meant to be shared
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// isPath reports whether a style value names a file rather than a built-in style.
func isPath(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.HasSuffix(strings.ToLower(s), ".css")
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, research2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, manifest.ErrManifestNotFound):
		return hints.ForManifestNotFound(manifest.FileNames)
	case errors.Is(err, manifest.ErrManifestInvalid), errors.Is(err, manifest.ErrManifestParse):
		return hints.ForManifestInvalid()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, research2pdf.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
