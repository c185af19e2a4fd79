package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-research2pdf/internal/dateutil"
	"github.com/alnah/go-research2pdf/internal/fileutil"
	"github.com/alnah/go-research2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// ProjectConfigNames are looked up, in order, in the project directory when
// no config path is given explicitly.
var ProjectConfigNames = []string{"research2pdf.yaml", "research2pdf.yml"}

// DefaultStubMarker marks a report that has not been written yet.
const DefaultStubMarker = "_Key findings will appear here_"

// DefaultTOCTitle heads the table of contents.
const DefaultTOCTitle = "Table of Contents"

// Page settings.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"

	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.8 // inches, close to the 2cm/2.5cm of the reference layout
)

// Field length limits.
const (
	MaxFilenameLength   = 255
	MaxNameLength       = 100
	MaxPathLength       = 4096
	MaxTOCTitleLength   = 100
	MaxDateLength       = 50
	MaxStubMarkerLength = 200
)

// Config holds per-project settings for publication generation.
type Config struct {
	Output       OutputConfig       `yaml:"output"`
	Style        StyleConfig        `yaml:"style"`
	Assets       AssetsConfig       `yaml:"assets"`
	Page         PageConfig         `yaml:"page"`
	TOC          TOCConfig          `yaml:"toc"`
	Cover        CoverConfig        `yaml:"cover"`
	HeaderFooter HeaderFooterConfig `yaml:"headerFooter"`
	StubMarker   string             `yaml:"stubMarker"`
	Timeout      string             `yaml:"timeout"` // Go duration, empty = assembler default
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Filename string `yaml:"filename"` // Empty = "<project>-report.pdf"
	HTML     bool   `yaml:"html"`     // Also write the assembled HTML
}

// StyleConfig selects the stylesheet: a built-in name, or a CSS file path.
type StyleConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"` // Wins over Name when set
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"`    // Empty = embedded assets
	TemplateSet string `yaml:"templateSet"` // Empty = "default"
}

// PageConfig defines PDF paper settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "letter", "legal"
	Margin float64 `yaml:"margin"` // inches
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Title string `yaml:"title"`
}

// CoverConfig defines cover page options.
type CoverConfig struct {
	Date string `yaml:"date"` // "auto", "auto:FORMAT", or a literal
}

// HeaderFooterConfig toggles the running header and page-number footer.
type HeaderFooterConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Style:        StyleConfig{Name: "research"},
		Assets:       AssetsConfig{TemplateSet: "default"},
		Page:         PageConfig{Size: PageSizeA4, Margin: DefaultMargin},
		TOC:          TOCConfig{Title: DefaultTOCTitle},
		Cover:        CoverConfig{Date: dateutil.AutoDate},
		HeaderFooter: HeaderFooterConfig{Enabled: true},
		StubMarker:   DefaultStubMarker,
	}
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.filename", c.Output.Filename, MaxFilenameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.name", c.Style.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.path", c.Style.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.templateSet", c.Assets.TemplateSet, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("cover.date", c.Cover.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("stubMarker", c.StubMarker, MaxStubMarkerLength); err != nil {
		return err
	}

	if strings.ContainsAny(c.Output.Filename, `/\`) {
		return fmt.Errorf("%w: output.filename must be a file name, got %q", ErrInvalidValue, c.Output.Filename)
	}

	switch strings.ToLower(c.Page.Size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
	default:
		return fmt.Errorf("%w: page.size %q (must be a4, letter, or legal)", ErrInvalidValue, c.Page.Size)
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin %.2f (must be between %.2f and %.2f)", ErrInvalidValue, c.Page.Margin, MinMargin, MaxMargin)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := dateutil.ResolveDate(c.Cover.Date, time.Now()); err != nil {
		return fmt.Errorf("%w: cover.date: %v", ErrInvalidValue, err)
	}

	return nil
}

// TimeoutDuration parses Timeout. Empty returns zero, leaving the
// assembler default in place.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout %q must not be negative", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads a YAML config file. Fields absent from the file keep the
// values of DefaultConfig. Unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	data, err := yamlutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindProjectConfig returns the path of the first ProjectConfigNames entry
// present in projectDir, or "" when there is none.
func FindProjectConfig(projectDir string) string {
	for _, name := range ProjectConfigNames {
		p := filepath.Join(projectDir, name)
		if fileutil.FileExists(p) {
			return p
		}
	}
	return ""
}
