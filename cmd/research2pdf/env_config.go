package main

import (
	"strings"
	"time"

	"github.com/alnah/go-research2pdf/internal/config"
)

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "RESEARCH2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // RESEARCH2PDF_CONFIG: config file path
	Style      string        // RESEARCH2PDF_STYLE: CSS style name or path
	Timeout    time.Duration // RESEARCH2PDF_TIMEOUT: PDF generation timeout
	PageSize   string        // RESEARCH2PDF_PAGE_SIZE: a4, letter, legal
	AssetPath  string        // RESEARCH2PDF_ASSET_PATH: custom asset directory
	Date       string        // RESEARCH2PDF_DATE: cover date
	StubMarker string        // RESEARCH2PDF_STUB_MARKER: unfinished report marker
}

// knownEnvVars lists valid RESEARCH2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESEARCH2PDF_CONFIG":      true,
	"RESEARCH2PDF_STYLE":       true,
	"RESEARCH2PDF_TIMEOUT":     true,
	"RESEARCH2PDF_PAGE_SIZE":   true,
	"RESEARCH2PDF_ASSET_PATH":  true,
	"RESEARCH2PDF_DATE":        true,
	"RESEARCH2PDF_STUB_MARKER": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("RESEARCH2PDF_CONFIG"),
		Style:      getenv("RESEARCH2PDF_STYLE"),
		PageSize:   getenv("RESEARCH2PDF_PAGE_SIZE"),
		AssetPath:  getenv("RESEARCH2PDF_ASSET_PATH"),
		Date:       getenv("RESEARCH2PDF_DATE"),
		StubMarker: getenv("RESEARCH2PDF_STUB_MARKER"),
	}

	if timeout := getenv("RESEARCH2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized RESEARCH2PDF_* variables.
func warnUnknownEnvVars(rep *reporter, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			rep.warn("unknown environment variable %s (typo?)", name)
		}
	}
}

// applyEnvConfig applies environment variable values over the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		if isPath(env.Style) {
			cfg.Style.Path = env.Style
		} else {
			cfg.Style.Name = env.Style
			cfg.Style.Path = ""
		}
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Date != "" {
		cfg.Cover.Date = env.Date
	}
	if env.StubMarker != "" {
		cfg.StubMarker = env.StubMarker
	}
}
