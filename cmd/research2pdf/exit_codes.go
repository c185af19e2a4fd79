package main

import (
	"errors"
	"os"

	research2pdf "github.com/alnah/go-research2pdf"
	"github.com/alnah/go-research2pdf/internal/config"
	"github.com/alnah/go-research2pdf/internal/dateutil"
	"github.com/alnah/go-research2pdf/internal/manifest"
)

// Exit codes for research2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Publication written, or nothing to generate
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, project or manifest
	ExitIO      = 3 // Report unreadable, output not writable
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, research2pdf.ErrBrowserConnect) ||
		errors.Is(err, research2pdf.ErrPageCreate) ||
		errors.Is(err, research2pdf.ErrPageLoad) ||
		errors.Is(err, research2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, research2pdf.ErrProjectNotFound) ||
		errors.Is(err, research2pdf.ErrNotDirectory) ||
		errors.Is(err, manifest.ErrManifestNotFound) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrManifestInvalid) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigPath) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, research2pdf.ErrInvalidPageSize) ||
		errors.Is(err, research2pdf.ErrInvalidMargin) ||
		errors.Is(err, research2pdf.ErrStyleNotFound) ||
		errors.Is(err, research2pdf.ErrTemplateSetNotFound) ||
		errors.Is(err, research2pdf.ErrIncompleteTemplateSet) ||
		errors.Is(err, research2pdf.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, manifest.ErrReadReport) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
