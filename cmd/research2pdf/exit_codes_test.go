package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	research2pdf "github.com/alnah/go-research2pdf"
	"github.com/alnah/go-research2pdf/internal/config"
	"github.com/alnah/go-research2pdf/internal/dateutil"
	"github.com/alnah/go-research2pdf/internal/manifest"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", research2pdf.ErrBrowserConnect, ExitBrowser},
		{"page create", research2pdf.ErrPageCreate, ExitBrowser},
		{"page load", research2pdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", research2pdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("rendering: %w", research2pdf.ErrBrowserConnect), ExitBrowser},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"project not found", research2pdf.ErrProjectNotFound, ExitUsage},
		{"not a directory", research2pdf.ErrNotDirectory, ExitUsage},
		{"manifest not found", manifest.ErrManifestNotFound, ExitUsage},
		{"manifest parse", manifest.ErrManifestParse, ExitUsage},
		{"manifest invalid", manifest.ErrManifestInvalid, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config path", config.ErrEmptyConfigPath, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"invalid page size", research2pdf.ErrInvalidPageSize, ExitUsage},
		{"invalid margin", research2pdf.ErrInvalidMargin, ExitUsage},
		{"style not found", research2pdf.ErrStyleNotFound, ExitUsage},
		{"template set not found", research2pdf.ErrTemplateSetNotFound, ExitUsage},
		{"incomplete template set", research2pdf.ErrIncompleteTemplateSet, ExitUsage},
		{"invalid asset path", research2pdf.ErrInvalidAssetPath, ExitUsage},
		{"wrapped manifest parse", fmt.Errorf("loading: %w", manifest.ErrManifestParse), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read report", manifest.ErrReadReport, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped read report", fmt.Errorf("report-A.md: %w", manifest.ErrReadReport), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"pdf inspect", research2pdf.ErrPDFInspect, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard exit codes changed: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d must be in (2, 126)", code)
		}
	}
}
