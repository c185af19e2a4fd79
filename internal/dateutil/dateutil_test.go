package dateutil_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-research2pdf/internal/dateutil"
)

var fixedTime = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// TestParseDateFormat - Token conversion
// ---------------------------------------------------------------------------

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{"month and year", "MMMM YYYY", "January 2006", nil},
		{"iso", "YYYY-MM-DD", "2006-01-02", nil},
		{"short tokens", "D/M/YY", "2/1/06", nil},
		{"bracket literal", "[Edition] YYYY", "Edition 2006", nil},
		{"empty", "", "", dateutil.ErrInvalidDateFormat},
		{"unclosed bracket", "[oops YYYY", "", dateutil.ErrInvalidDateFormat},
		{"too long", strings.Repeat("Y", dateutil.MaxDateFormatLength+1), "", dateutil.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormatDate - Formats and presets
// ---------------------------------------------------------------------------

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"MMMM YYYY", "October 2026"},
		{"month", "October 2026"},
		{"ISO", "2026-10-18"},
		{"long", "October 18, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.FormatDate(fixedTime, tt.format)
			if err != nil {
				t.Fatalf("FormatDate(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveDate - auto syntax
// ---------------------------------------------------------------------------

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"empty defaults to auto", "", "October 2026", false},
		{"auto", "auto", "October 2026", false},
		{"auto uppercase", "AUTO", "October 2026", false},
		{"auto with format", "auto:DD/MM/YYYY", "18/10/2026", false},
		{"auto with preset", "auto:iso", "2026-10-18", false},
		{"literal passthrough", "Autumn 2026", "Autumn 2026", false},
		{"literal not starting with auto", "Q4 2026", "Q4 2026", false},
		{"auto without colon", "autoX", "", true},
		{"auto with empty format", "auto:", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.ResolveDate(tt.value, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, dateutil.ErrInvalidDateFormat) {
					t.Fatalf("ResolveDate(%q) error = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
