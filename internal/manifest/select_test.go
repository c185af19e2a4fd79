package manifest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

const stub = "_Key findings will appear here_"

// ---------------------------------------------------------------------------
// TestSelect - Missing, stub, and complete reports
// ---------------------------------------------------------------------------

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("one of each", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "reports/report-B.md", "# Competitive Landscape\n\n"+stub+"\n")
		writeFile(t, dir, "reports/report-C.md", "# Pricing\n\nReal findings.\n")

		m := &Manifest{Angles: []Angle{
			{Label: "A", Title: "Market Sizing", ReportPath: "reports/report-A.md"},
			{Label: "B", Title: "Competitive Landscape", ReportPath: "reports/report-B.md"},
			{Label: "C", Title: "Pricing", ReportPath: "reports/report-C.md"},
		}}

		sel, err := Select(context.Background(), dir, m, stub)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if len(sel.Entries) != 1 {
			t.Fatalf("len(Entries) = %d, want 1", len(sel.Entries))
		}
		if got := sel.Entries[0]; got.Label != "C" || got.Title != "Pricing" {
			t.Errorf("Entries[0] = %+v", got)
		}
		if got := sel.Entries[0].Path; got != filepath.Join(dir, "reports/report-C.md") {
			t.Errorf("Path = %q", got)
		}

		wantSkips := []Skip{
			{Label: "A", Path: filepath.Join(dir, "reports/report-A.md"), Reason: SkipMissing},
			{Label: "B", Path: filepath.Join(dir, "reports/report-B.md"), Reason: SkipStub},
		}
		if len(sel.Skips) != len(wantSkips) {
			t.Fatalf("Skips = %+v, want %+v", sel.Skips, wantSkips)
		}
		for i, want := range wantSkips {
			if sel.Skips[i] != want {
				t.Errorf("Skips[%d] = %+v, want %+v", i, sel.Skips[i], want)
			}
		}
	})

	t.Run("preserves manifest order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "z.md", "Z body\n")
		writeFile(t, dir, "a.md", "A body\n")

		m := &Manifest{Angles: []Angle{
			{Label: "2", Title: "Zeta", ReportPath: "z.md"},
			{Label: "1", Title: "Alpha", ReportPath: "a.md"},
		}}

		sel, err := Select(context.Background(), dir, m, stub)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if len(sel.Entries) != 2 || sel.Entries[0].Title != "Zeta" || sel.Entries[1].Title != "Alpha" {
			t.Errorf("Entries = %+v, want Zeta then Alpha", sel.Entries)
		}
	})

	t.Run("first line heading overrides title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "# Custom Title\n\nBody.\n")

		m := &Manifest{Angles: []Angle{{Label: "A", Title: "Manifest Title", ReportPath: "a.md"}}}
		sel, err := Select(context.Background(), dir, m, stub)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if got := sel.Entries[0].Title; got != "Custom Title" {
			t.Errorf("Title = %q, want Custom Title", got)
		}
	})

	t.Run("absolute report path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		abs := writeFile(t, t.TempDir(), "elsewhere.md", "Body\n")

		m := &Manifest{Angles: []Angle{{Label: "A", Title: "T", ReportPath: abs}}}
		sel, err := Select(context.Background(), dir, m, stub)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if len(sel.Entries) != 1 || sel.Entries[0].Path != abs {
			t.Errorf("Entries = %+v", sel.Entries)
		}
	})

	t.Run("nothing ready", func(t *testing.T) {
		t.Parallel()

		m := &Manifest{Angles: []Angle{{Label: "A", Title: "T", ReportPath: "missing.md"}}}
		sel, err := Select(context.Background(), t.TempDir(), m, stub)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if !sel.Empty() {
			t.Errorf("Empty() = false, want true")
		}
	})

	t.Run("report path is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "reports/keep.md", "x")

		m := &Manifest{Angles: []Angle{{Label: "A", Title: "T", ReportPath: "reports"}}}
		if _, err := Select(context.Background(), dir, m, stub); !errors.Is(err, ErrReadReport) {
			t.Errorf("Select() error = %v, want ErrReadReport", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := &Manifest{Angles: []Angle{{Label: "A", Title: "T", ReportPath: "a.md"}}}
		if _, err := Select(ctx, t.TempDir(), m, stub); !errors.Is(err, context.Canceled) {
			t.Errorf("Select() error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFirstLineHeading - Title override extraction
// ---------------------------------------------------------------------------

func TestFirstLineHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain heading", "# Market Sizing\nbody", "Market Sizing"},
		{"crlf", "# Market Sizing\r\nbody", "Market Sizing"},
		{"byte order mark", "\ufeff# Market Sizing\n", "Market Sizing"},
		{"closing sequence", "# Market Sizing ##\n", "Market Sizing"},
		{"hash inside title", "# C# Patterns\n", "C# Patterns"},
		{"extra spaces", "#    Spaced   \n", "Spaced"},
		{"level two", "## Not a title\n", ""},
		{"no space", "#Tag\n", ""},
		{"not first line", "\n# Late\n", ""},
		{"empty heading", "# \n", ""},
		{"empty content", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FirstLineHeading(tt.content); got != tt.want {
				t.Errorf("FirstLineHeading(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestSkipReasonString(t *testing.T) {
	t.Parallel()

	if SkipMissing.String() != "file missing" {
		t.Errorf("SkipMissing = %q", SkipMissing.String())
	}
	if SkipStub.String() != "still a stub" {
		t.Errorf("SkipStub = %q", SkipStub.String())
	}
}
