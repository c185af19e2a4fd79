package research2pdf

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - Paper size and margin bounds
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil is valid", nil, nil},
		{"a4", &PageSettings{Size: PageSizeA4, Margin: DefaultMargin}, nil},
		{"letter", &PageSettings{Size: PageSizeLetter, Margin: 1}, nil},
		{"legal", &PageSettings{Size: PageSizeLegal, Margin: 1}, nil},
		{"case insensitive", &PageSettings{Size: "A4", Margin: 1}, nil},
		{"min margin", &PageSettings{Size: PageSizeA4, Margin: MinMargin}, nil},
		{"max margin", &PageSettings{Size: PageSizeA4, Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "a3", Margin: 1}, ErrInvalidPageSize},
		{"empty size", &PageSettings{Size: "", Margin: 1}, ErrInvalidPageSize},
		{"margin too small", &PageSettings{Size: PageSizeA4, Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", &PageSettings{Size: PageSizeA4, Margin: 3.5}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPageSettings(t *testing.T) {
	t.Parallel()

	p := DefaultPageSettings()
	if p.Size != PageSizeA4 {
		t.Errorf("Size = %q, want %q", p.Size, PageSizeA4)
	}
	if p.Margin != DefaultMargin {
		t.Errorf("Margin = %v, want %v", p.Margin, DefaultMargin)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default settings should be valid: %v", err)
	}
}

func TestToEntries(t *testing.T) {
	t.Parallel()

	reports := []Report{
		{Label: "A", Title: "First", Content: "# First", Path: "/p/a.md"},
		{Label: "B", Title: "Second", Content: "# Second", Path: "/p/b.md"},
	}
	entries := toEntries(reports)
	if len(entries) != len(reports) {
		t.Fatalf("len = %d, want %d", len(entries), len(reports))
	}
	for i, e := range entries {
		if e.Label != reports[i].Label || e.Title != reports[i].Title ||
			e.Content != reports[i].Content || e.Path != reports[i].Path {
			t.Errorf("entries[%d] = %+v, want %+v", i, e, reports[i])
		}
	}
}
