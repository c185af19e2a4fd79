package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alnah/go-research2pdf/internal/fileutil"
)

// ErrReadReport indicates a report file exists but could not be read.
var ErrReadReport = errors.New("failed to read report")

// SkipReason explains why an angle was left out of the publication.
type SkipReason int

const (
	SkipMissing SkipReason = iota + 1
	SkipStub
)

func (r SkipReason) String() string {
	switch r {
	case SkipMissing:
		return "file missing"
	case SkipStub:
		return "still a stub"
	default:
		return "unknown"
	}
}

// Entry is a report selected for publication, in manifest order.
// Title is the effective title: the report's own first-line heading when it
// has one, the manifest title otherwise.
type Entry struct {
	Label   string
	Title   string
	Content string
	Path    string
}

// Skip records an angle that was not selected.
type Skip struct {
	Label  string
	Path   string
	Reason SkipReason
}

// Selection is the outcome of Select. Entries is empty when nothing is ready.
type Selection struct {
	Entries []Entry
	Skips   []Skip
}

// Empty reports whether no report was selected.
func (s *Selection) Empty() bool {
	return len(s.Entries) == 0
}

// Select reads every angle's report, in manifest order, and keeps the ones
// that exist and do not contain stubMarker. Relative report paths resolve
// against root. A missing file or a stub is a Skip; any other read failure
// aborts with ErrReadReport.
func Select(ctx context.Context, root string, m *Manifest, stubMarker string) (*Selection, error) {
	sel := &Selection{}
	if m == nil {
		return sel, nil
	}

	for _, a := range m.Angles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label := string(a.Label)
		path := fileutil.ResolveUnder(root, a.ReportPath)

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the project manifest
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				sel.Skips = append(sel.Skips, Skip{Label: label, Path: path, Reason: SkipMissing})
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrReadReport, path, err)
		}

		content := string(data)
		if stubMarker != "" && strings.Contains(content, stubMarker) {
			sel.Skips = append(sel.Skips, Skip{Label: label, Path: path, Reason: SkipStub})
			continue
		}

		title := a.Title
		if heading := FirstLineHeading(content); heading != "" {
			title = heading
		}

		sel.Entries = append(sel.Entries, Entry{
			Label:   label,
			Title:   title,
			Content: content,
			Path:    path,
		})
	}

	return sel, nil
}

// FirstLineHeading returns the text of a level-1 ATX heading on the first
// line of content, or "" when the first line is not one.
func FirstLineHeading(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimPrefix(line, "\ufeff")
	line = strings.TrimRight(line, "\r")

	if !strings.HasPrefix(line, "# ") {
		return ""
	}
	text := strings.TrimSpace(line[2:])

	// Optional closing sequence: "# Title ##".
	if trimmed := strings.TrimRight(text, "#"); trimmed != text {
		if trimmed == "" {
			return ""
		}
		if strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
			text = strings.TrimSpace(trimmed)
		}
	}
	return text
}
