package research2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-research2pdf/internal/manifest"
)

// SkipReason explains why a manifest angle was left out.
type SkipReason = manifest.SkipReason

// Skip reasons.
const (
	SkipMissing = manifest.SkipMissing
	SkipStub    = manifest.SkipStub
)

// Skip records an angle that was not selected.
type Skip struct {
	Label  string
	Path   string
	Reason SkipReason
}

// Loaded is the outcome of LoadProject.
type Loaded struct {
	Project      Project
	Skips        []Skip
	ManifestPath string
}

// LoadProject validates dir, reads its manifest and selects the reports
// that are ready, in manifest order. Reports containing stubMarker and
// reports whose file is missing are recorded as skips.
//
// The project name falls back to the directory name when the manifest
// does not set one.
func LoadProject(ctx context.Context, dir, stubMarker string) (*Loaded, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProjectNotFound, dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, abs)
		}
		return nil, fmt.Errorf("checking project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	m, manifestPath, err := manifest.Load(abs)
	if err != nil {
		return nil, err
	}

	sel, err := manifest.Select(ctx, abs, m, stubMarker)
	if err != nil {
		return nil, err
	}

	name := m.Project
	if name == "" {
		name = filepath.Base(abs)
	}

	loaded := &Loaded{
		Project: Project{
			Name:        name,
			Description: m.Description,
			Dir:         abs,
			Reports:     make([]Report, len(sel.Entries)),
		},
		Skips:        make([]Skip, len(sel.Skips)),
		ManifestPath: manifestPath,
	}
	for i, e := range sel.Entries {
		loaded.Project.Reports[i] = Report(e)
	}
	for i, s := range sel.Skips {
		loaded.Skips[i] = Skip(s)
	}

	return loaded, nil
}
