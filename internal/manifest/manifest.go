// Package manifest loads a research project's manifest and selects the
// reports that are ready to publish.
//
// A manifest lists the project's angles in display order:
//
//	{
//	  "project": "Atlas",
//	  "description": "Market entry study",
//	  "angles": [
//	    {"label": "A", "title": "Market Sizing", "report_path": "reports/report-A.md"}
//	  ]
//	}
//
// JSON and YAML spellings are both accepted.
package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alnah/go-research2pdf/internal/yamlutil"
)

// Sentinel errors for manifest loading.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrManifestInvalid  = errors.New("invalid manifest")
)

// FileNames are the manifest names looked up in the project root, in order.
var FileNames = []string{"specs.json", "specs.yaml", "specs.yml"}

//go:embed schema.json
var schemaJSON string

// schemaURL is absolute so validation errors never mention the working
// directory.
const schemaURL = "file:///manifest.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Manifest describes a project and its ordered angles. Read once per run.
type Manifest struct {
	Project     string  `yaml:"project"`
	Description string  `yaml:"description"`
	Angles      []Angle `yaml:"angles"`
}

// Angle is one manifest entry. Its position in Manifest.Angles is the
// display order; Label is only a display prefix.
type Angle struct {
	Label      Label  `yaml:"label"`
	Title      string `yaml:"title"`
	ReportPath string `yaml:"report_path"`
}

// Label is a short ordering token. Manifests may spell it as a string ("A")
// or a bare number (1); both decode to text.
type Label string

// UnmarshalYAML accepts string and integer scalars.
func (l *Label) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*l = Label(t)
	case uint64:
		*l = Label(strconv.FormatUint(t, 10))
	case int64:
		*l = Label(strconv.FormatInt(t, 10))
	case int:
		*l = Label(strconv.Itoa(t))
	default:
		return fmt.Errorf("label must be a string or integer, got %T", v)
	}
	return nil
}

// Find returns the path of the manifest in projectDir.
func Find(projectDir string) (string, error) {
	for _, name := range FileNames {
		p := filepath.Join(projectDir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrManifestNotFound, projectDir)
}

// Load finds, reads, validates and decodes the manifest in projectDir.
// Returns the manifest and the path it was read from.
func Load(projectDir string) (*Manifest, string, error) {
	path, err := Find(projectDir)
	if err != nil {
		return nil, "", err
	}

	data, err := yamlutil.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return m, path, nil
}

// Parse validates raw manifest bytes against the manifest schema and decodes
// them. Labels must be unique.
func Parse(data []byte) (*Manifest, error) {
	doc, err := yamlutil.ToGeneric(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	var m Manifest
	if err := yamlutil.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	seen := make(map[Label]bool, len(m.Angles))
	for i, a := range m.Angles {
		if seen[a.Label] {
			return nil, fmt.Errorf("%w: angles[%d]: duplicate label %q", ErrManifestInvalid, i, a.Label)
		}
		seen[a.Label] = true
	}

	return &m, nil
}
