package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// DefaultStyleName is the built-in stylesheet.
const DefaultStyleName = "research"

// DefaultTemplateSetName is the built-in template set.
const DefaultTemplateSetName = "default"

// Template file names that make up a template set, without extension.
const (
	TemplateCover  = "cover"
	TemplateHeader = "header"
	TemplateFooter = "footer"
)

// requiredTemplates lists every template a set must provide.
var requiredTemplates = []string{TemplateCover, TemplateHeader, TemplateFooter}

// AssetLoader defines the contract for loading CSS styles and HTML templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the cover, header and footer templates of a set.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the HTML templates for one publication look.
type TemplateSet struct {
	Name   string
	Cover  string // cover page, rendered into the document body
	Header string // Chrome header template, rendered per page
	Footer string // Chrome footer template, rendered per page
}

// readTemplateSet assembles a TemplateSet from a read function that returns
// fs.ErrNotExist for missing files. If every file is missing the set does not
// exist; if only some are, it is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	contents := make(map[string]string, len(requiredTemplates))
	var missing []string

	for _, tmpl := range requiredTemplates {
		data, err := read(tmpl + ".html")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, tmpl+".html")
				continue
			}
			return nil, fmt.Errorf("%w: reading %s.html: %v", ErrAssetRead, tmpl, err)
		}
		contents[tmpl] = string(data)
	}

	if len(missing) == len(requiredTemplates) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, missing[0])
	}

	return &TemplateSet{
		Name:   name,
		Cover:  contents[TemplateCover],
		Header: contents[TemplateHeader],
		Footer: contents[TemplateFooter],
	}, nil
}
