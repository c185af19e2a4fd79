package research2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrProjectNotFound = errors.New("project directory not found")
	ErrNotDirectory    = errors.New("project path is not a directory")
	ErrNoReports       = errors.New("no completed reports")

	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFInspect     = errors.New("failed to inspect PDF")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrHeaderFooterRender    = errors.New("header/footer template rendering failed")
)
