package yaml2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input loading errors.
	ErrNotFound = errors.New("input file not found")
	ErrFormat   = errors.New("input is not a YAML document")
	ErrSchema   = errors.New("invalid document")

	// Rendering errors.
	ErrRender           = errors.New("PDF rendering failed")
	ErrInvalidPageSetup = errors.New("invalid page setup")
)
