package render

import "errors"

// Rendering and compilation errors
var (
	// ErrCompilerNotFound is returned when the external typst binary is
	// not installed. Creating or recompiling an invoice requires it.
	ErrCompilerNotFound = errors.New("'typst' is not installed (brew install typst)")

	// ErrTemplateInvalid is returned when the invoice template on disk
	// cannot be parsed.
	ErrTemplateInvalid = errors.New("invoice template invalid")

	// ErrCompileFailed is returned when typst exits unsuccessfully.
	ErrCompileFailed = errors.New("typst compilation failed")
)
