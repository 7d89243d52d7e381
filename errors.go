package pdfoverlay

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrFieldNotFound is returned by field lookups when no field with the
	// requested name exists on the requested page, or on any page.
	ErrFieldNotFound = errors.New("pdfoverlay: field not found")

	// ErrClosed is returned when a [Document] is used after its output has
	// already been produced.
	ErrClosed = errors.New("pdfoverlay: document already rendered")

	// ErrNoConverter is returned by [Rasterizer.Convert] when no image
	// converter binary could be located.
	ErrNoConverter = errors.New("pdfoverlay: no image converter found")
)
