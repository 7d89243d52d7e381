package pdfoverlay

import "io"

// Template identifies a source page imported by a Renderer. Handles are only
// meaningful to the Renderer that produced them.
type Template int

// Renderer abstracts the underlying PDF engine: source-page import, template
// reuse, page creation, font and color state, text drawing, and output
// serialization. The library never touches PDF internals itself.
//
// A [Document] drives exactly one Renderer session. Sessions are single-use
// and must not be shared between Documents; [Renderer.Output] ends the
// session.
type Renderer interface {
	// SetSourceFile registers path as the active import source and returns
	// the number of pages it contains.
	SetSourceFile(path string) (int, error)

	// ImportPage imports pageNumber (1-based) from the active source using
	// the given page box, e.g. "/MediaBox", and returns a reusable handle.
	ImportPage(pageNumber int, box string) (Template, error)

	// TemplateSize reports the rendered size of an imported page, in
	// document units.
	TemplateSize(tpl Template) (w, h float64)

	// AddPage starts a new blank output page.
	AddPage()

	// UseTemplate places an imported page at (x, y) at its natural size.
	UseTemplate(tpl Template, x, y float64)

	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	SetCursor(x, y float64)

	// Cell draws a single-line text cell of the given size at the current
	// cursor, top-anchored, with no fill.
	Cell(w, h float64, text string, border bool, align Align)

	// Text draws text anchored at (x, y) with no box.
	Text(x, y float64, text string)

	// Output serializes the composed document to w.
	Output(w io.Writer) error
}
