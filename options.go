package pdfoverlay

// documentConfig holds internal configuration for a Document.
type documentConfig struct {
	renderer    Renderer
	namer       Namer
	defaults    Field
	marginX     float64
	marginY     float64
	drawBorders bool
	breakHeight float64
	orientation string
	unit        string
	size        string
}

func defaultDocumentConfig() documentConfig {
	return documentConfig{
		namer:       defaultNamer,
		defaults:    defaultFieldStyle(),
		breakHeight: defaultBreakHeight,
		orientation: "P",
		unit:        "in",
		size:        "Letter",
	}
}

// Option configures a [Document].
type Option func(*documentConfig)

// WithRenderer replaces the PDF engine behind the Document. Intended for
// tests and alternative backends; by default a go-pdf/fpdf renderer is used.
func WithRenderer(r Renderer) Option {
	return func(c *documentConfig) {
		c.renderer = r
	}
}

// WithFieldDefaults overrides the built-in style defaults. Attributes left
// unset in f keep their built-in values (Helvetica, size 12, line height 1,
// black, left-aligned, no border).
func WithFieldDefaults(f Field) Option {
	return func(c *documentConfig) {
		base := defaultFieldStyle()
		c.defaults = f.withDefaults(&base)
	}
}

// WithMargin sets the offset at which every imported page is placed. The
// same pair applies to all pages of the document.
func WithMargin(x, y float64) Option {
	return func(c *documentConfig) {
		c.marginX = x
		c.marginY = y
	}
}

// WithBorders draws a bounding box around every boxed field, regardless of
// the field's own Border attribute. Useful for layout debugging.
func WithBorders() Option {
	return func(c *documentConfig) {
		c.drawBorders = true
	}
}

// WithNamer sets the generator used to name fields attached without a name.
func WithNamer(n Namer) Option {
	return func(c *documentConfig) {
		c.namer = n
	}
}

// WithPageFormat sets the orientation, unit and page size of the default
// renderer, following fpdf.New conventions. Defaults to "P", "in", "Letter".
// It has no effect when [WithRenderer] is also given.
func WithPageFormat(orientation, unit, size string) Option {
	return func(c *documentConfig) {
		c.orientation = orientation
		c.unit = unit
		c.size = size
	}
}

// WithBreakHeight sets the printable page height, in document units, that
// [Document.AddPageAndField] paginates against. Defaults to 11 (a Letter
// page in inches); change it when using a different unit or page size.
func WithBreakHeight(h float64) Option {
	return func(c *documentConfig) {
		c.breakHeight = h
	}
}
