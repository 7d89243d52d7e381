package pdfoverlay

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// defaultBreakHeight is the printable page height, in document units, that
// AddPageAndField paginates against (a Letter page in inches).
const defaultBreakHeight = 11

// mediaBox is the page box used when importing source pages.
const mediaBox = "/MediaBox"

// sourceFile records one imported source and the page count it contributed.
type sourceFile struct {
	path  string
	pages int
}

// pageFields keeps the fields attached to one page, unique by name, in
// attachment order. Re-attaching a name replaces the field but keeps its
// slot, so rendering order stays stable.
type pageFields struct {
	order  []string
	byName map[string]*Field
}

func newPageFields() *pageFields {
	return &pageFields{byName: make(map[string]*Field)}
}

func (p *pageFields) put(f *Field) {
	if _, ok := p.byName[f.Name]; !ok {
		p.order = append(p.order, f.Name)
	}
	p.byName[f.Name] = f
}

// Document composes an output PDF from pages imported out of one or more
// source files, with named fields overlaid at fixed positions.
//
// The usual flow: import sources with [Document.AddPagesFromFile], attach
// fields with [Document.AddField] or [Document.AddFieldAt], set their values,
// then produce the output once with [Document.Render], [Document.Save] or
// [Document.Write].
//
// A Document owns one exclusive renderer session and is not safe for
// concurrent use.
type Document struct {
	cfg      documentConfig
	renderer Renderer

	sources     []sourceFile
	totalPages  int
	fields      map[int]*pageFields
	outputPages int
	rendered    bool
}

// NewDocument creates a Document with the given options.
func NewDocument(opts ...Option) *Document {
	cfg := defaultDocumentConfig()
	for _, o := range opts {
		o(&cfg)
	}
	r := cfg.renderer
	if r == nil {
		r = NewFpdfRenderer(cfg.orientation, cfg.unit, cfg.size)
	}
	return &Document{
		cfg:      cfg,
		renderer: r,
		fields:   make(map[int]*pageFields),
	}
}

// FieldDefaults returns the document's resolved style defaults: the built-in
// table merged with any [WithFieldDefaults] overrides.
func (d *Document) FieldDefaults() Field {
	return d.cfg.defaults
}

// TotalPages returns the number of pages imported so far across all source
// files.
func (d *Document) TotalPages() int {
	return d.totalPages
}

// AddPagesFromFile appends the pages of path to the document and returns how
// many there are. Source order is significant: it fixes the final page order
// of the output, independent of when fields are attached. Importing the same
// file twice appends its pages twice.
func (d *Document) AddPagesFromFile(path string) (int, error) {
	if d.rendered {
		return 0, ErrClosed
	}
	count, err := d.renderer.SetSourceFile(path)
	if err != nil {
		return 0, err
	}
	d.sources = append(d.sources, sourceFile{path: path, pages: count})
	d.totalPages += count
	return count, nil
}

// lastPageIndex is the page new fields attach to when no index is given:
// the last imported page, or page 0 when nothing has been imported yet.
func (d *Document) lastPageIndex() int {
	if d.totalPages == 0 {
		return 0
	}
	return d.totalPages - 1
}

// AddField attaches f to the last currently-known page and returns the
// stored field, so callers can keep mutating it (SetValue in particular)
// until output time.
func (d *Document) AddField(f *Field) *Field {
	return d.AddFieldAt(d.lastPageIndex(), f)
}

// AddFieldAt attaches f to the 0-based output page index, replacing any
// previously attached field with the same name on that page. A field without
// a name gets one from the document's [Namer].
//
// Attaching beyond the imported page range is a valid deferred state: the
// field renders only if enough pages are eventually imported.
func (d *Document) AddFieldAt(page int, f *Field) *Field {
	if f.Name == "" {
		f.Name = d.cfg.namer.Next()
	}
	pf := d.fields[page]
	if pf == nil {
		pf = newPageFields()
		d.fields[page] = pf
	}
	pf.put(f)
	return f
}

// AddFieldMap builds a Field from a property bag (see [FieldFromMap]) and
// attaches it to the last currently-known page. The error is diagnostic
// only; the field is attached either way.
func (d *Document) AddFieldMap(props map[string]any) (*Field, error) {
	return d.AddFieldMapAt(d.lastPageIndex(), props)
}

// AddFieldMapAt is [Document.AddFieldMap] with an explicit page index.
func (d *Document) AddFieldMapAt(page int, props map[string]any) (*Field, error) {
	f, err := fieldFromMap(props, d.cfg.namer)
	d.AddFieldAt(page, f)
	return f, err
}

// GetField returns the field named name, scanning pages in ascending index
// order. When the same name exists on several pages the lowest page index
// wins. Returns [ErrFieldNotFound] when no page has the name.
func (d *Document) GetField(name string) (*Field, error) {
	pages := make([]int, 0, len(d.fields))
	for page := range d.fields {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	for _, page := range pages {
		if f, ok := d.fields[page].byName[name]; ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// GetFieldAt returns the field named name on the given page index, or
// [ErrFieldNotFound].
func (d *Document) GetFieldAt(page int, name string) (*Field, error) {
	if pf := d.fields[page]; pf != nil {
		if f, ok := pf.byName[name]; ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q on page %d", ErrFieldNotFound, name, page)
}

// AddPageAndField renders field once per value down repeated copies of the
// first page of path, starting a new output page whenever the next
// repetition would cross the printable height — or after every value when
// breakAfterEach is set. Repetitions are stacked directly below one another,
// each advancing by the template's height.
//
// This path draws directly: the repetitions are not registered in the
// per-page field registry and path is not replayed by [Document.Render].
// An empty value slice imports and measures the template but adds no pages.
func (d *Document) AddPageAndField(path string, field *Field, values []string, breakAfterEach bool) error {
	if d.rendered {
		return ErrClosed
	}
	if _, err := d.renderer.SetSourceFile(path); err != nil {
		return err
	}
	tpl, err := d.renderer.ImportPage(1, mediaBox)
	if err != nil {
		return err
	}
	_, h := d.renderer.TemplateSize(tpl)

	startY := field.Y
	// The cursor starts at the break boundary so the first value always
	// opens a page.
	pageY := d.cfg.breakHeight
	for _, v := range values {
		if breakAfterEach || pageY+h >= d.cfg.breakHeight {
			pageY = d.cfg.marginY
			field.Y = startY
			d.addPage()
		}
		d.renderer.UseTemplate(tpl, d.cfg.marginX, pageY)
		field.SetValue(v)
		d.renderField(field)
		field.Y += h
		pageY += h
	}
	return nil
}

// Render replays every imported source file in order, page by page: each
// source page is imported as a template, placed on a fresh output page at
// the document margin, and overlaid with the fields registered under the
// running 0-based output page index. The index advances once per source
// page across all files, which keeps it in lock-step with the indices
// [Document.AddField] computed at attachment time.
//
// A Document renders once; subsequent calls return [ErrClosed].
func (d *Document) Render() (*Result, error) {
	if d.rendered {
		return nil, ErrClosed
	}
	pageIndex := 0
	for _, src := range d.sources {
		if _, err := d.renderer.SetSourceFile(src.path); err != nil {
			return nil, err
		}
		for p := 1; p <= src.pages; p++ {
			tpl, err := d.renderer.ImportPage(p, mediaBox)
			if err != nil {
				return nil, err
			}
			d.addPage()
			d.renderer.UseTemplate(tpl, d.cfg.marginX, d.cfg.marginY)
			if pf := d.fields[pageIndex]; pf != nil {
				for _, name := range pf.order {
					d.renderField(pf.byName[name])
				}
			}
			pageIndex++
		}
	}
	var buf bytes.Buffer
	if err := d.renderer.Output(&buf); err != nil {
		return nil, err
	}
	d.rendered = true
	return &Result{data: buf.Bytes(), pages: d.outputPages}, nil
}

// Save renders the document and writes it to path.
func (d *Document) Save(path string) error {
	res, err := d.Render()
	if err != nil {
		return err
	}
	if err := res.WriteToFile(path, 0o644); err != nil {
		return fmt.Errorf("pdfoverlay: writing %s: %w", path, err)
	}
	return nil
}

// Write renders the document and streams it to w.
func (d *Document) Write(w io.Writer) error {
	res, err := d.Render()
	if err != nil {
		return err
	}
	_, err = res.WriteTo(w)
	return err
}

func (d *Document) addPage() {
	d.renderer.AddPage()
	d.outputPages++
}

// renderField draws one field: a boxed, top-anchored, single-line cell when
// both Width and Height are set, free text anchored at (X, Y) otherwise.
// Style gaps are filled from the document defaults without mutating the
// stored field, so defaults may change between attachment and render.
func (d *Document) renderField(f *Field) {
	eff := f.withDefaults(&d.cfg.defaults)
	border := d.cfg.drawBorders || eff.Border
	cr, cg, cb := eff.ColorRGB()
	d.renderer.SetFont(eff.Font, eff.FontStyle, eff.FontSize)
	d.renderer.SetTextColor(cr, cg, cb)
	if eff.Width != 0 && eff.Height != 0 {
		d.renderer.SetCursor(eff.X, eff.Y)
		d.renderer.Cell(eff.Width, eff.Height, eff.Value, border, eff.Align)
	} else {
		d.renderer.Text(eff.X, eff.Y, eff.Value)
	}
}
