package pdfoverlay

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// fpdfRenderer is the production [Renderer], built on go-pdf/fpdf with
// gofpdi page import. Page counting goes through pdfcpu, which inspects
// source files without pulling them into the output document.
type fpdfRenderer struct {
	doc      *fpdf.Fpdf
	importer *gofpdi.Importer
	source   string
	sizes    map[Template][2]float64 // template handle -> (w, h) in points
}

// NewFpdfRenderer returns a Renderer backed by go-pdf/fpdf. Orientation,
// unit and size follow fpdf.New conventions, e.g. "P", "in", "Letter".
func NewFpdfRenderer(orientation, unit, size string) Renderer {
	return &fpdfRenderer{
		doc:      fpdf.New(orientation, unit, size, ""),
		importer: gofpdi.NewImporter(),
		sizes:    make(map[Template][2]float64),
	}
}

func (r *fpdfRenderer) SetSourceFile(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("pdfoverlay: source file: %w", err)
	}
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdfoverlay: counting pages in %s: %w", path, err)
	}
	r.source = path
	return count, nil
}

func (r *fpdfRenderer) ImportPage(pageNumber int, box string) (Template, error) {
	if r.source == "" {
		return 0, fmt.Errorf("pdfoverlay: import: no source file set")
	}
	tpl := Template(r.importer.ImportPage(r.doc, r.source, pageNumber, box))
	if r.doc.Err() {
		return 0, fmt.Errorf("pdfoverlay: importing page %d of %s: %w",
			pageNumber, r.source, r.doc.Error())
	}
	// Sizes must be captured per import: the importer's size table tracks
	// the current source file.
	var size [2]float64
	if dims, ok := r.importer.GetPageSizes()[pageNumber]; ok {
		if mb, ok := dims[box]; ok {
			size[0], size[1] = mb["w"], mb["h"]
		}
	}
	r.sizes[tpl] = size
	return tpl, nil
}

func (r *fpdfRenderer) TemplateSize(tpl Template) (w, h float64) {
	// gofpdi reports page boxes in points; convert to document units.
	k := r.doc.GetConversionRatio()
	size := r.sizes[tpl]
	return size[0] / k, size[1] / k
}

func (r *fpdfRenderer) AddPage() {
	r.doc.AddPage()
}

func (r *fpdfRenderer) UseTemplate(tpl Template, x, y float64) {
	w, _ := r.TemplateSize(tpl)
	r.importer.UseImportedTemplate(r.doc, int(tpl), x, y, w, 0)
}

func (r *fpdfRenderer) SetFont(family, style string, size float64) {
	r.doc.SetFont(family, style, size)
}

func (r *fpdfRenderer) SetTextColor(cr, cg, cb int) {
	r.doc.SetTextColor(cr, cg, cb)
}

func (r *fpdfRenderer) SetCursor(x, y float64) {
	r.doc.SetXY(x, y)
}

func (r *fpdfRenderer) Cell(w, h float64, text string, border bool, align Align) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	// "T" pins the text to the top of the cell.
	r.doc.CellFormat(w, h, text, borderStr, 0, string(align)+"T", false, 0, "")
}

func (r *fpdfRenderer) Text(x, y float64, text string) {
	r.doc.Text(x, y, text)
}

func (r *fpdfRenderer) Output(w io.Writer) error {
	if err := r.doc.Output(w); err != nil {
		return fmt.Errorf("pdfoverlay: writing output: %w", err)
	}
	return nil
}
