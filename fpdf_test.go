package pdfoverlay

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/go-pdf/fpdf"
)

// makeSourcePDF writes a Letter-sized PDF with the given number of labeled
// pages, for use as an import source.
func makeSourcePDF(t *testing.T, path string, pages int, label string) {
	t.Helper()
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetFont("Helvetica", "", 24)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.SetXY(1, 1)
		pdf.Cell(0, 0.5, fmt.Sprintf("%s - page %d", label, i))
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing source pdf: %v", err)
	}
}

// makeRowPDF writes a single-page PDF of the given size, the shape of a
// repeatable row template.
func makeRowPDF(t *testing.T, path string, w, h float64) {
	t.Helper()
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	pdf.SetXY(0.1, 0.1)
	pdf.Cell(0, 0.2, "row")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing row pdf: %v", err)
	}
}

func TestFpdfRenderer_SetSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src.pdf")
	makeSourcePDF(t, path, 3, "Count")

	r := NewFpdfRenderer("P", "in", "Letter")
	count, err := r.SetSourceFile(path)
	if err != nil {
		t.Fatalf("SetSourceFile: %v", err)
	}
	if count != 3 {
		t.Errorf("page count = %d, want 3", count)
	}
}

func TestFpdfRenderer_SetSourceFile_Missing(t *testing.T) {
	r := NewFpdfRenderer("P", "in", "Letter")
	if _, err := r.SetSourceFile(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}

func TestFpdfRenderer_TemplateSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "row.pdf")
	makeRowPDF(t, path, 8.5, 2)

	r := NewFpdfRenderer("P", "in", "Letter")
	if _, err := r.SetSourceFile(path); err != nil {
		t.Fatal(err)
	}
	tpl, err := r.ImportPage(1, mediaBox)
	if err != nil {
		t.Fatal(err)
	}
	w, h := r.TemplateSize(tpl)
	if math.Abs(w-8.5) > 0.01 || math.Abs(h-2) > 0.01 {
		t.Errorf("template size = %.3f x %.3f, want 8.5 x 2", w, h)
	}
}

func TestDocument_SaveComposed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "certificate.pdf")
	makeSourcePDF(t, src, 2, "Certificate")

	doc := NewDocument()
	n, err := doc.AddPagesFromFile(src)
	if err != nil {
		t.Fatalf("AddPagesFromFile: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d pages, want 2", n)
	}

	recipient := &Field{Name: "recipient", X: 2, Y: 4, Width: 4.5, Height: 0.5, Align: AlignCenter}
	doc.AddFieldAt(0, recipient).SetValue("Ada Lovelace")
	doc.AddFieldAt(1, &Field{Name: "note", X: 1, Y: 9}).SetValue("Second page note")

	out := filepath.Join(dir, "filled.pdf")
	if err := doc.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}

	r := NewFpdfRenderer("P", "in", "Letter")
	count, err := r.SetSourceFile(out)
	if err != nil {
		t.Fatalf("counting output pages: %v", err)
	}
	if count != 2 {
		t.Errorf("output has %d pages, want 2", count)
	}
}

func TestDocument_MultipleSources(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	makeSourcePDF(t, a, 2, "A")
	makeSourcePDF(t, b, 1, "B")

	doc := NewDocument()
	if _, err := doc.AddPagesFromFile(a); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddPagesFromFile(b); err != nil {
		t.Fatal(err)
	}
	doc.AddField(&Field{Name: "onB", X: 1, Y: 1}).SetValue("last page")

	res, err := doc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Pages() != 3 {
		t.Errorf("Pages = %d, want 3", res.Pages())
	}
}

func TestAddPageAndField_RealTemplate(t *testing.T) {
	dir := t.TempDir()
	row := filepath.Join(dir, "row.pdf")
	makeRowPDF(t, row, 8.5, 2)

	doc := NewDocument()
	f := &Field{Name: "winner", X: 1, Y: 0.5}
	values := make([]string, 10)
	for i := range values {
		values[i] = fmt.Sprintf("Winner %d", i+1)
	}
	if err := doc.AddPageAndField(row, f, values, false); err != nil {
		t.Fatalf("AddPageAndField: %v", err)
	}

	res, err := doc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Five 2-inch rows fit under the 11-inch boundary, so 10 values span
	// exactly two pages.
	if res.Pages() != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages())
	}
}
