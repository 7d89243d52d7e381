package pdfoverlay_test

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"

	pdfoverlay "github.com/porticus-lab/go-pdf-overlay"
)

// buildTemplate writes a simple one-page certificate template.
func buildTemplate(path string) error {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetFont("Helvetica", "B", 28)
	pdf.AddPage()
	pdf.SetXY(1, 2)
	pdf.CellFormat(6.5, 0.6, "Certificate of Achievement", "", 0, "C", false, 0, "")
	return pdf.OutputFileAndClose(path)
}

// ExampleDocument fills a certificate template with a recipient name.
func ExampleDocument() {
	dir, err := os.MkdirTemp("", "pdfoverlay")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	template := filepath.Join(dir, "certificate.pdf")
	if err := buildTemplate(template); err != nil {
		fmt.Println(err)
		return
	}

	doc := pdfoverlay.NewDocument()
	if _, err := doc.AddPagesFromFile(template); err != nil {
		fmt.Println(err)
		return
	}

	recipient := pdfoverlay.NewField()
	recipient.X, recipient.Y = 2, 4
	recipient.Width, recipient.Height = 4.5, 0.5
	recipient.Align = pdfoverlay.AlignCenter
	recipient.FontSize = 18
	doc.AddField(recipient).SetValue("Ada Lovelace")

	res, err := doc.Render()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("composed %d page(s)\n", res.Pages())
	// Output:
	// composed 1 page(s)
}

// ExampleDocument_AddPageAndField stamps one field per value down copies of
// a row template, paginating automatically.
func ExampleDocument_AddPageAndField() {
	dir, err := os.MkdirTemp("", "pdfoverlay")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	row := filepath.Join(dir, "row.pdf")
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: 8.5, Ht: 2})
	if err := pdf.OutputFileAndClose(row); err != nil {
		fmt.Println(err)
		return
	}

	doc := pdfoverlay.NewDocument()
	winner := pdfoverlay.NewField()
	winner.X, winner.Y = 1, 0.5

	winners := []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth"}
	if err := doc.AddPageAndField(row, winner, winners, false); err != nil {
		fmt.Println(err)
		return
	}

	res, err := doc.Render()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("composed %d page(s)\n", res.Pages())
	// Output:
	// composed 2 page(s)
}
