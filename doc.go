// Package pdfoverlay places positioned text fields onto pages imported from
// existing PDF documents — filling a certificate or form template with
// programmatically supplied values — and writes the composed result.
//
// # Composing a document
//
// Import one or more source PDFs, attach fields to page indices, set their
// values, then render:
//
//	doc := pdfoverlay.NewDocument()
//	if _, err := doc.AddPagesFromFile("certificate.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	name := pdfoverlay.NewField()
//	name.X, name.Y = 2, 4
//	name.Width, name.Height = 4.5, 0.5
//	name.Align = pdfoverlay.AlignCenter
//	doc.AddField(name).SetValue("Ada Lovelace")
//
//	err := doc.Save("filled.pdf")
//
// Fields attached without a page index go to the last imported page. A field
// with both Width and Height set renders as a bounded, single-line cell;
// without them, as free text anchored at (X, Y). Unset style attributes are
// filled from the document defaults at render time — override the built-in
// table with [WithFieldDefaults].
//
// # Repeating a field across values
//
// [Document.AddPageAndField] stamps the same field once per value down
// repeated copies of a template page, opening a new page whenever the next
// repetition no longer fits:
//
//	row := pdfoverlay.NewField()
//	row.X, row.Y = 1, 0.5
//	err := doc.AddPageAndField("row.pdf", row, winners, false)
//
// # Output shapes
//
// [Document.Render] returns a [Result] with flexible access to the bytes:
//
//	res.Bytes()                       // []byte
//	res.Base64()                      // base64 string (RFC 4648)
//	res.Reader()                      // *bytes.Reader
//	res.WriteTo(w)                    // io.WriterTo
//	res.WriteToFile("out.pdf", 0o644) // write to disk
//
// [Document.Save] and [Document.Write] cover the common file and stream
// cases directly. A Document renders once.
//
// # Rasterizing
//
// [Rasterizer] turns each page of a PDF into an image file by invoking an
// ImageMagick binary found in PATH (or set via [WithConverterPath]):
//
//	paths, err := pdfoverlay.NewRasterizer().Convert(ctx, "filled.pdf", "page.png")
//	// paths: ["page-0.png", "page-1.png", ...]
package pdfoverlay
