package pdfoverlay

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a composed PDF as produced by [Document.Render] and provides
// the common output shapes: raw bytes, base64, a streaming reader, or a
// file. Its methods may be called any number of times; the underlying data
// is never modified.
type Result struct {
	data  []byte
	pages int
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Pages returns the number of pages in the composed document, counting both
// replayed source pages and pages added by [Document.AddPageAndField].
func (r *Result) Pages() int {
	return r.pages
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648),
// for embedding in JSON payloads.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns a [*bytes.Reader] over the PDF content, suitable for
// streaming uploads or any API that takes an [io.Reader].
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
