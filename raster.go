package pdfoverlay

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// converterNames are the ImageMagick entry points probed when no explicit
// binary is configured: "magick" is the v7 binary, "convert" the v6 one.
var converterNames = []string{"magick", "convert"}

// Rasterizer renders each page of a PDF to an image file by invoking an
// ImageMagick-style converter binary.
type Rasterizer struct {
	binary  string
	density int
	quality int
}

// RasterOption configures a [Rasterizer].
type RasterOption func(*Rasterizer)

// WithConverterPath sets the converter executable explicitly. By default
// the Rasterizer searches PATH for an ImageMagick binary.
func WithConverterPath(path string) RasterOption {
	return func(r *Rasterizer) {
		r.binary = path
	}
}

// WithDensity sets the rasterization density in DPI. Defaults to 150.
func WithDensity(dpi int) RasterOption {
	return func(r *Rasterizer) {
		r.density = dpi
	}
}

// WithQuality sets the output image quality, 0 to 100. Defaults to 90.
func WithQuality(q int) RasterOption {
	return func(r *Rasterizer) {
		r.quality = q
	}
}

// NewRasterizer creates a Rasterizer with the given options.
func NewRasterizer(opts ...RasterOption) *Rasterizer {
	r := &Rasterizer{density: 150, quality: 90}
	for _, o := range opts {
		o(r)
	}
	return r
}

// resolveConverter returns the converter binary to run.
func (r *Rasterizer) resolveConverter() (string, error) {
	if r.binary != "" {
		return r.binary, nil
	}
	for _, name := range converterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoConverter
}

// outputPattern inserts a page-index wildcard before the extension of path:
// "scan.png" becomes "scan-%d.png".
func outputPattern(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-%d" + ext
}

// Convert renders every page of inputPDF to an image. output names the
// target file; the page index is inserted before its extension, so
// "scan.png" produces "scan-0.png", "scan-1.png", and so on. The generated
// paths are returned in page order, one per source page.
func (r *Rasterizer) Convert(ctx context.Context, inputPDF, output string) ([]string, error) {
	bin, err := r.resolveConverter()
	if err != nil {
		return nil, err
	}
	pages, err := api.PageCountFile(inputPDF)
	if err != nil {
		return nil, fmt.Errorf("pdfoverlay: counting pages in %s: %w", inputPDF, err)
	}

	pattern := outputPattern(output)
	cmd := exec.CommandContext(ctx, bin,
		"-density", strconv.Itoa(r.density),
		"-quality", strconv.Itoa(r.quality),
		inputPDF, pattern)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdfoverlay: converting %s: %w: %s",
			inputPDF, err, strings.TrimSpace(string(out)))
	}

	paths := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		p := fmt.Sprintf(pattern, i)
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("pdfoverlay: converter produced no %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
