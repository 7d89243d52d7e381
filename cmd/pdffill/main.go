// pdffill overlays text fields onto existing PDF templates.
//
// Usage:
//
//	pdffill fill [-o out.pdf] -c job.json
//	pdffill rasterize [options] <file.pdf> <out.png>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	pdfoverlay "github.com/porticus-lab/go-pdf-overlay"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "fill":
		if err := runFill(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "rasterize":
		if err := runRasterize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pdffill - overlay text fields onto PDF templates

Usage:
  pdffill fill [-o out.pdf] -c job.json
  pdffill rasterize [options] <file.pdf> <out.png>

Commands:
  fill        Compose a PDF from a JSON job description
  rasterize   Convert each page of a PDF to an image

Fill options:
  -c <file>   Job description (required)
  -o <file>   Write output to file (default: stdout)

Rasterize options:
  -d <dpi>    Rasterization density (default: 150)
  -q <n>      Image quality 0-100 (default: 90)

Job description format:
  {
    "templates": ["certificate.pdf"],
    "marginX": 0, "marginY": 0,
    "borders": false,
    "defaults": {"font": "Helvetica", "fontSize": 12},
    "fields": [
      {"name": "recipient", "page": 0, "x": 2, "y": 4,
       "width": 4.5, "height": 0.5, "align": "C", "value": "Ada Lovelace"}
    ],
    "repeat": {
      "template": "row.pdf",
      "field": {"x": 1, "y": 0.5},
      "values": ["First", "Second"],
      "perPage": false
    }
  }
`)
}

// fieldSpec is the JSON shape of one field in a job description.
type fieldSpec struct {
	Name       string  `json:"name,omitempty"`
	Page       *int    `json:"page,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Font       string  `json:"font,omitempty"`
	FontStyle  string  `json:"fontStyle,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Align      string  `json:"align,omitempty"`
	Color      string  `json:"color,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
	Border     bool    `json:"border,omitempty"`
	Value      string  `json:"value,omitempty"`
}

func (s fieldSpec) field() *pdfoverlay.Field {
	return &pdfoverlay.Field{
		Name:       s.Name,
		X:          s.X,
		Y:          s.Y,
		Width:      s.Width,
		Height:     s.Height,
		Font:       s.Font,
		FontStyle:  s.FontStyle,
		FontSize:   s.FontSize,
		Align:      pdfoverlay.Align(s.Align),
		Color:      s.Color,
		LineHeight: s.LineHeight,
		Border:     s.Border,
		Value:      s.Value,
	}
}

// job is the JSON shape of a fill job.
type job struct {
	Templates []string    `json:"templates"`
	MarginX   float64     `json:"marginX"`
	MarginY   float64     `json:"marginY"`
	Borders   bool        `json:"borders"`
	Defaults  *fieldSpec  `json:"defaults,omitempty"`
	Fields    []fieldSpec `json:"fields"`
	Repeat    *repeatSpec `json:"repeat,omitempty"`
}

// repeatSpec drives Document.AddPageAndField.
type repeatSpec struct {
	Template string    `json:"template"`
	Field    fieldSpec `json:"field"`
	Values   []string  `json:"values"`
	PerPage  bool      `json:"perPage"`
}

// runFill implements the "fill" command.
func runFill(args []string) error {
	var jobFile, outputFile string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("-c requires an argument")
			}
			jobFile = args[i]
		case "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("-o requires an argument")
			}
			outputFile = args[i]
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}
	if jobFile == "" {
		return fmt.Errorf("no job description specified (-c)")
	}

	data, err := os.ReadFile(jobFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", jobFile, err)
	}
	var j job
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("parsing %s: %w", jobFile, err)
	}

	opts := []pdfoverlay.Option{pdfoverlay.WithMargin(j.MarginX, j.MarginY)}
	if j.Borders {
		opts = append(opts, pdfoverlay.WithBorders())
	}
	if j.Defaults != nil {
		opts = append(opts, pdfoverlay.WithFieldDefaults(*j.Defaults.field()))
	}

	doc := pdfoverlay.NewDocument(opts...)
	for _, tmpl := range j.Templates {
		if _, err := doc.AddPagesFromFile(tmpl); err != nil {
			return fmt.Errorf("importing %s: %w", tmpl, err)
		}
	}
	for _, spec := range j.Fields {
		f := spec.field()
		if spec.Page != nil {
			doc.AddFieldAt(*spec.Page, f)
		} else {
			doc.AddField(f)
		}
	}
	if r := j.Repeat; r != nil {
		if err := doc.AddPageAndField(r.Template, r.Field.field(), r.Values, r.PerPage); err != nil {
			return fmt.Errorf("repeating field over %s: %w", r.Template, err)
		}
	}

	if outputFile == "" {
		return doc.Write(os.Stdout)
	}
	if err := doc.Save(outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outputFile)
	return nil
}

// runRasterize implements the "rasterize" command.
func runRasterize(args []string) error {
	var (
		density, quality int
		files            []string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-d":
			i++
			if i >= len(args) {
				return fmt.Errorf("-d requires an argument")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("invalid density: %s", args[i])
			}
			density = n
		case "-q":
			i++
			if i >= len(args) {
				return fmt.Errorf("-q requires an argument")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("invalid quality: %s", args[i])
			}
			quality = n
		default:
			if strings.HasPrefix(args[i], "-") {
				return fmt.Errorf("unknown option: %s", args[i])
			}
			files = append(files, args[i])
		}
	}
	if len(files) != 2 {
		return fmt.Errorf("rasterize needs an input PDF and an output image name")
	}

	var ropts []pdfoverlay.RasterOption
	if density > 0 {
		ropts = append(ropts, pdfoverlay.WithDensity(density))
	}
	if quality > 0 {
		ropts = append(ropts, pdfoverlay.WithQuality(quality))
	}

	paths, err := pdfoverlay.NewRasterizer(ropts...).Convert(context.Background(), files[0], files[1])
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
