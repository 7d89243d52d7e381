package pdfoverlay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Align is a horizontal alignment code for boxed field rendering.
type Align string

// Supported alignments. The empty string means "unset" and resolves to the
// document default.
const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Field is a named, positioned, styled piece of text placed onto one page of
// the output document.
//
// Every attribute except Name and Value may be left unset; unset style
// attributes are filled from the owning Document's defaults at render time.
// A zero Width or Height switches rendering from a boxed cell to free text
// anchored at (X, Y).
type Field struct {
	// Name identifies the field. Names must be unique among the fields
	// attached to one page; the same name may be reused on other pages.
	// Fields created without a name get a generated one.
	Name string

	// Position of the field's anchor, in document units.
	X float64
	Y float64

	// Box size. When both are non-zero the field renders as a bounded,
	// single-line cell; otherwise as free text.
	Width  float64
	Height float64

	Font       string // font family, e.g. "Helvetica"
	FontStyle  string // style flags, e.g. "B", "I", "BI"
	FontSize   float64
	Align      Align
	Color      string // text color as "#RRGGBB"
	LineHeight float64
	Border     bool // draw the bounding box in boxed mode

	// Value is the text content, usually set just before rendering.
	Value string

	// Extra holds property-bag keys that [FieldFromMap] did not recognize.
	// They are stored verbatim and never interpreted.
	Extra map[string]string
}

// NewField returns an empty Field with a generated name.
func NewField() *Field {
	return &Field{Name: defaultNamer.Next()}
}

// FieldFromMap builds a Field from a property bag.
//
// Recognized keys: name, value, x, y, width, height, font, fontStyle,
// fontSize, textAlign, textColor, lineHeight, border. Unrecognized keys are
// kept in [Field.Extra]. A value of the wrong type is skipped and reported
// through the returned error, which is diagnostic only: the returned Field
// is always usable, with a generated name if the bag carried none.
func FieldFromMap(props map[string]any) (*Field, error) {
	return fieldFromMap(props, defaultNamer)
}

func fieldFromMap(props map[string]any, namer Namer) (*Field, error) {
	f := &Field{}
	var diags []error
	for key, raw := range props {
		var err error
		switch key {
		case "name":
			f.Name, err = bagString(key, raw)
		case "value":
			f.Value, err = bagString(key, raw)
		case "x":
			f.X, err = bagFloat(key, raw)
		case "y":
			f.Y, err = bagFloat(key, raw)
		case "width":
			f.Width, err = bagFloat(key, raw)
		case "height":
			f.Height, err = bagFloat(key, raw)
		case "font":
			f.Font, err = bagString(key, raw)
		case "fontStyle":
			f.FontStyle, err = bagString(key, raw)
		case "fontSize":
			f.FontSize, err = bagFloat(key, raw)
		case "textAlign":
			var s string
			if s, err = bagString(key, raw); err == nil {
				f.Align = Align(s)
			}
		case "textColor":
			f.Color, err = bagString(key, raw)
		case "lineHeight":
			f.LineHeight, err = bagFloat(key, raw)
		case "border":
			f.Border, err = bagBool(key, raw)
		default:
			if f.Extra == nil {
				f.Extra = make(map[string]string)
			}
			f.Extra[key] = fmt.Sprint(raw)
		}
		if err != nil {
			diags = append(diags, err)
		}
	}
	if f.Name == "" {
		f.Name = namer.Next()
	}
	return f, errors.Join(diags...)
}

func bagString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("pdfoverlay: property %q: expected string, got %T", key, v)
	}
	return s, nil
}

func bagFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("pdfoverlay: property %q: expected number, got %T", key, v)
}

func bagBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("pdfoverlay: property %q: expected bool, got %T", key, v)
	}
	return b, nil
}

// SetValue sets the field's text content and returns the field.
func (f *Field) SetValue(v string) *Field {
	f.Value = v
	return f
}

// SetDefaults fills every unset attribute of f from d, leaving attributes
// that already carry a value untouched. Name and Value are never copied.
// Calling SetDefaults again with the same defaults changes nothing.
func (f *Field) SetDefaults(d *Field) *Field {
	*f = f.withDefaults(d)
	return f
}

// withDefaults returns a copy of f with every unset style and geometry
// attribute taken from d. The receiver is not modified; rendering works on
// the returned effective value so that stored fields keep only what the
// caller set explicitly.
func (f *Field) withDefaults(d *Field) Field {
	eff := *f
	if d == nil {
		return eff
	}
	if eff.X == 0 {
		eff.X = d.X
	}
	if eff.Y == 0 {
		eff.Y = d.Y
	}
	if eff.Width == 0 {
		eff.Width = d.Width
	}
	if eff.Height == 0 {
		eff.Height = d.Height
	}
	if eff.Font == "" {
		eff.Font = d.Font
	}
	if eff.FontStyle == "" {
		eff.FontStyle = d.FontStyle
	}
	if eff.FontSize == 0 {
		eff.FontSize = d.FontSize
	}
	if eff.Align == "" {
		eff.Align = d.Align
	}
	if eff.Color == "" {
		eff.Color = d.Color
	}
	if eff.LineHeight == 0 {
		eff.LineHeight = d.LineHeight
	}
	if !eff.Border {
		eff.Border = d.Border
	}
	return eff
}

// Clone returns a copy of f with a freshly generated name. Clones never
// count as "the same field" for per-page uniqueness purposes.
func (f *Field) Clone() *Field {
	c := *f
	c.Name = defaultNamer.Next()
	if f.Extra != nil {
		c.Extra = make(map[string]string, len(f.Extra))
		for k, v := range f.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

// ColorRGB parses Color as "#RRGGBB" into 8-bit channels. A channel that is
// missing or not valid hex parses as 0, so a malformed color degrades to
// black rather than failing; the leading "#" is optional.
func (f *Field) ColorRGB() (r, g, b int) {
	hex := strings.TrimPrefix(f.Color, "#")
	return hexChannel(hex, 0), hexChannel(hex, 1), hexChannel(hex, 2)
}

func hexChannel(hex string, i int) int {
	lo := i * 2
	if len(hex) < lo+2 {
		return 0
	}
	n, err := strconv.ParseUint(hex[lo:lo+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(n)
}

// defaultFieldStyle is the built-in defaults table every Document starts
// from. Caller-supplied defaults are merged over it.
func defaultFieldStyle() Field {
	return Field{
		Font:       "Helvetica",
		FontSize:   12,
		Align:      AlignLeft,
		Color:      "#000000",
		LineHeight: 1,
	}
}
