// Package recipe decodes thumbnail job files and runs them against a
// canvas.
//
// A recipe is a list of steps, each naming one canvas operation, plus
// where to write the result:
//
//	output = "out.jpg"
//	quality = 90
//
//	[[steps]]
//	op = "template"
//	name = "gaming"
//
//	[[steps]]
//	op = "text"
//	[steps.style]
//	size = 120
//	anchor = "bottom"
//
// TOML (.toml) and YAML (.yaml, .yml) files use the same field names.
package recipe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/thumb"
)

// ErrUnknownFormat is returned for a recipe file that is neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("recipe: unknown file format")

// ErrNoOutput is returned by Save when neither the recipe nor the caller
// names an output path.
var ErrNoOutput = errors.New("recipe: no output path")

// Format is a recipe file syntax.
type Format string

// Recipe file syntaxes.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath picks the syntax from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Recipe is a decoded job file.
type Recipe struct {
	// Output is the export path. Relative paths are resolved against the
	// recipe's directory.
	Output string `toml:"output" yaml:"output"`
	// Quality is the JPEG quality, 0 to 100; unset means thumb.DefaultQuality.
	Quality *int `toml:"quality" yaml:"quality"`
	// FontDirs are extra font directories for text and emoji.
	FontDirs []string `toml:"font_dirs" yaml:"font_dirs"`
	// Background is the initial canvas color.
	Background *thumb.Color `toml:"background" yaml:"background"`
	// History is the undo depth; zero means thumb.DefaultHistoryLimit.
	History int `toml:"history" yaml:"history"`

	Steps []Step `toml:"steps" yaml:"steps"`

	dir string
}

// Step is one canvas operation. Op selects the operation; the other
// fields are its arguments, and fields an op does not use are ignored.
type Step struct {
	Op string `toml:"op" yaml:"op"`

	// fill, gradient
	Color *thumb.Color `toml:"color" yaml:"color"`
	From  *thumb.Color `toml:"from" yaml:"from"`
	To    *thumb.Color `toml:"to" yaml:"to"`

	// load
	Path string `toml:"path" yaml:"path"`

	// brightness
	Factor float64 `toml:"factor" yaml:"factor"`

	// template
	Name string `toml:"name" yaml:"name"`

	// text
	Text  string     `toml:"text" yaml:"text"`
	Style *StyleSpec `toml:"style" yaml:"style"`

	// shapes
	Shape *ShapeSpec `toml:"shape" yaml:"shape"`

	// emoji
	Glyph string  `toml:"glyph" yaml:"glyph"`
	At    *[2]int `toml:"at" yaml:"at"`
}

// StyleSpec overrides fields of the current text style. Unset fields
// keep their value.
type StyleSpec struct {
	Color        *thumb.Color  `toml:"color" yaml:"color"`
	Outline      *thumb.Color  `toml:"outline" yaml:"outline"`
	OutlineWidth *int          `toml:"outline_width" yaml:"outline_width"`
	Font         string        `toml:"font" yaml:"font"`
	Size         int           `toml:"size" yaml:"size"`
	Bold         *bool         `toml:"bold" yaml:"bold"`
	Italic       *bool         `toml:"italic" yaml:"italic"`
	Shadow       *bool         `toml:"shadow" yaml:"shadow"`
	ShadowOffset *int          `toml:"shadow_offset" yaml:"shadow_offset"`
	Anchor       *thumb.Anchor `toml:"anchor" yaml:"anchor"`
}

// ShapeSpec overrides the stock geometry and colors of a shape. Unset
// fields keep the stock value.
type ShapeSpec struct {
	X      *float64 `toml:"x" yaml:"x"`
	Y      *float64 `toml:"y" yaml:"y"`
	Radius *float64 `toml:"radius" yaml:"radius"`

	// Rect is x0, y0, x1, y1 for rectangles.
	Rect *[4]float64 `toml:"rect" yaml:"rect"`
	// Points are arrow vertices.
	Points [][2]float64 `toml:"points" yaml:"points"`

	Outer    *float64 `toml:"outer" yaml:"outer"`
	Inner    *float64 `toml:"inner" yaml:"inner"`
	Vertices *int     `toml:"vertices" yaml:"vertices"`

	Fill         *thumb.Color `toml:"fill" yaml:"fill"`
	Outline      *thumb.Color `toml:"outline" yaml:"outline"`
	OutlineWidth *float64     `toml:"outline_width" yaml:"outline_width"`
}

// Decode reads a recipe in the given syntax. Unknown fields are errors.
func Decode(r io.Reader, format Format) (*Recipe, error) {
	rec := new(Recipe)
	var err error
	switch format {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(rec)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(rec)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("recipe: decode %s: %w", format, err)
	}
	return rec, nil
}

// Load reads the recipe at path. Relative paths inside it are resolved
// against its directory.
func Load(path string) (*Recipe, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.dir = filepath.Dir(path)
	return rec, nil
}

// resolve makes p relative to the recipe's directory.
func (r *Recipe) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || r.dir == "" {
		return p
	}
	return filepath.Join(r.dir, p)
}

// Options returns the canvas options the recipe asks for.
func (r *Recipe) Options() []thumb.Option {
	var opts []thumb.Option
	if len(r.FontDirs) > 0 {
		dirs := make([]string, len(r.FontDirs))
		for i, d := range r.FontDirs {
			dirs[i] = r.resolve(d)
		}
		opts = append(opts, thumb.WithFontDirs(dirs...))
	}
	if r.Background != nil {
		opts = append(opts, thumb.WithBackground(*r.Background))
	}
	if r.History > 0 {
		opts = append(opts, thumb.WithHistoryLimit(r.History))
	}
	return opts
}

// Save exports c to out, or to the recipe's Output when out is empty.
// It returns the path written.
func (r *Recipe) Save(c *thumb.Canvas, out string) (string, error) {
	if out == "" {
		out = r.resolve(r.Output)
	}
	if out == "" {
		return "", ErrNoOutput
	}
	var opts []thumb.ExportOption
	if r.Quality != nil {
		opts = append(opts, thumb.WithQuality(*r.Quality))
	}
	return out, c.Save(out, opts...)
}
