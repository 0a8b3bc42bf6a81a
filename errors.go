package thumb

import (
	"errors"

	"github.com/gogpu/thumb/text"
)

// Sentinel errors for thumb package.
var (
	// ErrInvalidStyle is returned when a Style or an operation argument
	// is outside its documented range.
	ErrInvalidStyle = errors.New("thumb: invalid style")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("thumb: invalid color")

	// ErrEmptyText is returned by DrawText when there is nothing to draw.
	ErrEmptyText = errors.New("thumb: empty text")

	// ErrUnknownTemplate is returned by ApplyTemplate for an unknown preset.
	ErrUnknownTemplate = errors.New("thumb: unknown template")

	// ErrUnsupportedFormat is returned when an image format cannot be
	// decoded on load or encoded on export.
	ErrUnsupportedFormat = errors.New("thumb: unsupported image format")

	// ErrGlyphUnsupported is a warning: no available font can draw the
	// requested emoji. The canvas is left unchanged.
	ErrGlyphUnsupported = text.ErrGlyphUnsupported
)

// LoadError is returned when a background image cannot be read or decoded.
// The canvas is unchanged when LoadError is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "thumb: load " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// TextRenderError is returned when text cannot be rendered even with the
// fallback font. The canvas is unchanged when TextRenderError is returned.
type TextRenderError struct {
	Text string
	Err  error
}

func (e *TextRenderError) Error() string {
	return "thumb: render text " + quote(e.Text) + ": " + e.Err.Error()
}

func (e *TextRenderError) Unwrap() error { return e.Err }

// ExportError is returned when the canvas cannot be written to a file.
// No partial file is left behind.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return "thumb: export " + e.Path + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error { return e.Err }

// quote shortens long strings for error messages.
func quote(s string) string {
	const maxLen = 32
	r := []rune(s)
	if len(r) > maxLen {
		s = string(r[:maxLen]) + "…"
	}
	return `"` + s + `"`
}
