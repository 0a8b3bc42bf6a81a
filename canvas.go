package thumb

import (
	"image"

	"github.com/gogpu/thumb/text"
)

// Canvas dimensions. Every Canvas is exactly Width×Height pixels.
const (
	Width  = 1280
	Height = 720
)

// Canvas is the thumbnail being composed: a single opaque Width×Height
// pixel buffer. Operations render directly into it.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	pix      *Pixmap
	resolver *text.Resolver
	glyphs   GlyphRenderer
	history  history

	// brightnessRef is the reference image of an open brightness session.
	brightnessRef *Pixmap
}

// NewCanvas creates a canvas filled with the background color (white
// unless WithBackground is given).
//
// Example:
//
//	c := thumb.NewCanvas(thumb.WithFontDirs("./fonts"), thumb.WithHistoryLimit(50))
func NewCanvas(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.resolver == nil {
		o.resolver = text.DefaultResolver(o.fontDirs...)
	}
	if o.glyphs == nil {
		o.glyphs = text.NewEmojiRenderer(o.fontDirs...)
	}

	pm := NewPixmap(Width, Height)
	pm.Clear(o.background.Opaque())

	return &Canvas{
		pix:      pm,
		resolver: o.resolver,
		glyphs:   o.glyphs,
		history:  history{limit: o.historyLimit},
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return Width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return Height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Pixel returns the color at (x, y). Outside the canvas it returns
// Transparent.
func (c *Canvas) Pixel(x, y int) Color {
	return c.pix.GetPixel(x, y)
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.pix.ToImage()
}

// Snapshot returns a copy of the current pixels as a Pixmap.
func (c *Canvas) Snapshot() *Pixmap {
	return c.pix.Clone()
}

// Resolver returns the font resolver used by DrawText.
func (c *Canvas) Resolver() *text.Resolver {
	return c.resolver
}

// checkpoint records the current pixels for Undo and ends any brightness
// session. Every mutating operation calls it after its input has been
// validated and before the first pixel changes.
func (c *Canvas) checkpoint() {
	c.history.push(c.pix)
	c.brightnessRef = nil
}

// replace swaps in a whole new buffer produced by a background operation.
func (c *Canvas) replace(pm *Pixmap) {
	c.checkpoint()
	c.pix = pm
}
