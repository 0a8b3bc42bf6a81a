package thumb

import (
	"image"

	"github.com/gogpu/thumb/text"
)

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default: system fonts, then embedded fonts
//	c := thumb.NewCanvas()
//
//	// Reproducible output independent of installed fonts
//	c := thumb.NewCanvas(thumb.WithFontResolver(text.EmbeddedResolver()))
type Option func(*canvasOptions)

// GlyphRenderer draws a single glyph into a transparent tile.
// *text.EmojiRenderer is the standard implementation.
type GlyphRenderer interface {
	RenderTile(glyph string) (*image.RGBA, string, error)
}

// DefaultHistoryLimit is the number of undo snapshots kept by default.
const DefaultHistoryLimit = 20

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	resolver     *text.Resolver
	glyphs       GlyphRenderer
	fontDirs     []string
	historyLimit int
	background   Color
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		historyLimit: DefaultHistoryLimit,
		background:   White,
	}
}

// WithFontResolver sets the font resolution order used by DrawText.
// The default is text.DefaultResolver over the WithFontDirs directories.
func WithFontResolver(r *text.Resolver) Option {
	return func(o *canvasOptions) {
		o.resolver = r
	}
}

// WithGlyphRenderer sets the renderer used by DrawEmoji.
// The default is text.NewEmojiRenderer over the WithFontDirs directories.
func WithGlyphRenderer(g GlyphRenderer) Option {
	return func(o *canvasOptions) {
		o.glyphs = g
	}
}

// WithFontDirs adds directories searched for font files by the default
// font resolver and emoji renderer.
func WithFontDirs(dirs ...string) Option {
	return func(o *canvasOptions) {
		o.fontDirs = append(o.fontDirs, dirs...)
	}
}

// WithHistoryLimit sets how many undo snapshots are kept. Zero disables
// undo. Each snapshot holds a full copy of the canvas (about 3.5 MiB).
func WithHistoryLimit(n int) Option {
	return func(o *canvasOptions) {
		if n < 0 {
			n = 0
		}
		o.historyLimit = n
	}
}

// WithBackground sets the initial canvas color. The default is white.
func WithBackground(c Color) Option {
	return func(o *canvasOptions) {
		o.background = c.Opaque()
	}
}
