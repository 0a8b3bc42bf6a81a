// Package thumb composes fixed-size thumbnail images.
//
// # Overview
//
// thumb is a Pure Go raster compositor built around a single 1280×720
// pixel buffer. Every operation renders immediately into that buffer:
// there is no layer stack, so text, shapes and stickers are flattened
// the moment they are drawn.
//
// # Quick Start
//
//	import "github.com/gogpu/thumb"
//
//	c := thumb.NewCanvas()
//	c.Gradient(thumb.MustParseColor("#1a0033"), thumb.MustParseColor("#4d004d"))
//
//	st := thumb.DefaultStyle()
//	st.Anchor = thumb.AnchorBottom
//	if _, err := c.DrawText("EPIC GAMING MOMENT!", st); err != nil {
//		log.Fatal(err)
//	}
//
//	c.DrawStarburst(thumb.DefaultStarburst())
//	if err := c.Save("thumbnail.jpg", thumb.WithQuality(90)); err != nil {
//		log.Fatal(err)
//	}
//
// # Operations
//
// Background operations (Fill, Gradient, LoadBackground, Blur and the
// brightness session) replace the whole buffer and are all-or-nothing.
// Compositing operations (DrawText, shapes, DrawEmoji) validate their
// input before the first pixel is written.
//
// # Text
//
// Text is rasterized once into a coverage mask. The outline and the
// shadow are that mask stamped once per outline offset, each stamp over
// the previous ones; the stamps are folded into a single coverage mask so
// the glyphs are never rasterized twice. Fonts are resolved through the ordered candidate list
// of package text; the last candidate always succeeds.
//
// # Concurrency
//
// A Canvas has a single owner. It is not safe for concurrent use.
package thumb

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
