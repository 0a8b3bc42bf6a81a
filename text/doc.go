// Package text resolves fonts and rasterizes text into coverage masks.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC)
//   - Candidate: one way of turning a Request into a font.Face
//   - Resolver: an ordered list of candidates tried in sequence
//   - Rasterize: draws a string once into an *image.Alpha mask
//
// # Font resolution
//
// A Resolver always ends with the basic candidate, which draws with
// golang.org/x/image/font/basicfont and cannot fail. The Resolution
// returned alongside a face names the candidate that produced it, so
// callers can tell when a requested family was substituted.
//
//	r := text.DefaultResolver("./fonts")
//	face, res := r.Resolve(text.Request{Family: "Arial", Size: 100, Bold: true})
//	mask, err := text.Rasterize(face, "HELLO")
//
// # Emoji
//
// EmojiRenderer draws a single glyph into a transparent tile, trying
// color fonts first (sbix and CBDT bitmap strikes decoded through
// github.com/go-text/typesetting) and falling back to outline glyphs.
package text
