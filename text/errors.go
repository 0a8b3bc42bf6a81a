package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphUnsupported is returned when no available font can draw a
	// glyph.
	ErrGlyphUnsupported = errors.New("text: glyph not supported by any font")

	// ErrNoMatch is returned by a Candidate that has no font for a Request.
	ErrNoMatch = errors.New("text: no matching font")

	// ErrMaskTooLarge is returned when a string measures larger than any
	// mask that could be composited.
	ErrMaskTooLarge = errors.New("text: text mask too large")
)
