package text

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple faces at different sizes.
// FontSource is heavyweight and should be shared; it is safe for
// concurrent use once created.
type FontSource struct {
	name string
	font *sfnt.Font
}

// NewFontSource parses font data (TTF, OTF or a TTC collection).
// For a collection, index selects the font within it; it is ignored for
// single fonts. The data slice must not be modified afterwards.
func NewFontSource(data []byte, index int) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	if index < 0 || index >= coll.NumFonts() {
		index = 0
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %d: %w", index, err)
	}

	return &FontSource{name: familyName(f), font: f}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, index int) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	s, err := NewFontSource(data, index)
	if err != nil {
		return nil, err
	}
	if s.name == "" {
		s.name = filepath.Base(path)
	}
	return s, nil
}

// Name returns the font family name, or the file name when the font has
// no family record.
func (s *FontSource) Name() string {
	return s.name
}

// Face returns a face at the given size in pixels.
func (s *FontSource) Face(size float64) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingNone,
	})
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

func familyName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
