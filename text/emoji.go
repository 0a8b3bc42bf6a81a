package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // bitmap strikes may be JPEG
	_ "image/png"  // sbix and CBDT strikes are PNG
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	tsfont "github.com/go-text/typesetting/font"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Emoji tile geometry.
const (
	// TileSize is the side of the square emoji tile in pixels.
	TileSize = 150

	// TileInset is the offset of the glyph inside the tile.
	TileInset = 10

	// EmojiSize is the nominal glyph size in pixels.
	EmojiSize = 120
)

// Variation selectors accepted after a glyph's rune.
const (
	textPresentation  = '\uFE0E'
	emojiPresentation = '\uFE0F'
)

// EmojiFontFiles lists well-known color emoji font files, in order of
// preference.
var EmojiFontFiles = []string{
	"seguiemj.ttf",
	"Apple Color Emoji.ttc",
	"NotoColorEmoji.ttf",
	"NotoEmoji-Regular.ttf",
	"TwemojiMozilla.ttf",
}

// EmojiRenderer draws single glyphs into transparent tiles.
//
// Fonts are tried in order: EmojiFontFiles in Dirs, then (when System is
// set) EmojiFontFiles in the platform font directories, then any
// installed font covering the glyph, and finally the basic face.
//
// EmojiRenderer is safe for concurrent use.
type EmojiRenderer struct {
	// Dirs are searched for EmojiFontFiles before the system locations.
	Dirs []string

	// System enables the platform font directories and the installed font
	// index.
	System bool

	mu    sync.Mutex
	faces map[string]*emojiFont
}

// NewEmojiRenderer returns a renderer that searches dirs and then the
// system fonts.
func NewEmojiRenderer(dirs ...string) *EmojiRenderer {
	return &EmojiRenderer{Dirs: dirs, System: true}
}

// emojiFont is a font file opened through both parsers: go-text for color
// bitmap strikes and x/image for outlines.
type emojiFont struct {
	path    string
	bitmaps *tsfont.Face // nil when go-text cannot parse the file
	outline *FontSource  // nil for bitmap-only fonts
}

// RenderTile draws glyph into a TileSize×TileSize transparent tile and
// returns the tile with the name of the font used. A glyph is one rune,
// optionally followed by a text or emoji variation selector. Sequences
// such as flags, ZWJ families and skin tones are ErrGlyphUnsupported, as
// is a glyph no font can draw.
func (e *EmojiRenderer) RenderTile(glyph string) (*image.RGBA, string, error) {
	r, n := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		return nil, "", fmt.Errorf("%w: %q", ErrGlyphUnsupported, glyph)
	}
	for _, vs := range glyph[n:] {
		if vs != textPresentation && vs != emojiPresentation {
			return nil, "", fmt.Errorf("%w: %q is a sequence of %d runes", ErrGlyphUnsupported, glyph, utf8.RuneCountInString(glyph))
		}
	}
	log := Logger()

	for _, path := range e.candidatePaths(r) {
		f, err := e.open(path)
		if err != nil {
			log.Debug("text: emoji font unusable", "path", path, "err", err)
			continue
		}
		if tile, ok := f.render(r); ok {
			log.Debug("text: emoji rendered", "font", path, "rune", fmt.Sprintf("%U", r))
			return tile, filepath.Base(path), nil
		}
	}

	if _, ok := basicfont.Face7x13.GlyphAdvance(r); ok {
		tile := newTile()
		drawOutline(tile, basicfont.Face7x13, r)
		return tile, basicName, nil
	}

	log.Warn("text: no font supports glyph", "rune", fmt.Sprintf("%U", r))
	return nil, "", fmt.Errorf("%w: %U", ErrGlyphUnsupported, r)
}

// candidatePaths lists font files to try for r, without duplicates.
func (e *EmojiRenderer) candidatePaths(r rune) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	dirs := e.Dirs
	if e.System {
		dirs = append(append([]string(nil), dirs...), SystemFontDirs()...)
	}
	for _, dir := range dirs {
		for _, name := range EmojiFontFiles {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				add(p)
			}
		}
	}

	if e.System {
		fps, _ := SystemFonts()
		for i := range fps {
			if fps[i].Runes.Contains(r) {
				add(fps[i].Location.File)
			}
		}
	}
	return paths
}

func (e *EmojiRenderer) open(path string) (*emojiFont, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if f, ok := e.faces[path]; ok {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &emojiFont{path: path}
	if faces, err := tsfont.ParseTTC(bytes.NewReader(data)); err == nil && len(faces) > 0 {
		f.bitmaps = faces[0]
		f.bitmaps.SetPpem(EmojiSize, EmojiSize)
	}
	if src, err := NewFontSource(data, 0); err == nil {
		f.outline = src
	}
	if f.bitmaps == nil && f.outline == nil {
		return nil, errors.New("unsupported font format")
	}

	if e.faces == nil {
		e.faces = make(map[string]*emojiFont)
	}
	e.faces[path] = f
	return f, nil
}

// render draws r from f, preferring a color bitmap strike over the
// outline.
func (f *emojiFont) render(r rune) (*image.RGBA, bool) {
	if f.bitmaps != nil {
		if gid, ok := f.bitmaps.NominalGlyph(r); ok {
			if bm, ok := f.bitmaps.GlyphData(gid).(tsfont.GlyphBitmap); ok {
				if tile, ok := drawBitmap(bm); ok {
					return tile, true
				}
			}
		}
	}
	if f.outline != nil && f.outline.HasGlyph(r) {
		face, err := f.outline.Face(EmojiSize)
		if err != nil {
			return nil, false
		}
		defer face.Close()
		tile := newTile()
		drawOutline(tile, face, r)
		return tile, true
	}
	return nil, false
}

func newTile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
}

// drawBitmap decodes an embedded PNG or JPEG strike and scales it to
// EmojiSize pixels high at the tile inset.
func drawBitmap(bm tsfont.GlyphBitmap) (*image.RGBA, bool) {
	if bm.Format != tsfont.PNG && bm.Format != tsfont.JPG {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(bm.Data))
	if err != nil {
		Logger().Debug("text: bad bitmap strike", "err", err)
		return nil, false
	}
	sb := img.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil, false
	}

	w := sb.Dx() * EmojiSize / sb.Dy()
	if w > TileSize-TileInset {
		w = TileSize - TileInset
	}
	tile := newTile()
	dr := image.Rect(TileInset, TileInset, TileInset+w, TileInset+EmojiSize)
	xdraw.CatmullRom.Scale(tile, dr, img, sb, draw.Over, nil)
	return tile, true
}

// drawOutline draws r in black with its layout box at the tile inset.
func drawOutline(tile *image.RGBA, face font.Face, r rune) {
	d := font.Drawer{
		Dst:  tile,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(TileInset), Y: fixed.I(TileInset) + face.Metrics().Ascent},
	}
	d.DrawString(string(r))
}
