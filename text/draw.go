package text

import (
	"fmt"
	"image"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// maxMaskPixels bounds the size of a rasterized string. A 1280×720 canvas
// can show at most a few million pixels of it; anything far beyond that
// is a measurement gone wrong.
const maxMaskPixels = 1 << 26

// Measure returns the ink bounds of s drawn with face. Coordinates are
// relative to the top-left of the layout box: the first baseline sits at
// y = ascent and each following line one line height below.
// Lines are separated by '\n' and left-aligned.
func Measure(face font.Face, s string) image.Rectangle {
	var ink fixed.Rectangle26_6
	first := true
	forEachLine(face, s, func(line string, dot fixed.Point26_6) {
		b, ok := lineBounds(face, line)
		if !ok {
			return
		}
		b = b.Add(dot)
		if first {
			ink, first = b, false
			return
		}
		ink = ink.Union(b)
	})
	if first {
		return image.Rectangle{}
	}
	return image.Rect(ink.Min.X.Floor(), ink.Min.Y.Floor(), ink.Max.X.Ceil(), ink.Max.Y.Ceil())
}

// lineBounds is font.BoundString restricted to runes that leave ink.
// Whitespace only advances the pen, so a blank line reports ok == false.
func lineBounds(face font.Face, line string) (b fixed.Rectangle26_6, ok bool) {
	var x fixed.Int26_6
	prev := rune(-1)
	for _, c := range line {
		if prev >= 0 {
			x += face.Kern(prev, c)
		}
		prev = c
		gb, adv, found := face.GlyphBounds(c)
		if !found || unicode.IsSpace(c) || gb.Empty() {
			x += adv
			continue
		}
		gb.Min.X += x
		gb.Max.X += x
		if !ok {
			b, ok = gb, true
		} else {
			b = b.Union(gb)
		}
		x += adv
	}
	return b, ok
}

// Rasterize draws s once into a coverage mask whose bounds are the ink
// bounds reported by Measure. An all-blank string yields an empty mask.
func Rasterize(face font.Face, s string) (*image.Alpha, error) {
	r := Measure(face, s)
	if n := int64(r.Dx()) * int64(r.Dy()); n > maxMaskPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrMaskTooLarge, r.Dx(), r.Dy())
	}

	mask := image.NewAlpha(r)
	if r.Empty() {
		return mask, nil
	}
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	forEachLine(face, s, func(line string, dot fixed.Point26_6) {
		d.Dot = dot
		d.DrawString(line)
	})
	return mask, nil
}

// forEachLine calls fn with every line of s and the position of its
// baseline origin.
func forEachLine(face font.Face, s string, fn func(line string, dot fixed.Point26_6)) {
	m := face.Metrics()
	height := m.Height
	if height == 0 {
		height = m.Ascent + m.Descent
	}
	dot := fixed.Point26_6{Y: m.Ascent}
	for _, line := range strings.Split(s, "\n") {
		fn(line, dot)
		dot.Y += height
	}
}
