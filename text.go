package thumb

import (
	"image"
	"image/draw"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/thumb/text"
)

// ShadowColor is the color of the text drop shadow.
var ShadowColor = Color{A: 0x88}

// DrawText composites s onto the canvas with st and returns which font
// candidate was used. The text block is centered horizontally and placed
// vertically by st.Anchor. Layers are drawn in order: shadow, outline,
// fill. The outline is the glyphs stamped once per offset in
// OutlineOffsets(st.OutlineWidth); the shadow is the same stamps in
// ShadowColor moved by st.ShadowOffset, so its translucent layers
// compound.
//
// DrawText fails without touching the canvas when s is empty
// (ErrEmptyText), st is invalid (ErrInvalidStyle), or the text cannot be
// rasterized (*TextRenderError). A missing font family is not an error:
// the resolver falls back and the Resolution reports it.
func (c *Canvas) DrawText(s string, st Style) (text.Resolution, error) {
	if s == "" {
		return text.Resolution{}, ErrEmptyText
	}
	if err := st.Validate(); err != nil {
		return text.Resolution{}, err
	}
	s = norm.NFC.String(s)

	face, res := c.resolver.Resolve(st.request())
	glyphs, err := text.Rasterize(face, s)
	if err != nil {
		return res, &TextRenderError{Text: s, Err: err}
	}

	start := time.Now()
	pos := textPosition(glyphs.Rect.Dx(), glyphs.Rect.Dy(), st.Anchor)
	var shadow, outline *image.Alpha
	if st.Shadow {
		shadow = outlineMask(glyphs, st.OutlineWidth, ShadowColor.A)
	}
	if st.OutlineWidth > 0 {
		outline = outlineMask(glyphs, st.OutlineWidth, st.OutlineColor.A)
	}

	c.checkpoint()
	dst := c.pix.view()
	if shadow != nil {
		off := pos.Add(image.Pt(st.ShadowOffset, st.ShadowOffset))
		stamp(dst, shadow, off, ShadowColor.Opaque())
	}
	if outline != nil {
		stamp(dst, outline, pos, st.OutlineColor.Opaque())
	}
	stamp(dst, glyphs, pos, st.TextColor)

	Logger().Debug("thumb: text",
		"op", "text",
		"candidate", res.Candidate,
		"font", res.Font,
		"ink", glyphs.Rect.Size(),
		"at", pos,
		"outline", st.OutlineWidth,
		"elapsed", time.Since(start))
	return res, nil
}

// textPosition returns where the layout origin goes for an ink box of
// w×h: centered horizontally, and TextMargin from the top, centered, or
// TextMargin from the bottom.
func textPosition(w, h int, a Anchor) image.Point {
	x := floorDiv(Width-w, 2)
	var y int
	switch a {
	case AnchorTop:
		y = TextMargin
	case AnchorBottom:
		y = Height - h - TextMargin
	default:
		y = floorDiv(Height-h, 2)
	}
	return image.Pt(x, y)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// stamp composites col through mask, translated by off, with source-over.
func stamp(dst *image.RGBA, mask *image.Alpha, off image.Point, col Color) {
	r := mask.Rect.Add(off)
	draw.DrawMask(dst, r, image.NewUniform(col.NRGBA()), image.Point{}, mask, mask.Rect.Min, draw.Over)
}

// OutlineOffsets returns every (dx, dy) with |dx|, |dy| <= w and
// dx²+dy² <= w², in row-major order. The outline of width w is the union
// of the glyphs translated by each offset.
func OutlineOffsets(w int) []image.Point {
	if w < 0 {
		return nil
	}
	var pts []image.Point
	for dy := -w; dy <= w; dy++ {
		for dx := -w; dx <= w; dx++ {
			if dx*dx+dy*dy <= w*w {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}

// outlineMask returns the coverage left by stamping m once per offset in
// OutlineOffsets(w) with a color of the given alpha, each stamp composited
// over the previous ones. Stamping the result once with the opaque color
// gives the same pixels as the repeated stamps, up to rounding. The mask
// is m grown by w on every side.
//
// Fully covered source pixels all attenuate by the same factor, so for
// them only the number of hits per output pixel matters; those counts
// come from running sums over the disk rows. Partially covered pixels are
// applied one offset at a time.
func outlineMask(m *image.Alpha, w int, alpha uint8) *image.Alpha {
	w = max(w, 0)
	out := image.NewAlpha(m.Rect.Inset(-w))
	if alpha == 0 {
		return out
	}
	rw, rh := m.Rect.Dx(), m.Rect.Dy()
	ow := rw + 2*w

	// trans is what is left of the destination under every stamp.
	trans := make([]uint8, len(out.Pix))
	for i, n := range fullHits(m, w) {
		t := uint8(0xff)
		for ; n > 0 && t > 0; n-- {
			t = attenuate(t, 0xff, alpha)
		}
		trans[i] = t
	}

	type edgePixel struct {
		x, y int
		v    uint8
	}
	var edge []edgePixel
	for y := 0; y < rh; y++ {
		for x, v := range m.Pix[y*m.Stride : y*m.Stride+rw] {
			if v != 0 && v != 0xff {
				edge = append(edge, edgePixel{x + w, y + w, v})
			}
		}
	}
	if len(edge) > 0 {
		for _, o := range OutlineOffsets(w) {
			for _, p := range edge {
				i := (p.y+o.Y)*ow + p.x + o.X
				if trans[i] != 0 {
					trans[i] = attenuate(trans[i], p.v, alpha)
				}
			}
		}
	}

	for i, t := range trans {
		out.Pix[i] = 0xff - t
	}
	return out
}

// fullHits counts, for every pixel of m grown by w, the offsets in
// OutlineOffsets(w) that carry a fully covered pixel of m onto it.
// Row dy of the disk spans |dx| <= isqrt(w²-dy²).
func fullHits(m *image.Alpha, w int) []int32 {
	rw, rh := m.Rect.Dx(), m.Rect.Dy()
	ow := rw + 2*w
	hits := make([]int32, ow*(rh+2*w))

	half := make([]int, 2*w+1)
	for dy := -w; dy <= w; dy++ {
		half[dy+w] = isqrt(w*w - dy*dy)
	}

	// sum[i] is the number of full pixels left of grown column i.
	sum := make([]int32, ow+1)
	for sy := 0; sy < rh; sy++ {
		src := m.Pix[sy*m.Stride : sy*m.Stride+rw]
		ink := false
		for i := range ow {
			var v int32
			if sx := i - w; sx >= 0 && sx < rw && src[sx] == 0xff {
				v, ink = 1, true
			}
			sum[i+1] = sum[i] + v
		}
		if !ink {
			continue
		}
		for dy := -w; dy <= w; dy++ {
			h := half[dy+w]
			oy := sy + w + dy
			row := hits[oy*ow : (oy+1)*ow]
			for x := range row {
				row[x] += sum[min(x+h+1, ow)] - sum[max(x-h, 0)]
			}
		}
	}
	return hits
}

// attenuate applies one draw.Over step of a black source with the given
// alpha, through mask coverage v, to the destination channel t. It is the
// arithmetic image/draw uses for an *image.Alpha mask.
func attenuate(t, v, alpha uint8) uint8 {
	const m = 0xffff
	ma := uint32(v) * 0x101
	sa := uint32(alpha) * 0x101
	a := (m - sa*ma/m) * 0x101
	return uint8(uint32(t) * a / m >> 8)
}

// isqrt returns the largest r with r*r <= n.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
