package raster

import (
	"image"
	"image/draw"
	"math"
)

// Stroke returns the coverage of a polyline of the given width centered
// on its segments, with round joins. When closed is true the last point
// is joined back to the first. Stroke returns nil when nothing is covered.
//
// Each segment and join is rasterized separately and unioned, so the
// overlap at joins is not counted twice.
func Stroke(clip image.Rectangle, pts []Point, closed bool, width float64) *image.Alpha {
	if len(pts) == 0 || width <= 0 {
		return nil
	}
	half := width / 2

	pieces := make([][]Point, 0, 2*len(pts))
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		if q := segment(pts[i], pts[(i+1)%len(pts)], half); q != nil {
			pieces = append(pieces, q)
		}
	}
	for _, p := range pts {
		pieces = append(pieces, Disk(p, half))
	}

	r := boundsOf(pieces).Intersect(clip)
	if r.Empty() {
		return nil
	}
	m := image.NewAlpha(r)
	for _, piece := range pieces {
		pm := Fill(r, piece)
		if pm == nil {
			continue
		}
		draw.Draw(m, pm.Rect, pm, pm.Rect.Min, draw.Over)
	}
	return m
}

// segment returns the quad covering the segment a-b widened by half on
// each side, or nil for a degenerate segment.
func segment(a, b Point, half float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*half, dx/l*half
	return []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// InnerStroke returns the coverage of a band of the given width running
// along the inside of the closed polygon pts. It is the centered stroke of
// twice the width intersected with the polygon's own coverage.
func InnerStroke(clip image.Rectangle, pts []Point, width float64) *image.Alpha {
	band := Stroke(clip, pts, true, 2*width)
	if band == nil {
		return nil
	}
	inside := Fill(clip, pts)
	if inside == nil {
		return nil
	}

	r := band.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := band.PixOffset(x, y)
			a := band.Pix[i]
			if a == 0 {
				continue
			}
			var b uint8
			if (image.Point{x, y}).In(inside.Rect) {
				b = inside.Pix[inside.PixOffset(x, y)]
			}
			band.Pix[i] = uint8((uint32(a)*uint32(b) + 127) / 255)
		}
	}
	return band
}
