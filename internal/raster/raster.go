// Package raster builds anti-aliased coverage masks for filled and
// stroked polygons.
//
// Masks are *image.Alpha values positioned in destination coordinates and
// cropped to the shape's bounding box, so compositing a small shape onto
// a large canvas only touches the pixels it covers.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Point is a position in destination pixel coordinates.
// Pixel (x, y) covers the square [x, x+1) × [y, y+1).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Fill returns the coverage of the union of closed contours, clipped to
// clip. Contours with opposite winding cancel, which is how rings are
// built. Contours with fewer than three points are ignored.
// Fill returns nil when nothing is covered.
func Fill(clip image.Rectangle, contours ...[]Point) *image.Alpha {
	r := boundsOf(contours).Intersect(clip)
	if r.Empty() {
		return nil
	}
	m := image.NewAlpha(r)
	rasterize(m, contours)
	return m
}

// rasterize accumulates the coverage of contours into m with source-over,
// so repeated calls produce a union.
func rasterize(m *image.Alpha, contours [][]Point) {
	r := m.Rect
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)

	drawn := false
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		z.MoveTo(float32(c[0].X-ox), float32(c[0].Y-oy))
		for _, p := range c[1:] {
			z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(m, r, image.Opaque, image.Point{})
	}
}

// boundsOf returns the smallest integer rectangle containing all points.
func boundsOf(contours [][]Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// Reverse returns the contour with its winding reversed.
func Reverse(c []Point) []Point {
	out := make([]Point, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}
