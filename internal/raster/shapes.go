package raster

import "math"

// ellipseSegments is the number of line segments used to flatten a full
// ellipse. At the radii used for thumbnails the chord error stays well
// below a tenth of a pixel.
const ellipseSegments = 128

// Rect returns the clockwise contour of the axis-aligned rectangle
// [x0, x1) × [y0, y1).
func Rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Ellipse returns a clockwise contour approximating the ellipse inscribed
// in [x0, x1) × [y0, y1).
func Ellipse(x0, y0, x1, y1 float64) []Point {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if rx <= 0 || ry <= 0 {
		return nil
	}
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / ellipseSegments
		pts[i] = Point{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

// Disk returns a contour approximating a circle of radius r around c.
func Disk(c Point, r float64) []Point {
	return Ellipse(c.X-r, c.Y-r, c.X+r, c.Y+r)
}

// RectRing returns the contours of a rectangular frame of the given width
// drawn inside [x0, x1) × [y0, y1). When the frame is wider than half the
// rectangle the whole rectangle is returned.
func RectRing(x0, y0, x1, y1, width float64) [][]Point {
	outer := Rect(x0, y0, x1, y1)
	if width*2 >= x1-x0 || width*2 >= y1-y0 {
		return [][]Point{outer}
	}
	inner := Rect(x0+width, y0+width, x1-width, y1-width)
	return [][]Point{outer, Reverse(inner)}
}

// EllipseRing returns the contours of an elliptical band of the given
// width drawn inside the ellipse inscribed in [x0, x1) × [y0, y1).
func EllipseRing(x0, y0, x1, y1, width float64) [][]Point {
	outer := Ellipse(x0, y0, x1, y1)
	if width*2 >= x1-x0 || width*2 >= y1-y0 {
		return [][]Point{outer}
	}
	inner := Ellipse(x0+width, y0+width, x1-width, y1-width)
	return [][]Point{outer, Reverse(inner)}
}
