package thumb

import (
	"image"
	"math"

	"github.com/gogpu/thumb/internal/raster"
)

// Point is a position in canvas pixel coordinates. Integer coordinates
// name pixels; the pixel (x, y) is centered on (x+0.5, y+0.5).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Circle is a filled circle with an outline drawn inside its edge.
type Circle struct {
	// X, Y is the top-left pixel of the bounding box, which spans
	// 2*Radius+1 pixels.
	X, Y         float64
	Radius       float64
	Fill         Color
	Outline      Color
	OutlineWidth float64
}

// DefaultCircle returns the stock sticker: a half-transparent red circle
// of radius 80 at (100, 100) with a 5px white outline.
func DefaultCircle() Circle {
	return Circle{
		X: 100, Y: 100, Radius: 80,
		Fill:         Color{R: 0xFF, A: 0x80},
		Outline:      White,
		OutlineWidth: 5,
	}
}

// Rect is a filled rectangle with an outline drawn inside its edge.
// Both corners are inclusive pixel coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
	Fill           Color
	Outline        Color
	OutlineWidth   float64
}

// DefaultRect returns the stock banner: a half-transparent blue
// rectangle from (50, 50) to (300, 150) with a 5px white outline.
func DefaultRect() Rect {
	return Rect{
		X0: 50, Y0: 50, X1: 300, Y1: 150,
		Fill:         Color{B: 0xFF, A: 0x80},
		Outline:      White,
		OutlineWidth: 5,
	}
}

// Arrow is a filled polygon with an outline drawn inside its edge.
type Arrow struct {
	Points       []Point
	Fill         Color
	Outline      Color
	OutlineWidth float64
}

// DefaultArrow returns the stock right-pointing arrow: yellow with a 3px
// black outline.
func DefaultArrow() Arrow {
	return Arrow{
		Points: []Point{
			{100, 300}, {200, 250}, {200, 280}, {350, 280},
			{350, 320}, {200, 320}, {200, 350},
		},
		Fill:         Yellow,
		Outline:      Black,
		OutlineWidth: 3,
	}
}

// Starburst is a star polygon alternating between an outer and an inner
// radius.
type Starburst struct {
	Center       Point
	Outer, Inner float64
	// Vertices is the total vertex count; half are spikes.
	Vertices     int
	Fill         Color
	Outline      Color
	OutlineWidth float64
}

// DefaultStarburst returns the stock 16-vertex yellow starburst at
// (200, 200) with radii 100 and 50 and a 4px red outline.
func DefaultStarburst() Starburst {
	return Starburst{
		Center:       Point{200, 200},
		Outer:        100,
		Inner:        50,
		Vertices:     16,
		Fill:         Yellow,
		Outline:      Red,
		OutlineWidth: 4,
	}
}

// Points returns the polygon vertices. Vertex i sits at angle
// i·2π/n − π/2 (the first points straight up) on the outer radius when i
// is even and the inner radius when i is odd. Fewer than 3 vertices
// yield no polygon.
func (s Starburst) Points() []Point {
	n := s.Vertices
	if n < 3 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		r := s.Outer
		if i%2 == 1 {
			r = s.Inner
		}
		pts[i] = Point{s.Center.X + r*math.Cos(angle), s.Center.Y + r*math.Sin(angle)}
	}
	return pts
}

// DrawCircle composites a circle onto the canvas.
func (c *Canvas) DrawCircle(s Circle) {
	x0, y0 := s.X, s.Y
	x1, y1 := s.X+2*s.Radius+1, s.Y+2*s.Radius+1

	c.drawShape("circle",
		raster.Fill(c.Bounds(), raster.Ellipse(x0, y0, x1, y1)), s.Fill,
		raster.Fill(c.Bounds(), raster.EllipseRing(x0, y0, x1, y1, s.OutlineWidth)...), s.Outline,
		s.OutlineWidth)
}

// DrawRectangle composites a rectangle onto the canvas.
func (c *Canvas) DrawRectangle(s Rect) {
	x0, y0 := math.Min(s.X0, s.X1), math.Min(s.Y0, s.Y1)
	x1, y1 := math.Max(s.X0, s.X1)+1, math.Max(s.Y0, s.Y1)+1

	c.drawShape("rectangle",
		raster.Fill(c.Bounds(), raster.Rect(x0, y0, x1, y1)), s.Fill,
		raster.Fill(c.Bounds(), raster.RectRing(x0, y0, x1, y1, s.OutlineWidth)...), s.Outline,
		s.OutlineWidth)
}

// DrawArrow composites an arrow polygon onto the canvas.
func (c *Canvas) DrawArrow(s Arrow) {
	c.drawPolygon("arrow", s.Points, s.Fill, s.Outline, s.OutlineWidth)
}

// DrawStarburst composites a starburst onto the canvas.
func (c *Canvas) DrawStarburst(s Starburst) {
	c.drawPolygon("starburst", s.Points(), s.Fill, s.Outline, s.OutlineWidth)
}

func (c *Canvas) drawPolygon(op string, pts []Point, fill, outline Color, width float64) {
	contour := make([]raster.Point, len(pts))
	for i, p := range pts {
		contour[i] = raster.Pt(p.X+0.5, p.Y+0.5)
	}
	c.drawShape(op,
		raster.Fill(c.Bounds(), contour), fill,
		raster.InnerStroke(c.Bounds(), contour, width), outline,
		width)
}

// drawShape composites the fill mask and then the outline mask. Nil masks
// are skipped; a shape entirely off the canvas still records an undo
// step so that Undo always pairs with the call.
func (c *Canvas) drawShape(op string, fillMask *image.Alpha, fill Color, outlineMask *image.Alpha, outline Color, width float64) {
	c.checkpoint()
	dst := c.pix.view()
	if fillMask != nil && fill.A != 0 {
		stamp(dst, fillMask, image.Point{}, fill)
	}
	if outlineMask != nil && width > 0 && outline.A != 0 {
		stamp(dst, outlineMask, image.Point{}, outline)
	}
	Logger().Debug("thumb: shape", "op", op)
}
