package thumb

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as 8-bit RGBA, 4 bytes per pixel, row-major.
// A Pixmap owned by a Canvas is always fully opaque, so the premultiplied
// and straight representations coincide.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel, ignoring out-of-bounds
// coordinates.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for y := 0; y < p.height; y++ {
		p.FillRow(y, c)
	}
}

// FillRow fills row y with a single color.
func (p *Pixmap) FillRow(y int, c Color) {
	if y < 0 || y >= p.height || p.width == 0 {
		return
	}
	stride := p.width * 4
	row := p.data[y*stride : (y+1)*stride]
	row[0], row[1], row[2], row[3] = c.R, c.G, c.B, c.A
	// Double the filled prefix until the row is complete.
	for n := 4; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(q.data, p.data)
	return q
}

// Equal reports whether p and q have the same size and identical pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.width == q.width && p.height == q.height && bytes.Equal(p.data, q.data)
}

// ToImage converts the pixmap to an image.RGBA.
// The returned image does not share memory with the pixmap.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// view returns an image.RGBA sharing memory with the pixmap, for use as a
// draw destination.
func (p *Pixmap) view() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image.
// Translucent pixels are composited over white so the result is opaque.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	dst := pm.view()
	draw.Draw(dst, dst.Rect, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Over)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
