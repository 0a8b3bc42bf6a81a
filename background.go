package thumb

import (
	"fmt"
	"time"

	"github.com/gogpu/thumb/internal/filter"
)

// BlurRadius is the Gaussian blur radius used by Blur.
const BlurRadius = 10

// Brightness factor range accepted by SetBrightness.
const (
	MinBrightness = 0.5
	MaxBrightness = 2.0
)

// Fill replaces every pixel with c. The alpha of c is ignored.
func (c *Canvas) Fill(col Color) {
	c.checkpoint()
	c.pix.Clear(col.Opaque())
	Logger().Debug("thumb: background", "op", "fill", "color", col.Opaque())
}

// Clear resets the canvas to white.
func (c *Canvas) Clear() {
	c.checkpoint()
	c.pix.Clear(White)
	Logger().Debug("thumb: background", "op", "clear")
}

// Gradient replaces the canvas with a vertical gradient from top to
// bottom. Row y gets from + (to-from)*y/Height per channel, truncated, so
// every pixel of a row is identical and the last row stops one step short
// of to. Alpha is ignored.
func (c *Canvas) Gradient(from, to Color) {
	c.checkpoint()
	c.gradientRows(0, Height, from, to)
	Logger().Debug("thumb: background", "op", "gradient", "from", from.Opaque(), "to", to.Opaque())
}

// gradientRows fills rows [y0, y1) with the gradient formula.
func (c *Canvas) gradientRows(y0, y1 int, from, to Color) {
	for y := y0; y < y1; y++ {
		t := float64(y) / Height
		c.pix.FillRow(y, RGB(
			lerp8(from.R, to.R, t),
			lerp8(from.G, to.G, t),
			lerp8(from.B, to.B, t),
		))
	}
}

// Blur applies a Gaussian blur of radius BlurRadius to the whole canvas.
// Pixels beyond the edges are treated as copies of the edge pixels.
func (c *Canvas) Blur() {
	start := time.Now()

	src := c.pix.view()
	dst := NewPixmap(Width, Height)
	filter.NewBlur(BlurRadius).Apply(src, dst.view())
	c.replace(dst)

	Logger().Debug("thumb: background", "op", "blur", "radius", BlurRadius, "elapsed", time.Since(start))
}

// BeginBrightness starts a brightness session: the current pixels become
// the reference that SetBrightness scales. The whole session is a single
// Undo step.
func (c *Canvas) BeginBrightness() {
	c.checkpoint()
	c.brightnessRef = c.pix.Clone()
	Logger().Debug("thumb: background", "op", "brightness-begin")
}

// SetBrightness replaces the canvas with the session reference scaled by
// factor per channel, clamped to [0, 255]. Repeated calls never compound.
// Without an open session it does nothing. factor must be within
// [MinBrightness, MaxBrightness].
func (c *Canvas) SetBrightness(factor float64) error {
	if factor < MinBrightness || factor > MaxBrightness {
		return fmt.Errorf("%w: brightness %g not in [%g, %g]", ErrInvalidStyle, factor, MinBrightness, MaxBrightness)
	}
	if c.brightnessRef == nil {
		Logger().Debug("thumb: brightness without session ignored", "factor", factor)
		return nil
	}
	filter.NewBrightness(float32(factor)).Apply(c.brightnessRef.view(), c.pix.view())
	Logger().Debug("thumb: background", "op", "brightness", "factor", factor)
	return nil
}

// EndBrightness closes the brightness session, keeping the current pixels.
// Any other mutating operation also ends the session.
func (c *Canvas) EndBrightness() {
	c.brightnessRef = nil
}

// InBrightness reports whether a brightness session is open.
func (c *Canvas) InBrightness() bool {
	return c.brightnessRef != nil
}
