package filter

import "image"

// ColorMatrix applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Color values are in [0, 255] range during transformation,
// then clamped back to valid range.
//
// The matrix is applied to stored values directly. Canvas pixels are
// opaque, where premultiplied and straight alpha coincide.
type ColorMatrix struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

// NewBrightness creates a matrix that scales the color channels.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func NewBrightness(factor float32) *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			factor, 0, 0, 0, 0,
			0, factor, 0, 0, 0,
			0, 0, factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply transforms every pixel of src and writes it to dst.
// src and dst must have the same dimensions; they may be the same image.
func (f *ColorMatrix) Apply(src, dst *image.RGBA) {
	if src == nil || dst == nil {
		return
	}

	m := &f.Matrix
	width := src.Rect.Dx()
	height := src.Rect.Dy()

	for y := 0; y < height; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+width*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for i := 0; i < len(s); i += 4 {
			r := float32(s[i+0])
			g := float32(s[i+1])
			b := float32(s[i+2])
			a := float32(s[i+3])

			d[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
			d[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
			d[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
			d[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
		}
	}
}
