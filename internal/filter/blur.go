package filter

import (
	"image"
	"sync"
)

// Blur applies a separable Gaussian blur to an image.
// Pixels beyond the image edge are treated as copies of the nearest edge
// pixel, so a uniform image stays uniform.
type Blur struct {
	// Radius is the blur radius in pixels, used as the Gaussian sigma.
	Radius float64
}

// NewBlur creates a blur filter with the given radius.
func NewBlur(radius float64) *Blur {
	return &Blur{Radius: radius}
}

// Apply blurs src and writes the result to dst.
// dst must have the same dimensions as src and must not alias it.
// The two passes are:
//  1. Horizontal pass: convolve each row with the 1D kernel
//  2. Vertical pass: convolve each column with the 1D kernel
func (f *Blur) Apply(src, dst *image.RGBA) {
	if src == nil || dst == nil {
		return
	}
	width := src.Rect.Dx()
	height := src.Rect.Dy()
	if width == 0 || height == 0 {
		return
	}

	if f.Radius <= 0 {
		copyRGBA(src, dst)
		return
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(f.Radius)
	blurHorizontal(src, temp, width, height, kernel)
	blurVertical(temp, dst, width, height, kernel)
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes to temp buffer.
func blurHorizontal(src *image.RGBA, temp []float32, width, height int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := 0; k < kernelSize; k++ {
				kx := x + k - halfKernel
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}

				i := kx * 4
				w := kernel[k]
				r += float32(row[i+0]) * w
				g += float32(row[i+1]) * w
				b += float32(row[i+2]) * w
				a += float32(row[i+3]) * w
			}

			t := (y*width + x) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp buffer, writes to dst.
func blurVertical(temp []float32, dst *image.RGBA, width, height int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := 0; k < kernelSize; k++ {
				ky := y + k - halfKernel
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}

				t := (ky*width + x) * 4
				w := kernel[k]
				r += temp[t+0] * w
				g += temp[t+1] * w
				b += temp[t+2] * w
				a += temp[t+3] * w
			}

			i := x * 4
			row[i+0] = clampUint8(r)
			row[i+1] = clampUint8(g)
			row[i+2] = clampUint8(b)
			row[i+3] = clampUint8(a)
		}
	}
}

// copyRGBA copies the pixels of src into dst row by row.
func copyRGBA(src, dst *image.RGBA) {
	n := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], src.Pix[y*src.Stride:y*src.Stride+n])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 1280*720*4)}
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer is guaranteed to have exactly width*height*4 elements.
// Every element is overwritten by the horizontal pass, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
