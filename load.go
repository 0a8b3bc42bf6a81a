package thumb

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"time"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// loadableTypes are the sniffed file extensions LoadBackground decodes.
var loadableTypes = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

// LoadBackground replaces the canvas with the image at path, stretched to
// exactly Width×Height with a Lanczos filter. Transparent areas are
// composited over white.
//
// On failure it returns a *LoadError and the canvas is unchanged.
func (c *Canvas) LoadBackground(path string) error {
	start := time.Now()

	pm, err := loadImage(path)
	if err != nil {
		Logger().Warn("thumb: load failed", "path", path, "err", err)
		return &LoadError{Path: path, Err: err}
	}
	c.replace(pm)

	Logger().Debug("thumb: background", "op", "load", "path", path, "elapsed", time.Since(start))
	return nil
}

// loadImage reads, sniffs, decodes and resamples an image file.
func loadImage(path string) (*Pixmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, err
	}
	if !loadableTypes[kind.Extension] {
		if kind == filetype.Unknown {
			return nil, fmt.Errorf("%w: unrecognized data", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}

	return Resample(img), nil
}

// Resample stretches img to exactly Width×Height with a Lanczos filter,
// ignoring its aspect ratio, and flattens it onto white.
func Resample(img image.Image) *Pixmap {
	b := img.Bounds()
	if b.Dx() == Width && b.Dy() == Height {
		return FromImage(img)
	}
	return FromImage(transform.Resize(img, Width, Height, transform.Lanczos))
}
