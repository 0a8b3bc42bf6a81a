package thumb

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an export file format.
type Format int

// Export formats.
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	FormatPDF
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 95

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatGIF:  "gif",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatPDF:  "pdf",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

var formatByExt = map[string]Format{
	"":      FormatPNG,
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".pdf":  FormatPDF,
}

// FormatFromPath picks the export format from the file extension.
// A path without an extension is PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatByExt[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// ParseFormat parses a format name such as "png" or "jpg".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnsupportedFormat)
	}
	return FormatFromPath("x." + s)
}

// ExportOption configures Save.
type ExportOption func(*exportOptions)

type exportOptions struct {
	quality int
	format  Format
	hasFmt  bool
}

// WithQuality sets the JPEG quality, 0 to 100. Other formats ignore it.
func WithQuality(q int) ExportOption {
	return func(o *exportOptions) {
		o.quality = q
	}
}

// WithFormat forces the format instead of deriving it from the path.
func WithFormat(f Format) ExportOption {
	return func(o *exportOptions) {
		o.format = f
		o.hasFmt = true
	}
}

// Save writes the canvas to path. The file is written to a temporary
// sibling and renamed into place, so a failed export leaves no file.
// Save never modifies the canvas. Errors are *ExportError.
func (c *Canvas) Save(path string, opts ...ExportOption) error {
	o := exportOptions{quality: DefaultQuality}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasFmt {
		f, err := FormatFromPath(path)
		if err != nil {
			return &ExportError{Path: path, Err: err}
		}
		o.format = f
	}

	if err := c.save(path, o); err != nil {
		Logger().Warn("thumb: export failed", "path", path, "err", err)
		return &ExportError{Path: path, Err: err}
	}
	Logger().Debug("thumb: export", "op", "save", "path", path, "format", o.format)
	return nil
}

func (c *Canvas) save(path string, o exportOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(name)
		}
	}()

	if err := c.Encode(tmp, o.format, o.quality); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(name, path); err != nil {
		return err
	}
	ok = true
	return nil
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, format Format, quality int) error {
	if quality < 0 || quality > 100 {
		return fmt.Errorf("%w: quality %d outside 0..100", ErrInvalidStyle, quality)
	}
	img := clone.AsRGBA(c.pix)

	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// encodePDF writes a single page the size of img, in points, holding img
// as a lossless PNG.
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, opts, 0, "")
	return pdf.Output(w)
}
