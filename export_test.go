package thumb

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.png", FormatPNG, true},
		{"out", FormatPNG, true},
		{"OUT.JPG", FormatJPEG, true},
		{"a/b.jpeg", FormatJPEG, true},
		{"x.gif", FormatGIF, true},
		{"x.bmp", FormatBMP, true},
		{"x.tif", FormatTIFF, true},
		{"x.tiff", FormatTIFF, true},
		{"x.pdf", FormatPDF, true},
		{"x.webp", 0, false},
		{"x.psd", 0, false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) err = %v, want ErrUnsupportedFormat", tt.path, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, ".JPG": FormatJPEG, "tiff": FormatTIFF, "pdf": FormatPDF} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat(""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(\"\") err = %v", err)
	}
}

func exportCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := newTestCanvas(t)
	c.Fill(RGB(200, 30, 60))
	c.DrawRectangle(Rect{X0: 0, Y0: 0, X1: 99, Y1: 99, Fill: RGB(10, 220, 40)})
	return c
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestSaveLossless(t *testing.T) {
	dir := t.TempDir()
	c := exportCanvas(t)
	want := c.Snapshot()

	for _, name := range []string{"out.png", "out", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := c.Save(path); err != nil {
				t.Fatal(err)
			}
			img := decodeFile(t, path)
			if img.Bounds() != c.Bounds() {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			if got := FromImage(img); !got.Equal(want) {
				t.Error("decoded pixels differ from canvas")
			}
		})
	}
	if !c.Snapshot().Equal(want) || c.HistoryLen() != 2 {
		t.Error("Save modified the canvas")
	}
}

func TestSaveJPEGQuality(t *testing.T) {
	dir := t.TempDir()
	c := exportCanvas(t)

	low, high := filepath.Join(dir, "low.jpg"), filepath.Join(dir, "high.jpg")
	if err := c.Save(low, WithQuality(10)); err != nil {
		t.Fatal(err)
	}
	if err := c.Save(high); err != nil {
		t.Fatal(err)
	}
	ls, _ := os.Stat(low)
	hs, _ := os.Stat(high)
	if ls.Size() >= hs.Size() {
		t.Errorf("quality 10 is %d bytes, default is %d", ls.Size(), hs.Size())
	}

	got := decodeFile(t, high).At(640, 360)
	r, g, b, _ := got.RGBA()
	if !near(uint8(r>>8), 200, 4) || !near(uint8(g>>8), 30, 4) || !near(uint8(b>>8), 60, 4) {
		t.Errorf("JPEG center = %v, want about #C81E3C", got)
	}
}

func TestSaveGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	c := exportCanvas(t)
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	if img := decodeFile(t, path); img.Bounds() != c.Bounds() {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := exportCanvas(t).Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data, []byte("/MediaBox [0 0 1280")) {
		t.Error("page is not 1280x720 points")
	}
}

func TestSaveWithFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumbnail.dat")
	if err := exportCanvas(t).Save(path, WithFormat(FormatPNG)); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("WithFormat(FormatPNG) did not write PNG")
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory cannot be replaced by a file.
	occupied := filepath.Join(dir, "taken.png")
	if err := os.MkdirAll(filepath.Join(occupied, "child"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		opts   []ExportOption
		target error
	}{
		{"unknown extension", filepath.Join(dir, "out.xyz"), nil, ErrUnsupportedFormat},
		{"bad quality", filepath.Join(dir, "q.jpg"), []ExportOption{WithQuality(101)}, ErrInvalidStyle},
		{"missing dir", filepath.Join(dir, "nope", "out.png"), nil, os.ErrNotExist},
		{"rename fails", occupied, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exportCanvas(t).Save(tt.path, tt.opts...)
			var ee *ExportError
			if !errors.As(err, &ee) || ee.Path != tt.path {
				t.Fatalf("err = %v, want *ExportError for %s", err, tt.path)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}

	// Nothing but the pre-existing directory is left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "taken.png" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("leftover files: %v", names)
	}
}

func TestEncode(t *testing.T) {
	c := exportCanvas(t)
	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatPNG, DefaultQuality); err != nil {
		t.Fatal(err)
	}
	img, _, err := image.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !FromImage(img).Equal(c.Snapshot()) {
		t.Error("Encode PNG is not lossless")
	}
	if err := c.Encode(&buf, Format(42), DefaultQuality); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format err = %v", err)
	}
}
