package thumb

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/gogpu/thumb/text"
)

func plainStyle() Style {
	st := DefaultStyle()
	st.FontFamily = "Go"
	st.FontSize = 100
	st.TextColor = Black
	st.OutlineWidth = 0
	st.Shadow = false
	return st
}

func TestDrawTextBlackOnWhite(t *testing.T) {
	c := newTestCanvas(t)

	res, err := c.DrawText("TEST", plainStyle())
	if err != nil {
		t.Fatal(err)
	}
	if res.Candidate != text.CandidateEmbedded || res.Substituted() {
		t.Errorf("resolution = %+v, want embedded Go", res)
	}

	assertGrayInk(t, c.Snapshot())

	path := filepath.Join(t.TempDir(), "test.png")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	assertGrayInk(t, decodeFile(t, path))
}

// assertGrayInk checks that img holds opaque gray pixels only, with some
// glyph ink on it.
func assertGrayInk(t *testing.T, img image.Image) {
	t.Helper()
	b := img.Bounds()
	if b != image.Rect(0, 0, Width, Height) {
		t.Fatalf("bounds = %v", b)
	}
	dark := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if p.R != p.G || p.G != p.B || p.A != 255 {
				t.Fatalf("colored artifact at (%d,%d): %v", x, y, p)
			}
			if p.R < 64 {
				dark++
			}
		}
	}
	if dark < 500 {
		t.Errorf("only %d dark pixels, want glyph ink", dark)
	}
}

func TestDrawTextPlacement(t *testing.T) {
	for _, a := range []Anchor{AnchorCenter, AnchorTop, AnchorBottom} {
		t.Run(a.String(), func(t *testing.T) {
			c := newTestCanvas(t)
			st := plainStyle()
			st.Anchor = a
			if _, err := c.DrawText("Hig", st); err != nil {
				t.Fatal(err)
			}

			face, _ := c.Resolver().Resolve(st.request())
			mask, err := text.Rasterize(face, "Hig")
			if err != nil {
				t.Fatal(err)
			}
			want := mask.Rect.Add(textPosition(mask.Rect.Dx(), mask.Rect.Dy(), a))

			got := inkBox(c, White)
			if !got.In(want) {
				t.Fatalf("ink %v outside expected box %v", got, want)
			}
			if got.Min.X-want.Min.X > 2 || want.Max.X-got.Max.X > 2 ||
				got.Min.Y-want.Min.Y > 2 || want.Max.Y-got.Max.Y > 2 {
				t.Errorf("ink %v does not fill expected box %v", got, want)
			}
		})
	}
}

func TestTextPosition(t *testing.T) {
	tests := []struct {
		w, h   int
		anchor Anchor
		want   image.Point
	}{
		{200, 100, AnchorCenter, image.Pt(540, 310)},
		{201, 101, AnchorCenter, image.Pt(539, 309)},
		{200, 100, AnchorTop, image.Pt(540, TextMargin)},
		{200, 100, AnchorBottom, image.Pt(540, 720-100-TextMargin)},
		{1500, 100, AnchorCenter, image.Pt(-110, 310)},
	}
	for _, tt := range tests {
		if got := textPosition(tt.w, tt.h, tt.anchor); got != tt.want {
			t.Errorf("textPosition(%d,%d,%v) = %v, want %v", tt.w, tt.h, tt.anchor, got, tt.want)
		}
	}
}

func TestDrawTextOutlineAndShadow(t *testing.T) {
	c := newTestCanvas(t)
	c.Fill(Red)
	st := DefaultStyle()
	st.FontFamily = "Go"
	st.TextColor = White
	st.OutlineColor = Blue
	st.OutlineWidth = 6
	st.Shadow = true
	st.ShadowOffset = 12

	if _, err := c.DrawText("O", st); err != nil {
		t.Fatal(err)
	}

	var white, blue, shadow int
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			switch p := c.Pixel(x, y); {
			case p == White:
				white++
			case p == Blue:
				blue++
			case p.R < 0x10 && p.G == 0 && p.B == 0:
				// Compounded translucent black over red.
				shadow++
			}
		}
	}
	if white == 0 || blue == 0 || shadow == 0 {
		t.Errorf("white=%d blue=%d shadow=%d, want all layers visible", white, blue, shadow)
	}
}

func TestDrawTextMultiline(t *testing.T) {
	one, two := newTestCanvas(t), newTestCanvas(t)
	if _, err := one.DrawText("AB", plainStyle()); err != nil {
		t.Fatal(err)
	}
	if _, err := two.DrawText("AB\nAB", plainStyle()); err != nil {
		t.Fatal(err)
	}
	h1, h2 := inkBox(one, White).Dy(), inkBox(two, White).Dy()
	if h2 < 2*h1 {
		t.Errorf("two lines are %dpx tall, one line %dpx", h2, h1)
	}
}

func TestDrawTextFallbackFamily(t *testing.T) {
	c := newTestCanvas(t)
	st := plainStyle()
	st.FontFamily = "No Such Family"
	res, err := c.DrawText("ok", st)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Substituted() {
		t.Errorf("resolution %+v not reported as substituted", res)
	}
}

func TestDrawTextErrors(t *testing.T) {
	bad := plainStyle()
	bad.FontSize = 10

	tests := []struct {
		name string
		s    string
		st   Style
		want error
	}{
		{"empty", "", plainStyle(), ErrEmptyText},
		{"invalid style", "x", bad, ErrInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t)
			_, err := c.DrawText(tt.s, tt.st)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			assertUniform(t, c, White)
			if c.HistoryLen() != 0 {
				t.Error("failed DrawText recorded history")
			}
		})
	}
}

func TestOutlineOffsets(t *testing.T) {
	if got := OutlineOffsets(0); len(got) != 1 || got[0] != (image.Point{}) {
		t.Errorf("OutlineOffsets(0) = %v", got)
	}
	for _, w := range []int{1, 2, 5, 8, 20} {
		offs := OutlineOffsets(w)
		set := make(map[image.Point]bool, len(offs))
		for _, p := range offs {
			if p.X*p.X+p.Y*p.Y > w*w {
				t.Errorf("w=%d: %v outside the disk", w, p)
			}
			set[p] = true
		}
		for _, p := range []image.Point{{w, 0}, {-w, 0}, {0, w}, {0, -w}} {
			if !set[p] {
				t.Errorf("w=%d: %v missing", w, p)
			}
		}
		if set[image.Pt(w, w)] {
			t.Errorf("w=%d: corner (w,w) included", w)
		}
	}
}

func TestOutlineMaskMatchesStamps(t *testing.T) {
	m := image.NewAlpha(image.Rect(-3, 5, 27, 25))
	seed := uint32(7)
	for i := range m.Pix {
		seed = seed*1664525 + 1013904223
		if seed>>28 == 0 {
			m.Pix[i] = uint8(seed >> 20)
		}
	}
	for y := 10; y < 16; y++ {
		for x := 4; x < 12; x++ {
			m.Pix[m.PixOffset(x, y)] = 0xff
		}
	}

	for _, alpha := range []uint8{0xff, ShadowColor.A} {
		for _, w := range []int{0, 1, 3, 8} {
			r := m.Rect.Inset(-w)
			want := image.NewRGBA(r)
			draw.Draw(want, r, image.White, image.Point{}, draw.Src)
			for _, o := range OutlineOffsets(w) {
				stamp(want, m, o, Color{A: alpha})
			}

			mask := outlineMask(m, w, alpha)
			if mask.Rect != r {
				t.Fatalf("alpha=%#x w=%d: rect = %v, want %v", alpha, w, mask.Rect, r)
			}
			got := image.NewRGBA(r)
			draw.Draw(got, r, image.White, image.Point{}, draw.Src)
			stamp(got, mask, image.Point{}, Black)

			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					gr, wr := int(got.RGBAAt(x, y).R), int(want.RGBAAt(x, y).R)
					if d := gr - wr; d < -2 || d > 2 {
						t.Fatalf("alpha=%#x w=%d: (%d,%d) = %d, repeated stamps give %d", alpha, w, x, y, gr, wr)
					}
				}
			}
		}
	}
}

func TestShadowCompounds(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 10, 10))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	mask := outlineMask(m, 4, ShadowColor.A)
	if got := mask.AlphaAt(5, 5).A; got < 0xf0 {
		t.Errorf("shadow interior coverage = %#x, want near opaque", got)
	}
	if got := mask.AlphaAt(-4, -4).A; got != 0 {
		t.Errorf("coverage outside the disk = %#x, want 0", got)
	}
	if got := outlineMask(m, 4, 0).AlphaAt(5, 5).A; got != 0 {
		t.Errorf("transparent outline coverage = %#x, want 0", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3}, {-7, 2, -4}, {-6, 2, -3}, {0, 2, 0}, {-1, 2, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// inkBox returns the bounding box of pixels that differ from bg.
func inkBox(c *Canvas, bg Color) image.Rectangle {
	var box image.Rectangle
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.Pixel(x, y) != bg {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}
