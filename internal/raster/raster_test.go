package raster

import (
	"image"
	"testing"
)

var canvas = image.Rect(0, 0, 1280, 720)

func TestFillRectCoverage(t *testing.T) {
	m := Fill(canvas, Rect(50, 50, 301, 151))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	if want := image.Rect(50, 50, 301, 151); m.Rect != want {
		t.Errorf("mask bounds = %v, want %v", m.Rect, want)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{50, 50, 0xff},
		{300, 150, 0xff},
		{175, 100, 0xff},
	}
	for _, tt := range tests {
		if got := m.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("coverage at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if got := m.AlphaAt(49, 100).A; got != 0 {
		t.Errorf("coverage outside = %d, want 0", got)
	}
}

func TestFillClipped(t *testing.T) {
	m := Fill(image.Rect(0, 0, 10, 10), Rect(-5, -5, 5, 5))
	if m == nil || m.Rect != image.Rect(0, 0, 5, 5) {
		t.Fatalf("mask = %v, want bounds (0,0)-(5,5)", m)
	}
	if got := m.AlphaAt(0, 0).A; got != 0xff {
		t.Errorf("coverage at origin = %d, want full", got)
	}

	if Fill(image.Rect(0, 0, 10, 10), Rect(20, 20, 30, 30)) != nil {
		t.Error("fully clipped shape should yield nil")
	}
	if Fill(canvas, []Point{{1, 1}, {2, 2}}) != nil {
		t.Error("degenerate contour should yield nil")
	}
}

func TestEllipseRingHole(t *testing.T) {
	m := Fill(canvas, EllipseRing(20, 20, 181, 181, 5)...)
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	if got := m.AlphaAt(100, 100).A; got != 0 {
		t.Errorf("ring center coverage = %d, want 0", got)
	}
	if got := m.AlphaAt(22, 100).A; got < 0xf0 {
		t.Errorf("ring band coverage = %d, want full", got)
	}
}

func TestRectRingDegeneratesToRect(t *testing.T) {
	if got := RectRing(0, 0, 8, 8, 4); len(got) != 1 {
		t.Errorf("RectRing with width >= half = %d contours, want 1", len(got))
	}
	if got := RectRing(0, 0, 100, 100, 4); len(got) != 2 {
		t.Errorf("RectRing = %d contours, want 2", len(got))
	}
}

func TestStrokeUnionHasNoSeams(t *testing.T) {
	pts := []Point{{100, 100}, {200, 100}, {200, 200}}
	m := Stroke(canvas, pts, false, 6)
	if m == nil {
		t.Fatal("Stroke returned nil")
	}

	// The join at (200,100) is covered once, not darkened or doubled.
	if got := m.AlphaAt(200, 100).A; got < 0xf0 {
		t.Errorf("join coverage = %d, want full", got)
	}
	if got := m.AlphaAt(150, 100).A; got < 0xf0 {
		t.Errorf("segment coverage = %d, want full", got)
	}
	if got := m.AlphaAt(150, 150).A; got != 0 {
		t.Errorf("open polyline interior = %d, want 0", got)
	}
}

func TestStrokeClosed(t *testing.T) {
	pts := []Point{{10, 10}, {50, 10}, {50, 50}}
	open := Stroke(canvas, pts, false, 4)
	closed := Stroke(canvas, pts, true, 4)

	// Midpoint of the closing edge (10,10)-(50,50).
	if got := open.AlphaAt(20, 20).A; got != 0 {
		t.Errorf("open stroke closing edge = %d, want 0", got)
	}
	if got := closed.AlphaAt(30, 30).A; got == 0 {
		t.Error("closed stroke should cover the closing edge")
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	if Stroke(canvas, []Point{{0, 0}, {10, 10}}, false, 0) != nil {
		t.Error("zero width stroke should yield nil")
	}
}

func TestReverse(t *testing.T) {
	got := Reverse([]Point{{1, 0}, {2, 0}, {3, 0}})
	if got[0].X != 3 || got[2].X != 1 {
		t.Errorf("Reverse = %v", got)
	}
}

func TestInnerStrokeStaysInside(t *testing.T) {
	tri := []Point{{10.5, 10.5}, {110.5, 10.5}, {60.5, 90.5}}
	m := InnerStroke(canvas, tri, 4)
	if m == nil {
		t.Fatal("InnerStroke returned nil")
	}

	// Just inside the top edge is covered, just outside is not.
	if got := m.AlphaAt(60, 12).A; got < 0xf0 {
		t.Errorf("inside band = %d, want full", got)
	}
	if got := m.AlphaAt(60, 8).A; got != 0 {
		t.Errorf("outside the polygon = %d, want 0", got)
	}
	// The middle of the triangle is beyond the band.
	if got := m.AlphaAt(60, 40).A; got != 0 {
		t.Errorf("interior = %d, want 0", got)
	}
}
