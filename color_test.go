package thumb

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FFFFFF", White},
		{"000000", Black},
		{"#f00", Red},
		{"#0000FF80", Color{0, 0, 255, 128}},
		{"#00000088", Color{0, 0, 0, 0x88}},
		{"#1a0033", RGB(26, 0, 51)},
		{"#F0F8", Color{255, 0, 255, 136}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#GGGGGG", "#12345", "#123456789"} {
		if _, err := Hex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Hex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseColorNames(t *testing.T) {
	got, err := ParseColor("White")
	if err != nil {
		t.Fatalf("ParseColor error: %v", err)
	}
	if got != White {
		t.Errorf("ParseColor(White) = %v, want %v", got, White)
	}

	if _, err := ParseColor("not-a-color"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(not-a-color) error = %v, want ErrInvalidColor", err)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, RGB(0x12, 0x34, 0x56), {1, 2, 3, 4}} {
		got, err := Hex(c.Hex())
		if err != nil || got != c {
			t.Errorf("Hex(%q) = %v, %v; want %v", c.Hex(), got, err, c)
		}
	}
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#00FF00")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if c != Green {
		t.Errorf("UnmarshalText = %v, want %v", c, Green)
	}
	if err := c.UnmarshalText([]byte("#xyz")); err == nil {
		t.Error("UnmarshalText should reject malformed colors")
	}
}

func TestLerp8Truncates(t *testing.T) {
	tests := []struct {
		a, b uint8
		t    float64
		want uint8
	}{
		{0, 255, 0, 0},
		{0, 255, 0.5, 127},
		{0, 255, 719.0 / 720.0, 254},
		{255, 0, 0.5, 127},
		{200, 100, 0.25, 175},
	}
	for _, tt := range tests {
		if got := lerp8(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerp8(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
