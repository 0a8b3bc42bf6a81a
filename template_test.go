package thumb

import (
	"errors"
	"testing"
)

func TestApplyTemplate(t *testing.T) {
	tests := []struct {
		name    TemplateName
		text    string
		fill    Color
		outline Color
		pixels  map[[2]int]Color
	}{
		{
			name: TemplateGaming, text: "EPIC GAMING MOMENT!",
			fill: RGB(0x00, 0xFF, 0x00), outline: Black,
			pixels: map[[2]int]Color{
				{0, 0}:     RGB(26, 0, 51),
				{1279, 0}:  RGB(26, 0, 51),
				{640, 360}: RGB(51, 0, 63),
				{640, 719}: RGB(76, 0, 76),
			},
		},
		{
			name: TemplateTutorial, text: "HOW TO: Step by Step",
			fill: White, outline: RGB(0x00, 0x33, 0x66),
			pixels: map[[2]int]Color{
				{0, 0}:      RGB(0x00, 0x66, 0xCC),
				{1279, 150}: RGB(0x00, 0x66, 0xCC),
				{0, 151}:    White,
				{640, 719}:  White,
			},
		},
		{
			name: TemplateVlog, text: "MY DAY VLOG!",
			fill: White, outline: RGB(0xFF, 0x17, 0x44),
			pixels: map[[2]int]Color{
				{0, 0}:     RGB(0xFF, 0xE6, 0x6D),
				{640, 719}: RGB(0xFF, 0xE6, 0x6D),
			},
		},
		{
			name: TemplateReaction, text: "YOU WON'T BELIEVE THIS!",
			fill: Yellow, outline: Black,
			pixels: map[[2]int]Color{
				{0, 0}:     Red,
				{640, 719}: Red,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			c := newTestCanvas(t)
			base := DefaultStyle()
			base.FontSize = 42

			p, err := c.ApplyTemplate(tt.name, base)
			if err != nil {
				t.Fatal(err)
			}
			if p.Text != tt.text {
				t.Errorf("Text = %q, want %q", p.Text, tt.text)
			}
			if p.Style.TextColor != tt.fill || p.Style.OutlineColor != tt.outline {
				t.Errorf("colors = %v/%v, want %v/%v", p.Style.TextColor, p.Style.OutlineColor, tt.fill, tt.outline)
			}
			if p.Style.FontSize != 42 || p.Style.BackgroundColor != base.BackgroundColor {
				t.Error("template changed unrelated style fields")
			}
			for xy, want := range tt.pixels {
				if got := c.Pixel(xy[0], xy[1]); got != want {
					t.Errorf("pixel %v = %v, want %v", xy, got, want)
				}
			}
			if c.HistoryLen() != 1 {
				t.Errorf("HistoryLen() = %d, want 1", c.HistoryLen())
			}
		})
	}
}

func TestApplyTemplateCaseInsensitive(t *testing.T) {
	c := newTestCanvas(t)
	if _, err := c.ApplyTemplate("Reaction", DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	if c.Pixel(0, 0) != Red {
		t.Error("template not applied")
	}
}

func TestApplyTemplateUnknown(t *testing.T) {
	c := newTestCanvas(t)
	_, err := c.ApplyTemplate("cooking", DefaultStyle())
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
	assertUniform(t, c, White)
	if c.HistoryLen() != 0 {
		t.Error("unknown template recorded history")
	}
}

func TestTemplatesDrawText(t *testing.T) {
	for _, name := range Templates {
		c := newTestCanvas(t)
		p, err := c.ApplyTemplate(name, DefaultStyle())
		if err != nil {
			t.Fatal(err)
		}
		before := c.Snapshot()
		p.Style.FontFamily = "Go"
		if _, err := c.DrawText(p.Text, p.Style); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if c.Snapshot().Equal(before) {
			t.Errorf("%s: staged text drew nothing", name)
		}
	}
}
