package thumb

import (
	"fmt"
	"strings"
)

// TemplateName identifies a stock template.
type TemplateName string

// Stock templates.
const (
	TemplateGaming   TemplateName = "gaming"
	TemplateTutorial TemplateName = "tutorial"
	TemplateVlog     TemplateName = "vlog"
	TemplateReaction TemplateName = "reaction"
)

// Templates lists the stock templates in menu order.
var Templates = []TemplateName{TemplateGaming, TemplateTutorial, TemplateVlog, TemplateReaction}

// Preset is what a template stages for the next DrawText call.
type Preset struct {
	Text  string
	Style Style
}

// tutorialBarHeight is the last row (inclusive) of the tutorial header bar.
const tutorialBarHeight = 150

// ApplyTemplate paints the template's background and returns its preset:
// the suggested text and st with the template's text and outline colors.
// It never draws text. An unknown name returns ErrUnknownTemplate and
// leaves the canvas unchanged.
func (c *Canvas) ApplyTemplate(name TemplateName, st Style) (Preset, error) {
	p := Preset{Style: st}

	switch TemplateName(strings.ToLower(string(name))) {
	case TemplateGaming:
		c.checkpoint()
		for y := 0; y < Height; y++ {
			t := float64(y) / Height
			c.pix.FillRow(y, RGB(
				uint8(int(26*(1-t)+255*t*0.3)),
				0,
				uint8(int(51*(1-t)+255*t*0.3)),
			))
		}
		p.Text = "EPIC GAMING MOMENT!"
		p.Style.TextColor = RGB(0x00, 0xFF, 0x00)
		p.Style.OutlineColor = RGB(0x00, 0x00, 0x00)

	case TemplateTutorial:
		c.checkpoint()
		c.pix.Clear(White)
		bar := RGB(0x00, 0x66, 0xCC)
		for y := 0; y <= tutorialBarHeight; y++ {
			c.pix.FillRow(y, bar)
		}
		p.Text = "HOW TO: Step by Step"
		p.Style.TextColor = RGB(0xFF, 0xFF, 0xFF)
		p.Style.OutlineColor = RGB(0x00, 0x33, 0x66)

	case TemplateVlog:
		c.checkpoint()
		c.pix.Clear(RGB(0xFF, 0xE6, 0x6D))
		p.Text = "MY DAY VLOG!"
		p.Style.TextColor = RGB(0xFF, 0xFF, 0xFF)
		p.Style.OutlineColor = RGB(0xFF, 0x17, 0x44)

	case TemplateReaction:
		c.checkpoint()
		c.pix.Clear(RGB(0xFF, 0x00, 0x00))
		p.Text = "YOU WON'T BELIEVE THIS!"
		p.Style.TextColor = RGB(0xFF, 0xFF, 0x00)
		p.Style.OutlineColor = RGB(0x00, 0x00, 0x00)

	default:
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	Logger().Debug("thumb: template", "op", "template", "name", name)
	return p, nil
}
