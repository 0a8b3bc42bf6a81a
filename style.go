package thumb

import (
	"fmt"
	"strings"

	"github.com/gogpu/thumb/text"
)

// Anchor selects the vertical placement of text on the canvas.
type Anchor int

const (
	// AnchorCenter centers the text block vertically.
	AnchorCenter Anchor = iota
	// AnchorTop places the text block TextMargin pixels below the top edge.
	AnchorTop
	// AnchorBottom places the text block TextMargin pixels above the bottom edge.
	AnchorBottom
)

// TextMargin is the distance between the text block and the top or
// bottom edge for AnchorTop and AnchorBottom.
const TextMargin = 100

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorCenter:
		return "center"
	case AnchorBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// ParseAnchor parses "top", "center" or "bottom".
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return AnchorTop, nil
	case "center", "middle", "":
		return AnchorCenter, nil
	case "bottom":
		return AnchorBottom, nil
	}
	return 0, fmt.Errorf("%w: anchor %q", ErrInvalidStyle, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Style ranges.
const (
	MinFontSize     = 20
	MaxFontSize     = 250
	MaxOutlineWidth = 20
	MaxShadowOffset = 20
)

// Style describes how a string is drawn. It is a plain value: each
// DrawText call receives the full style to use.
type Style struct {
	TextColor    Color
	OutlineColor Color
	OutlineWidth int // 0..MaxOutlineWidth, 0 disables the outline

	// BackgroundColor is the color a caller fills behind the text.
	// DrawText and ApplyTemplate leave it alone.
	BackgroundColor Color

	FontFamily string
	FontSize   int // MinFontSize..MaxFontSize
	Bold       bool
	Italic     bool

	Shadow       bool
	ShadowOffset int // 0..MaxShadowOffset

	Anchor Anchor
}

// DefaultStyle returns the initial editor style: 100px bold white Arial
// with an 8px black outline and a 5px shadow, centered.
func DefaultStyle() Style {
	return Style{
		TextColor:       White,
		OutlineColor:    Black,
		OutlineWidth:    8,
		BackgroundColor: Red,
		FontFamily:      "Arial",
		FontSize:        100,
		Bold:            true,
		Shadow:          true,
		ShadowOffset:    5,
		Anchor:          AnchorCenter,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidStyle.
func (s Style) Validate() error {
	switch {
	case s.FontSize < MinFontSize || s.FontSize > MaxFontSize:
		return fmt.Errorf("%w: font size %d not in [%d, %d]", ErrInvalidStyle, s.FontSize, MinFontSize, MaxFontSize)
	case s.OutlineWidth < 0 || s.OutlineWidth > MaxOutlineWidth:
		return fmt.Errorf("%w: outline width %d not in [0, %d]", ErrInvalidStyle, s.OutlineWidth, MaxOutlineWidth)
	case s.ShadowOffset < 0 || s.ShadowOffset > MaxShadowOffset:
		return fmt.Errorf("%w: shadow offset %d not in [0, %d]", ErrInvalidStyle, s.ShadowOffset, MaxShadowOffset)
	case s.Anchor < AnchorCenter || s.Anchor > AnchorBottom:
		return fmt.Errorf("%w: %v", ErrInvalidStyle, s.Anchor)
	}
	return nil
}

// request converts the font fields to a font resolution request.
func (s Style) request() text.Request {
	return text.Request{
		Family: s.FontFamily,
		Size:   float64(s.FontSize),
		Bold:   s.Bold,
		Italic: s.Italic,
	}
}
