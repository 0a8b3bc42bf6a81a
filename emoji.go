package thumb

import (
	"image"
	"image/draw"

	"golang.org/x/text/unicode/norm"
)

// Emojis is the stock sticker palette.
var Emojis = []string{
	"🔥", "👍", "😱", "💯", "⚡", "✅", "❌", "⭐",
	"💪", "🎯", "🚀", "💰", "👉", "🔴", "📈", "⏰",
}

// EmojiPosition is the top-left corner where DrawEmoji pastes its tile:
// horizontally centered, 50px from the top.
var EmojiPosition = image.Pt((Width-150)/2, 50)

// DrawEmoji renders glyph into a transparent tile and pastes it at
// EmojiPosition. It returns the name of the font used.
//
// When no available font can draw the glyph, DrawEmoji returns an error
// wrapping ErrGlyphUnsupported; this is a warning and the canvas is
// unchanged.
func (c *Canvas) DrawEmoji(glyph string) (string, error) {
	return c.DrawEmojiAt(glyph, EmojiPosition)
}

// DrawEmojiAt is like DrawEmoji with the tile's top-left corner at at.
func (c *Canvas) DrawEmojiAt(glyph string, at image.Point) (string, error) {
	if glyph == "" {
		return "", ErrEmptyText
	}
	tile, font, err := c.glyphs.RenderTile(norm.NFC.String(glyph))
	if err != nil {
		Logger().Warn("thumb: glyph not drawn", "glyph", glyph, "err", err)
		return "", err
	}

	c.checkpoint()
	dst := c.pix.view()
	draw.Draw(dst, tile.Rect.Sub(tile.Rect.Min).Add(at), tile, tile.Rect.Min, draw.Over)

	Logger().Debug("thumb: glyph", "op", "emoji", "glyph", glyph, "font", font, "at", at)
	return font, nil
}
