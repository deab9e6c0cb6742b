package snapkit

import (
	"github.com/gogpu/snapkit/internal/raster"
	"github.com/gogpu/snapkit/text"
)

// Sticker and emoji rendering constants, in display pixels before DPI
// and element scaling.
const (
	stickerEdge      = 80
	stickerBorder    = 2
	stickerLabelSize = 12

	emojiSize = 48
)

// drawSticker renders the sticker placeholder: a semi-transparent
// square with a border and the sticker id as a centered label. Real
// sticker asset rendering is the host application's concern.
func (c *Composer) drawSticker(t raster.Target, frame Matrix, data StickerData, scale, dpi float64) {
	edge := stickerEdge * scale * dpi
	m := localFrame(frame)

	square := raster.NewPath()
	square.AddRect(-edge/2, -edge/2, edge, edge)
	raster.Fill(t, square.Transform(m), White.WithAlpha(0.6).NRGBA())

	border := raster.StrokeContours(square, stickerBorder*dpi)
	raster.Fill(t, border.Transform(m), RGB(0.25, 0.25, 0.25).NRGBA())

	labelSize := stickerLabelSize * scale * dpi
	src := c.fonts.Source(FontClassic)
	run := text.Shape(src, data.StickerID, labelSize)
	if len(run.Glyphs) == 0 {
		return
	}
	metrics := src.Metrics(labelSize)
	baseline := (metrics.Ascent - metrics.Descent) / 2
	label := glyphPath(src, run, labelSize, -run.Width/2, baseline).Transform(m)
	raster.Fill(t, label, RGB(0.25, 0.25, 0.25).NRGBA())
}

// drawEmoji renders a single character glyph centered on the local
// origin. Fonts without a glyph for the character get a placeholder
// disc so the layer's footprint is still visible; the built-in fonts
// carry no color emoji tables.
func (c *Composer) drawEmoji(t raster.Target, frame Matrix, data EmojiData, scale, dpi float64) {
	size := emojiSize * scale * dpi
	m := localFrame(frame)
	src := c.fonts.Source(FontClassic)

	first, ok := firstRune(data.Char)
	if !ok || !src.HasGlyph(first) {
		Logger().Warn("emoji has no glyph, drawing placeholder", "char", data.Char)
		disc := raster.NewPath()
		disc.AddCircle(0, 0, size/2)
		raster.Fill(t, disc.Transform(m), White.WithAlpha(0.6).NRGBA())
		ring := raster.StrokeContours(disc, stickerBorder*dpi)
		raster.Fill(t, ring.Transform(m), RGB(0.25, 0.25, 0.25).NRGBA())
		return
	}

	run := text.Shape(src, data.Char, size)
	if len(run.Glyphs) == 0 {
		return
	}
	metrics := src.Metrics(size)
	baseline := (metrics.Ascent - metrics.Descent) / 2
	glyph := glyphPath(src, run, size, -run.Width/2, baseline).Transform(m)
	raster.Fill(t, glyph, Black.NRGBA())
}

// firstRune returns the first rune of a string.
func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
