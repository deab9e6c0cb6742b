package snapkit

import (
	"image"
	"image/color"

	"github.com/gogpu/snapkit/internal/effects"
	"github.com/gogpu/snapkit/internal/raster"
	"github.com/gogpu/snapkit/text"
)

// Text rendering constants, in display pixels before DPI scaling.
const (
	textFontSize = 24

	// StyleNone drop shadow.
	shadowOffsetY = 1
	shadowBlur    = 3

	// StyleStroke outline width.
	outlineWidth = 2

	// StyleBackground pill.
	pillPadX   = 8
	pillRadius = 4

	// StyleHighlight block.
	blockPadX   = 12
	blockPadY   = 6
	blockRadius = 8
)

// pillHeightFactor sizes the background pill relative to the font size.
const pillHeightFactor = 1.2

// drawText renders one caption with its style decoration. The text is
// shaped once; decoration variants share the resulting glyph path.
func (c *Composer) drawText(t raster.Target, frame Matrix, data TextData, scale, dpi float64) {
	size := textFontSize * scale * dpi
	src := c.fonts.Source(data.Style.Font)

	run := text.Shape(src, data.Text, size)
	if len(run.Glyphs) == 0 {
		return
	}
	metrics := src.Metrics(size)

	// Horizontal alignment places the run relative to the local origin;
	// the vertical anchor is always the middle of the ascent box.
	var startX float64
	switch data.Style.Align {
	case AlignLeft:
		startX = 0
	case AlignRight:
		startX = -run.Width
	default:
		startX = -run.Width / 2
	}
	baseline := (metrics.Ascent - metrics.Descent) / 2

	glyphs := glyphPath(src, run, size, startX, baseline).Transform(localFrame(frame))
	ink := Hex(data.Style.Color).NRGBA()

	switch data.Style.Mode {
	case StyleStroke:
		outline := raster.StrokeContours(glyphs, outlineWidth*dpi)
		raster.Fill(t, outline, ink)

	case StyleBackground:
		pillH := size * pillHeightFactor
		pill := raster.NewPath()
		pill.AddRoundedRect(startX-pillPadX*dpi, -pillH/2,
			run.Width+2*pillPadX*dpi, pillH, pillRadius*dpi)
		raster.Fill(t, pill.Transform(localFrame(frame)), ink)
		raster.Fill(t, glyphs, ContrastInk(data.Style.Color).NRGBA())

	case StyleHighlight:
		blockH := size*pillHeightFactor + 2*blockPadY*dpi
		block := raster.NewPath()
		block.AddRoundedRect(startX-blockPadX*dpi, -blockH/2,
			run.Width+2*blockPadX*dpi, blockH, blockRadius*dpi)
		raster.Fill(t, block.Transform(localFrame(frame)), ink)
		raster.Fill(t, glyphs, ContrastInk(data.Style.Color).NRGBA())

	default: // StyleNone
		c.drawTextShadow(t, glyphs, dpi)
		raster.Fill(t, glyphs, ink)
	}
}

// drawTextShadow renders the soft drop shadow under plain captions:
// the glyph coverage mask, Gaussian-blurred, composited in
// half-opacity black offset one display pixel down.
func (c *Composer) drawTextShadow(t raster.Target, glyphs *raster.Path, dpi float64) {
	clip := image.Rect(0, 0, t.Width, t.Height)
	// The mask may extend past the canvas once blurred and offset, so
	// clip generously and let the composite step reclip.
	mask := raster.FillMask(glyphs, clip.Inset(-int(shadowBlur*dpi)-2))
	if mask.Rect.Empty() {
		return
	}
	// Blur radius to Gaussian sigma, matching canvas shadowBlur.
	blurred := effects.BlurAlpha(mask, shadowBlur*dpi/2)

	dst := &image.RGBA{Pix: t.Pix, Stride: t.Width * 4, Rect: clip}
	effects.ShadowOver(dst, blurred, 0, int(shadowOffsetY*dpi+0.5),
		color.NRGBA{A: 128})
}

// glyphPath assembles the outline path for a shaped run, with the pen
// starting at (startX, baseline) in local coordinates.
func glyphPath(src *text.FontSource, run text.Run, size, startX, baseline float64) *raster.Path {
	p := raster.NewPath()
	var segs []text.Segment
	for _, g := range run.Glyphs {
		var err error
		segs, err = text.AppendOutline(src, g.GID, size, segs[:0])
		if err != nil {
			continue
		}
		ox := startX + g.X
		oy := baseline + g.YOffset
		appendSegments(p, segs, ox, oy)
	}
	return p
}

// appendSegments copies glyph outline segments into a path, offset by
// the glyph origin.
func appendSegments(p *raster.Path, segs []text.Segment, ox, oy float64) {
	open := false
	for _, s := range segs {
		switch s.Op {
		case text.SegmentMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(ox+s.Args[0].X, oy+s.Args[0].Y)
			open = true
		case text.SegmentLineTo:
			p.LineTo(ox+s.Args[0].X, oy+s.Args[0].Y)
		case text.SegmentQuadTo:
			p.QuadTo(ox+s.Args[0].X, oy+s.Args[0].Y,
				ox+s.Args[1].X, oy+s.Args[1].Y)
		case text.SegmentCubeTo:
			p.CubeTo(ox+s.Args[0].X, oy+s.Args[0].Y,
				ox+s.Args[1].X, oy+s.Args[1].Y,
				ox+s.Args[2].X, oy+s.Args[2].Y)
		}
	}
	if open {
		p.Close()
	}
}
