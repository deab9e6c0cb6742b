package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource wraps one parsed font file. It owns both the x/image sfnt
// parse (outlines, metrics) and a lazily created go-text parse
// (shaping). A FontSource is immutable after creation and safe for
// concurrent use except where methods note otherwise.
type FontSource struct {
	data []byte
	font *sfnt.Font

	// go-text parse, created on first Shape call. gtfont.Font is
	// read-only and safe for concurrent use once built.
	gtOnce sync.Once
	gtFont *gtfont.Font
	gtErr  error
}

// NewFontSource parses TTF/OTF font data.
func NewFontSource(data []byte) (*FontSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return &FontSource{data: data, font: f}, nil
}

// Font returns the parsed sfnt font.
func (s *FontSource) Font() *sfnt.Font {
	return s.font
}

// Metrics holds vertical font metrics at a specific pixel size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the tallest
	// glyphs, in pixels (positive up).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// deepest glyphs, in pixels (positive down).
	Descent float64
}

// LineHeight returns the total line height.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent
}

// Metrics returns the font's vertical metrics at the given pixel size.
func (s *FontSource) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	m, err := s.font.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		// Degenerate but workable fallback proportions.
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}
	descent := m.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(descent),
	}
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (s *FontSource) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := s.font.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// goTextFont returns the cached go-text parse of the font data,
// building it on first use.
func (s *FontSource) goTextFont() (*gtfont.Font, error) {
	s.gtOnce.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.gtErr = fmt.Errorf("text: go-text parse: %w", err)
			return
		}
		s.gtFont = face.Font
	})
	return s.gtFont, s.gtErr
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
