package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// ShapedGlyph is one positioned glyph produced by shaping.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID uint16

	// X is the pen position of the glyph origin, relative to the start
	// of the run.
	X float64

	// YOffset is the fine-grained vertical adjustment (positive down).
	YOffset float64

	// XAdvance is how far the pen moves after this glyph.
	XAdvance float64
}

// Run is a shaped line of text.
type Run struct {
	Glyphs []ShapedGlyph

	// Width is the total horizontal advance of the run in pixels.
	Width float64
}

// shaperPool pools HarfbuzzShaper instances: they carry internal mutable
// state and are not safe for concurrent use, but reuse across calls
// avoids re-allocating shaping buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts a string into positioned glyphs at the given pixel
// size using HarfBuzz shaping (kerning, ligatures, complex scripts).
// The input is NFC-normalized first so visually identical captions
// shape identically regardless of how the UI composed them.
//
// If the go-text parse of the font fails, Shape falls back to a plain
// advance walk with no kerning.
func Shape(src *FontSource, s string, size float64) Run {
	if src == nil || s == "" {
		return Run{}
	}
	s = norm.NFC.String(s)

	gtf, err := src.goTextFont()
	if err != nil {
		return shapeBuiltin(src, s, size)
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(gtf),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	run := Run{Glyphs: make([]ShapedGlyph, 0, len(output.Glyphs))}
	var x float64
	for _, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs = append(run.Glyphs, ShapedGlyph{
			GID:      uint16(g.GlyphID), //nolint:gosec // TrueType glyph ids are 16-bit
			X:        x + fixedToFloat(g.XOffset),
			YOffset:  -fixedToFloat(g.YOffset),
			XAdvance: adv,
		})
		x += adv
	}
	run.Width = x
	return run
}

// Measure returns the total advance width of the string at the given
// pixel size.
func Measure(src *FontSource, s string, size float64) float64 {
	return Shape(src, s, size).Width
}

// shapeBuiltin is the no-kerning fallback: map runes to glyph indices
// and accumulate plain advances through sfnt.
func shapeBuiltin(src *FontSource, s string, size float64) Run {
	var buf sfnt.Buffer
	ppem := floatToFixed(size)

	run := Run{}
	var x float64
	for _, r := range s {
		gid, err := src.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := src.font.GlyphAdvance(&buf, gid, ppem, 0)
		if err != nil {
			continue
		}
		a := fixedToFloat(adv)
		run.Glyphs = append(run.Glyphs, ShapedGlyph{
			GID:      uint16(gid),
			X:        x,
			XAdvance: a,
		})
		x += a
	}
	run.Width = x
	return run
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script captions would need per-run
// splitting, which single-line annotations don't require.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
