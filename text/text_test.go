package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *FontSource {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing embedded font: %v", err)
	}
	return src
}

func TestNewFontSourceBadData(t *testing.T) {
	if _, err := NewFontSource([]byte("junk")); err == nil {
		t.Fatal("NewFontSource should reject invalid data")
	}
}

func TestMetrics(t *testing.T) {
	src := testSource(t)
	m := src.Metrics(24)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("metrics = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight() != m.Ascent+m.Descent {
		t.Error("LineHeight is not ascent plus descent")
	}
	// Metrics scale roughly linearly with size.
	m2 := src.Metrics(48)
	if m2.Ascent < m.Ascent*1.8 || m2.Ascent > m.Ascent*2.2 {
		t.Errorf("ascent at 48px = %v, expected about double %v", m2.Ascent, m.Ascent)
	}
}

func TestShape(t *testing.T) {
	src := testSource(t)
	run := Shape(src, "Hello", 24)
	if len(run.Glyphs) != 5 {
		t.Fatalf("glyph count = %d, want 5", len(run.Glyphs))
	}
	if run.Width <= 0 {
		t.Fatal("run width not positive")
	}
	// Pen positions are monotonically non-decreasing for LTR text.
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X < run.Glyphs[i-1].X {
			t.Errorf("glyph %d pen position moved backwards", i)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	src := testSource(t)
	if run := Shape(src, "", 24); len(run.Glyphs) != 0 || run.Width != 0 {
		t.Errorf("empty string shaped to %+v", run)
	}
	if run := Shape(nil, "x", 24); len(run.Glyphs) != 0 {
		t.Error("nil source shaped glyphs")
	}
}

func TestShapeNormalization(t *testing.T) {
	src := testSource(t)
	// Precomposed and combining forms of the same text must shape to
	// the same width.
	composed := Shape(src, "caf\u00e9", 24)
	decomposed := Shape(src, "cafe\u0301", 24)
	if composed.Width != decomposed.Width {
		t.Errorf("widths differ: composed %v, decomposed %v", composed.Width, decomposed.Width)
	}
}

func TestMeasureMatchesShape(t *testing.T) {
	src := testSource(t)
	if Measure(src, "Hello", 24) != Shape(src, "Hello", 24).Width {
		t.Error("Measure disagrees with Shape")
	}
}

func TestShapeBuiltinFallback(t *testing.T) {
	src := testSource(t)
	run := shapeBuiltin(src, "Hi", 24)
	if len(run.Glyphs) != 2 || run.Width <= 0 {
		t.Fatalf("builtin shaping = %+v", run)
	}
}

func TestHasGlyph(t *testing.T) {
	src := testSource(t)
	if !src.HasGlyph('A') {
		t.Error("font should have 'A'")
	}
	// The Go fonts carry no emoji.
	if src.HasGlyph('\U0001F600') {
		t.Error("font unexpectedly has an emoji glyph")
	}
}

func TestAppendOutline(t *testing.T) {
	src := testSource(t)
	run := Shape(src, "A", 24)
	if len(run.Glyphs) != 1 {
		t.Fatal("expected one glyph")
	}

	segs, err := AppendOutline(src, run.Glyphs[0].GID, 24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) == 0 {
		t.Fatal("'A' produced no outline segments")
	}
	if segs[0].Op != SegmentMoveTo {
		t.Errorf("first segment op = %v, want move", segs[0].Op)
	}
	// Outline coordinates are baseline-relative with y up being
	// negative; a capital letter lives above the baseline.
	above := false
	for _, s := range segs {
		if s.Args[0].Y < 0 {
			above = true
			break
		}
	}
	if !above {
		t.Error("no outline points above the baseline")
	}
}

func TestAppendOutlineSpace(t *testing.T) {
	src := testSource(t)
	run := Shape(src, " ", 24)
	if len(run.Glyphs) != 1 {
		t.Fatal("expected one glyph for space")
	}
	segs, err := AppendOutline(src, run.Glyphs[0].GID, 24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 0 {
		t.Errorf("space has %d outline segments, want 0", len(segs))
	}
}
