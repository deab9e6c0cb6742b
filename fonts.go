package snapkit

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"github.com/gogpu/snapkit/text"
)

// FontID identifies one of the six fixed caption fonts.
type FontID int

const (
	// FontClassic is the default caption font.
	FontClassic FontID = iota
	// FontModern is a medium-weight variant.
	FontModern
	// FontTypewriter is a monospaced variant.
	FontTypewriter
	// FontBold is the heavy (weight 700) variant.
	FontBold
	// FontScript is an italic variant.
	FontScript
	// FontElegant is a small-caps variant.
	FontElegant

	fontCount = iota
)

// fontIDNames maps FontID to its wire name.
var fontIDNames = [...]string{
	FontClassic:    "classic",
	FontModern:     "modern",
	FontTypewriter: "typewriter",
	FontBold:       "bold",
	FontScript:     "script",
	FontElegant:    "elegant",
}

// String returns the wire name of the font id.
func (id FontID) String() string {
	if !id.valid() {
		return "unknown"
	}
	return fontIDNames[id]
}

// ParseFontID resolves a wire name to a FontID.
func ParseFontID(name string) (FontID, bool) {
	for i, n := range fontIDNames {
		if n == name {
			return FontID(i), true
		}
	}
	return FontClassic, false
}

// Weight returns the CSS-style font weight: 700 for the bold id, 400
// for everything else. The weight is baked into the font file itself;
// this accessor exists for hosts that surface it in style records.
func (id FontID) Weight() int {
	if id == FontBold {
		return 700
	}
	return 400
}

func (id FontID) valid() bool {
	return id >= 0 && int(id) < fontCount
}

// FontTable maps the six caption font ids to parsed font sources. The
// table is immutable after construction; both engines receive it by
// injection and never modify it.
type FontTable struct {
	sources [fontCount]*text.FontSource
}

// NewFontTable builds a table from explicit per-id font data. All six
// ids must parse.
func NewFontTable(data map[FontID][]byte) (*FontTable, error) {
	t := &FontTable{}
	for id := FontID(0); id < fontCount; id++ {
		raw, ok := data[id]
		if !ok {
			return nil, fmt.Errorf("snapkit: font table missing id %q", id)
		}
		src, err := text.NewFontSource(raw)
		if err != nil {
			return nil, fmt.Errorf("snapkit: font %q: %w", id, err)
		}
		t.sources[id] = src
	}
	return t, nil
}

// Source returns the font source for an id, falling back to classic for
// out-of-range values.
func (t *FontTable) Source(id FontID) *text.FontSource {
	if !id.valid() {
		id = FontClassic
	}
	return t.sources[id]
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *FontTable
)

// DefaultFontTable returns the built-in table backed by the embedded Go
// fonts. The table is built once and shared; it is safe for concurrent
// use.
func DefaultFontTable() *FontTable {
	defaultFontsOnce.Do(func() {
		t, err := NewFontTable(map[FontID][]byte{
			FontClassic:    goregular.TTF,
			FontModern:     gomedium.TTF,
			FontTypewriter: gomono.TTF,
			FontBold:       gobold.TTF,
			FontScript:     goitalic.TTF,
			FontElegant:    gosmallcaps.TTF,
		})
		if err != nil {
			// The embedded fonts are known-good; failing to parse them
			// is a build defect, not a runtime condition.
			panic(err)
		}
		defaultFonts = t
	})
	return defaultFonts
}
