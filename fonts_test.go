package snapkit

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultFontTable(t *testing.T) {
	table := DefaultFontTable()
	for id := FontID(0); id < fontCount; id++ {
		if table.Source(id) == nil {
			t.Errorf("no source for font %q", id)
		}
	}
	// The table is built once and shared.
	if DefaultFontTable() != table {
		t.Error("DefaultFontTable() returned a different instance")
	}
}

func TestFontSourceFallback(t *testing.T) {
	table := DefaultFontTable()
	if table.Source(FontID(99)) != table.Source(FontClassic) {
		t.Error("out-of-range font id should fall back to classic")
	}
	if table.Source(FontID(-1)) != table.Source(FontClassic) {
		t.Error("negative font id should fall back to classic")
	}
}

func TestNewFontTableMissingEntry(t *testing.T) {
	_, err := NewFontTable(map[FontID][]byte{
		FontClassic: goregular.TTF,
	})
	if err == nil {
		t.Fatal("NewFontTable with missing ids should fail")
	}
}

func TestNewFontTableBadData(t *testing.T) {
	data := map[FontID][]byte{}
	for id := FontID(0); id < fontCount; id++ {
		data[id] = []byte("not a font")
	}
	if _, err := NewFontTable(data); err == nil {
		t.Fatal("NewFontTable with garbage data should fail")
	}
}

func TestFontIDNames(t *testing.T) {
	tests := []struct {
		id   FontID
		name string
	}{
		{FontClassic, "classic"},
		{FontModern, "modern"},
		{FontTypewriter, "typewriter"},
		{FontBold, "bold"},
		{FontScript, "script"},
		{FontElegant, "elegant"},
	}
	for _, tt := range tests {
		if tt.id.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", int(tt.id), tt.id.String(), tt.name)
		}
		got, ok := ParseFontID(tt.name)
		if !ok || got != tt.id {
			t.Errorf("ParseFontID(%q) = (%v, %v), want (%v, true)", tt.name, got, ok, tt.id)
		}
	}
	if _, ok := ParseFontID("comic-sans"); ok {
		t.Error("ParseFontID accepted an unknown name")
	}
}

func TestFontWeight(t *testing.T) {
	if FontBold.Weight() != 700 {
		t.Errorf("FontBold.Weight() = %d, want 700", FontBold.Weight())
	}
	for _, id := range []FontID{FontClassic, FontModern, FontTypewriter, FontScript, FontElegant} {
		if id.Weight() != 400 {
			t.Errorf("%v.Weight() = %d, want 400", id, id.Weight())
		}
	}
}
