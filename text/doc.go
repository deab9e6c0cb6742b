// Package text provides the font machinery behind snapkit's text and
// emoji overlays: font parsing, HarfBuzz-level shaping via
// go-text/typesetting, and glyph outline extraction via x/image/sfnt.
//
// The composition engine consumes shaped glyph positions and raw
// outline segments; rasterization happens in internal/raster so this
// package stays independent of any pixel format.
package text
