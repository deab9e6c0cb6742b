package snapkit

import (
	"bytes"
	"encoding/base64"
	"sort"

	"github.com/gogpu/snapkit/internal/raster"
)

// CompositionRequest is a snapshot of everything needed to export one
// annotated image. The engine treats the request as read-only value
// data; it never references back into live annotation state.
type CompositionRequest struct {
	// Base is the raster to annotate, typically a filtered capture frame.
	Base *Pixmap

	// Strokes are the freehand paths in insertion order.
	Strokes []Stroke

	// Elements are the placed overlay items in insertion order.
	Elements []PlacedElement

	// DisplayWidth and DisplayHeight are the logical dimensions of the
	// annotation canvas. Stroke points and element positions are in this
	// coordinate space.
	DisplayWidth  int
	DisplayHeight int

	// PixelScale is the device pixel ratio reported by the host. Used
	// only when DisplayWidth is unknown.
	PixelScale float64
}

// scaleDPI reconciles the backing raster with the logical display
// coordinate space. A high-density capture on a scaled-down canvas
// yields a factor above 1, and every coordinate and width is multiplied
// by it.
func (r CompositionRequest) scaleDPI() float64 {
	if r.DisplayWidth > 0 && r.Base != nil {
		return float64(r.Base.Width()) / float64(r.DisplayWidth)
	}
	if r.PixelScale > 0 {
		return r.PixelScale
	}
	return 1
}

// Artifact is the result of a composition: the flattened raster plus
// its encoded forms, ready for download or an external share sink.
type Artifact struct {
	// Pixmap is the composed raster.
	Pixmap *Pixmap

	// PNG is the lossless encoding of Pixmap.
	PNG []byte

	// DataURL is PNG as a data:image/png;base64 URI.
	DataURL string

	// Width and Height are the pixel dimensions of the output.
	Width  int
	Height int
}

// Composer renders annotation layers onto a base raster. The zero
// Composer is not usable; construct with NewComposer. A Composer is
// safe for concurrent use: it holds only the immutable font table.
type Composer struct {
	fonts *FontTable
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithFontTable overrides the built-in caption fonts.
func WithFontTable(t *FontTable) ComposerOption {
	return func(c *Composer) {
		if t != nil {
			c.fonts = t
		}
	}
}

// NewComposer creates a composition engine with the default font table.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{fonts: DefaultFontTable()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose flattens the request into a single output raster.
//
// Layers are rendered in a fixed z-order: base raster, then strokes in
// insertion order, then elements sorted so stickers render under emoji
// under text. The sort is stable, so elements of the same type keep
// their insertion order. The base raster is cloned; the caller's pixmap
// is never written to.
//
// Malformed elements are skipped with a warning rather than aborting
// the export. A nil base returns ErrNoBaseRaster; an encoding failure
// returns *EncodingError.
func (c *Composer) Compose(req CompositionRequest) (*Artifact, error) {
	if req.Base == nil {
		return nil, ErrNoBaseRaster
	}

	dpi := req.scaleDPI()
	out := req.Base.Clone()
	target := raster.Target{
		Pix:    out.Data(),
		Width:  out.Width(),
		Height: out.Height(),
	}

	Logger().Debug("composing",
		"width", out.Width(), "height", out.Height(),
		"strokes", len(req.Strokes), "elements", len(req.Elements),
		"dpi", dpi)

	for _, s := range req.Strokes {
		c.drawStroke(target, s, dpi)
	}

	ordered := make([]PlacedElement, len(req.Elements))
	copy(ordered, req.Elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Type.zPriority() < ordered[j].Type.zPriority()
	})

	for _, el := range ordered {
		if err := el.Validate(); err != nil {
			Logger().Warn("skipping element", "id", el.ID, "error", err)
			continue
		}
		c.drawElement(target, el, dpi)
	}

	var buf bytes.Buffer
	if err := out.EncodePNG(&buf); err != nil {
		return nil, &EncodingError{Err: err}
	}
	png := buf.Bytes()

	return &Artifact{
		Pixmap:  out,
		PNG:     png,
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Width:   out.Width(),
		Height:  out.Height(),
	}, nil
}

// drawStroke renders one freehand polyline with round caps and joins.
// Strokes below the two-point minimum are skipped.
func (c *Composer) drawStroke(t raster.Target, s Stroke, dpi float64) {
	if !s.Renderable() {
		Logger().Warn("skipping stroke with fewer than 2 points")
		return
	}
	pts := make([]raster.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = raster.Point{X: p.X * dpi, Y: p.Y * dpi}
	}
	outline := raster.StrokePolyline(pts, s.Size.Width()*dpi, false)
	raster.Fill(t, outline, Hex(s.Color).NRGBA())
}

// drawElement dispatches on the element variant. The element's local
// frame is anchored at its scaled position with rotation applied around
// that origin; content draws centered on the origin in local space.
func (c *Composer) drawElement(t raster.Target, el PlacedElement, dpi float64) {
	frame := Translate(el.X*dpi, el.Y*dpi).Multiply(RotateDegrees(el.Rotation))

	switch data := el.Data.(type) {
	case StickerData:
		c.drawSticker(t, frame, data, el.ClampedScale(), dpi)
	case EmojiData:
		c.drawEmoji(t, frame, data, el.ClampedScale(), dpi)
	case TextData:
		c.drawText(t, frame, data, el.ClampedScale(), dpi)
	}
}

// localFrame converts a Matrix to the raster package's affine form.
func localFrame(m Matrix) raster.Affine {
	return raster.Affine{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}
