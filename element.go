package snapkit

// BrushSize selects one of the fixed freehand brush widths.
type BrushSize int

const (
	// BrushSmall is the thin drawing brush.
	BrushSmall BrushSize = iota
	// BrushMedium is the thick drawing brush.
	BrushMedium
)

// brushWidths maps BrushSize to line width in display pixels. The
// composition engine multiplies these by the DPI scale factor.
var brushWidths = [...]float64{
	BrushSmall:  4,
	BrushMedium: 8,
}

// Width returns the brush line width in display pixels.
func (s BrushSize) Width() float64 {
	if s < 0 || int(s) >= len(brushWidths) {
		return brushWidths[BrushSmall]
	}
	return brushWidths[s]
}

// Stroke is one freehand drawing path: an ordered point sequence in
// display coordinates, a hex color, and a brush size. A stroke with
// fewer than 2 points is not renderable; Renderable lets the annotation
// UI discard such strokes before persisting them, and the composition
// engine skips them regardless.
type Stroke struct {
	Points []Point
	Color  string
	Size   BrushSize
}

// Renderable reports whether the stroke has enough points to produce a
// visible line segment.
func (s Stroke) Renderable() bool {
	return len(s.Points) >= 2
}

// ElementType discriminates the overlay element variants.
type ElementType int

const (
	// ElementSticker is a placed sticker placeholder.
	ElementSticker ElementType = iota
	// ElementEmoji is a single rendered emoji character.
	ElementEmoji
	// ElementText is a styled text caption.
	ElementText
)

// String returns the wire name of the element type.
func (t ElementType) String() string {
	switch t {
	case ElementSticker:
		return "sticker"
	case ElementEmoji:
		return "emoji"
	case ElementText:
		return "text"
	default:
		return "unknown"
	}
}

// zPriority orders element types back to front: stickers under emoji
// under text, so captions always read on top regardless of creation
// order. Ties are broken by insertion order via stable sort.
func (t ElementType) zPriority() int {
	switch t {
	case ElementSticker:
		return 0
	case ElementEmoji:
		return 1
	case ElementText:
		return 2
	default:
		return 0
	}
}

// Scale clamp bounds for placed elements, mirroring the pinch gesture
// limits in the annotation UI.
const (
	MinElementScale = 0.3
	MaxElementScale = 3.0
)

// PlacedElement is one positioned overlay item. X and Y are display
// coordinates of the element's local origin; Scale is uniform and
// clamped to [MinElementScale, MaxElementScale]; Rotation is in
// degrees, clockwise positive. Data is variant-shaped by Type.
type PlacedElement struct {
	ID       string
	Type     ElementType
	X, Y     float64
	Scale    float64
	Rotation float64
	Data     ElementData
}

// ClampedScale returns the element scale clamped to the legal range.
// A zero scale (an element deserialized without one) becomes 1.
func (e PlacedElement) ClampedScale() float64 {
	s := e.Scale
	if s == 0 {
		s = 1
	}
	if s < MinElementScale {
		return MinElementScale
	}
	if s > MaxElementScale {
		return MaxElementScale
	}
	return s
}

// Validate reports whether the element is well-formed enough to render.
func (e PlacedElement) Validate() error {
	if e.Data == nil {
		return &ElementError{ID: e.ID, Reason: "missing data"}
	}
	if e.Data.elementType() != e.Type {
		return &ElementError{ID: e.ID, Reason: "data does not match element type " + e.Type.String()}
	}
	return e.Data.validate(e.ID)
}

// ElementData is the variant payload of a PlacedElement.
type ElementData interface {
	elementType() ElementType
	validate(id string) error
}

// StickerData is the payload of a sticker element. Stickers render as a
// labelled placeholder square; substituting real sticker assets is the
// host application's concern.
type StickerData struct {
	StickerID string
}

func (StickerData) elementType() ElementType { return ElementSticker }

func (d StickerData) validate(id string) error {
	if d.StickerID == "" {
		return &ElementError{ID: id, Reason: "sticker has no sticker id"}
	}
	return nil
}

// EmojiData is the payload of an emoji element.
type EmojiData struct {
	Char string
}

func (EmojiData) elementType() ElementType { return ElementEmoji }

func (d EmojiData) validate(id string) error {
	if d.Char == "" {
		return &ElementError{ID: id, Reason: "emoji has no character"}
	}
	return nil
}

// TextAlign is the horizontal alignment of a text element relative to
// its local origin.
type TextAlign int

const (
	// AlignCenter centers the text on the origin (the default).
	AlignCenter TextAlign = iota
	// AlignLeft starts the text at the origin.
	AlignLeft
	// AlignRight ends the text at the origin.
	AlignRight
)

// StyleMode is the text decoration variant.
type StyleMode int

const (
	// StyleNone fills the text and adds a soft drop shadow.
	StyleNone StyleMode = iota
	// StyleStroke draws the glyph outlines only, without fill.
	StyleStroke
	// StyleBackground draws a rounded pill behind the text.
	StyleBackground
	// StyleHighlight draws a larger block background behind the text.
	StyleHighlight
)

// TextStyle is the style record attached to a text element.
type TextStyle struct {
	Font  FontID
	Color string
	Align TextAlign
	Mode  StyleMode
}

// TextData is the payload of a text element.
type TextData struct {
	Text  string
	Style TextStyle
}

func (TextData) elementType() ElementType { return ElementText }

func (d TextData) validate(id string) error {
	if d.Text == "" {
		return &ElementError{ID: id, Reason: "text element has no text"}
	}
	if !d.Style.Font.valid() {
		return &ElementError{ID: id, Reason: "text element has unknown font id"}
	}
	return nil
}
