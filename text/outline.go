package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SegmentOp is the type of outline path operation.
type SegmentOp uint8

const (
	// SegmentMoveTo moves to a new point, starting a contour.
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to the target point.
	SegmentLineTo

	// SegmentQuadTo draws a quadratic bezier curve.
	SegmentQuadTo

	// SegmentCubeTo draws a cubic bezier curve.
	SegmentCubeTo
)

// OutlinePoint is a point in a glyph outline, in pixels relative to the
// glyph origin on the baseline, y increasing down.
type OutlinePoint struct {
	X, Y float64
}

// Segment is one segment of a glyph outline.
//   - MoveTo/LineTo: Args[0] is the target
//   - QuadTo: Args[0] is the control, Args[1] the target
//   - CubeTo: Args[0], Args[1] are controls, Args[2] the target
type Segment struct {
	Op   SegmentOp
	Args [3]OutlinePoint
}

// AppendOutline appends the outline segments for one glyph at the given
// pixel size to dst and returns the extended slice. Glyphs without an
// outline (spaces) append nothing. Coordinates are y-down pixels
// relative to the glyph origin, ready for an affine placement transform.
func AppendOutline(src *FontSource, gid uint16, size float64, dst []Segment) ([]Segment, error) {
	var buf sfnt.Buffer
	ppem := floatToFixed(size)

	segs, err := src.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return dst, err
	}

	for _, seg := range segs {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentMoveTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentLineTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentQuadTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentCubeTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
			out.Args[2] = fixedPoint(seg.Args[2])
		default:
			continue
		}
		dst = append(dst, out)
	}
	return dst, nil
}

// fixedPoint converts a fixed.Point26_6 to an OutlinePoint.
func fixedPoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
