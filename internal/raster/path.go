package raster

type verb uint8

const (
	verbMoveTo verb = iota
	verbLineTo
	verbQuadTo
	verbCubeTo
	verbClose
)

// Path is a sequence of move/line/quad/cube/close verbs with their
// points, in target pixel coordinates.
type Path struct {
	verbs []verb
	pts   []Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new contour at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMoveTo)
	p.pts = append(p.pts, Point{x, y})
}

// LineTo adds a line to the current contour.
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, verbLineTo)
	p.pts = append(p.pts, Point{x, y})
}

// QuadTo adds a quadratic bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, verbQuadTo)
	p.pts = append(p.pts, Point{cx, cy}, Point{x, y})
}

// CubeTo adds a cubic bezier segment.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, verbCubeTo)
	p.pts = append(p.pts, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, verbClose)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Transform returns a new path with every point transformed. Affine
// transforms map bezier control points exactly, so curves survive.
func (p *Path) Transform(m Affine) *Path {
	out := &Path{
		verbs: append([]verb(nil), p.verbs...),
		pts:   make([]Point, len(p.pts)),
	}
	for i, pt := range p.pts {
		out.pts[i] = m.Apply(pt)
	}
	return out
}

// Append adds all segments of other to p.
func (p *Path) Append(other *Path) {
	p.verbs = append(p.verbs, other.verbs...)
	p.pts = append(p.pts, other.pts...)
}

// bounds returns the conservative bounding box over all points,
// including control points.
func (p *Path) bounds() rect {
	var r rect
	for _, pt := range p.pts {
		r.add(pt)
	}
	return r
}

// kappa is the cubic bezier circle approximation constant.
const kappa = 0.5522847498307936

// AddCircle appends a circular contour centered at (cx, cy). The
// winding direction matches the segment quads built by StrokePolyline;
// the rasterizer cancels opposite-winding overlaps, so a capsule union
// needs all its contours wound the same way.
func (p *Path) AddCircle(cx, cy, r float64) {
	o := r * kappa
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy-o, cx+o, cy-r, cx, cy-r)
	p.CubeTo(cx-o, cy-r, cx-r, cy-o, cx-r, cy)
	p.CubeTo(cx-r, cy+o, cx-o, cy+r, cx, cy+r)
	p.CubeTo(cx+o, cy+r, cx+r, cy+o, cx+r, cy)
	p.Close()
}

// AddRect appends an axis-aligned rectangle contour.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddRoundedRect appends a rounded rectangle contour. The radius is
// clamped so opposite corners never overlap.
func (p *Path) AddRoundedRect(x, y, w, h, r float64) {
	if r <= 0 {
		p.AddRect(x, y, w, h)
		return
	}
	if max := min(w, h) / 2; r > max {
		r = max
	}
	o := r * (1 - kappa)

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubeTo(x+w-o, y, x+w, y+o, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubeTo(x+w, y+h-o, x+w-o, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubeTo(x+o, y+h, x, y+h-o, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubeTo(x, y+o, x+o, y, x+r, y)
	p.Close()
}
