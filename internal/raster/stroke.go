package raster

import "math"

// StrokePolyline expands a polyline into a filled outline with round
// caps and round joins. Each segment becomes a quad of half the stroke
// width on each side, and every vertex gets a disc of the same radius.
// The union is expressed as overlapping nonzero-winding contours: the
// rasterizer saturates coverage, so overlaps composite as one shape.
func StrokePolyline(pts []Point, width float64, closed bool) *Path {
	p := NewPath()
	if len(pts) < 2 || width <= 0 {
		return p
	}
	r := width / 2

	n := len(pts)
	limit := n - 1
	if closed {
		limit = n
	}
	for i := 0; i < limit; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		appendSegmentQuad(p, a, b, r)
	}
	for _, pt := range pts {
		p.AddCircle(pt.X, pt.Y, r)
	}
	return p
}

// appendSegmentQuad adds the rectangle of half-width r around segment
// a-b. Zero-length segments contribute nothing; the vertex discs cover
// them.
func appendSegmentQuad(p *Path, a, b Point, r float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal.
	nx := -dy / length * r
	ny := dx / length * r

	p.MoveTo(a.X+nx, a.Y+ny)
	p.LineTo(b.X+nx, b.Y+ny)
	p.LineTo(b.X-nx, b.Y-ny)
	p.LineTo(a.X-nx, a.Y-ny)
	p.Close()
}

// flattenTolerance caps the deviation of the polyline approximation
// from the true curve, in pixels.
const flattenTolerance = 0.25

// Flatten approximates the path's curves with line segments and returns
// one point slice per contour.
func Flatten(p *Path) [][]Point {
	var contours [][]Point
	var cur []Point
	var start Point

	flush := func() {
		if len(cur) >= 2 {
			contours = append(contours, cur)
		}
		cur = nil
	}

	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			flush()
			start = p.pts[i]
			cur = append(cur, start)
			i++
		case verbLineTo:
			cur = append(cur, p.pts[i])
			i++
		case verbQuadTo:
			if len(cur) > 0 {
				cur = flattenQuad(cur, cur[len(cur)-1], p.pts[i], p.pts[i+1])
			}
			i += 2
		case verbCubeTo:
			if len(cur) > 0 {
				cur = flattenCube(cur, cur[len(cur)-1], p.pts[i], p.pts[i+1], p.pts[i+2])
			}
			i += 3
		case verbClose:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return contours
}

// flattenQuad subdivides a quadratic bezier uniformly. The step count
// follows from the flatness bound |p0 - 2c + p1| / (8 * tol).
func flattenQuad(dst []Point, p0, c, p1 Point) []Point {
	devX := p0.X - 2*c.X + p1.X
	devY := p0.Y - 2*c.Y + p1.Y
	dev := math.Hypot(devX, devY)
	n := int(math.Ceil(math.Sqrt(dev / (8 * flattenTolerance))))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, Point{
			X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
			Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
		})
	}
	return dst
}

// flattenCube subdivides a cubic bezier uniformly, bounding deviation by
// the larger of the two control point deflections.
func flattenCube(dst []Point, p0, c1, c2, p1 Point) []Point {
	d1 := math.Hypot(3*c1.X-2*p0.X-p1.X, 3*c1.Y-2*p0.Y-p1.Y)
	d2 := math.Hypot(3*c2.X-p0.X-2*p1.X, 3*c2.Y-p0.Y-2*p1.Y)
	dev := math.Max(d1, d2)
	n := int(math.Ceil(math.Sqrt(dev / (4 * flattenTolerance))))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, Point{
			X: mt*mt*mt*p0.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*p1.X,
			Y: mt*mt*mt*p0.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*p1.Y,
		})
	}
	return dst
}

// StrokeContours strokes every contour of a path as a closed polyline
// with round joins, returning the combined stroke outline. Used for
// outlined glyph rendering.
func StrokeContours(p *Path, width float64) *Path {
	out := NewPath()
	for _, contour := range Flatten(p) {
		closed := len(contour) > 2 &&
			contour[0] == contour[len(contour)-1]
		if closed {
			contour = contour[:len(contour)-1]
		}
		out.Append(StrokePolyline(contour, width, closed))
	}
	return out
}
