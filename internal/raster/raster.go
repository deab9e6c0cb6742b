// Package raster provides path building, polyline stroking, and
// antialiased filling for the composition engine. Filling is done with
// golang.org/x/image/vector; strokes become filled outlines first
// (round caps and joins as a union of segment quads and vertex discs),
// so there is a single rasterization code path.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Point is a 2D point (package-local copy to avoid an import cycle with
// the root package).
type Point struct {
	X, Y float64
}

// Affine is a 2x3 affine transform: x' = A*x + B*y + C, y' = D*x + E*y + F.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Apply transforms a point.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Target is a raw RGBA pixel buffer to rasterize into.
type Target struct {
	Pix    []uint8
	Width  int
	Height int
}

// rgba wraps the target buffer as an *image.RGBA for drawing.
func (t Target) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    t.Pix,
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

// Fill rasterizes the path into the target with the given color using
// source-over compositing and analytic antialiasing.
func Fill(t Target, p *Path, c color.NRGBA) {
	bounds := p.bounds().intersect(image.Rect(0, 0, t.Width, t.Height))
	if bounds.Empty() {
		return
	}
	z := rasterize(p, bounds)
	z.Draw(t.rgba(), bounds, image.NewUniform(c), image.Point{})
}

// FillMask rasterizes the path into a fresh alpha mask clipped to
// clip. The mask's Rect is positioned in target space so callers can
// composite it back without extra bookkeeping.
func FillMask(p *Path, clip image.Rectangle) *image.Alpha {
	bounds := p.bounds().intersect(clip)
	if bounds.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	mask := image.NewAlpha(bounds)
	z := rasterize(p, bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// rasterize feeds the path into a vector.Rasterizer local to bounds.
func rasterize(p *Path, bounds image.Rectangle) *vector.Rasterizer {
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ox := float32(bounds.Min.X)
	oy := float32(bounds.Min.Y)

	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			pt := p.pts[i]
			z.MoveTo(float32(pt.X)-ox, float32(pt.Y)-oy)
			i++
		case verbLineTo:
			pt := p.pts[i]
			z.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
			i++
		case verbQuadTo:
			c, pt := p.pts[i], p.pts[i+1]
			z.QuadTo(float32(c.X)-ox, float32(c.Y)-oy, float32(pt.X)-ox, float32(pt.Y)-oy)
			i += 2
		case verbCubeTo:
			c1, c2, pt := p.pts[i], p.pts[i+1], p.pts[i+2]
			z.CubeTo(float32(c1.X)-ox, float32(c1.Y)-oy,
				float32(c2.X)-ox, float32(c2.Y)-oy,
				float32(pt.X)-ox, float32(pt.Y)-oy)
			i += 3
		case verbClose:
			z.ClosePath()
		}
	}
	return z
}

// rect is a float bounding box.
type rect struct {
	minX, minY, maxX, maxY float64
	valid                  bool
}

func (r *rect) add(p Point) {
	if !r.valid {
		r.minX, r.maxX = p.X, p.X
		r.minY, r.maxY = p.Y, p.Y
		r.valid = true
		return
	}
	r.minX = math.Min(r.minX, p.X)
	r.maxX = math.Max(r.maxX, p.X)
	r.minY = math.Min(r.minY, p.Y)
	r.maxY = math.Max(r.maxY, p.Y)
}

func (r rect) intersect(clip image.Rectangle) image.Rectangle {
	if !r.valid {
		return image.Rectangle{}
	}
	// Outset by one pixel for antialiased edges.
	ir := image.Rect(
		int(math.Floor(r.minX))-1, int(math.Floor(r.minY))-1,
		int(math.Ceil(r.maxX))+1, int(math.Ceil(r.maxY))+1,
	)
	return ir.Intersect(clip)
}
