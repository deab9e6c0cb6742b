// Package effects implements the pixel-level post-processing used by
// text decorations: Gaussian blur of alpha masks and shadow
// compositing.
package effects

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// GaussianKernel builds a normalized 1D Gaussian kernel for the given
// standard deviation. The radius is 3 sigma, which captures 99.7% of
// the distribution.
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	radius := int(math.Ceil(3 * sigma))
	size := 2*radius + 1
	kernel := make([]float64, size)

	var sum float64
	inv2s2 := 1 / (2 * sigma * sigma)
	for i := range kernel {
		d := float64(i - radius)
		v := math.Exp(-d * d * inv2s2)
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// BlurAlpha returns a Gaussian-blurred copy of the alpha mask,
// expanded by the kernel radius so the falloff is not clipped. Uses
// two separable passes; samples outside the source read as zero.
func BlurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	if sigma <= 0 || src.Rect.Empty() {
		return src
	}
	kernel := GaussianKernel(sigma)
	radius := len(kernel) / 2

	bounds := src.Rect.Inset(-radius)
	w := bounds.Dx()
	h := bounds.Dy()

	// Horizontal pass into a float buffer.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		sy := bounds.Min.Y + y
		for x := 0; x < w; x++ {
			var acc float64
			for k, kv := range kernel {
				sx := bounds.Min.X + x + k - radius
				if pt := (image.Point{sx, sy}); pt.In(src.Rect) {
					acc += kv * float64(src.AlphaAt(sx, sy).A)
				}
			}
			tmp[y*w+x] = acc
		}
	}

	// Vertical pass into the destination.
	dst := image.NewAlpha(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for k, kv := range kernel {
				sy := y + k - radius
				if sy >= 0 && sy < h {
					acc += kv * tmp[sy*w+x]
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(math.Min(255, acc+0.5))
		}
	}
	return dst
}

// ShadowOver composites the alpha mask onto dst as a colored shadow,
// offset by (dx, dy) pixels, source-over.
func ShadowOver(dst *image.RGBA, mask *image.Alpha, dx, dy int, c color.NRGBA) {
	if mask.Rect.Empty() {
		return
	}
	r := mask.Rect.Add(image.Point{dx, dy}).Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{},
		mask, r.Min.Sub(image.Point{dx, dy}), draw.Over)
}
