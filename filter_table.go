package snapkit

// The transforms below are the reference constant sets for the built-in
// filters. warm, cool, vibrant, vintage, and mono are normative; pastel,
// soft, crisp, and fade follow the same saturate→contrast→lift→gain
// family with constants tuned to match their CSS-filter previews.
//
// All arithmetic runs in float64 on [0, 255] channel values; clamping
// and rounding happen once, in the engine, after the transform returns.

// defaultFilterTable builds the kind→transform table. A fresh map is
// returned per engine so option overrides never leak between engines.
func defaultFilterTable() map[FilterKind]FilterFunc {
	return map[FilterKind]FilterFunc{
		FilterWarm:    warmFilter,
		FilterCool:    coolFilter,
		FilterVibrant: vibrantFilter,
		FilterVintage: vintageFilter,
		FilterMono:    monoFilter,
		FilterPastel: toneFilter(toneParams{
			sat:      0.65,
			contrast: 0.90,
			lift:     [3]float64{12, 12, 14},
			gain:     [3]float64{1.05, 1.05, 1.05},
		}),
		FilterSoft: toneFilter(toneParams{
			sat:      0.90,
			contrast: 0.88,
			lift:     [3]float64{6, 6, 6},
			gain:     [3]float64{1.02, 1.02, 1.02},
		}),
		FilterCrisp: toneFilter(toneParams{
			sat:      1.10,
			contrast: 1.15,
			lift:     [3]float64{0, 0, 0},
			gain:     [3]float64{1.01, 1.01, 1.01},
		}),
		FilterFade: toneFilter(toneParams{
			sat:      0.75,
			contrast: 0.80,
			lift:     [3]float64{20, 20, 18},
			gain:     [3]float64{1.00, 1.00, 1.00},
		}),
	}
}

// saturate moves each channel away from (factor > 1) or toward
// (factor < 1) the pixel's mean gray.
func saturate(r, g, b, sr, sg, sb float64) (float64, float64, float64) {
	gray := (r + g + b) / 3
	return gray + (r-gray)*sr,
		gray + (g-gray)*sg,
		gray + (b-gray)*sb
}

// contrast128 scales a channel about the 128 midpoint.
func contrast128(v, factor float64) float64 {
	return (v-128)*factor + 128
}

func warmFilter(r, g, b float64) (float64, float64, float64) {
	r, g, b = saturate(r, g, b, 1.15, 1.10, 0.90)
	r, g, b = r+15, g+8, b-20
	return r * 1.08, g * 1.05, b * 1.00
}

func coolFilter(r, g, b float64) (float64, float64, float64) {
	r, g, b = saturate(r, g, b, 0.90, 1.00, 1.10)
	r, g, b = r-10, g+5, b+20
	return r * 1.02, g * 1.05, b * 1.08
}

func vibrantFilter(r, g, b float64) (float64, float64, float64) {
	r, g, b = saturate(r, g, b, 1.5, 1.5, 1.5)
	r = contrast128(r, 1.1)
	g = contrast128(g, 1.1)
	b = contrast128(b, 1.1)
	return r * 1.03, g * 1.03, b * 1.03
}

func vintageFilter(r, g, b float64) (float64, float64, float64) {
	r, g, b = saturate(r, g, b, 0.7, 0.7, 0.7)
	r, g, b = r*1.1+10, g*1.0+5, b*0.85-5
	r = contrast128(r, 0.85)
	g = contrast128(g, 0.85)
	b = contrast128(b, 0.85)
	return r + 15, g + 10, b + 5
}

// monoFilter uses Rec. 601 luminance weights, then boosts contrast.
func monoFilter(r, g, b float64) (float64, float64, float64) {
	l := 0.299*r + 0.587*g + 0.114*b
	l = contrast128(l, 1.1)
	return l, l, l
}

// toneParams parameterizes the saturate→contrast→lift→gain family shared
// by the pastel, soft, crisp, and fade looks.
type toneParams struct {
	sat      float64
	contrast float64
	lift     [3]float64
	gain     [3]float64
}

func toneFilter(p toneParams) FilterFunc {
	return func(r, g, b float64) (float64, float64, float64) {
		r, g, b = saturate(r, g, b, p.sat, p.sat, p.sat)
		r = contrast128(r, p.contrast)
		g = contrast128(g, p.contrast)
		b = contrast128(b, p.contrast)
		return (r + p.lift[0]) * p.gain[0],
			(g + p.lift[1]) * p.gain[1],
			(b + p.lift[2]) * p.gain[2]
	}
}
