package snapkit

import (
	"fmt"
	"log/slog"
)

// FilterKind identifies one of the named color transforms.
type FilterKind int

const (
	// FilterOriginal leaves the buffer untouched.
	FilterOriginal FilterKind = iota
	// FilterWarm shifts toward red/yellow with a slight brightness lift.
	FilterWarm
	// FilterCool shifts toward blue with a slight brightness lift.
	FilterCool
	// FilterVibrant boosts saturation and contrast.
	FilterVibrant
	// FilterVintage desaturates and tints toward faded film tones.
	FilterVintage
	// FilterPastel softens saturation and lifts the shadows.
	FilterPastel
	// FilterMono converts to contrast-boosted grayscale.
	FilterMono
	// FilterSoft lowers contrast gently.
	FilterSoft
	// FilterCrisp raises contrast and saturation slightly.
	FilterCrisp
	// FilterFade compresses contrast and washes out the blacks.
	FilterFade
)

// filterNames maps FilterKind to its wire name.
var filterNames = [...]string{
	FilterOriginal: "original",
	FilterWarm:     "warm",
	FilterCool:     "cool",
	FilterVibrant:  "vibrant",
	FilterVintage:  "vintage",
	FilterPastel:   "pastel",
	FilterMono:     "mono",
	FilterSoft:     "soft",
	FilterCrisp:    "crisp",
	FilterFade:     "fade",
}

// String returns the wire name of the filter kind.
func (k FilterKind) String() string {
	if k < 0 || int(k) >= len(filterNames) {
		return "unknown"
	}
	return filterNames[k]
}

// ParseFilterKind resolves a wire name to a FilterKind.
func ParseFilterKind(name string) (FilterKind, bool) {
	for k, n := range filterNames {
		if n == name {
			return FilterKind(k), true
		}
	}
	return FilterOriginal, false
}

// FilterKinds returns all filter kinds in menu order.
func FilterKinds() []FilterKind {
	kinds := make([]FilterKind, len(filterNames))
	for i := range filterNames {
		kinds[i] = FilterKind(i)
	}
	return kinds
}

// FilterFunc transforms one pixel. Inputs and outputs are straight-alpha
// R, G, B channel values in the [0, 255] float range; alpha is never
// passed because no filter touches it. The engine clamps and rounds the
// result once, after all arithmetic.
type FilterFunc func(r, g, b float64) (float64, float64, float64)

// FilterEngine applies named color transforms to raw RGBA buffers,
// pixel by pixel, entirely on the CPU. Every pixel is independent, so
// output is deterministic and byte-identical across platforms.
//
// The kind→transform table is fixed at construction and never mutated.
// A FilterEngine is cheap and single-caller: it reuses one scratch
// snapshot buffer across Apply calls, so share it between goroutines
// only with external synchronization.
type FilterEngine struct {
	table   map[FilterKind]FilterFunc
	scratch []uint8
}

// NewFilterEngine creates a filter engine with the default transform
// table, optionally overridden per kind via WithFilterFunc.
func NewFilterEngine(opts ...FilterOption) *FilterEngine {
	table := defaultFilterTable()
	for _, opt := range opts {
		opt(table)
	}
	return &FilterEngine{table: table}
}

// FilterOption customizes a FilterEngine during creation.
type FilterOption func(map[FilterKind]FilterFunc)

// WithFilterFunc replaces the transform for one kind. This is the
// extension point for product experiments with alternate constant sets.
func WithFilterFunc(kind FilterKind, fn FilterFunc) FilterOption {
	return func(table map[FilterKind]FilterFunc) {
		table[kind] = fn
	}
}

// Apply runs the named transform over every pixel of pm, in place, and
// returns pm for chaining. FilterOriginal is a no-op.
//
// If the transform faults mid-buffer, the buffer is restored to its
// pre-filter bytes and a *FilterError is returned: the output is always
// either fully filtered or untouched, never partially applied.
func (e *FilterEngine) Apply(pm *Pixmap, kind FilterKind) (*Pixmap, error) {
	if pm == nil || kind == FilterOriginal {
		return pm, nil
	}

	fn, ok := e.table[kind]
	if !ok {
		return pm, &FilterError{Kind: kind, Err: fmt.Errorf("no transform registered")}
	}

	// Snapshot into the reusable scratch buffer so a faulting transform
	// can be rolled back without the caller ever seeing partial output.
	data := pm.Data()
	if cap(e.scratch) < len(data) {
		e.scratch = make([]uint8, len(data))
	}
	e.scratch = e.scratch[:len(data)]
	copy(e.scratch, data)

	if err := runFilter(data, fn); err != nil {
		copy(data, e.scratch)
		Logger().Warn("filter fallback to unfiltered buffer",
			slog.String("filter", kind.String()), slog.Any("error", err))
		return pm, &FilterError{Kind: kind, Err: err}
	}
	return pm, nil
}

// runFilter executes the per-pixel loop, converting a transform panic
// into an error for the caller to handle.
func runFilter(data []uint8, fn FilterFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panic: %v", r)
		}
	}()

	for i := 0; i < len(data); i += 4 {
		r, g, b := fn(float64(data[i]), float64(data[i+1]), float64(data[i+2]))
		data[i+0] = roundByte(r)
		data[i+1] = roundByte(g)
		data[i+2] = roundByte(b)
		// data[i+3] (alpha) untouched by contract.
	}
	return nil
}

// roundByte clamps to [0, 255] and rounds to nearest. This is the single
// rounding point of the filter pipeline; all preceding arithmetic stays
// in float64.
func roundByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
