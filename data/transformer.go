package data

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Linear maps raw values of one dimension from [MinItem, MaxItem] to
// [Min, Max]. Non-numeric input maps to NoData.
type Linear struct {
	store     *Store
	dimension Path

	Min    float64
	Max    float64
	NoData float64

	minItem float64
	maxItem float64
}

// NewLinear creates a transformer for dimension with the item range taken
// from the store.
func NewLinear(store *Store, dimension Path, outMin, outMax float64) *Linear {
	l := &Linear{store: store, dimension: dimension, Min: outMin, Max: outMax, NoData: math.NaN()}
	l.SetItemRange(store.Min(dimension), store.Max(dimension))
	return l
}

// SetItemRange overrides the input range. A degenerate range is widened by
// one on each side; a missing bound becomes zero.
func (l *Linear) SetItemRange(lo, hi float64) {
	if math.IsNaN(lo) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = lo
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	l.minItem, l.maxItem = lo, hi
}

// MinItem returns the lower input bound.
func (l *Linear) MinItem() float64 { return l.minItem }

// MaxItem returns the upper input bound.
func (l *Linear) MaxItem() float64 { return l.maxItem }

// Dimension returns the dimension path the transformer reads.
func (l *Linear) Dimension() Path { return l.dimension }

// Transform maps v to the output range.
func (l *Linear) Transform(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return l.NoData
	}
	return l.Min + (v-l.minItem)/(l.maxItem-l.minItem)*(l.Max-l.Min)
}

// Item returns the raw value at p relative to the dimension.
func (l *Linear) Item(p Path) float64 {
	v, _ := l.store.Value(l.dimension.Append(p...))
	return v
}

// InterpolatedItem blends the raw values at a and b. It is NaN when either
// is missing.
func (l *Linear) InterpolatedItem(a, b Path, blend float64) float64 {
	va, vb := l.Item(a), l.Item(b)
	if blend <= 0 {
		return va
	}
	if blend >= 1 {
		return vb
	}
	return va + (vb-va)*blend
}

// TransformedItem transforms the blend of the raw values at a and b.
func (l *Linear) TransformedItem(a, b Path, blend float64) float64 {
	return l.Transform(l.InterpolatedItem(a, b, blend))
}

// ColorScale maps the values of one dimension onto a gradient between two
// colors, blended in CIE L*a*b* space.
type ColorScale struct {
	*Linear
	From   colorful.Color
	To     colorful.Color
	NoData colorful.Color
}

// NewColorScale creates a color scale over dimension. from and to accept any
// color.Color.
func NewColorScale(store *Store, dimension Path, from, to color.Color) *ColorScale {
	f, _ := colorful.MakeColor(from)
	t, _ := colorful.MakeColor(to)
	return &ColorScale{
		Linear: NewLinear(store, dimension, 0, 1),
		From:   f,
		To:     t,
		NoData: colorful.Color{R: 0.6, G: 0.6, B: 0.6},
	}
}

// At returns the gradient color at t in [0,1].
func (c *ColorScale) At(t float64) colorful.Color {
	if math.IsNaN(t) {
		return c.NoData
	}
	return c.From.BlendLab(c.To, math.Max(0, math.Min(1, t))).Clamped()
}

// Color returns the color of the raw value v.
func (c *ColorScale) Color(v float64) colorful.Color {
	return c.At(c.Transform(v))
}

// TransformedColor returns the color of the blend of the raw values at a and
// b.
func (c *ColorScale) TransformedColor(a, b Path, blend float64) colorful.Color {
	return c.At(c.TransformedItem(a, b, blend))
}

// Hex parses a "#rrggbb" color, falling back to black.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
