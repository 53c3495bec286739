package bubblechart

import (
	"math"

	"gonum.org/v1/plot"
)

// NiceRange widens [lo, hi] to the nearest major tick positions chosen by
// gonum/plot's default ticker. It returns the widened bounds and the number
// of evenly spaced major ticks between them, ends included.
func NiceRange(lo, hi float64) (from, to float64, count int) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 1, 2
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	var majors []float64
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() {
			continue
		}
		majors = append(majors, t.Value)
	}
	if len(majors) < 2 {
		return lo, hi, 2
	}
	step := majors[1] - majors[0]
	from, to = majors[0], majors[len(majors)-1]
	for from > lo {
		from -= step
	}
	for to < hi {
		to += step
	}
	count = int(math.Round((to-from)/step)) + 1
	return from, to, count
}

// tickDecimals returns the number of fraction digits needed to tell apart
// values step apart.
func tickDecimals(step float64) int {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	d := -int(math.Floor(math.Log10(step) + 1e-9))
	return min(max(d, 0), 6)
}
