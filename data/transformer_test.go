package data

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func newTestStore() *Store {
	s := NewStore()
	s.Set(Path{"x", "a", "1990"}, 5)
	s.Set(Path{"x", "b", "1990"}, -3)
	s.Set(Path{"x", "b", "2000"}, 1)
	return s
}

func TestLinearTransform(t *testing.T) {
	l := NewLinear(newTestStore(), Path{"x"}, 0, 100)
	if l.MinItem() != -3 || l.MaxItem() != 5 {
		t.Fatalf("expected item range [-3,5], got [%v,%v]", l.MinItem(), l.MaxItem())
	}
	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{5, 100},
		{1, 50},
		{9, 150},
	}
	for _, tt := range tests {
		if got := l.Transform(tt.in); got != tt.want {
			t.Errorf("Transform(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if !math.IsNaN(l.Transform(math.NaN())) || !math.IsNaN(l.Transform(math.Inf(1))) {
		t.Error("expected NoData for non-numeric input")
	}
	l.NoData = -1
	if l.Transform(math.NaN()) != -1 {
		t.Error("expected the configured NoData")
	}
}

func TestLinearItemRange(t *testing.T) {
	l := NewLinear(NewStore(), Path{"x"}, 0, 1)
	tests := []struct {
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{2, 2, 1, 3},
		{5, 1, 1, 5},
		{math.NaN(), math.NaN(), -1, 1},
		{4, math.NaN(), 3, 5},
	}
	for _, tt := range tests {
		l.SetItemRange(tt.lo, tt.hi)
		if l.MinItem() != tt.wantLo || l.MaxItem() != tt.wantHi {
			t.Errorf("SetItemRange(%v,%v): expected [%v,%v], got [%v,%v]",
				tt.lo, tt.hi, tt.wantLo, tt.wantHi, l.MinItem(), l.MaxItem())
		}
	}
}

func TestLinearInterpolatedItem(t *testing.T) {
	l := NewLinear(newTestStore(), Path{"x"}, 0, 1)
	a, b := Path{"b", "1990"}, Path{"b", "2000"}
	tests := []struct {
		blend, want float64
	}{
		{0, -3},
		{0.25, -2},
		{1, 1},
		{-1, -3},
		{2, 1},
	}
	for _, tt := range tests {
		if got := l.InterpolatedItem(a, b, tt.blend); got != tt.want {
			t.Errorf("blend %v: expected %v, got %v", tt.blend, tt.want, got)
		}
	}
	missing := Path{"a", "2000"}
	if !math.IsNaN(l.InterpolatedItem(Path{"a", "1990"}, missing, 0.5)) {
		t.Error("expected NaN with a missing endpoint")
	}
	if got := l.InterpolatedItem(Path{"a", "1990"}, missing, 0); got != 5 {
		t.Errorf("expected the first endpoint at blend 0, got %v", got)
	}
	if got := l.TransformedItem(a, b, 1); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestColorScale(t *testing.T) {
	red, blue := Hex("#ff0000"), Hex("#0000ff")
	c := NewColorScale(newTestStore(), Path{"x"}, red, blue)
	if !c.Color(-3).AlmostEqualRgb(red) {
		t.Errorf("expected red at the minimum, got %v", c.Color(-3).Hex())
	}
	if !c.Color(5).AlmostEqualRgb(blue) {
		t.Errorf("expected blue at the maximum, got %v", c.Color(5).Hex())
	}
	if !c.Color(100).AlmostEqualRgb(blue) {
		t.Error("expected out-of-range values clamped")
	}
	if c.At(math.NaN()) != c.NoData {
		t.Error("expected NoData for NaN")
	}
	mid := c.TransformedColor(Path{"b", "1990"}, Path{"a", "1990"}, 0.5)
	if mid.AlmostEqualRgb(red) || mid.AlmostEqualRgb(blue) {
		t.Errorf("expected a blend, got %v", mid.Hex())
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#ff8000"); !got.AlmostEqualRgb(colorful.Color{R: 1, G: 128.0 / 255, B: 0}) {
		t.Errorf("unexpected color %v", got)
	}
	if got := Hex("nope"); got != (colorful.Color{}) {
		t.Errorf("expected black fallback, got %v", got)
	}
}
