package bubblechart

import "math"

// Damping constants for Animatable.
const (
	// AnimationDamping is the fraction of the remaining distance covered per
	// tick.
	AnimationDamping = 0.25
	// AnimationEpsilon is the residual below which a value snaps to its
	// target.
	AnimationEpsilon = 0.001
)

// Animatable is a scalar converging on a target by damped interpolation, one
// step per animation tick. The zero value is uninitialized: the first Set
// places the value without animating.
type Animatable struct {
	current     float64
	next        float64
	initialized bool
}

// Current returns the displayed value.
func (a *Animatable) Current() float64 { return a.current }

// Next returns the target value.
func (a *Animatable) Next() float64 { return a.next }

// Initialized reports whether a value was ever set.
func (a *Animatable) Initialized() bool { return a.initialized }

// Set changes the target. An uninitialized animatable jumps straight to it.
func (a *Animatable) Set(v float64) {
	a.next = v
	if !a.initialized {
		a.current = v
		a.initialized = true
	}
}

// Skip jumps the displayed value to the target.
func (a *Animatable) Skip() {
	a.current = a.next
}

// Settled reports whether the displayed value equals the target.
func (a *Animatable) Settled() bool {
	return a.current == a.next
}

// Animate advances one tick and reports whether the displayed value changed.
func (a *Animatable) Animate() bool {
	if a.current == a.next {
		return false
	}
	a.current += (a.next - a.current) * AnimationDamping
	if math.Abs(a.next-a.current) < AnimationEpsilon {
		a.current = a.next
	}
	return true
}
