package bubblechart

import (
	"math"

	"github.com/phanxgames/bubblechart/data"
)

// BubbleState is a stage of the bubble lifecycle.
type BubbleState uint8

const (
	BubbleWaiting      BubbleState = iota // created, not yet animated
	BubbleAppearing                       // growing towards its first target
	BubbleNormal                          // settled or following data changes
	BubbleDisappearing                    // shrinking to zero after its data vanished
	BubbleDisappeared                     // settled at zero; the owner removes it
)

func (s BubbleState) String() string {
	switch s {
	case BubbleWaiting:
		return "waiting"
	case BubbleAppearing:
		return "appearing"
	case BubbleNormal:
		return "normal"
	case BubbleDisappearing:
		return "disappearing"
	case BubbleDisappeared:
		return "disappeared"
	default:
		return "unknown"
	}
}

// BubbleStateChange describes one lifecycle transition.
type BubbleStateChange struct {
	Bubble   *Bubble
	From, To BubbleState
}

// Bubble is one entity of the chart: a circle whose box is four animated
// scalars. Center and radius are derived from the box.
type Bubble struct {
	Path  data.Path // entity key into the data store
	Label string
	Color Color

	BorderWidth float64
	BorderColor Color

	left, top, width, height Animatable

	state BubbleState

	// StateChange fires after every lifecycle transition.
	StateChange Signal[BubbleStateChange]
	// Invalidated fires on every tick that moved the bubble.
	Invalidated Signal[*Bubble]
}

// NewBubble creates a waiting bubble.
func NewBubble(path data.Path) *Bubble {
	return &Bubble{Path: path, BorderWidth: 1}
}

// State returns the lifecycle stage.
func (b *Bubble) State() BubbleState { return b.state }

func (b *Bubble) setState(s BubbleState) {
	if b.state == s {
		return
	}
	from := b.state
	b.state = s
	b.StateChange.Emit(BubbleStateChange{Bubble: b, From: from, To: s})
}

// Alive reports whether the bubble is neither disappearing nor gone.
func (b *Bubble) Alive() bool {
	return b.state < BubbleDisappearing
}

// SetCenter sets the target center and radius.
func (b *Bubble) SetCenter(x, y, r float64) {
	r = math.Max(r, 0)
	b.left.Set(x - r)
	b.top.Set(y - r)
	b.width.Set(2 * r)
	b.height.Set(2 * r)
}

// Center returns the displayed center and radius.
func (b *Bubble) Center() (x, y, r float64) {
	w, h := b.width.Current(), b.height.Current()
	return b.left.Current() + w/2, b.top.Current() + h/2, math.Min(w, h) / 2
}

// Target returns the center and radius the bubble converges on.
func (b *Bubble) Target() (x, y, r float64) {
	w, h := b.width.Next(), b.height.Next()
	return b.left.Next() + w/2, b.top.Next() + h/2, math.Min(w, h) / 2
}

// Box returns the displayed bounding box.
func (b *Bubble) Box() Rect {
	return NewRect(b.left.Current(), b.top.Current(), b.width.Current(), b.height.Current())
}

// Skip places the bubble at its target without animating.
func (b *Bubble) Skip() {
	b.left.Skip()
	b.top.Skip()
	b.width.Skip()
	b.height.Skip()
}

// Settled reports whether every property reached its target.
func (b *Bubble) Settled() bool {
	return b.left.Settled() && b.top.Settled() && b.width.Settled() && b.height.Settled()
}

// Disappear drives the radius to zero around the current target center.
func (b *Bubble) Disappear() {
	if !b.Alive() {
		return
	}
	x, y, _ := b.Target()
	b.SetCenter(x, y, 0)
	b.setState(BubbleDisappearing)
}

// Revive brings a disappearing bubble back.
func (b *Bubble) Revive() {
	if b.state == BubbleDisappearing || b.state == BubbleDisappeared {
		b.setState(BubbleAppearing)
	}
}

// Animate advances every property by one tick, applies the lifecycle
// transitions and reports whether anything moved.
func (b *Bubble) Animate() bool {
	changed := b.left.Animate()
	changed = b.top.Animate() || changed
	changed = b.width.Animate() || changed
	changed = b.height.Animate() || changed

	switch b.state {
	case BubbleWaiting:
		if changed {
			b.setState(BubbleAppearing)
		} else {
			b.setState(BubbleNormal)
		}
	case BubbleAppearing:
		if !changed {
			b.setState(BubbleNormal)
		}
	case BubbleDisappearing:
		if !changed {
			b.setState(BubbleDisappeared)
		}
	}
	if changed {
		b.Invalidated.Emit(b)
	}
	return changed
}

// Contains reports whether (x, y) lies inside the displayed circle.
func (b *Bubble) Contains(x, y float64) bool {
	cx, cy, r := b.Center()
	dx, dy := x-cx, y-cy
	return r > 0 && dx*dx+dy*dy <= r*r
}

// Paint draws the bubble. Highlighted bubbles get a doubled border.
func (b *Bubble) Paint(ctx Canvas, highlighted bool) {
	if ctx == nil || b.state == BubbleDisappeared {
		return
	}
	x, y, r := b.Center()
	if r <= 0 {
		return
	}
	ctx.FillCircle(x, y, r, b.Color)
	w := b.BorderWidth
	if highlighted {
		w *= 2
	}
	if w > 0 {
		ctx.StrokeCircle(x, y, r, w, b.BorderColor)
	}
}
