package bubblechart

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	doubleClickTicks    = 18  // max ticks between the clicks of a double click
)

// pointerState is the mouse state machine: press, release, click, double
// click and drag with a dead zone, plus leave detection.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	target   Widget // widget pressed on; receives the drag
	dragging bool
	button   MouseButton
	inside   bool // pointer is over the chart

	tick       int
	clickTick  int
	clickX     float64
	clickY     float64
	clickValid bool
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Chart.Update. Injected events take precedence
// over the real mouse for the frame.
func (c *Chart) processInput() {
	c.pointer.tick++
	if c.processInjectedInput() {
		return
	}
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	c.processPointer(x, y, pressed, button, mods)

	if _, wy := ebiten.Wheel(); wy != 0 {
		c.processWheel(x, y, wy, mods)
	}
}

// hitTest returns the front-most interactive widget whose inner rect contains
// (x, y).
func (c *Chart) hitTest(x, y float64) Widget {
	for _, w := range c.interactive() {
		b := w.Base()
		if b.Visible && b.Enabled && b.InnerRect().Contains(x, y) {
			return w
		}
	}
	return nil
}

// processPointer runs the pointer state machine for one sample.
func (c *Chart) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &c.pointer

	inside := c.Bounds().Contains(x, y)
	if ps.inside && !inside && !ps.down {
		c.fire(nil, &Event{Kind: EventMouseLeave, X: x, Y: y, Modifiers: mods})
	}
	ps.inside = inside

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.target = c.hitTest(x, y)
		ps.dragging = false
		c.fire(nil, &Event{Kind: EventMouseDown, X: x, Y: y, Button: button, Modifiers: mods})

	case !pressed && ps.down:
		if ps.dragging {
			c.fire(ps.target, &Event{Kind: EventDragEnd, X: x, Y: y,
				StartX: ps.startX, StartY: ps.startY,
				DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
				Button: ps.button, Modifiers: mods})
		} else if ps.target != nil && ps.target == c.hitTest(x, y) {
			c.fire(nil, &Event{Kind: EventClick, X: x, Y: y, Button: ps.button, Modifiers: mods})
			c.detectDoubleClick(x, y, mods)
		}
		c.fire(nil, &Event{Kind: EventMouseUp, X: x, Y: y, Button: ps.button, Modifiers: mods})
		ps.down = false
		ps.target = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx, dy := x-ps.startX, y-ps.startY
				if math.Sqrt(dx*dx+dy*dy) > c.dragDeadZone {
					ps.dragging = true
					ps.clickValid = false
					c.fire(ps.target, &Event{Kind: EventDragStart, X: x, Y: y,
						StartX: ps.startX, StartY: ps.startY,
						DeltaX: dx, DeltaY: dy,
						Button: ps.button, Modifiers: mods})
				}
			}
			if ps.dragging {
				c.fire(ps.target, &Event{Kind: EventDrag, X: x, Y: y,
					StartX: ps.startX, StartY: ps.startY,
					DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
					Button: ps.button, Modifiers: mods})
			}
		}
		ps.lastX, ps.lastY = x, y

	default:
		if x != ps.lastX || y != ps.lastY {
			c.fire(nil, &Event{Kind: EventMouseMove, X: x, Y: y, Modifiers: mods})
			ps.lastX, ps.lastY = x, y
		}
	}
}

// detectDoubleClick fires a DoubleClick when this click follows the previous
// one closely enough in time and space.
func (c *Chart) detectDoubleClick(x, y float64, mods KeyModifiers) {
	ps := &c.pointer
	if ps.clickValid && ps.tick-ps.clickTick <= doubleClickTicks &&
		math.Abs(x-ps.clickX) <= c.dragDeadZone && math.Abs(y-ps.clickY) <= c.dragDeadZone {
		ps.clickValid = false
		c.fire(nil, &Event{Kind: EventDoubleClick, X: x, Y: y, Button: ps.button, Modifiers: mods})
		return
	}
	ps.clickValid = true
	ps.clickTick = ps.tick
	ps.clickX, ps.clickY = x, y
}

// processWheel dispatches a wheel movement.
func (c *Chart) processWheel(x, y, dy float64, mods KeyModifiers) {
	c.fire(nil, &Event{Kind: EventWheel, X: x, Y: y, WheelY: dy, Modifiers: mods})
}

// fire delivers e to target when set, bypassing hit testing, or through the
// control tree otherwise. Reflow and repaint requests made by handlers are
// merged into one invalidation.
func (c *Chart) fire(target Widget, e *Event) {
	if target != nil {
		if h := target.Base().handlerFor(e.Kind); h != nil {
			h(e)
		}
	} else {
		c.Handle(e)
	}
	if e.Reflow || e.Repaint {
		c.Invalidate(e.Reflow, e.Repaint)
	}
}
