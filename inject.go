package bubblechart

// syntheticPointerEvent is a single injected pointer sample. Coordinates are
// chart pixels, exactly as the real cursor reports them.
type syntheticPointerEvent struct {
	x, y      float64
	pressed   bool
	button    MouseButton
	wheel     float64
	modifiers KeyModifiers
}

// InjectModifiers sets the modifier keys reported with injected events
// queued from now on.
func (c *Chart) InjectModifiers(mods KeyModifiers) {
	c.injectMods = mods
}

// InjectPress queues a left button press. The event is consumed on the next
// Update.
func (c *Chart) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft, modifiers: c.injectMods,
	})
}

// InjectMove queues a move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Chart) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft, modifiers: c.injectMods,
	})
}

// InjectHover queues a move with no button held.
func (c *Chart) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		x: x, y: y, modifiers: c.injectMods,
	})
}

// InjectRelease queues a button release.
func (c *Chart) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft, modifiers: c.injectMods,
	})
}

// InjectWheel queues a wheel movement at (x, y).
func (c *Chart) InjectWheel(x, y, dy float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		x: x, y: y, wheel: dy, modifiers: c.injectMods,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (c *Chart) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (c *Chart) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the queue and feeds it through the
// pointer state machine. It reports whether an event was consumed.
func (c *Chart) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.wheel != 0 {
		c.processWheel(evt.x, evt.y, evt.wheel, evt.modifiers)
		return true
	}
	c.processPointer(evt.x, evt.y, evt.pressed, evt.button, evt.modifiers)
	return true
}
