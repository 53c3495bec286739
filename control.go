package bubblechart

import (
	"fmt"
	"math"
)

// Widget is implemented by every element of the control tree.
type Widget interface {
	// Reflow computes final position and size inside space.
	Reflow(space Rect)
	// Repaint draws the current geometry to the bound canvas.
	Repaint()
	// Handle offers e to the widget and reports whether it was accepted.
	Handle(e *Event) bool
	// Bind attaches the drawing context and scheduler, recursively.
	Bind(ctx Canvas, s Scheduler)
	// Base returns the embedded control state.
	Base() *Control
}

// ControlConfig enumerates the options shared by every control.
type ControlConfig struct {
	Name       string
	Margin     Spacing
	Padding    Spacing
	Border     Border
	Background Color
	HAlign     Align
	VAlign     Align
	Hidden     bool // start invisible
	Disabled   bool // start ignoring events
	Capture    bool // accept events outside the inner rect
}

// Control is the state block embedded by every widget: box model geometry,
// decoration, alignment, binding, invalidation and event handlers.
type Control struct {
	Rect
	Handlers

	Name       string
	Margin     Spacing
	Padding    Spacing
	Border     Border
	Background Color
	HAlign     Align
	VAlign     Align
	Visible    bool
	Enabled    bool
	Capture    bool

	ctx       Canvas
	scheduler Scheduler
	self      Widget
	parent    *Control
	space     Rect // last space handed to Reflow
	pending   invalidation

	// Refreshed fires after a deferred reflow/repaint job ran.
	Refreshed Signal[*Control]
}

// init wires the control to the widget embedding it.
func (c *Control) init(self Widget, cfg ControlConfig) {
	c.self = self
	c.Name = cfg.Name
	c.Margin = cfg.Margin
	c.Padding = cfg.Padding
	c.Border = cfg.Border
	c.Background = cfg.Background
	c.HAlign = cfg.HAlign
	c.VAlign = cfg.VAlign
	c.Visible = !cfg.Hidden
	c.Enabled = !cfg.Disabled
	c.Capture = cfg.Capture
}

// Base returns c.
func (c *Control) Base() *Control { return c }

// Context returns the bound canvas, or nil.
func (c *Control) Context() Canvas { return c.ctx }

// Space returns the space handed to the last Reflow.
func (c *Control) Space() Rect { return c.space }

// Bind attaches the drawing context and scheduler.
func (c *Control) Bind(ctx Canvas, s Scheduler) {
	c.ctx = ctx
	c.scheduler = s
}

// adopt makes child report invalidations through c and binds it to c's
// context.
func (c *Control) adopt(child Widget) {
	if child == nil {
		panic(fmt.Sprintf("bubblechart: %q adopting a nil child", c.Name))
	}
	child.Base().parent = c
	child.Bind(c.ctx, c.scheduler)
}

// insets returns the total distance between the outer and inner rect on
// every side: margin, border width, padding and border radius.
func (c *Control) insets() Spacing {
	e := c.Border.Width + c.Border.Radius
	return Spacing{
		Left:   c.Margin.Left + e + c.Padding.Left,
		Top:    c.Margin.Top + e + c.Padding.Top,
		Right:  c.Margin.Right + e + c.Padding.Right,
		Bottom: c.Margin.Bottom + e + c.Padding.Bottom,
	}
}

// InnerRect returns the content area, floored at zero size.
func (c *Control) InnerRect() Rect {
	return c.Bounds().Inset(c.insets())
}

// Reflow aligns the control inside space. Widgets compute their content size
// first and then call this.
func (c *Control) Reflow(space Rect) {
	c.space = space
	if !c.assertReflow(false) {
		return
	}
	c.align(space)
}

// assertReflow reports whether layout may proceed. When it may not, every
// axis that is not AlignNone collapses to zero size.
func (c *Control) assertReflow(failed bool) bool {
	if c.ctx != nil && c.Visible && !failed {
		return true
	}
	if c.HAlign != AlignNone {
		c.width = 0
	}
	if c.VAlign != AlignNone {
		c.height = 0
	}
	return false
}

func (c *Control) align(space Rect) {
	c.left, c.width = alignAxis(c.HAlign, c.left, c.width, space.left, space.width)
	c.top, c.height = alignAxis(c.VAlign, c.top, c.height, space.top, space.height)
}

// alignAxis places a segment (pos, size) inside (spacePos, spaceSize).
func alignAxis(a Align, pos, size, spacePos, spaceSize float64) (float64, float64) {
	switch a {
	case AlignLeft:
		return spacePos, size
	case AlignCenter:
		return spacePos + (spaceSize-size)/2, size
	case AlignRight:
		return spacePos + spaceSize - size, size
	case AlignFit:
		return spacePos, spaceSize
	}
	return pos, size
}

// Repaint fills the background and strokes the border.
func (c *Control) Repaint() {
	if !c.assertRepaint() {
		return
	}
	c.paintBox()
}

// assertRepaint reports whether painting may proceed.
func (c *Control) assertRepaint() bool {
	return c.ctx != nil && c.Visible && c.width > 0 && c.height > 0
}

// paintBox draws background and border inside the margin.
func (c *Control) paintBox() {
	box := c.Bounds().Inset(c.Margin)
	if !c.Background.IsTransparent() {
		c.ctx.FillRect(box, c.Border.Radius, c.Background)
	}
	if w := c.Border.Width; w > 0 && !c.Border.Color.IsTransparent() {
		half := w / 2
		l := pixelAlign(box.Left()+half, w)
		t := pixelAlign(box.Top()+half, w)
		r := pixelAlign(box.Right()-half, w)
		b := pixelAlign(box.Bottom()-half, w)
		c.ctx.StrokeRect(NewRect(l, t, r-l, b-t), c.Border.Radius, w, c.Border.Color)
	}
}

// pixelAlign snaps a stroke center so a line of the given width covers whole
// pixels: odd widths land on half pixels, even widths on whole pixels.
func pixelAlign(v, width float64) float64 {
	if int(math.Round(width))%2 == 1 {
		return math.Floor(v) + 0.5
	}
	return math.Round(v)
}

// Invalidate requests a deferred reflow and/or repaint. Requests made before
// the job runs are merged, so any number of calls within one tick produce a
// single combined job. Controls with a parent forward to it.
func (c *Control) Invalidate(reflow, repaint bool) {
	if c.parent != nil {
		c.parent.Invalidate(reflow, repaint)
		return
	}
	if !c.pending.request(reflow, repaint) {
		return
	}
	if c.scheduler == nil {
		c.pending.scheduled = false
		return
	}
	c.scheduler.Defer(c.refresh)
}

// Pending reports the merged request waiting for the scheduler.
func (c *Control) Pending() (reflow, repaint bool) {
	return c.pending.reflow, c.pending.repaint
}

// refresh runs the merged request. The control may have been unbound or hidden
// since the request, in which case nothing happens.
func (c *Control) refresh() {
	reflow, repaint := c.pending.take()
	if c.ctx == nil || !c.Visible || c.self == nil {
		return
	}
	if reflow {
		c.self.Reflow(c.space)
	}
	if repaint {
		c.self.Repaint()
	}
	c.Refreshed.Emit(c)
}

// Handle dispatches e to the matching handler when the pointer is inside the
// inner rect or the control captures the pointer.
func (c *Control) Handle(e *Event) bool {
	if !c.Visible || !c.Enabled {
		return false
	}
	if !c.Capture && !c.InnerRect().Contains(e.X, e.Y) {
		return false
	}
	if h := c.handlerFor(e.Kind); h != nil {
		h(e)
	}
	return true
}

// dispatch offers e to widgets front-to-back until one cancels it.
func dispatch(e *Event, widgets ...Widget) bool {
	accepted := false
	for _, w := range widgets {
		if w == nil {
			continue
		}
		if w.Handle(e) {
			accepted = true
		}
		if e.Cancel {
			break
		}
	}
	return accepted
}
