package bubblechart

import (
	"math"
	"slices"
)

// Default plot interaction settings.
const (
	DefaultZoomStep      = 0.5
	DefaultResetDuration = 0.35 // seconds
)

// PlotConfig configures a Plot.
type PlotConfig struct {
	ControlConfig
	Scale          ScaleConfig
	X, Y           AxisConfig
	ZoomStep       float64 // scale added per wheel notch
	ResetDuration  float32 // seconds of the double-click zoom reset
	SelectionColor Color
	SelectionFill  Color
}

// Plot is the bubble area: it owns the pan/zoom Scale, both axes and the
// bubbles, and turns pointer input into scale edits.
type Plot struct {
	Control

	Scale *Scale
	X, Y  *Axis

	ZoomStep       float64
	ResetDuration  float32
	SelectionColor Color
	SelectionFill  Color

	bubbles   []*Bubble
	hovered   *Bubble
	selecting bool
	selection Rect
	panning   bool

	// Hover fires when the bubble under the pointer changes; nil means none.
	Hover Signal[*Bubble]
}

// NewPlot creates a plot with its scale and axes.
func NewPlot(cfg PlotConfig) *Plot {
	if cfg.ZoomStep <= 0 {
		cfg.ZoomStep = DefaultZoomStep
	}
	if cfg.ResetDuration <= 0 {
		cfg.ResetDuration = DefaultResetDuration
	}
	if cfg.HAlign == AlignNone {
		cfg.HAlign = AlignFit
	}
	if cfg.VAlign == AlignNone {
		cfg.VAlign = AlignFit
	}
	p := &Plot{
		ZoomStep:       cfg.ZoomStep,
		ResetDuration:  cfg.ResetDuration,
		SelectionColor: cfg.SelectionColor,
		SelectionFill:  cfg.SelectionFill,
	}
	p.init(p, cfg.ControlConfig)
	p.Scale = NewScale(NewRect(0, 0, 0, 0), cfg.Scale)
	cfg.X.Horizontal, cfg.Y.Horizontal = true, false
	cfg.X.Scale, cfg.Y.Scale = p.Scale, p.Scale
	p.X = NewAxis(cfg.X)
	p.Y = NewAxis(cfg.Y)
	p.X.Grid.Link(p.Y.Grid)
	for _, w := range []Widget{p.X.Grid, p.Y.Grid, p.X.Labels, p.Y.Labels, p.X.Title, p.Y.Title} {
		p.adopt(w)
	}

	p.OnWheel = p.onWheel
	p.OnDragStart = p.onDragStart
	p.OnDrag = p.onDrag
	p.OnDragEnd = p.onDragEnd
	p.OnDoubleClick = p.onDoubleClick
	p.OnMouseMove = p.onMouseMove
	p.OnMouseLeave = func(*Event) { p.setHovered(nil) }
	return p
}

// Bind binds the plot, its grids and its bubbles' canvas. Labels and titles
// are bound by the owner.
func (p *Plot) Bind(ctx Canvas, s Scheduler) {
	p.Control.Bind(ctx, s)
	p.X.Grid.Bind(ctx, s)
	p.Y.Grid.Bind(ctx, s)
}

// Reflow fits the plot into space and hands its inner rect to the scale and
// the grids.
func (p *Plot) Reflow(space Rect) {
	p.Control.Reflow(space)
	inner := p.InnerRect()
	p.Scale.SetViewport(inner)
	p.X.Grid.Reflow(inner)
	p.Y.Grid.Reflow(inner)
}

// Repaint paints background, grids, bubbles from the largest down and the
// rubber-band selection.
func (p *Plot) Repaint() {
	if !p.assertRepaint() {
		return
	}
	p.paintBox()
	p.X.Grid.Repaint()
	order := slices.Clone(p.bubbles)
	slices.SortStableFunc(order, func(a, b *Bubble) int {
		_, _, ra := a.Center()
		_, _, rb := b.Center()
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}
		return 0
	})
	for _, b := range order {
		b.Paint(p.ctx, b == p.hovered)
	}
	if p.selecting {
		p.ctx.FillRect(p.selection, 0, p.SelectionFill)
		p.ctx.StrokeRect(p.selection, 0, 1, p.SelectionColor)
	}
}

// Bubbles returns the bubbles in insertion order.
func (p *Plot) Bubbles() []*Bubble { return p.bubbles }

// AddBubble appends b.
func (p *Plot) AddBubble(b *Bubble) {
	p.bubbles = append(p.bubbles, b)
}

// RemoveBubble drops b.
func (p *Plot) RemoveBubble(b *Bubble) {
	if i := slices.Index(p.bubbles, b); i >= 0 {
		p.bubbles = slices.Delete(p.bubbles, i, i+1)
	}
	if p.hovered == b {
		p.setHovered(nil)
	}
}

// Hovered returns the bubble under the pointer, or nil.
func (p *Plot) Hovered() *Bubble { return p.hovered }

// BubbleAt returns the top-most bubble containing (x, y). Smaller bubbles
// paint on top, so they win.
func (p *Plot) BubbleAt(x, y float64) *Bubble {
	var hit *Bubble
	best := math.Inf(1)
	for _, b := range p.bubbles {
		if !b.Alive() || !b.Contains(x, y) {
			continue
		}
		if _, _, r := b.Center(); r < best {
			hit, best = b, r
		}
	}
	return hit
}

func (p *Plot) setHovered(b *Bubble) {
	if b == p.hovered {
		return
	}
	p.hovered = b
	p.Hover.Emit(b)
	p.Invalidate(false, true)
}

// Selection returns the rubber-band rectangle and whether one is active.
func (p *Plot) Selection() (Rect, bool) {
	return p.selection, p.selecting
}

func (p *Plot) onMouseMove(e *Event) {
	p.setHovered(p.BubbleAt(e.X, e.Y))
}

func (p *Plot) onWheel(e *Event) {
	step := p.ZoomStep
	if e.WheelY < 0 {
		step = -step
	}
	p.Scale.ScaleBy(step, e.X, e.Y)
	e.Cancel = true
}

func (p *Plot) onDragStart(e *Event) {
	if e.Modifiers&ModShift != 0 {
		p.selecting = true
		p.selection = selectionRect(e.StartX, e.StartY, e.X, e.Y, p.InnerRect())
		e.Repaint = true
		return
	}
	p.panning = true
	p.setHovered(nil)
}

func (p *Plot) onDrag(e *Event) {
	switch {
	case p.selecting:
		p.selection = selectionRect(e.StartX, e.StartY, e.X, e.Y, p.InnerRect())
		e.Repaint = true
	case p.panning:
		p.Scale.MoveBy(e.DeltaX, e.DeltaY)
	}
}

func (p *Plot) onDragEnd(e *Event) {
	switch {
	case p.selecting:
		p.selecting = false
		sel := selectionRect(e.StartX, e.StartY, e.X, e.Y, p.InnerRect())
		if sel.Width() > 1 && sel.Height() > 1 {
			p.Scale.ScaleTo(sel)
		}
		e.Repaint = true
	case p.panning:
		p.panning = false
		p.Scale.MoveBy(e.DeltaX, e.DeltaY)
	}
}

func (p *Plot) onDoubleClick(*Event) {
	p.Scale.AnimateTo(1, 1, 0, 0, p.ResetDuration, nil)
}

// selectionRect normalizes the rectangle spanned by two corners and clips it
// to bounds.
func selectionRect(x0, y0, x1, y1 float64, bounds Rect) Rect {
	l := clamp(math.Min(x0, x1), bounds.Left(), bounds.Right())
	r := clamp(math.Max(x0, x1), bounds.Left(), bounds.Right())
	t := clamp(math.Min(y0, y1), bounds.Top(), bounds.Bottom())
	b := clamp(math.Max(y0, y1), bounds.Top(), bounds.Bottom())
	return NewRect(l, t, r-l, b-t)
}
