package bubblechart

import "math"

// PlacementParams are the inputs of PlaceTooltip besides geometry.
type PlacementParams struct {
	// Side is the preferred direction from the anchor to the balloon. The
	// arrow sits on the balloon edge facing back at the anchor.
	Side Direction
	// Offset is the gap between the arrow tip and the anchor.
	Offset float64
	// ArrowLength is the distance the arrow protrudes from the balloon.
	ArrowLength float64
	// ArrowPosition is the preferred arrow position along its edge, in [0,1].
	ArrowPosition float64
	// MinOffset keeps the arrow clear of the balloon corners.
	MinOffset float64
}

// Placement is the solved tooltip position.
type Placement struct {
	Rect
	Side Direction
	// ArrowOffset is the arrow position along its edge, measured from the
	// left end of a horizontal edge or the top end of a vertical one.
	ArrowOffset float64
	// IsOut is set when the balloon had to be pushed so that the arrow no
	// longer points exactly at the anchor.
	IsOut bool
}

// ArrowTip returns the tip of the arrow.
func (p Placement) ArrowTip(arrowLength float64) Vec2 {
	switch p.Side {
	case DirectionUp:
		return Vec2{p.Left() + p.ArrowOffset, p.Bottom() + arrowLength}
	case DirectionDown:
		return Vec2{p.Left() + p.ArrowOffset, p.Top() - arrowLength}
	case DirectionLeft:
		return Vec2{p.Right() + arrowLength, p.Top() + p.ArrowOffset}
	default:
		return Vec2{p.Left() - arrowLength, p.Top() + p.ArrowOffset}
	}
}

// tooltipSolver holds the inputs shared by the placement steps.
type tooltipSolver struct {
	ax, ay float64
	w, h   float64
	bounds Rect
	dist   float64
	min    float64
}

// lateral returns the balloon size along the arrow edge.
func (s *tooltipSolver) lateral(side Direction) float64 {
	if side.Horizontal() {
		return s.h
	}
	return s.w
}

// arrowRange returns the valid arrow offsets along the edge of side.
func (s *tooltipSolver) arrowRange(side Direction) (lo, hi float64) {
	size := s.lateral(side)
	if size < 2*s.min {
		return size / 2, size / 2
	}
	return s.min, size - s.min
}

// place positions the balloon so the arrow tip, at offset along its edge,
// lies dist away from the anchor on side.
func (s *tooltipSolver) place(side Direction, offset float64) Placement {
	p := Placement{Side: side, ArrowOffset: offset}
	switch side {
	case DirectionUp:
		p.Rect = NewRect(s.ax-offset, s.ay-s.dist-s.h, s.w, s.h)
	case DirectionDown:
		p.Rect = NewRect(s.ax-offset, s.ay+s.dist, s.w, s.h)
	case DirectionLeft:
		p.Rect = NewRect(s.ax-s.dist-s.w, s.ay-offset, s.w, s.h)
	default:
		p.Rect = NewRect(s.ax+s.dist, s.ay-offset, s.w, s.h)
	}
	return p
}

// overflow returns how far the balloon crosses the bound on the anchor axis
// of side; zero or less means it fits.
func (s *tooltipSolver) overflow(p Placement) float64 {
	switch p.Side {
	case DirectionUp:
		return s.bounds.Top() - p.Top()
	case DirectionDown:
		return p.Bottom() - s.bounds.Bottom()
	case DirectionLeft:
		return s.bounds.Left() - p.Left()
	default:
		return p.Right() - s.bounds.Right()
	}
}

// clampAnchorAxis pushes the balloon inside bounds along its anchor axis.
func (s *tooltipSolver) clampAnchorAxis(p *Placement) {
	if s.overflow(*p) <= 0 {
		return
	}
	if p.Side.Horizontal() {
		p.left = clampBetween(p.left, s.bounds.Left(), s.bounds.Right()-p.width)
	} else {
		p.top = clampBetween(p.top, s.bounds.Top(), s.bounds.Bottom()-p.height)
	}
	p.IsOut = true
}

// fitLateral pushes the balloon inside bounds along its arrow edge, moving
// the arrow so it keeps pointing at the anchor.
func (s *tooltipSolver) fitLateral(p *Placement) {
	pos, size := &p.left, p.width
	lo, hi := s.bounds.Left(), s.bounds.Right()
	if p.Side.Horizontal() {
		pos, size = &p.top, p.height
		lo, hi = s.bounds.Top(), s.bounds.Bottom()
	}
	if *pos < lo {
		shift := lo - *pos
		*pos += shift
		p.ArrowOffset -= shift
	}
	if *pos+size > hi {
		shift := *pos + size - hi
		*pos -= shift
		p.ArrowOffset += shift
	}
	if *pos < lo {
		// Wider than bounds: pin to the near edge.
		p.ArrowOffset -= lo - *pos
		*pos = lo
		p.IsOut = true
	}
}

// chooseSide flips to the opposite side when the preferred one does not fit
// on the anchor axis. When neither fits, the side with less overflow wins
// and the balloon is clamped.
func (s *tooltipSolver) chooseSide(side Direction, offset float64) Placement {
	p := s.place(side, offset)
	if s.overflow(p) <= 0 {
		return p
	}
	q := s.place(side.Opposite(), offset)
	if s.overflow(q) <= 0 {
		return q
	}
	if s.overflow(q) < s.overflow(p) {
		p = q
	}
	s.clampAnchorAxis(&p)
	return p
}

// PlaceTooltip solves the position of a w×h balloon pointing at anchor while
// staying inside bounds:
//
//  1. place the balloon on the preferred side with the arrow at
//     ArrowPosition, flipping to the opposite side when it does not fit;
//  2. push it inside bounds along the arrow edge, moving the arrow with it;
//  3. if the arrow then leaves its valid range, rotate to the next side
//     clockwise (or its opposite when that does not fit), recenter the
//     arrow and repeat the clamping, giving up exactness with IsOut.
func PlaceTooltip(anchor Vec2, w, h float64, bounds Rect, params PlacementParams) Placement {
	s := &tooltipSolver{
		ax: anchor.X, ay: anchor.Y,
		w: w, h: h,
		bounds: bounds,
		dist:   params.Offset + params.ArrowLength,
		min:    math.Max(params.MinOffset, 0),
	}
	lo, hi := s.arrowRange(params.Side)
	offset := clamp(s.lateral(params.Side)*clamp01(params.ArrowPosition), lo, hi)

	p := s.chooseSide(params.Side, offset)
	s.fitLateral(&p)
	lo, hi = s.arrowRange(p.Side)
	if p.ArrowOffset >= lo && p.ArrowOffset <= hi {
		return p
	}

	side := p.Side.Clockwise()
	out := p.IsOut
	p = s.chooseSide(side, s.lateral(side)/2)
	s.fitLateral(&p)
	p.IsOut = p.IsOut || out
	lo, hi = s.arrowRange(p.Side)
	if p.ArrowOffset < lo || p.ArrowOffset > hi {
		p.ArrowOffset = clamp(p.ArrowOffset, lo, hi)
		p.IsOut = true
	}
	return p
}

// TooltipConfig configures a Tooltip.
type TooltipConfig struct {
	ControlConfig
	Font  Font
	Color Color // text color

	Side          Direction
	Offset        float64
	ArrowLength   float64 // default 8
	ArrowWidth    float64 // default 12
	ArrowPosition float64 // default 0.5
}

// Tooltip is a text balloon with an arrow pointing at an anchor point. It is
// placed by PlaceTooltip on every reflow. Margin is not supported.
type Tooltip struct {
	Control

	Text  string
	Font  Font
	Color Color

	Side          Direction
	Offset        float64
	ArrowLength   float64
	ArrowWidth    float64
	ArrowPosition float64

	anchor    Vec2
	placement Placement
	path      Path
}

// NewTooltip creates a hidden tooltip.
func NewTooltip(cfg TooltipConfig) *Tooltip {
	if cfg.ArrowLength <= 0 {
		cfg.ArrowLength = 8
	}
	if cfg.ArrowWidth <= 0 {
		cfg.ArrowWidth = 12
	}
	if cfg.ArrowPosition == 0 {
		cfg.ArrowPosition = 0.5
	}
	cfg.Hidden = true
	cfg.HAlign, cfg.VAlign = AlignNone, AlignNone
	t := &Tooltip{
		Font:          cfg.Font,
		Color:         cfg.Color,
		Side:          cfg.Side,
		Offset:        cfg.Offset,
		ArrowLength:   cfg.ArrowLength,
		ArrowWidth:    cfg.ArrowWidth,
		ArrowPosition: cfg.ArrowPosition,
	}
	t.init(t, cfg.ControlConfig)
	return t
}

// Show points the tooltip at (x, y) with the given text.
func (t *Tooltip) Show(text string, x, y float64) {
	if t.Visible && t.Text == text && t.anchor == (Vec2{x, y}) {
		return
	}
	t.Text = text
	t.anchor = Vec2{x, y}
	t.Visible = true
	t.Invalidate(true, true)
}

// Hide hides the tooltip.
func (t *Tooltip) Hide() {
	if !t.Visible {
		return
	}
	t.Visible = false
	t.width, t.height = 0, 0
	t.Invalidate(false, true)
}

// Anchor returns the point the arrow aims at.
func (t *Tooltip) Anchor() Vec2 { return t.anchor }

// Placement returns the result of the last reflow.
func (t *Tooltip) Placement() Placement { return t.placement }

// Reflow sizes the balloon to its text and solves its position within space.
func (t *Tooltip) Reflow(space Rect) {
	t.space = space
	if !t.assertReflow(t.Font == nil || t.Text == "") {
		t.width, t.height = 0, 0
		return
	}
	w, h := measureLines(t.Font, t.Text)
	in := t.insets()
	t.width = w + in.Horizontal()
	t.height = h + in.Vertical()
	t.placement = PlaceTooltip(t.anchor, t.width, t.height, space, PlacementParams{
		Side:          t.Side,
		Offset:        t.Offset,
		ArrowLength:   t.ArrowLength,
		ArrowPosition: t.ArrowPosition,
		MinOffset:     t.Border.Radius + t.ArrowWidth/2,
	})
	t.left, t.top = t.placement.Left(), t.placement.Top()
}

// Repaint draws the balloon outline with its arrow, then the text.
func (t *Tooltip) Repaint() {
	if !t.assertRepaint() || t.Font == nil {
		return
	}
	t.path.Reset()
	balloonPath(&t.path, t.Bounds(), t.Border.Radius, t.placement.Side, t.placement.ArrowOffset, t.ArrowWidth, t.ArrowLength)
	t.ctx.FillPath(&t.path, t.Background)
	if t.Border.Width > 0 {
		t.ctx.StrokePath(&t.path, t.Border.Width, t.Border.Color)
	}
	inner := t.InnerRect()
	t.ctx.Text(t.Text, t.Font, inner.Left(), inner.Top(), 0, t.Color)
}

// balloonPath outlines a rounded rect with a triangular arrow on the edge
// facing the anchor of a balloon placed on side. Edges are walked clockwise.
func balloonPath(p *Path, r Rect, radius float64, side Direction, offset, aw, al float64) {
	radius = math.Min(radius, math.Min(r.Width(), r.Height())/2)
	l, t, rt, b := r.Left(), r.Top(), r.Right(), r.Bottom()
	half := aw / 2

	p.MoveTo(l+radius, t)
	if side == DirectionDown {
		p.LineTo(l+offset-half, t)
		p.LineTo(l+offset, t-al)
		p.LineTo(l+offset+half, t)
	}
	p.LineTo(rt-radius, t)
	p.ArcTo(rt, t, rt, t+radius, radius)
	if side == DirectionLeft {
		p.LineTo(rt, t+offset-half)
		p.LineTo(rt+al, t+offset)
		p.LineTo(rt, t+offset+half)
	}
	p.LineTo(rt, b-radius)
	p.ArcTo(rt, b, rt-radius, b, radius)
	if side == DirectionUp {
		p.LineTo(l+offset+half, b)
		p.LineTo(l+offset, b+al)
		p.LineTo(l+offset-half, b)
	}
	p.LineTo(l+radius, b)
	p.ArcTo(l, b, l, b-radius, radius)
	if side == DirectionRight {
		p.LineTo(l, t+offset+half)
		p.LineTo(l-al, t+offset)
		p.LineTo(l, t+offset-half)
	}
	p.LineTo(l, t+radius)
	p.ArcTo(l, t, l+radius, t, radius)
	p.Close()
}
