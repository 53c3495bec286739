package bubblechart

import "math"

// LabelConfig configures a Label.
type LabelConfig struct {
	ControlConfig
	Text     string
	Font     Font
	Color    Color
	Vertical bool // draw rotated 90° counter-clockwise
}

// Label is a single- or multi-line text control sized by its content.
type Label struct {
	Control
	ItemState

	Text     string
	Font     Font
	Color    Color
	Vertical bool
}

// NewLabel creates a label. Unset alignments default to AlignAuto.
func NewLabel(cfg LabelConfig) *Label {
	if cfg.HAlign == AlignNone {
		cfg.HAlign = AlignAuto
	}
	if cfg.VAlign == AlignNone {
		cfg.VAlign = AlignAuto
	}
	l := &Label{Text: cfg.Text, Font: cfg.Font, Color: cfg.Color, Vertical: cfg.Vertical}
	l.init(l, cfg.ControlConfig)
	return l
}

// ContentSize returns the measured text size, rotated when Vertical.
func (l *Label) ContentSize() (w, h float64) {
	w, h = measureLines(l.Font, l.Text)
	if l.Vertical {
		w, h = h, w
	}
	return w, h
}

// Reflow sizes the label to its text and aligns it inside space.
func (l *Label) Reflow(space Rect) {
	if !l.assertReflow(l.Font == nil) {
		l.space = space
		return
	}
	w, h := l.ContentSize()
	in := l.insets()
	if l.HAlign != AlignFit {
		l.width = w + in.Horizontal()
	}
	if l.VAlign != AlignFit {
		l.height = h + in.Vertical()
	}
	l.Control.Reflow(space)
}

// Repaint draws the box and the text.
func (l *Label) Repaint() {
	if !l.assertRepaint() || l.Font == nil {
		return
	}
	l.paintBox()
	inner := l.InnerRect()
	if l.Vertical {
		l.ctx.Text(l.Text, l.Font, inner.Left(), inner.Bottom(), -math.Pi/2, l.Color)
		return
	}
	l.ctx.Text(l.Text, l.Font, inner.Left(), inner.Top(), 0, l.Color)
}

// ItemState is the per-item state a Collection manages: the logical value an
// item represents and whether overlap suppression hid it. Hidden is separate
// from Visible so a suppressed item keeps its measured size.
type ItemState struct {
	value  float64
	hidden bool
}

func (s *ItemState) Value() float64     { return s.value }
func (s *ItemState) SetValue(v float64) { s.value = v }
func (s *ItemState) Hidden() bool       { return s.hidden }
func (s *ItemState) SetHidden(h bool)   { s.hidden = h }

// GridLineConfig configures a GridLine.
type GridLineConfig struct {
	ControlConfig
	Color     Color
	LineWidth float64
	// Horizontal draws a line across the space; otherwise the line runs
	// from the top to the bottom of the space.
	Horizontal bool
}

// GridLine is a thin rule spanning the space it is reflowed in.
type GridLine struct {
	Control
	ItemState

	Color      Color
	LineWidth  float64
	Horizontal bool
}

// NewGridLine creates a grid line. It is sized along its own axis by
// LineWidth and fits the space on the other.
func NewGridLine(cfg GridLineConfig) *GridLine {
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = 1
	}
	if cfg.Horizontal {
		cfg.HAlign, cfg.VAlign = AlignFit, AlignAuto
	} else {
		cfg.HAlign, cfg.VAlign = AlignAuto, AlignFit
	}
	g := &GridLine{Color: cfg.Color, LineWidth: cfg.LineWidth, Horizontal: cfg.Horizontal}
	g.init(g, cfg.ControlConfig)
	return g
}

// Reflow sets the line thickness and spans it across space. The position
// along its own axis is left to the owning collection.
func (g *GridLine) Reflow(space Rect) {
	if !g.assertReflow(false) {
		g.space = space
		return
	}
	if g.Horizontal {
		g.height = g.LineWidth
	} else {
		g.width = g.LineWidth
	}
	g.Control.Reflow(space)
}

// Repaint strokes the line through the center of the control.
func (g *GridLine) Repaint() {
	if !g.assertRepaint() {
		return
	}
	if g.Horizontal {
		y := pixelAlign(g.VCenter(), g.LineWidth)
		g.ctx.Line(g.Left(), y, g.Right(), y, g.LineWidth, g.Color)
		return
	}
	x := pixelAlign(g.HCenter(), g.LineWidth)
	g.ctx.Line(x, g.Top(), x, g.Bottom(), g.LineWidth, g.Color)
}
