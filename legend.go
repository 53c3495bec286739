package bubblechart

import "math"

// LegendConfig configures the legends.
type LegendConfig struct {
	ControlConfig
	Title     string
	Font      Font
	Color     Color // text
	Format    *NumberFormat
	Swatch    Vec2  // color legend strip size, default 120×12
	Steps     int   // color legend gradient steps, default 24
	Stroke    Color // size legend circle outline
	MaxRadius float64
}

// legendBase holds what both legends share: a title and min/max labels.
type legendBase struct {
	Control
	Title    *Label
	MinLabel *Label
	MaxLabel *Label
	format   *NumberFormat
}

func (l *legendBase) setup(self Widget, cfg LegendConfig) {
	if cfg.HAlign == AlignNone {
		cfg.HAlign = AlignLeft
	}
	if cfg.VAlign == AlignNone {
		cfg.VAlign = AlignTop
	}
	l.init(self, cfg.ControlConfig)
	l.format = cfg.Format
	if l.format == nil {
		l.format = &NumberFormat{Decimals: -1, Abbreviate: true}
	}
	newLabel := func(name, text string) *Label {
		lbl := NewLabel(LabelConfig{
			ControlConfig: ControlConfig{Name: cfg.Name + "." + name},
			Text:          text,
			Font:          cfg.Font,
			Color:         cfg.Color,
		})
		l.adopt(lbl)
		return lbl
	}
	l.Title = newLabel("title", cfg.Title)
	l.MinLabel = newLabel("min", "")
	l.MaxLabel = newLabel("max", "")
}

// Bind binds the legend and its labels.
func (l *legendBase) Bind(ctx Canvas, s Scheduler) {
	l.Control.Bind(ctx, s)
	l.Title.Bind(ctx, s)
	l.MinLabel.Bind(ctx, s)
	l.MaxLabel.Bind(ctx, s)
}

// setRange relabels the bounds.
func (l *legendBase) setRange(lo, hi float64) {
	l.MinLabel.Text = l.format.Format(lo)
	l.MaxLabel.Text = l.format.Format(hi)
	l.Invalidate(true, true)
}

// measureLabels sizes the three labels by content.
func (l *legendBase) measureLabels() {
	for _, lbl := range []*Label{l.Title, l.MinLabel, l.MaxLabel} {
		lbl.Reflow(l.space)
	}
}

// ColorLegend shows the color scale as a gradient strip between its bounds.
type ColorLegend struct {
	legendBase
	Swatch Vec2
	Steps  int

	color func(t float64) Color
	strip Rect
}

// NewColorLegend creates a color legend. color maps [0,1] onto the gradient.
func NewColorLegend(cfg LegendConfig, color func(t float64) Color) *ColorLegend {
	if cfg.Swatch.X <= 0 || cfg.Swatch.Y <= 0 {
		cfg.Swatch = Vec2{120, 12}
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 24
	}
	l := &ColorLegend{Swatch: cfg.Swatch, Steps: cfg.Steps, color: color}
	l.setup(l, cfg)
	return l
}

// SetRange sets the values shown at both ends of the strip.
func (l *ColorLegend) SetRange(lo, hi float64) { l.setRange(lo, hi) }

// SetGradient replaces the color function.
func (l *ColorLegend) SetGradient(color func(t float64) Color) {
	l.color = color
	l.Invalidate(false, true)
}

// Reflow stacks title, strip and bound labels.
func (l *ColorLegend) Reflow(space Rect) {
	l.space = space
	if !l.assertReflow(false) {
		return
	}
	l.measureLabels()
	in := l.insets()
	w := math.Max(l.Swatch.X, l.Title.Width())
	w = math.Max(w, l.MinLabel.Width()+l.MaxLabel.Width())
	l.width = w + in.Horizontal()
	l.height = l.Title.Height() + l.Swatch.Y + math.Max(l.MinLabel.Height(), l.MaxLabel.Height()) + in.Vertical()
	l.Control.Reflow(space)

	inner := l.InnerRect()
	l.Title.MoveTo(inner.Left(), inner.Top())
	l.strip = NewRect(inner.Left(), l.Title.Bottom(), inner.Width(), l.Swatch.Y)
	l.MinLabel.MoveTo(inner.Left(), l.strip.Bottom())
	l.MaxLabel.MoveTo(inner.Right()-l.MaxLabel.Width(), l.strip.Bottom())
}

// Strip returns the gradient rectangle.
func (l *ColorLegend) Strip() Rect { return l.strip }

// Repaint draws the gradient as Steps flat swatches.
func (l *ColorLegend) Repaint() {
	if !l.assertRepaint() {
		return
	}
	l.paintBox()
	l.Title.Repaint()
	if l.color != nil && l.strip.Width() > 0 {
		step := l.strip.Width() / float64(l.Steps)
		for i := range l.Steps {
			t := (float64(i) + 0.5) / float64(l.Steps)
			r := NewRect(l.strip.Left()+float64(i)*step, l.strip.Top(), step+0.5, l.strip.Height())
			l.ctx.FillRect(r, 0, l.color(t))
		}
	}
	l.MinLabel.Repaint()
	l.MaxLabel.Repaint()
}

// SizeLegend shows nested circles for the smallest and largest bubble.
type SizeLegend struct {
	legendBase
	Stroke Color

	minRadius float64
	maxRadius float64
	circles   Rect
}

// NewSizeLegend creates a size legend for radii in [minRadius, maxRadius].
func NewSizeLegend(cfg LegendConfig, minRadius, maxRadius float64) *SizeLegend {
	l := &SizeLegend{Stroke: cfg.Stroke, minRadius: minRadius, maxRadius: maxRadius}
	l.setup(l, cfg)
	return l
}

// SetRange sets the values of the smallest and largest circle.
func (l *SizeLegend) SetRange(lo, hi float64) { l.setRange(lo, hi) }

// SetRadii changes the drawn radii.
func (l *SizeLegend) SetRadii(minRadius, maxRadius float64) {
	l.minRadius, l.maxRadius = minRadius, maxRadius
	l.Invalidate(true, true)
}

// Reflow stacks the title above the circles, labels to their right.
func (l *SizeLegend) Reflow(space Rect) {
	l.space = space
	if !l.assertReflow(false) {
		return
	}
	l.measureLabels()
	in := l.insets()
	d := 2 * l.maxRadius
	labels := math.Max(l.MinLabel.Width(), l.MaxLabel.Width())
	l.width = math.Max(l.Title.Width(), d+4+labels) + in.Horizontal()
	l.height = l.Title.Height() + math.Max(d, l.MinLabel.Height()+l.MaxLabel.Height()) + in.Vertical()
	l.Control.Reflow(space)

	inner := l.InnerRect()
	l.Title.MoveTo(inner.Left(), inner.Top())
	l.circles = NewRect(inner.Left(), l.Title.Bottom(), d, d)
	l.MaxLabel.MoveTo(l.circles.Right()+4, l.circles.Top())
	l.MinLabel.MoveTo(l.circles.Right()+4, math.Max(l.MaxLabel.Bottom(), l.circles.Bottom()-l.MinLabel.Height()))
}

// Repaint draws both circles sharing their bottom point.
func (l *SizeLegend) Repaint() {
	if !l.assertRepaint() {
		return
	}
	l.paintBox()
	l.Title.Repaint()
	cx, bottom := l.circles.HCenter(), l.circles.Bottom()
	l.ctx.StrokeCircle(cx, bottom-l.maxRadius, l.maxRadius, 1, l.Stroke)
	l.ctx.StrokeCircle(cx, bottom-l.minRadius, l.minRadius, 1, l.Stroke)
	l.MinLabel.Repaint()
	l.MaxLabel.Repaint()
}
