package bubblechart

import "math"

// AxisConfig configures an Axis.
type AxisConfig struct {
	Name       string
	Title      string
	Horizontal bool // X axis; otherwise the values grow upwards

	Font       Font // major labels and title
	MinorFont  Font // minor labels; nil disables them
	Color      Color
	MinorColor Color

	GridColor      Color
	MinorGridColor Color

	// Minor is the number of minor items per major interval, ends included.
	// Values below 3 disable subdivision.
	Minor int

	Format *NumberFormat
	Scale  *Scale
}

// Axis owns the title, the label collection and the grid collection of one
// plot dimension. Its range is widened to nice tick values; Transform maps
// that range onto [0,1].
type Axis struct {
	Title  *Label
	Labels *Collection
	Grid   *Collection

	horizontal bool
	format     *NumberFormat
	min, max   float64
	count      int
}

// NewAxis creates an axis over [0,1].
func NewAxis(cfg AxisConfig) *Axis {
	a := &Axis{horizontal: cfg.Horizontal, format: cfg.Format, min: 0, max: 1, count: 2}
	if a.format == nil {
		a.format = &NumberFormat{Decimals: -1}
	}

	dir := DirectionUp
	if cfg.Horizontal {
		dir = DirectionRight
	}
	transform := TransformerFunc(a.Transform)

	a.Title = NewLabel(LabelConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".title", Padding: Uniform(2)},
		Text:          cfg.Title,
		Font:          cfg.Font,
		Color:         cfg.Color,
		Vertical:      !cfg.Horizontal,
	})

	labelCfg := CollectionConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".labels"},
		Transformer:   transform,
		Scale:         cfg.Scale,
		Direction:     dir,
		NewItem:       a.labelFactory(cfg.Font, cfg.Color, 1),
	}
	gridCfg := CollectionConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".grid", HAlign: AlignFit, VAlign: AlignFit},
		Transformer:   transform,
		Scale:         cfg.Scale,
		Direction:     dir,
		NewItem:       gridFactory(cfg.GridColor, !cfg.Horizontal),
	}
	if cfg.Horizontal {
		labelCfg.HAlign, labelCfg.VAlign = AlignFit, AlignTop
	} else {
		labelCfg.HAlign, labelCfg.VAlign = AlignRight, AlignFit
	}
	if cfg.Minor >= 3 {
		gridCfg.Sub = &CollectionConfig{
			Count:   cfg.Minor,
			NewItem: gridFactory(cfg.MinorGridColor, !cfg.Horizontal),
		}
		if cfg.MinorFont != nil {
			labelCfg.Sub = &CollectionConfig{
				Count:   cfg.Minor,
				NewItem: a.labelFactory(cfg.MinorFont, cfg.MinorColor, cfg.Minor-1),
			}
		}
	}
	a.Labels = NewCollection(labelCfg)
	a.Grid = NewCollection(gridCfg)
	return a
}

// labelFactory creates labels formatted with enough decimals to tell apart
// neighbours divisions steps below a major interval.
func (a *Axis) labelFactory(font Font, col Color, divisions int) func(float64) Item {
	return func(v float64) Item {
		step := (a.max - a.min) / float64(max(a.count-1, 1)) / float64(divisions)
		f := a.format.WithDecimals(tickDecimals(step))
		return NewLabel(LabelConfig{
			ControlConfig: ControlConfig{Padding: Spacing{Left: 3, Top: 1, Right: 3, Bottom: 1}},
			Text:          f.Format(v),
			Font:          font,
			Color:         col,
		})
	}
}

func gridFactory(col Color, horizontal bool) func(float64) Item {
	return func(float64) Item {
		return NewGridLine(GridLineConfig{Color: col, Horizontal: horizontal})
	}
}

// SetRange widens [lo, hi] to nice bounds and regenerates labels and grid
// lines when the result changed.
func (a *Axis) SetRange(lo, hi float64) {
	from, to, count := NiceRange(lo, hi)
	if from == a.min && to == a.max && count == a.count {
		return
	}
	a.min, a.max, a.count = from, to, count
	for _, c := range []*Collection{a.Labels, a.Grid} {
		c.Count = count
		c.Min, c.Max = from, to
		c.Invalidate(true, true)
	}
}

// Range returns the nice bounds and the number of major items.
func (a *Axis) Range() (from, to float64, count int) {
	return a.min, a.max, a.count
}

// Transform maps v from the axis range to [0,1].
func (a *Axis) Transform(v float64) float64 {
	if math.IsNaN(v) || a.max == a.min {
		return math.NaN()
	}
	return (v - a.min) / (a.max - a.min)
}

// SetTitle changes the title text.
func (a *Axis) SetTitle(s string) {
	if a.Title.Text == s {
		return
	}
	a.Title.Text = s
	a.Title.Invalidate(true, true)
}

// MeasureLabels sizes the label collection by content and returns its
// thickness across the axis.
func (a *Axis) MeasureLabels() float64 {
	return a.Labels.Measure()
}

// HideOverlappingLabels suppresses labels outside [lo, hi] along the axis
// or overlapping a kept neighbour.
func (a *Axis) HideOverlappingLabels(lo, hi float64) {
	a.Labels.HideOverlapping(lo, hi)
}

// Bind binds every control of the axis. Grid lines paint on the plot canvas.
func (a *Axis) Bind(ctx, plot Canvas, s Scheduler) {
	a.Title.Bind(ctx, s)
	a.Labels.Bind(ctx, s)
	a.Grid.Bind(plot, s)
}

// Realign repositions labels and grid lines after a scale change.
func (a *Axis) Realign() {
	a.Grid.RealignOnly()
	a.Labels.RealignOnly()
}
