package bubblechart

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"

	"github.com/phanxgames/bubblechart/data"
)

// Default chart settings.
const (
	DefaultWidth     = 960
	DefaultHeight    = 640
	DefaultMinRadius = 4.0
	DefaultMaxRadius = 40.0
	DefaultMinor     = 5
)

// Theme holds the colors of every chart element.
type Theme struct {
	Background     Color
	PlotBackground Color
	Text           Color
	MinorText      Color
	Grid           Color
	MinorGrid      Color
	Track          Color
	Thumb          Color
	BubbleBorder   Color
	TooltipFill    Color
	TooltipBorder  Color
	Selection      Color
	SelectionFill  Color
}

// DefaultTheme returns a light theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     ColorWhite,
		PlotBackground: Color{0.97, 0.97, 0.98, 1},
		Text:           Color{0.15, 0.15, 0.2, 1},
		MinorText:      Color{0.5, 0.5, 0.55, 1},
		Grid:           Color{0.78, 0.78, 0.82, 1},
		MinorGrid:      Color{0.9, 0.9, 0.92, 1},
		Track:          Color{0.8, 0.8, 0.85, 1},
		Thumb:          Color{0.25, 0.45, 0.8, 1},
		BubbleBorder:   Color{0.2, 0.2, 0.25, 0.8},
		TooltipFill:    Color{1, 1, 0.94, 0.95},
		TooltipBorder:  Color{0.3, 0.3, 0.3, 1},
		Selection:      Color{0.25, 0.45, 0.8, 1},
		SelectionFill:  Color{0.25, 0.45, 0.8, 0.15},
	}
}

// ChartConfig configures a Chart. Zero values select defaults.
type ChartConfig struct {
	Name   string
	Width  int
	Height int
	Title  string

	Font      Font // axis labels, legends, slider; default 13px
	TitleFont Font // chart title; default 20px
	SmallFont Font // minor labels; default 10px

	Theme *Theme

	MinRadius float64 // smallest bubble radius
	MaxRadius float64 // largest bubble radius
	Minor     int     // minor items per major interval, ends included; below 3 disables
	ZoomStep  float64
	MaxScale  float64

	Locale language.Tag
	Logger *slog.Logger
}

// DataBinding names the store dimensions each visual channel reads.
type DataBinding struct {
	X, Y, Size, Color string

	XTitle, YTitle, SizeTitle, ColorTitle string

	ColorFrom color.Color
	ColorTo   color.Color
}

// title returns t, or the dimension name when t is empty.
func bindingTitle(t, dim string) string {
	if t != "" {
		return t
	}
	return dim
}

// Chart is the root control: title, plot with axes and bubbles, legends, time
// slider and tooltip. It implements ebiten.Game; the control tree paints into
// an offscreen image that Draw blits to the screen.
type Chart struct {
	Control

	Title       *Label
	Plot        *Plot
	Slider      *Slider
	ColorLegend *ColorLegend
	SizeLegend  *SizeLegend
	Tooltip     *Tooltip

	theme     Theme
	format    *NumberFormat
	scheduler *FrameScheduler
	logger    *slog.Logger
	debug     bool

	store    *data.Store
	binding  DataBinding
	entities []string
	x, y     *data.Linear
	size     *data.Linear
	color    *data.ColorScale
	bubbles  map[string]*Bubble

	minRadius, maxRadius float64

	image      *ebiten.Image
	plotCanvas Canvas
	viewport   Rect // scale viewport of the last reflow
	realign    bool
	stats      debugStats

	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	injectMods   KeyModifiers

	runner          *TestRunner
	ScreenshotDir   string
	screenshotQueue []string

	// Hover fires when the bubble under the pointer changes; nil means none.
	Hover Signal[*Bubble]
	// PositionChange fires when the slider moves.
	PositionChange Signal[float64]
	// ScaleChange fires after every pan or zoom.
	ScaleChange Signal[*Scale]
	// StateChange forwards every bubble lifecycle transition.
	StateChange Signal[BubbleStateChange]
	// Invalidated fires after every repaint of the offscreen image.
	Invalidated Signal[*Chart]
}

// NewChart creates an empty chart. Fonts left nil are loaded from the
// embedded default face.
func NewChart(cfg ChartConfig) (*Chart, error) {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Name == "" {
		cfg.Name = "chart"
	}
	if cfg.MinRadius <= 0 {
		cfg.MinRadius = DefaultMinRadius
	}
	if cfg.MaxRadius < cfg.MinRadius {
		cfg.MaxRadius = math.Max(DefaultMaxRadius, cfg.MinRadius)
	}
	if cfg.Minor == 0 {
		cfg.Minor = DefaultMinor
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	var err error
	if cfg.Font, err = fontOrDefault(cfg.Font, 13); err != nil {
		return nil, err
	}
	if cfg.TitleFont, err = fontOrDefault(cfg.TitleFont, 20); err != nil {
		return nil, err
	}
	if cfg.SmallFont, err = fontOrDefault(cfg.SmallFont, 10); err != nil {
		return nil, err
	}

	c := &Chart{
		theme:        theme,
		format:       NewNumberFormat(cfg.Locale),
		scheduler:    &FrameScheduler{},
		logger:       cfg.Logger.With("chart", cfg.Name),
		bubbles:      make(map[string]*Bubble),
		minRadius:    cfg.MinRadius,
		maxRadius:    cfg.MaxRadius,
		dragDeadZone: defaultDragDeadZone,
	}
	c.init(c, ControlConfig{
		Name:       cfg.Name,
		Padding:    Uniform(8),
		Background: theme.Background,
		HAlign:     AlignFit,
		VAlign:     AlignFit,
	})
	c.SetBounds(NewRect(0, 0, float64(cfg.Width), float64(cfg.Height)))
	c.space = c.Bounds()

	c.Title = NewLabel(LabelConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".title", HAlign: AlignCenter, VAlign: AlignTop, Padding: Spacing{Bottom: 6}},
		Text:          cfg.Title,
		Font:          cfg.TitleFont,
		Color:         theme.Text,
	})

	c.Plot = NewPlot(PlotConfig{
		ControlConfig:  ControlConfig{Name: cfg.Name + ".plot", Background: theme.PlotBackground, Border: Border{Width: 1, Color: theme.Grid}},
		Scale:          ScaleConfig{Padding: Uniform(cfg.MaxRadius / 2), MaxScale: cfg.MaxScale},
		ZoomStep:       cfg.ZoomStep,
		SelectionColor: theme.Selection,
		SelectionFill:  theme.SelectionFill,
		X:              c.axisConfig(cfg, "x"),
		Y:              c.axisConfig(cfg, "y"),
	})
	c.Plot.X.Title.HAlign, c.Plot.X.Title.VAlign = AlignCenter, AlignBottom
	c.Plot.Y.Title.HAlign, c.Plot.Y.Title.VAlign = AlignLeft, AlignCenter

	c.Slider = NewSlider(SliderConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".slider", Padding: Spacing{Top: 8}},
		Font:          cfg.Font,
		Color:         theme.Text,
		TrackColor:    theme.Track,
		ThumbColor:    theme.Thumb,
	})

	legend := LegendConfig{
		ControlConfig: ControlConfig{Padding: Spacing{Left: 12, Bottom: 12}},
		Font:          cfg.Font,
		Color:         theme.Text,
		Format:        &NumberFormat{printer: c.format.printer, Decimals: -1, Abbreviate: true},
		Stroke:        theme.Text,
	}
	legend.Name = cfg.Name + ".color"
	c.ColorLegend = NewColorLegend(legend, nil)
	legend.Name = cfg.Name + ".size"
	c.SizeLegend = NewSizeLegend(legend, cfg.MinRadius, cfg.MaxRadius)

	c.Tooltip = NewTooltip(TooltipConfig{
		ControlConfig: ControlConfig{
			Name:       cfg.Name + ".tooltip",
			Padding:    Spacing{Left: 6, Top: 4, Right: 6, Bottom: 4},
			Border:     Border{Width: 1, Radius: 4, Color: theme.TooltipBorder},
			Background: theme.TooltipFill,
		},
		Font:  cfg.Font,
		Color: theme.Text,
		Side:  DirectionUp,
	})

	for _, w := range []Widget{c.Title, c.Plot, c.Slider, c.ColorLegend, c.SizeLegend, c.Tooltip} {
		c.adopt(w)
	}

	c.Plot.Scale.Changed.Subscribe(c.onScaleChange)
	c.Plot.Hover.Subscribe(func(b *Bubble) {
		c.Hover.Emit(b)
		c.updateTooltip()
	})
	c.Slider.PositionChange.Subscribe(func(p float64) {
		c.PositionChange.Emit(p)
		c.positionBubbles(false)
		c.updateTooltip()
	})
	return c, nil
}

func fontOrDefault(f Font, size float64) (Font, error) {
	if f != nil {
		return f, nil
	}
	d, err := DefaultFont(size)
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	return d, nil
}

func (c *Chart) axisConfig(cfg ChartConfig, name string) AxisConfig {
	return AxisConfig{
		Name:           cfg.Name + "." + name,
		Font:           cfg.Font,
		MinorFont:      cfg.SmallFont,
		Color:          c.theme.Text,
		MinorColor:     c.theme.MinorText,
		GridColor:      c.theme.Grid,
		MinorGridColor: c.theme.MinorGrid,
		Minor:          cfg.Minor,
		Format:         c.format,
	}
}

// Logger returns the chart's logger.
func (c *Chart) Logger() *slog.Logger { return c.logger }

// Scheduler returns the frame scheduler flushed by Update.
func (c *Chart) Scheduler() *FrameScheduler { return c.scheduler }

// Bind attaches ctx to the whole tree. The plot and its grid lines draw on a
// canvas clipped to the plot rectangle, rebuilt on every reflow.
func (c *Chart) Bind(ctx Canvas, s Scheduler) {
	c.Control.Bind(ctx, s)
	c.Title.Bind(ctx, s)
	c.Slider.Bind(ctx, s)
	c.ColorLegend.Bind(ctx, s)
	c.SizeLegend.Bind(ctx, s)
	c.Tooltip.Bind(ctx, s)
	c.Plot.X.Bind(ctx, ctx, s)
	c.Plot.Y.Bind(ctx, ctx, s)
	c.bindPlot()
}

func (c *Chart) bindPlot() {
	c.plotCanvas = c.ctx
	if c.ctx != nil && c.Plot.Width() > 0 && c.Plot.Height() > 0 {
		c.plotCanvas = c.ctx.Clip(c.Plot.Bounds())
	}
	c.Plot.Bind(c.plotCanvas, c.scheduler)
}

// SetData replaces the store and the channel binding. Entities are the
// children of the X dimension; slices are the union of their children in
// first-seen order. Existing bubbles whose entity vanished disappear.
func (c *Chart) SetData(store *data.Store, b DataBinding) {
	if b.ColorFrom == nil {
		b.ColorFrom = data.Hex("#2c7bb6")
	}
	if b.ColorTo == nil {
		b.ColorTo = data.Hex("#d7191c")
	}
	c.store, c.binding = store, b

	xdim, ydim := data.Path{b.X}, data.Path{b.Y}
	sdim, cdim := data.Path{b.Size}, data.Path{b.Color}
	c.entities = store.Children(xdim)
	var slices []string
	seen := make(map[string]bool)
	for _, e := range c.entities {
		for _, s := range store.Children(xdim.Append(e)) {
			if !seen[s] {
				seen[s] = true
				slices = append(slices, s)
			}
		}
	}

	c.Plot.X.SetTitle(bindingTitle(b.XTitle, b.X))
	c.Plot.Y.SetTitle(bindingTitle(b.YTitle, b.Y))
	c.Plot.X.SetRange(store.Min(xdim), store.Max(xdim))
	c.Plot.Y.SetRange(store.Min(ydim), store.Max(ydim))

	c.x = data.NewLinear(store, xdim, 0, 1)
	c.x.SetItemRange(rangeOf(c.Plot.X))
	c.y = data.NewLinear(store, ydim, 0, 1)
	c.y.SetItemRange(rangeOf(c.Plot.Y))
	c.size = data.NewLinear(store, sdim, c.minRadius, c.maxRadius)
	c.color = data.NewColorScale(store, cdim, b.ColorFrom, b.ColorTo)

	c.ColorLegend.Title.Text = bindingTitle(b.ColorTitle, b.Color)
	c.ColorLegend.SetRange(c.color.MinItem(), c.color.MaxItem())
	c.ColorLegend.SetGradient(func(t float64) Color { return ColorFrom(c.color.At(t)) })
	c.SizeLegend.Title.Text = bindingTitle(b.SizeTitle, b.Size)
	c.SizeLegend.SetRange(c.size.MinItem(), c.size.MaxItem())

	for name, bub := range c.bubbles {
		if !store.Has(xdim.Append(name)) {
			bub.Disappear()
		}
	}
	c.Slider.SetSlices(slices)
	c.positionBubbles(false)
	c.logger.Debug("data set", "entities", len(c.entities), "slices", len(slices))
	c.Invalidate(true, true)
}

func rangeOf(a *Axis) (float64, float64) {
	lo, hi, _ := a.Range()
	return lo, hi
}

// Store returns the bound data store, or nil.
func (c *Chart) Store() *data.Store { return c.store }

// Binding returns the channel binding.
func (c *Chart) Binding() DataBinding { return c.binding }

// Entities returns the entity names in store order.
func (c *Chart) Entities() []string { return c.entities }

// Bubble returns the bubble of an entity, or nil.
func (c *Chart) Bubble(entity string) *Bubble { return c.bubbles[entity] }

// newBubble creates and registers the bubble of an entity.
func (c *Chart) newBubble(entity string) *Bubble {
	b := NewBubble(data.Path{entity})
	b.Label = entity
	b.BorderColor = c.theme.BubbleBorder
	b.StateChange.Subscribe(func(ch BubbleStateChange) {
		c.logger.Debug("bubble state", "entity", ch.Bubble.Label, "from", ch.From, "to", ch.To)
		c.StateChange.Emit(ch)
	})
	b.Invalidated.Subscribe(func(*Bubble) { c.Invalidate(false, true) })
	c.bubbles[entity] = b
	c.Plot.AddBubble(b)
	return b
}

// removeBubble drops a bubble that finished disappearing.
func (c *Chart) removeBubble(b *Bubble) {
	delete(c.bubbles, b.Label)
	c.Plot.RemoveBubble(b)
}

// positionBubbles retargets every bubble at the slider position. Entities
// without a value in every channel disappear; entities that regain one are
// revived. skip jumps existing bubbles straight to their targets; new
// bubbles always grow from their center.
func (c *Chart) positionBubbles(skip bool) {
	scale := c.Plot.Scale
	if c.store == nil || scale.Width() <= 0 || scale.Height() <= 0 {
		return
	}
	sa, sb, blend := c.Slider.Segment()
	for _, e := range c.entities {
		pa, pb := data.Path{e, sa}, data.Path{e, sb}
		x := c.x.TransformedItem(pa, pb, blend)
		y := c.y.TransformedItem(pa, pb, blend)
		r := c.size.TransformedItem(pa, pb, blend)
		bub := c.bubbles[e]
		if !isNumber(x) || !isNumber(y) || !isNumber(r) {
			if bub != nil {
				bub.Disappear()
				if skip {
					bub.Skip()
				}
			}
			continue
		}
		sx, sy := scale.X(x), scale.Y(1-y)
		created := bub == nil
		if created {
			bub = c.newBubble(e)
			bub.SetCenter(sx, sy, 0)
		} else if !bub.Alive() {
			bub.Revive()
		}
		bub.SetCenter(sx, sy, r)
		bub.Color = ColorFrom(c.color.TransformedColor(pa, pb, blend)).WithAlpha(0.8)
		if skip && !created {
			bub.Skip()
		}
	}
}

// tooltipText describes a bubble with its interpolated values.
func (c *Chart) tooltipText(b *Bubble) string {
	sa, sb, blend := c.Slider.Segment()
	pa, pb := data.Path{b.Label, sa}, data.Path{b.Label, sb}
	var sb2 strings.Builder
	sb2.WriteString(b.Label)
	for _, ch := range []struct {
		title string
		l     *data.Linear
	}{
		{bindingTitle(c.binding.XTitle, c.binding.X), c.x},
		{bindingTitle(c.binding.YTitle, c.binding.Y), c.y},
		{bindingTitle(c.binding.SizeTitle, c.binding.Size), c.size},
		{bindingTitle(c.binding.ColorTitle, c.binding.Color), c.color.Linear},
	} {
		fmt.Fprintf(&sb2, "\n%s: %s", ch.title, c.format.Format(ch.l.InterpolatedItem(pa, pb, blend)))
	}
	return sb2.String()
}

// updateTooltip points the tooltip at the top of the hovered bubble.
func (c *Chart) updateTooltip() {
	b := c.Plot.Hovered()
	if b == nil || !b.Alive() || c.store == nil {
		c.Tooltip.Hide()
		return
	}
	x, y, r := b.Center()
	c.Tooltip.Show(c.tooltipText(b), x, y-r)
}

func (c *Chart) onScaleChange(s *Scale) {
	c.ScaleChange.Emit(s)
	c.realign = true
	c.Invalidate(false, true)
}

// Update implements ebiten.Game. Deferred invalidations queued during the
// previous tick run first, then input, playback, zoom animation and bubble
// animation advance.
func (c *Chart) Update() error {
	c.scheduler.Flush()
	if c.runner != nil {
		c.runner.step(c)
	}
	c.processInput()
	c.advance(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// advance steps every animation by dt seconds.
func (c *Chart) advance(dt float32) {
	c.Slider.Update(dt)
	c.Plot.Scale.Update(dt)
	var gone []*Bubble
	moved := false
	for _, b := range c.Plot.Bubbles() {
		if b.Animate() {
			moved = true
		}
		if b.State() == BubbleDisappeared {
			gone = append(gone, b)
		}
	}
	for _, b := range gone {
		c.removeBubble(b)
	}
	if moved && c.Plot.Hovered() != nil {
		c.updateTooltip()
	}
}

// Draw implements ebiten.Game.
func (c *Chart) Draw(screen *ebiten.Image) {
	if c.image != nil {
		screen.DrawImage(c.image, nil)
	}
	c.flushScreenshots()
}

// Layout implements ebiten.Game. A size change reallocates the offscreen
// image and requests a full reflow.
func (c *Chart) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Resize sets the chart size, reallocating the offscreen image when needed.
func (c *Chart) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.image != nil {
		if b := c.image.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
	c.SetBounds(NewRect(0, 0, float64(width), float64(height)))
	c.space = c.Bounds()
	c.Bind(NewImageCanvas(c.image), c.scheduler)
	c.Invalidate(true, true)
}

// Image returns the offscreen image, or nil before the first Layout.
func (c *Chart) Image() *ebiten.Image { return c.image }

// Reflow lays out the whole tree: title on top, slider at the bottom, legend
// column on the right, axis titles and labels around the plot.
func (c *Chart) Reflow(space Rect) {
	start := time.Now()
	c.Control.Reflow(space)
	if c.ctx == nil || !c.Visible {
		return
	}
	area := c.InnerRect()

	c.Title.Reflow(area)
	area = cutTop(area, c.Title.Height())

	c.Slider.Reflow(area)
	area = cutBottom(area, c.Slider.Height())

	legends := []*Control{&c.ColorLegend.Control, &c.SizeLegend.Control}
	c.ColorLegend.Reflow(area)
	c.SizeLegend.Reflow(area)
	col := 0.0
	for _, l := range legends {
		col = math.Max(col, l.Width())
	}
	top := area.Top()
	for _, w := range []Widget{c.ColorLegend, c.SizeLegend} {
		w.Reflow(NewRect(area.Right()-col, top, col, math.Max(area.Bottom()-top, 0)))
		top += w.Base().Height()
	}
	area = cutRight(area, col)

	p := c.Plot
	p.X.Title.Reflow(area)
	area = cutBottom(area, p.X.Title.Height())
	p.Y.Title.Reflow(area)
	area = cutLeft(area, p.Y.Title.Width())

	yw := p.Y.MeasureLabels()
	xh := p.X.MeasureLabels()
	p.Reflow(NewRect(area.Left()+yw, area.Top(), math.Max(area.Width()-yw, 0), math.Max(area.Height()-xh, 0)))
	c.bindPlot()
	c.reflowLabels(area)
	vp := p.Scale.Viewport()
	c.positionBubbles(vp != c.viewport)
	c.viewport = vp
	c.Tooltip.Reflow(c.InnerRect())
	c.debugCheckItemCount()

	c.realign = false
	c.stats.reflowTime = time.Since(start)
}

// reflowLabels places the label collections along the plot edges and hides
// those that leave the room reserved for them.
func (c *Chart) reflowLabels(area Rect) {
	p := c.Plot
	inner := p.InnerRect()
	xh := p.X.Labels.Measure()
	yw := p.Y.Labels.Measure()
	p.X.Labels.Reflow(NewRect(inner.Left(), p.Bottom(), inner.Width(), xh))
	p.Y.Labels.Reflow(NewRect(area.Left(), inner.Top(), yw, inner.Height()))
	c.hideOverlappingLabels(area)
}

func (c *Chart) hideOverlappingLabels(area Rect) {
	p := c.Plot
	p.X.HideOverlappingLabels(area.Left(), area.Right())
	p.Y.HideOverlappingLabels(area.Top(), p.Bottom())
}

// realignAfterScale repositions everything that follows the scale without
// a full reflow.
func (c *Chart) realignAfterScale() {
	start := time.Now()
	area := c.Plot.Bounds()
	area = NewRect(c.Plot.Y.Labels.Left(), area.Top(), area.Right()-c.Plot.Y.Labels.Left(), area.Height())
	c.Plot.X.Realign()
	c.Plot.Y.Realign()
	c.hideOverlappingLabels(area)
	c.positionBubbles(true)
	c.updateTooltip()
	c.Tooltip.Reflow(c.InnerRect())
	c.realign = false
	c.stats.reflowTime = time.Since(start)
}

// Repaint clears the offscreen image and paints every layer back to front.
func (c *Chart) Repaint() {
	if c.ctx == nil || !c.Visible {
		return
	}
	if c.realign {
		c.realignAfterScale()
	}
	start := time.Now()
	if cl, ok := c.ctx.(interface{ Clear() }); ok {
		cl.Clear()
	}
	c.paintBox()
	c.Title.Repaint()
	c.ColorLegend.Repaint()
	c.SizeLegend.Repaint()
	c.Slider.Repaint()
	c.Plot.Repaint()
	c.Plot.X.Labels.Repaint()
	c.Plot.Y.Labels.Repaint()
	c.Plot.X.Title.Repaint()
	c.Plot.Y.Title.Repaint()
	c.Tooltip.Repaint()
	c.stats.repaintTime = time.Since(start)
	c.stats.bubbles = len(c.Plot.Bubbles())
	c.stats.labels = visibleItems(c.Plot.X.Labels) + visibleItems(c.Plot.Y.Labels)
	c.debugLog()
	c.Invalidated.Emit(c)
}

// interactive returns the widgets that receive pointer events, front to back.
func (c *Chart) interactive() []Widget {
	return []Widget{c.Slider, c.ColorLegend, c.SizeLegend, c.Plot}
}

// Handle dispatches e to the interactive widgets front to back. Moving off
// the plot clears the hover.
func (c *Chart) Handle(e *Event) bool {
	if !c.Visible || !c.Enabled {
		return false
	}
	if e.Kind == EventMouseMove && !c.Plot.InnerRect().Contains(e.X, e.Y) {
		c.Plot.setHovered(nil)
	}
	return dispatch(e, c.interactive()...)
}

func cutTop(r Rect, h float64) Rect {
	h = math.Min(h, r.Height())
	return NewRect(r.Left(), r.Top()+h, r.Width(), r.Height()-h)
}

func cutBottom(r Rect, h float64) Rect {
	return NewRect(r.Left(), r.Top(), r.Width(), math.Max(r.Height()-h, 0))
}

func cutLeft(r Rect, w float64) Rect {
	w = math.Min(w, r.Width())
	return NewRect(r.Left()+w, r.Top(), r.Width()-w, r.Height())
}

func cutRight(r Rect, w float64) Rect {
	return NewRect(r.Left(), r.Top(), math.Max(r.Width()-w, 0), r.Height())
}
