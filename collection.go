package bubblechart

import (
	"fmt"
	"math"
)

// Transformer maps a logical value to a relative position in [0,1].
type Transformer interface {
	Transform(v float64) float64
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(v float64) float64

func (f TransformerFunc) Transform(v float64) float64 { return f(v) }

// Item is a child control managed by a Collection.
type Item interface {
	Widget
	Value() float64
	SetValue(v float64)
	Hidden() bool
	SetHidden(h bool)
}

// CollectionConfig configures a Collection. Sub, when set, is the template for
// the subcollections built between every pair of adjacent items; its Min and
// Max are ignored.
type CollectionConfig struct {
	ControlConfig
	Count int
	Min   float64
	Max   float64

	// Transformer maps item values to [0,1]. Nil means values are already
	// relative.
	Transformer Transformer
	// Scale maps relative positions to screen coordinates. Nil spreads items
	// across the collection's inner rect.
	Scale *Scale
	// Direction selects the axis items are laid out on. Up and Left traverse
	// it from the far edge.
	Direction Direction
	// NewItem creates the item for a value.
	NewItem func(value float64) Item

	Sub *CollectionConfig
}

// Collection generates Count evenly spaced items between Min and Max and
// positions them through its Transformer and Scale. With a subcollection
// template it recurses: every adjacent item pair gets its own Collection over
// the narrowed range, so major and minor grid lines or labels share one
// generator.
type Collection struct {
	Control

	Count       int
	Min         float64
	Max         float64
	Transformer Transformer
	Scale       *Scale
	Direction   Direction
	NewItem     func(value float64) Item

	sub            *CollectionConfig
	items          []Item
	values         []float64
	subcollections []*Collection

	master *Collection
	slave  *Collection
}

// NewCollection creates a collection. Items are generated on first reflow.
func NewCollection(cfg CollectionConfig) *Collection {
	c := &Collection{
		Count:       cfg.Count,
		Min:         cfg.Min,
		Max:         cfg.Max,
		Transformer: cfg.Transformer,
		Scale:       cfg.Scale,
		Direction:   cfg.Direction,
		NewItem:     cfg.NewItem,
		sub:         cfg.Sub,
	}
	c.init(c, cfg.ControlConfig)
	return c
}

// Items returns the generated items in value order.
func (c *Collection) Items() []Item {
	c.sync()
	return c.items
}

// Values returns the generated values.
func (c *Collection) Values() []float64 {
	c.sync()
	return c.values
}

// Subcollections returns the collections between adjacent items.
func (c *Collection) Subcollections() []*Collection {
	c.sync()
	return c.subcollections
}

// SetRange changes the value range. Items are regenerated on the next
// access.
func (c *Collection) SetRange(lo, hi float64) {
	if lo == c.Min && hi == c.Max {
		return
	}
	c.Min, c.Max = lo, hi
	c.Invalidate(true, true)
}

// SetCount changes the number of items. It panics when n is negative.
func (c *Collection) SetCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bubblechart: collection %q: negative count %d", c.Name, n))
	}
	if n == c.Count {
		return
	}
	c.Count = n
	c.Invalidate(true, true)
}

// Link makes slave paint interleaved with c: before each of c's levels the
// matching level of slave is drawn. A linked slave does not paint by itself.
func (c *Collection) Link(slave *Collection) {
	if c.slave != nil {
		c.slave.master = nil
	}
	c.slave = slave
	if slave != nil {
		slave.master = c
	}
}

// Master returns the collection painting c, if any.
func (c *Collection) Master() *Collection { return c.master }

// Depth returns the number of subcollection levels below c.
func (c *Collection) Depth() int {
	d := 0
	for _, s := range c.subcollections {
		d = max(d, s.Depth()+1)
	}
	return d
}

// horizontal reports whether items are laid out along x.
func (c *Collection) horizontal() bool {
	return c.Direction.Horizontal()
}

func (c *Collection) reversed() bool {
	return c.Direction == DirectionUp || c.Direction == DirectionLeft
}

// valueAt returns the i-th evenly spaced value.
func (c *Collection) valueAt(i int) float64 {
	if c.Count <= 1 {
		return c.Min
	}
	return c.Min + float64(i)*(c.Max-c.Min)/float64(c.Count-1)
}

// stale reports whether items or values no longer match Count, Min and Max.
func (c *Collection) stale() bool {
	n := max(c.Count, 0)
	if len(c.values) != n || (c.NewItem != nil && len(c.items) != n) {
		return true
	}
	if n > 0 && (c.values[0] != c.Min || c.values[n-1] != c.valueAt(n-1)) {
		return true
	}
	if c.sub != nil && n > 1 && len(c.subcollections) != n-1 {
		return true
	}
	return false
}

func (c *Collection) sync() {
	if c.stale() {
		c.recreate()
	}
}

// reset drops the generated items so the next sync rebuilds them even when
// Count, Min and Max are unchanged.
func (c *Collection) reset() {
	c.items, c.values, c.subcollections = nil, nil, nil
}

// recreate discards every item and subcollection and builds them again.
func (c *Collection) recreate() {
	n := max(c.Count, 0)
	c.items = make([]Item, 0, n)
	c.values = make([]float64, 0, n)
	c.subcollections = make([]*Collection, 0, max(n-1, 0))
	for i := range n {
		v := c.valueAt(i)
		c.values = append(c.values, v)
		if c.NewItem == nil {
			continue
		}
		it := c.NewItem(v)
		it.SetValue(v)
		c.adopt(it)
		c.items = append(c.items, it)
	}
	if c.NewItem == nil {
		c.items = nil
	}
	if c.sub == nil {
		return
	}
	for i := 0; i+1 < n; i++ {
		cfg := *c.sub
		cfg.Min, cfg.Max = c.values[i], c.values[i+1]
		if cfg.Transformer == nil {
			cfg.Transformer = c.Transformer
		}
		if cfg.Scale == nil {
			cfg.Scale = c.Scale
		}
		if cfg.NewItem == nil {
			cfg.NewItem = c.NewItem
		}
		cfg.Direction = c.Direction
		s := NewCollection(cfg)
		c.adopt(s)
		c.subcollections = append(c.subcollections, s)
	}
}

// Bind binds the collection and everything it generated.
func (c *Collection) Bind(ctx Canvas, s Scheduler) {
	c.Control.Bind(ctx, s)
	for _, it := range c.items {
		it.Bind(ctx, s)
	}
	for _, sc := range c.subcollections {
		sc.Bind(ctx, s)
	}
}

// Reflow regenerates items if needed, sizes them by content, aligns the
// collection inside space and positions every item.
func (c *Collection) Reflow(space Rect) {
	c.space = space
	c.sync()
	if !c.assertReflow(false) {
		return
	}
	extent := c.reflowChildren(space)
	c.reflowSelf(space, extent)
	c.realignChildren()
}

// Measure regenerates items if needed, sizes them by content and returns
// the thickness of the collection across its axis, insets included.
func (c *Collection) Measure() float64 {
	c.sync()
	if c.ctx == nil || !c.Visible {
		return 0
	}
	in := c.insets()
	extent := c.reflowChildren(c.space)
	if c.horizontal() {
		return extent + in.Vertical()
	}
	return extent + in.Horizontal()
}

// RealignOnly repositions items without resizing anything, for use after
// the scale changed.
func (c *Collection) RealignOnly() {
	if c.ctx == nil || !c.Visible || c.stale() {
		return
	}
	c.realignChildren()
}

// reflowChildren sizes every item, deepest subcollections first, and returns
// the largest cross-axis extent found.
func (c *Collection) reflowChildren(space Rect) float64 {
	extent := 0.0
	for _, s := range c.subcollections {
		s.sync()
		s.space = space
		if !s.assertReflow(false) {
			continue
		}
		extent = math.Max(extent, s.reflowChildren(space))
	}
	for _, it := range c.items {
		it.Reflow(space)
		b := it.Base()
		if c.horizontal() {
			extent = math.Max(extent, b.Height())
		} else {
			extent = math.Max(extent, b.Width())
		}
	}
	return extent
}

// reflowSelf sizes the collection's cross axis to extent, aligns it and
// hands the resulting geometry to the subcollections.
func (c *Collection) reflowSelf(space Rect, extent float64) {
	in := c.insets()
	if c.horizontal() {
		if c.VAlign != AlignFit && c.VAlign != AlignNone {
			c.height = extent + in.Vertical()
		}
	} else if c.HAlign != AlignFit && c.HAlign != AlignNone {
		c.width = extent + in.Horizontal()
	}
	c.align(space)
	c.propagate()
}

// propagate copies c's final box to every subcollection, recursively.
func (c *Collection) propagate() {
	for _, s := range c.subcollections {
		s.SetBounds(c.Bounds())
		s.Margin, s.Padding, s.Border = c.Margin, c.Padding, c.Border
		s.propagate()
	}
}

// position maps an item value to a screen coordinate on the main axis.
func (c *Collection) position(v float64, inner Rect) float64 {
	rel := v
	if c.Transformer != nil {
		rel = c.Transformer.Transform(v)
	}
	if c.reversed() {
		rel = 1 - rel
	}
	if c.horizontal() {
		if c.Scale != nil {
			return c.Scale.X(rel)
		}
		return lerp(inner.Left(), inner.Right(), rel)
	}
	if c.Scale != nil {
		return c.Scale.Y(rel)
	}
	return lerp(inner.Top(), inner.Bottom(), rel)
}

// realignChildren centers every item on its transformed value and aligns it
// on the cross axis within the inner rect, then recurses.
func (c *Collection) realignChildren() {
	inner := c.InnerRect()
	for i, it := range c.items {
		b := it.Base()
		p := c.position(c.values[i], inner)
		if c.horizontal() {
			b.SetHCenter(p)
			b.top, b.height = alignAxis(b.VAlign, b.top, b.height, inner.top, inner.height)
			if b.VAlign == AlignAuto || b.VAlign == AlignNone {
				b.top = inner.top
			}
		} else {
			b.SetVCenter(p)
			b.left, b.width = alignAxis(b.HAlign, b.left, b.width, inner.left, inner.width)
			if b.HAlign == AlignAuto || b.HAlign == AlignNone {
				b.left = inner.Right() - b.width
			}
		}
	}
	for _, s := range c.subcollections {
		if s.Visible {
			s.realignChildren()
		}
	}
}

// Repaint draws all levels, finest first. A collection linked as a slave is
// painted by its master and does nothing here.
func (c *Collection) Repaint() {
	if c.master != nil || !c.assertRepaint() {
		return
	}
	c.paintBox()
	depth := c.Depth()
	if s := c.slave; s != nil {
		if s.assertRepaint() {
			s.paintBox()
		}
		depth = max(depth, s.Depth())
	}
	for level := depth; level >= 0; level-- {
		if c.slave != nil {
			c.slave.paintLevel(level)
		}
		c.paintLevel(level)
	}
}

// paintLevel paints the items level steps below c.
func (c *Collection) paintLevel(level int) {
	if c.ctx == nil || !c.Visible {
		return
	}
	if level > 0 {
		for _, s := range c.subcollections {
			s.paintLevel(level - 1)
		}
		return
	}
	for _, it := range c.items {
		if !it.Hidden() {
			it.Repaint()
		}
	}
}

// extent returns the item's screen interval on the collection's main axis.
func (c *Collection) extent(it Item) (float64, float64) {
	b := it.Base()
	if c.horizontal() {
		return b.Left(), b.Right()
	}
	return b.Top(), b.Bottom()
}

// HideOverlapping hides items lying outside [lo, hi] or overlapping the
// previously kept item, walking in screen order. The subcollection between
// two items is processed within the gap between them when both stay visible
// and hidden entirely otherwise.
func (c *Collection) HideOverlapping(lo, hi float64) {
	n := len(c.items)
	if n == 0 {
		return
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n > 1 {
		first, _ := c.extent(c.items[0])
		last, _ := c.extent(c.items[n-1])
		if last < first {
			for i := range order {
				order[i] = n - 1 - i
			}
		}
	}
	edge := math.Inf(-1)
	prevVisible := false
	prevEnd := 0.0
	for k, i := range order {
		it := c.items[i]
		a, b := c.extent(it)
		visible := a >= lo && b <= hi && a >= edge
		it.SetHidden(!visible)
		if k > 0 && len(c.subcollections) == n-1 {
			s := c.subcollections[min(i, order[k-1])]
			if prevVisible && visible {
				s.HideOverlapping(prevEnd, a)
			} else {
				s.hideAll()
			}
		}
		if visible {
			edge = b
			prevEnd = b
		}
		prevVisible = visible
	}
}

func (c *Collection) hideAll() {
	c.HideOverlapping(math.Inf(1), math.Inf(-1))
}

// Handle offers e to every visible item.
func (c *Collection) Handle(e *Event) bool {
	if !c.Control.Handle(e) {
		return false
	}
	for _, it := range c.items {
		if it.Hidden() {
			continue
		}
		dispatch(e, it)
		if e.Cancel {
			break
		}
	}
	return true
}
