package bubblechart

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/bubblechart/data"
)

var testBinding = DataBinding{X: "x", Y: "y", Size: "size", Color: "color", XTitle: "GDP"}

func newDataChart(t *testing.T, entities, slices int) (*Chart, *recordingCanvas) {
	t.Helper()
	c, rc := newTestChart(t)
	store := data.Generate(data.NewRandom(1), data.GenerateConfig{Entities: entities, Slices: slices})
	c.SetData(store, testBinding)
	c.Scheduler().Flush()
	return c, rc
}

// setEntity stores one value per dimension for every slice of an entity.
// NaN leaves the slice out of that dimension.
func setEntity(s *data.Store, entity string, slices []string, x, y, size, color []float64) {
	for i, slice := range slices {
		for dim, vals := range map[string][]float64{"x": x, "y": y, "size": size, "color": color} {
			if !math.IsNaN(vals[i]) {
				s.Set(data.Path{dim, entity, slice}, vals[i])
			}
		}
	}
}

func TestNewChartDefaults(t *testing.T) {
	c, err := NewChart(ChartConfig{Font: testFont, TitleFont: testFont, SmallFont: testFont})
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	if c.Width() != DefaultWidth || c.Height() != DefaultHeight {
		t.Errorf("expected %dx%d, got %vx%v", DefaultWidth, DefaultHeight, c.Width(), c.Height())
	}
	if c.Name != "chart" {
		t.Errorf("expected default name, got %q", c.Name)
	}
	if c.minRadius != DefaultMinRadius || c.maxRadius != DefaultMaxRadius {
		t.Errorf("expected default radii, got %v %v", c.minRadius, c.maxRadius)
	}
	if c.Tooltip.Visible {
		t.Error("expected a hidden tooltip")
	}
	if c.Logger() == nil {
		t.Error("expected a logger")
	}
}

func TestChartLayout(t *testing.T) {
	c, _ := newTestChart(t)
	p := c.Plot
	if p.Width() <= 0 || p.Height() <= 0 {
		t.Fatalf("expected a laid out plot, got %+v", p.Bounds())
	}
	if c.Title.Top() != 8 || c.Title.HCenter() != 480 {
		t.Errorf("expected a centered title at the top, got %+v", c.Title.Bounds())
	}
	if c.Slider.Bottom() != 632 {
		t.Errorf("expected the slider at the bottom, got %v", c.Slider.Bottom())
	}
	if p.Bottom() > c.Slider.Top() || p.Top() < c.Title.Bottom() {
		t.Errorf("expected the plot between title and slider, got %+v", p.Bounds())
	}
	if c.ColorLegend.Left() < p.Right() {
		t.Errorf("expected the legends right of the plot, got %v < %v", c.ColorLegend.Left(), p.Right())
	}
	if c.SizeLegend.Top() != c.ColorLegend.Bottom() {
		t.Errorf("expected stacked legends, got %v and %v", c.SizeLegend.Top(), c.ColorLegend.Bottom())
	}
	want := p.InnerRect().Inset(Uniform(DefaultMaxRadius / 2))
	if got := p.Scale.Viewport(); got != want {
		t.Errorf("expected viewport %+v, got %+v", want, got)
	}
}

func TestChartSetData(t *testing.T) {
	c, _ := newDataChart(t, 5, 4)
	if got := len(c.Entities()); got != 5 {
		t.Fatalf("expected 5 entities, got %d", got)
	}
	if diff := cmp.Diff([]string{"1950", "1951", "1952", "1953"}, c.Slider.Slices()); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
	if c.Plot.X.Title.Text != "GDP" || c.Plot.Y.Title.Text != "y" {
		t.Errorf("unexpected axis titles %q %q", c.Plot.X.Title.Text, c.Plot.Y.Title.Text)
	}
	if c.SizeLegend.Title.Text != "size" || c.ColorLegend.Title.Text != "color" {
		t.Error("expected legend titles from the binding")
	}
	if c.Store() == nil || c.Binding().X != "x" {
		t.Error("expected the store and binding kept")
	}
	for _, e := range c.Entities() {
		if c.Bubble(e) == nil {
			t.Errorf("expected a bubble for %s", e)
		}
	}

	settle(c)
	inner := c.Plot.InnerRect()
	for _, b := range c.Plot.Bubbles() {
		if b.State() != BubbleNormal {
			t.Errorf("%s: expected normal, got %v", b.Label, b.State())
		}
		x, y, r := b.Center()
		if !inner.Contains(x, y) {
			t.Errorf("%s: center (%v,%v) outside the plot %+v", b.Label, x, y, inner)
		}
		if r < DefaultMinRadius-epsilon || r > DefaultMaxRadius+epsilon {
			t.Errorf("%s: radius %v outside [%v,%v]", b.Label, r, DefaultMinRadius, DefaultMaxRadius)
		}
	}
}

func TestChartBubblesGrowFromCenter(t *testing.T) {
	c, _ := newTestChart(t)
	store := data.Generate(data.NewRandom(1), data.GenerateConfig{Entities: 2, Slices: 2})
	var changes []BubbleStateChange
	c.StateChange.Subscribe(func(ch BubbleStateChange) { changes = append(changes, ch) })

	c.SetData(store, testBinding)
	b := c.Bubble("Entity 1")
	if b == nil {
		t.Fatal("expected a bubble once the plot has a size")
	}
	if _, _, r := b.Center(); r != 0 {
		t.Errorf("expected a new bubble to start at radius 0, got %v", r)
	}
	if b.State() != BubbleWaiting {
		t.Errorf("expected waiting, got %v", b.State())
	}

	settle(c)
	normal := 0
	for _, ch := range changes {
		if ch.To == BubbleNormal {
			normal++
		}
	}
	if normal != 2 {
		t.Errorf("expected 2 bubbles to reach normal, got %d (%+v)", normal, changes)
	}
}

func TestChartEntityRemoved(t *testing.T) {
	c, _ := newDataChart(t, 3, 2)
	settle(c)

	smaller := data.Generate(data.NewRandom(1), data.GenerateConfig{Entities: 2, Slices: 2})
	c.SetData(smaller, testBinding)
	c.Scheduler().Flush()
	gone := c.Bubble("Entity 3")
	if gone == nil || gone.State() != BubbleDisappearing {
		t.Fatalf("expected Entity 3 disappearing, got %v", gone)
	}

	settle(c)
	if c.Bubble("Entity 3") != nil {
		t.Error("expected the bubble removed once it shrank to nothing")
	}
	if got := len(c.Plot.Bubbles()); got != 2 {
		t.Errorf("expected 2 bubbles, got %d", got)
	}
}

func TestChartGapDisappearsAndRevives(t *testing.T) {
	c, _ := newTestChart(t)
	nan := math.NaN()
	slices := []string{"1990", "2000"}
	s := data.NewStore()
	setEntity(s, "A", slices, []float64{1, 2}, []float64{1, 2}, []float64{1, 2}, []float64{1, 2})
	setEntity(s, "B", slices, []float64{2, 3}, []float64{3, 1}, []float64{2, nan}, []float64{2, 1})
	c.SetData(s, testBinding)
	c.Scheduler().Flush()
	settle(c)

	b := c.Bubble("B")
	if b == nil || b.State() != BubbleNormal {
		t.Fatalf("expected B normal, got %v", b)
	}
	c.Slider.SetPosition(1)
	if b.State() != BubbleDisappearing {
		t.Errorf("expected B to disappear without a size, got %v", b.State())
	}
	if c.Bubble("A").State() != BubbleNormal {
		t.Error("expected A unaffected")
	}

	c.Slider.SetPosition(0)
	if b.State() != BubbleAppearing {
		t.Errorf("expected B revived, got %v", b.State())
	}
	settle(c)
	if b.State() != BubbleNormal {
		t.Errorf("expected B normal again, got %v", b.State())
	}
}

func TestChartHoverShowsTooltip(t *testing.T) {
	c, _ := newDataChart(t, 4, 3)
	settle(c)
	b := c.Bubble("Entity 2")
	x, y, _ := b.Center()

	var hovered []*Bubble
	c.Hover.Subscribe(func(b *Bubble) { hovered = append(hovered, b) })
	c.processPointer(x, y, false, 0, 0)

	h := c.Plot.Hovered()
	if h == nil || !h.Contains(x, y) {
		t.Fatalf("expected a bubble under the pointer, got %v", h)
	}
	if len(hovered) != 1 || hovered[0] != h {
		t.Errorf("expected one hover signal, got %d", len(hovered))
	}
	if !c.Tooltip.Visible || !strings.HasPrefix(c.Tooltip.Text, h.Label+"\n") {
		t.Errorf("expected a tooltip for %s, got %q", h.Label, c.Tooltip.Text)
	}
	if got := strings.Count(c.Tooltip.Text, "\n"); got != 4 {
		t.Errorf("expected 4 value lines, got %d", got)
	}
	hx, hy, hr := h.Center()
	if c.Tooltip.Anchor() != (Vec2{hx, hy - hr}) {
		t.Errorf("expected the tooltip on top of the bubble, got %v", c.Tooltip.Anchor())
	}

	c.processPointer(2, 2, false, 0, 0)
	if c.Plot.Hovered() != nil || c.Tooltip.Visible {
		t.Error("expected hover cleared outside the plot")
	}
	if len(hovered) != 2 || hovered[1] != nil {
		t.Errorf("expected a nil hover signal, got %v", hovered)
	}
}

func TestChartScaleChangeRealigns(t *testing.T) {
	c, _ := newDataChart(t, 3, 2)
	settle(c)
	b := c.Bubble("Entity 1")
	bx, by, _ := b.Center()
	x, y := plotCenter(c)

	c.processWheel(x, y, 1, 0)
	if !c.realign {
		t.Fatal("expected a pending realign")
	}
	c.Scheduler().Flush()
	if c.realign {
		t.Error("expected the realign done on repaint")
	}
	nx, ny, _ := b.Center()
	wantX, wantY := x+(bx-x)*1.5, y+(by-y)*1.5
	if !approxEqual(nx, wantX, 1e-6) || !approxEqual(ny, wantY, 1e-6) {
		t.Errorf("expected the bubble at (%v,%v) without animating, got (%v,%v)", wantX, wantY, nx, ny)
	}
	if !b.Settled() {
		t.Error("expected bubbles to jump on a scale change")
	}
}

func TestChartRepaint(t *testing.T) {
	c, rc := newDataChart(t, 3, 2)
	settle(c)
	c.Scheduler().Flush()
	invalidated := 0
	c.Invalidated.Subscribe(func(*Chart) { invalidated++ })
	clears := *rc.clears
	rc.Reset()

	c.Invalidate(false, true)
	c.Scheduler().Flush()
	if invalidated != 1 {
		t.Errorf("expected 1 invalidated signal, got %d", invalidated)
	}
	if *rc.clears != clears+1 {
		t.Errorf("expected the image cleared once, got %d", *rc.clears-clears)
	}
	texts := rc.texts()
	if len(texts) == 0 || texts[0] != "Test" {
		t.Errorf("expected the title painted first, got %v", texts)
	}
	// Three bubbles and the slider thumb.
	if got := rc.count("fillCircle"); got != 4 {
		t.Errorf("expected 4 filled circles, got %d", got)
	}
}

func TestChartRepaintCoalesces(t *testing.T) {
	c, rc := newTestChart(t)
	clears := *rc.clears
	c.Invalidate(false, true)
	c.Invalidate(true, false)
	c.Plot.Invalidate(false, true)
	if got := c.Scheduler().Pending(); got != 1 {
		t.Errorf("expected one scheduled refresh, got %d", got)
	}
	c.Scheduler().Flush()
	if *rc.clears != clears+1 {
		t.Errorf("expected a single repaint, got %d", *rc.clears-clears)
	}
}
