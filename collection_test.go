package bubblechart

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func labelItem(text string) func(float64) Item {
	return func(float64) Item {
		return NewLabel(LabelConfig{Text: text, Font: testFont})
	}
}

func TestCollectionValues(t *testing.T) {
	c := NewCollection(CollectionConfig{Count: 5, Min: 0, Max: 1})
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	c.Max = 2
	want = []float64{0, 0.5, 1, 1.5, 2}
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Errorf("values after Max change mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionRecreateKeepsReturnedSlices(t *testing.T) {
	c := NewCollection(CollectionConfig{Count: 3, Min: 0, Max: 1, NewItem: labelItem("x")})
	values := c.Values()
	items := c.Items()
	first := items[0]

	c.Max = 4
	if diff := cmp.Diff([]float64{0, 2, 4}, c.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0.5, 1}, values); diff != "" {
		t.Errorf("expected earlier values untouched (-want +got):\n%s", diff)
	}
	if items[0] != first {
		t.Error("expected earlier items untouched")
	}
	if c.Items()[0] == first {
		t.Error("expected new items")
	}
}

func TestCollectionReset(t *testing.T) {
	created := 0
	c := NewCollection(CollectionConfig{
		Count: 2, Min: 0, Max: 1,
		NewItem: func(float64) Item {
			created++
			return NewLabel(LabelConfig{Font: testFont})
		},
	})
	c.Items()
	c.reset()
	if got := len(c.Items()); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
	if created != 4 {
		t.Errorf("expected items rebuilt after reset, created %d", created)
	}
}

func TestCollectionRegeneratesItems(t *testing.T) {
	created := 0
	c := NewCollection(CollectionConfig{
		Count: 3, Min: 0, Max: 10,
		NewItem: func(v float64) Item {
			created++
			return NewLabel(LabelConfig{Font: testFont})
		},
	})
	items := c.Items()
	if len(items) != 3 || created != 3 {
		t.Fatalf("expected 3 items, got %d (created %d)", len(items), created)
	}
	if items[1].Value() != 5 {
		t.Errorf("expected value 5, got %v", items[1].Value())
	}
	c.Items()
	if created != 3 {
		t.Errorf("expected no regeneration, created %d", created)
	}
	c.SetRange(0, 20)
	if got := c.Items()[2].Value(); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
	if created != 6 {
		t.Errorf("expected full regeneration, created %d", created)
	}
}

func TestCollectionSingleItem(t *testing.T) {
	c := NewCollection(CollectionConfig{Count: 1, Min: 3, Max: 9})
	if diff := cmp.Diff([]float64{3}, c.Values()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	c.SetCount(0)
	if len(c.Values()) != 0 {
		t.Errorf("expected no values, got %v", c.Values())
	}
}

func TestCollectionNegativeCountPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "negative count") {
			t.Errorf("unexpected panic %v", r)
		}
	}()
	NewCollection(CollectionConfig{ControlConfig: ControlConfig{Name: "c"}}).SetCount(-1)
}

func TestSubcollections(t *testing.T) {
	c := NewCollection(CollectionConfig{
		Count: 3, Min: 0, Max: 1,
		Sub: &CollectionConfig{Count: 3},
	})
	subs := c.Subcollections()
	if len(subs) != 2 {
		t.Fatalf("expected 2 subcollections, got %d", len(subs))
	}
	if diff := cmp.Diff([]float64{0, 0.25, 0.5}, subs[0].Values()); diff != "" {
		t.Errorf("first sub mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5, 0.75, 1}, subs[1].Values()); diff != "" {
		t.Errorf("second sub mismatch (-want +got):\n%s", diff)
	}
	if c.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", c.Depth())
	}
}

func TestCollectionHorizontalLayout(t *testing.T) {
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignTop},
		Count:         5, Min: 0, Max: 4,
		Transformer:   TransformerFunc(func(v float64) float64 { return v / 4 }),
		Direction:     DirectionRight,
		NewItem:       labelItem("ab"),
	})
	c.Bind(newRecordingCanvas(), nil)
	c.Reflow(NewRect(0, 100, 200, 50))

	if c.Height() != 10 || c.Top() != 100 {
		t.Errorf("expected height 10 at 100, got %v at %v", c.Height(), c.Top())
	}
	var centers []float64
	for _, it := range c.Items() {
		centers = append(centers, it.Base().HCenter())
		if it.Base().Top() != 100 {
			t.Errorf("expected item top 100, got %v", it.Base().Top())
		}
	}
	if diff := cmp.Diff([]float64{0, 50, 100, 150, 200}, centers, cmpopts.EquateApprox(0, epsilon)); diff != "" {
		t.Errorf("centers mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionReversedVertical(t *testing.T) {
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{HAlign: AlignLeft, VAlign: AlignFit},
		Count:         3, Min: 0, Max: 1,
		Direction:     DirectionUp,
		NewItem:       labelItem("abc"),
	})
	c.Bind(newRecordingCanvas(), nil)
	c.Reflow(NewRect(10, 0, 100, 100))

	if c.Width() != 18 {
		t.Errorf("expected width 18, got %v", c.Width())
	}
	items := c.Items()
	if got := items[0].Base().VCenter(); got != 100 {
		t.Errorf("expected the lowest value at the bottom, got %v", got)
	}
	if got := items[2].Base().VCenter(); got != 0 {
		t.Errorf("expected the highest value at the top, got %v", got)
	}
	// Auto-aligned items hug the far edge of a vertical collection.
	if got := items[1].Base().Right(); got != 28 {
		t.Errorf("expected right edge 28, got %v", got)
	}
}

func TestCollectionFollowsScale(t *testing.T) {
	s := NewScale(NewRect(0, 0, 100, 100), ScaleConfig{})
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignTop},
		Count:         3, Min: 0, Max: 1,
		Scale:         s,
		Direction:     DirectionRight,
		NewItem:       labelItem("x"),
	})
	c.Bind(newRecordingCanvas(), nil)
	c.Reflow(NewRect(0, 0, 100, 20))
	s.ScaleBy(1, 0, 0)
	c.RealignOnly()
	if got := c.Items()[1].Base().HCenter(); got != 100 {
		t.Errorf("expected 100 after zoom, got %v", got)
	}
}

func TestMeasure(t *testing.T) {
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{Padding: Spacing{Left: 2, Right: 3}},
		Count:         2, Min: 0, Max: 1,
		Direction:     DirectionUp,
		NewItem:       labelItem("abcd"),
	})
	if got := c.Measure(); got != 0 {
		t.Errorf("expected 0 while unbound, got %v", got)
	}
	c.Bind(newRecordingCanvas(), nil)
	if got := c.Measure(); got != 29 {
		t.Errorf("expected 29, got %v", got)
	}
}

func TestHideOverlapping(t *testing.T) {
	newRow := func() *Collection {
		c := NewCollection(CollectionConfig{
			ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignTop},
			Count:         5, Min: 0, Max: 1,
			Direction:     DirectionRight,
			NewItem:       labelItem("0123456789"),
		})
		c.Bind(newRecordingCanvas(), nil)
		c.Reflow(NewRect(0, 0, 200, 20))
		return c
	}
	hidden := func(c *Collection) []bool {
		var out []bool
		for _, it := range c.Items() {
			out = append(out, it.Hidden())
		}
		return out
	}

	tests := []struct {
		name   string
		lo, hi float64
		want   []bool
	}{
		{"wide bounds", -30, 230, []bool{false, true, false, true, false}},
		{"tight bounds", 0, 200, []bool{true, false, true, false, true}},
		{"empty bounds", 1000, -1000, []bool{true, true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRow()
			c.HideOverlapping(tt.lo, tt.hi)
			if diff := cmp.Diff(tt.want, hidden(c)); diff != "" {
				t.Errorf("hidden mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHideOverlappingThreeLabels(t *testing.T) {
	// Width-40 labels at 0, 20 and 200: the middle one collides with the first.
	values := []float64{0, 20, 200}
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignTop},
		Count:         3, Min: 0, Max: 2,
		Transformer:   TransformerFunc(func(v float64) float64 { return values[int(v)] / 240 }),
		Direction:     DirectionRight,
		NewItem:       labelItem("abcdef"),
	})
	c.Bind(newRecordingCanvas(), nil)
	c.Reflow(NewRect(0, 0, 240, 20))
	for i, it := range c.Items() {
		b := it.Base()
		b.SetWidth(40)
		b.SetHCenter(values[i] + 20)
	}
	c.HideOverlapping(0, 240)
	var got []bool
	for _, it := range c.Items() {
		got = append(got, it.Hidden())
	}
	if diff := cmp.Diff([]bool{false, true, false}, got); diff != "" {
		t.Errorf("hidden mismatch (-want +got):\n%s", diff)
	}
}

func TestHideOverlappingSubcollections(t *testing.T) {
	c := NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignTop},
		Count:         3, Min: 0, Max: 1,
		Direction:     DirectionRight,
		NewItem:       labelItem("ab"),
		Sub:           &CollectionConfig{Count: 3, NewItem: labelItem("a")},
	})
	c.Bind(newRecordingCanvas(), nil)
	c.Reflow(NewRect(0, 0, 200, 20))
	c.HideOverlapping(10, 200)

	items := c.Items()
	if !items[0].Hidden() || items[1].Hidden() || !items[2].Hidden() {
		t.Fatalf("unexpected major visibility %v %v %v", items[0].Hidden(), items[1].Hidden(), items[2].Hidden())
	}
	for _, sub := range c.Subcollections() {
		for _, it := range sub.Items() {
			if !it.Hidden() {
				t.Errorf("expected minor item %v hidden next to a hidden major", it.Value())
			}
		}
	}
}

func TestLinkedCollectionsPaintInterleaved(t *testing.T) {
	rc := newRecordingCanvas()
	grid := func(horizontal bool, dir Direction) *Collection {
		return NewCollection(CollectionConfig{
			ControlConfig: ControlConfig{HAlign: AlignFit, VAlign: AlignFit},
			Count:         2, Min: 0, Max: 1,
			Direction:     dir,
			NewItem:       gridFactory(ColorBlack, horizontal),
			Sub:           &CollectionConfig{Count: 3, NewItem: gridFactory(ColorWhite, horizontal)},
		})
	}
	master, slave := grid(false, DirectionRight), grid(true, DirectionUp)
	master.Link(slave)
	for _, c := range []*Collection{master, slave} {
		c.Bind(rc, nil)
		c.Reflow(NewRect(0, 0, 100, 100))
	}

	slave.Repaint()
	if len(rc.Ops()) != 0 {
		t.Fatalf("expected a linked slave not to paint by itself, got %d ops", len(rc.Ops()))
	}
	if slave.Master() != master {
		t.Error("expected Master to return the linking collection")
	}

	master.Repaint()
	// Per level, slave first: 3 minor slave, 3 minor master, 2 major slave,
	// 2 major master.
	if got := rc.count("line"); got != 10 {
		t.Fatalf("expected 10 lines, got %d", got)
	}
	ops := rc.Ops()
	// Horizontal lines start at x 0, vertical ones at y 0.
	if ops[0].X != 0 || ops[3].Y != 0 {
		t.Errorf("expected the slave level before the master level, got %+v", ops[:6])
	}
}
