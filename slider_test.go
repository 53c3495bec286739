package bubblechart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestSlider(names ...string) *Slider {
	s := NewSlider(SliderConfig{Font: testFont})
	s.Bind(newRecordingCanvas(), nil)
	s.SetSlices(names)
	return s
}

func TestSliderSegment(t *testing.T) {
	s := newTestSlider("1990", "2000", "2010")
	tests := []struct {
		pos       float64
		a, b      string
		wantBlend float64
	}{
		{0, "1990", "2000", 0},
		{0.25, "1990", "2000", 0.25},
		{1.5, "2000", "2010", 0.5},
		{2, "2010", "2010", 0},
		{7, "2010", "2010", 0},
		{-3, "1990", "2000", 0},
	}
	for _, tt := range tests {
		s.SetPosition(tt.pos)
		a, b, blend := s.Segment()
		if a != tt.a || b != tt.b || !approxEqual(blend, tt.wantBlend, epsilon) {
			t.Errorf("position %v: expected (%s,%s,%v), got (%s,%s,%v)", tt.pos, tt.a, tt.b, tt.wantBlend, a, b, blend)
		}
	}
}

func TestSliderEmpty(t *testing.T) {
	s := newTestSlider()
	a, b, blend := s.Segment()
	if a != "" || b != "" || blend != 0 {
		t.Errorf("expected empty segment, got (%q,%q,%v)", a, b, blend)
	}
	s.Play(1)
	if s.Playing() {
		t.Error("expected no playback without slices")
	}
}

func TestSliderPositionChange(t *testing.T) {
	s := newTestSlider("a", "b", "c")
	var got []float64
	s.PositionChange.Subscribe(func(p float64) { got = append(got, p) })
	s.SetPosition(1)
	s.SetPosition(1)
	s.SetPosition(9)
	if diff := cmp.Diff([]float64{1, 2}, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestSliderSetSlicesResets(t *testing.T) {
	s := newTestSlider("a", "b", "c")
	s.SetPosition(2)
	s.Play(1)
	s.SetSlices([]string{"x", "y"})
	if s.Position() != 0 || s.Playing() {
		t.Errorf("expected position 0 and paused, got %v %v", s.Position(), s.Playing())
	}
	if diff := cmp.Diff([]string{"x", "y"}, s.Slices()); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
}

func sliderLabelTexts(s *Slider) []string {
	var texts []string
	for _, it := range s.Labels.Items() {
		texts = append(texts, it.(*Label).Text)
	}
	return texts
}

func TestSliderSetSlicesRenamesLabels(t *testing.T) {
	s := newTestSlider("1990", "2000", "2010")
	s.Reflow(NewRect(0, 0, 300, 100))
	if diff := cmp.Diff([]string{"1990", "2000", "2010"}, sliderLabelTexts(s)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	s.SetSlices([]string{"a", "b", "c"})
	s.Reflow(NewRect(0, 0, 300, 100))
	if diff := cmp.Diff([]string{"a", "b", "c"}, sliderLabelTexts(s)); diff != "" {
		t.Errorf("expected labels for the new slices (-want +got):\n%s", diff)
	}
}

func TestSliderPlay(t *testing.T) {
	s := newTestSlider("a", "b", "c")
	changes := 0
	s.PositionChange.Subscribe(func(float64) { changes++ })
	s.Play(1)
	if !s.Playing() {
		t.Fatal("expected playback")
	}
	if !s.Update(0.5) {
		t.Error("expected the position to move")
	}
	if !approxEqual(s.Position(), 1, 0.01) {
		t.Errorf("expected ~1 halfway, got %v", s.Position())
	}
	s.Update(0.6)
	if s.Playing() {
		t.Error("expected playback to stop at the end")
	}
	if !approxEqual(s.Position(), 2, 0.01) {
		t.Errorf("expected ~2, got %v", s.Position())
	}
	if changes != 2 {
		t.Errorf("expected 2 changes, got %d", changes)
	}
	if s.Update(0.1) {
		t.Error("expected no change once stopped")
	}
}

func TestSliderPlayFromMiddleAndEnd(t *testing.T) {
	s := newTestSlider("a", "b", "c")
	s.SetPosition(1)
	s.Play(2)
	s.Update(0.5)
	if !approxEqual(s.Position(), 1.5, 0.01) {
		t.Errorf("expected the remaining half to take half the duration, got %v", s.Position())
	}
	s.Pause()
	if s.Playing() {
		t.Error("expected paused")
	}

	s.SetPosition(2)
	s.Play(1)
	if s.Position() != 0 || !s.Playing() {
		t.Errorf("expected a restart from 0, got %v", s.Position())
	}
}

func TestSliderLayout(t *testing.T) {
	s := newTestSlider("1990", "2000", "2010")
	s.Reflow(NewRect(0, 0, 300, 100))
	if s.Height() != 34 || s.Top() != 66 {
		t.Fatalf("expected height 34 at 66, got %v at %v", s.Height(), s.Top())
	}
	if s.Button() != NewRect(0, 66, 24, 24) {
		t.Errorf("unexpected button %+v", s.Button())
	}
	tr := s.Track()
	if tr.Left() != 40 || tr.Right() != 292 {
		t.Errorf("expected track [40,292], got [%v,%v]", tr.Left(), tr.Right())
	}
	if got := len(s.Labels.Items()); got != 3 {
		t.Fatalf("expected 3 labels, got %d", got)
	}
	centers := []float64{}
	for _, it := range s.Labels.Items() {
		centers = append(centers, it.Base().HCenter())
	}
	if diff := cmp.Diff([]float64{40, 166, 292}, centers); diff != "" {
		t.Errorf("label centers mismatch (-want +got):\n%s", diff)
	}
	if got := s.positionAt(166); got != 1 {
		t.Errorf("expected position 1 at the track middle, got %v", got)
	}
	if got := s.positionAt(-50); got != 0 {
		t.Errorf("expected clamped 0, got %v", got)
	}
}

func TestSliderPointer(t *testing.T) {
	s := newTestSlider("1990", "2000", "2010")
	s.Reflow(NewRect(0, 0, 300, 100))
	y := s.Track().VCenter()

	e := &Event{Kind: EventMouseDown, X: 166, Y: y}
	if !s.Handle(e) || !e.Cancel {
		t.Fatal("expected the slider to take the press")
	}
	if s.Position() != 1 {
		t.Errorf("expected position 1, got %v", s.Position())
	}

	s.Handle(&Event{Kind: EventDrag, X: 292, Y: y, StartX: 166, StartY: y})
	if s.Position() != 2 {
		t.Errorf("expected drag to 2, got %v", s.Position())
	}

	b := s.Button()
	s.Handle(&Event{Kind: EventMouseDown, X: b.HCenter(), Y: b.VCenter()})
	if !s.Playing() {
		t.Error("expected the button to start playback")
	}
	s.Handle(&Event{Kind: EventMouseDown, X: b.HCenter(), Y: b.VCenter()})
	if s.Playing() {
		t.Error("expected the button to pause playback")
	}
}

func TestSliderRepaint(t *testing.T) {
	rc := newRecordingCanvas()
	s := NewSlider(SliderConfig{Font: testFont})
	s.Bind(rc, nil)
	s.SetSlices([]string{"1990", "2000"})
	s.Reflow(NewRect(0, 0, 300, 100))
	s.Repaint()
	if diff := cmp.Diff([]string{"1990", "2000"}, rc.texts()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if rc.count("fillCircle") != 1 || rc.count("fillPath") != 1 {
		t.Errorf("expected a thumb and a play glyph, got %+v", rc.Ops())
	}
}
