package bubblechart

import (
	"math"
	"testing"
	"unicode/utf8"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// fixedFont measures every rune as w pixels wide and every line as h tall.
type fixedFont struct {
	w, h float64
}

func (f fixedFont) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * f.w, f.h
}

func (f fixedFont) LineHeight() float64 { return f.h }

var testFont = fixedFont{w: 6, h: 10}

// drawOp is one recorded canvas call.
type drawOp struct {
	Kind string
	Text string
	X, Y float64
	R    float64
}

// recordingCanvas logs every call. Clipped canvases share the log of their
// parent.
type recordingCanvas struct {
	ops     *[]drawOp
	clip    Rect
	clears  *int
	clipped bool
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{ops: &[]drawOp{}, clears: new(int)}
}

func (c *recordingCanvas) record(op drawOp) {
	*c.ops = append(*c.ops, op)
}

func (c *recordingCanvas) Ops() []drawOp { return *c.ops }

func (c *recordingCanvas) Reset() { *c.ops = (*c.ops)[:0] }

func (c *recordingCanvas) Clear() { *c.clears++ }

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range *c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, op := range *c.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (c *recordingCanvas) FillRect(r Rect, radius float64, col Color) {
	c.record(drawOp{Kind: "fillRect", X: r.Left(), Y: r.Top(), R: radius})
}

func (c *recordingCanvas) StrokeRect(r Rect, radius, width float64, col Color) {
	c.record(drawOp{Kind: "strokeRect", X: r.Left(), Y: r.Top(), R: radius})
}

func (c *recordingCanvas) Line(x0, y0, x1, y1, width float64, col Color) {
	c.record(drawOp{Kind: "line", X: x0, Y: y0})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col Color) {
	c.record(drawOp{Kind: "fillCircle", X: cx, Y: cy, R: r})
}

func (c *recordingCanvas) StrokeCircle(cx, cy, r, width float64, col Color) {
	c.record(drawOp{Kind: "strokeCircle", X: cx, Y: cy, R: r})
}

func (c *recordingCanvas) FillPath(p *Path, col Color) {
	c.record(drawOp{Kind: "fillPath"})
}

func (c *recordingCanvas) StrokePath(p *Path, width float64, col Color) {
	c.record(drawOp{Kind: "strokePath"})
}

func (c *recordingCanvas) Text(s string, font Font, x, y, angle float64, col Color) {
	c.record(drawOp{Kind: "text", Text: s, X: x, Y: y, R: angle})
}

func (c *recordingCanvas) Clip(r Rect) Canvas {
	return &recordingCanvas{ops: c.ops, clears: c.clears, clip: r, clipped: true}
}

// countingWidget is a bare control counting its reflows and repaints.
type countingWidget struct {
	Control
	reflows  int
	repaints int
}

func newCountingWidget(name string) *countingWidget {
	w := &countingWidget{}
	w.init(w, ControlConfig{Name: name})
	return w
}

func (w *countingWidget) Reflow(space Rect) {
	w.reflows++
	w.Control.Reflow(space)
}

func (w *countingWidget) Repaint() {
	w.repaints++
	w.Control.Repaint()
}

// newTestChart builds a chart with fixed-width fonts, bound to a recording
// canvas and laid out once.
func newTestChart(t *testing.T) (*Chart, *recordingCanvas) {
	t.Helper()
	c, err := NewChart(ChartConfig{
		Title:     "Test",
		Font:      testFont,
		TitleFont: fixedFont{w: 10, h: 20},
		SmallFont: fixedFont{w: 5, h: 8},
	})
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	rc := newRecordingCanvas()
	c.Bind(rc, c.Scheduler())
	c.Invalidate(true, true)
	c.Scheduler().Flush()
	return c, rc
}

// settle advances the chart animations until every bubble stops moving.
func settle(c *Chart) {
	for range 500 {
		c.advance(1.0 / 60)
		moving := false
		for _, b := range c.Plot.Bubbles() {
			if !b.Settled() || b.State() == BubbleDisappearing {
				moving = true
			}
		}
		if !moving {
			c.advance(1.0 / 60)
			return
		}
	}
}
