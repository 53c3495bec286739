package bubblechart

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously over a fixed
// duration. Call Update(dt) each frame; values are written straight into the
// target fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// TweenFields creates a group driving each fields[i] from its current value to
// to[i]. Extra fields beyond 4 are ignored. A nil fn means ease.OutCubic.
func TweenFields(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.OutCubic
	}
	g := &TweenGroup{}
	for i := 0; i < len(fields) && i < len(to) && i < len(g.tweens); i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = fields[i]
		g.count++
	}
	g.Done = g.count == 0
	return g
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. It reports whether anything was written.
func (g *TweenGroup) Update(dt float32) bool {
	if g == nil || g.Done {
		return false
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return true
}

// Stop finishes the group without writing further values.
func (g *TweenGroup) Stop() {
	if g != nil {
		g.Done = true
	}
}
