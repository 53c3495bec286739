package bubblechart

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// debugStats holds per-refresh timing and tree metrics.
// Only logged when the chart is in debug mode.
type debugStats struct {
	reflowTime  time.Duration
	repaintTime time.Duration
	bubbles     int
	labels      int
}

// SetDebugMode enables or disables debug mode. When enabled, every refresh
// logs its timings and item counts at debug level, and oversized collections
// log a warning.
func (c *Chart) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (c *Chart) DebugMode() bool { return c.debug }

// debugLog logs the stats of the last refresh and resets them.
func (c *Chart) debugLog() {
	if !c.debug {
		return
	}
	s := c.stats
	c.logger.Debug("refresh",
		slog.Duration("reflow", s.reflowTime),
		slog.Duration("repaint", s.repaintTime),
		slog.Duration("total", s.reflowTime+s.repaintTime),
		slog.Int("bubbles", s.bubbles),
		slog.Int("labels", s.labels),
		slog.Float64("fps", ebiten.ActualFPS()),
		slog.Float64("tps", ebiten.ActualTPS()))
	c.stats = debugStats{}
}

// debugMaxItems is the item count above which a collection is reported.
const debugMaxItems = 1000

// debugCheckItemCount warns about collections that generated more items
// than debugMaxItems, usually the sign of a degenerate axis range.
func (c *Chart) debugCheckItemCount() {
	if !c.debug {
		return
	}
	for _, col := range []*Collection{c.Plot.X.Labels, c.Plot.Y.Labels, c.Plot.X.Grid, c.Plot.Y.Grid, c.Slider.Labels} {
		if n := countItems(col); n > debugMaxItems {
			c.logger.Warn("collection too large", "collection", col.Name, "items", n, "threshold", debugMaxItems)
		}
	}
}

// countItems counts the items of c and all its subcollections.
func countItems(c *Collection) int {
	n := len(c.items)
	for _, s := range c.subcollections {
		n += countItems(s)
	}
	return n
}

// visibleItems counts the items of c and its subcollections not hidden by
// overlap suppression.
func visibleItems(c *Collection) int {
	n := 0
	for _, it := range c.items {
		if !it.Hidden() {
			n++
		}
	}
	for _, s := range c.subcollections {
		n += visibleItems(s)
	}
	return n
}
