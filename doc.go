// Package bubblechart is an animated, interactive bubble chart for
// [Ebitengine].
//
// Bubbles are positioned, sized and colored from four dimensions of a
// [data.Store]. A time slider blends adjacent data slices, the plot zooms
// and pans, axes carry recursively subdivided grid lines and labels, and a
// tooltip balloon follows the hovered bubble.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, _ := bubblechart.LoadRunConfig("bubblechart")
//	chart, _ := bubblechart.NewChart(bubblechart.ChartConfig{Title: "Demo"})
//	chart.SetData(store, bubblechart.DataBinding{X: "x", Y: "y", Size: "size", Color: "color"})
//	bubblechart.Run(chart, cfg)
//
// [Chart] implements [ebiten.Game], so it can also be embedded in an
// existing game loop.
//
// # Control tree
//
// Every element is a [Widget] embedding a [Control]: a box model with
// margin, border and padding, alignment inside the space handed to it, and
// a two-phase protocol. Reflow computes geometry; Repaint draws it on the
// bound [Canvas]. Invalidate merges reflow and repaint requests into one job
// run by the [FrameScheduler] at the start of the next Update.
//
// A [Collection] generates evenly spaced items (grid lines, labels) over a
// value range and recursively subdivides the space between neighbours.
// Linked collections paint their levels interleaved so minor lines stay
// under the major lines of both axes.
//
// # Animation
//
// Bubble boxes converge on their targets through [Animatable] damping, one
// step per tick, driving the [BubbleState] lifecycle. Slider playback and
// the zoom reset use tweens (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bubblechart
