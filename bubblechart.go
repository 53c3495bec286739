package bubblechart

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the canvas.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// RGBA returns the premultiplied color.RGBA for c.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// IsTransparent reports whether c would draw nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ColorFrom converts any color.Color into a Color.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Vec2 is a 2D vector used for points and sizes.
type Vec2 struct {
	X, Y float64
}

// Spacing holds per-side distances used for margins and paddings.
type Spacing struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns a Spacing with the same value on every side.
func Uniform(v float64) Spacing {
	return Spacing{v, v, v, v}
}

// Horizontal returns Left+Right.
func (s Spacing) Horizontal() float64 { return s.Left + s.Right }

// Vertical returns Top+Bottom.
func (s Spacing) Vertical() float64 { return s.Top + s.Bottom }

// Border describes a control's outline.
type Border struct {
	Width  float64
	Radius float64
	Color  Color
}

// Align selects how a control is placed inside the space handed to Reflow.
// The same enum is used for both axes; on the vertical axis AlignLeft means
// top and AlignRight means bottom.
type Align uint8

const (
	AlignNone   Align = iota // keep position and size untouched
	AlignLeft                // snap to the leading edge, keep size
	AlignCenter              // center, keep size
	AlignRight               // snap to the trailing edge, keep size
	AlignFit                 // take position and size from the space
	AlignAuto                // size from content, position untouched
)

// Vertical aliases.
const (
	AlignTop    = AlignLeft
	AlignBottom = AlignRight
)

// Direction is one of the four screen directions.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Horizontal reports whether d lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Clockwise returns the next direction clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// clamp restricts v to [lo, hi]. NaN is passed through.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// isNumber reports whether v is a usable coordinate.
func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
