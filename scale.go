package bubblechart

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Default zoom limits.
const (
	DefaultMinScale = 1.0
	DefaultMaxScale = 10.0
)

// ScaleConfig configures a Scale.
type ScaleConfig struct {
	Padding  Spacing
	MinScale float64 // default DefaultMinScale
	MaxScale float64 // default DefaultMaxScale
}

// Scale maps normalized [0,1] chart coordinates to screen coordinates through
// a pan/zoom affine transform. Its rectangle is the unscaled viewport; the
// padded viewport is the rectangle shrunk by Padding.
//
// Invariants, kept by every setter: MinScale <= scale <= MaxScale per axis,
// and each offset keeps the transformed padded viewport covering the
// untransformed one.
type Scale struct {
	Rect
	Padding  Spacing
	MinScale float64
	MaxScale float64

	scaleX, scaleY   float64
	offsetX, offsetY float64

	anim *TweenGroup

	// Changed fires after any change of scale or offset.
	Changed Signal[*Scale]
}

// NewScale creates a scale over viewport.
func NewScale(viewport Rect, cfg ScaleConfig) *Scale {
	if cfg.MinScale <= 0 {
		cfg.MinScale = DefaultMinScale
	}
	if cfg.MaxScale < cfg.MinScale {
		cfg.MaxScale = math.Max(DefaultMaxScale, cfg.MinScale)
	}
	s := &Scale{
		Padding:  cfg.Padding,
		MinScale: cfg.MinScale,
		MaxScale: cfg.MaxScale,
		scaleX:   cfg.MinScale,
		scaleY:   cfg.MinScale,
	}
	s.SetBounds(viewport)
	s.clampOffsets()
	return s
}

func (s *Scale) ScaleX() float64  { return s.scaleX }
func (s *Scale) ScaleY() float64  { return s.scaleY }
func (s *Scale) OffsetX() float64 { return s.offsetX }
func (s *Scale) OffsetY() float64 { return s.offsetY }

// Viewport returns the padded, untransformed viewport.
func (s *Scale) Viewport() Rect {
	return s.Bounds().Inset(s.Padding)
}

// SetViewport replaces the viewport rectangle and re-clamps the offsets.
func (s *Scale) SetViewport(r Rect) {
	s.SetBounds(r)
	s.clampOffsets()
}

// SetScaleX sets the horizontal scale, clamped to the limits.
func (s *Scale) SetScaleX(v float64) {
	s.scaleX = clamp(v, s.MinScale, s.MaxScale)
	s.offsetX = s.clampOffsetX(s.offsetX)
	s.Changed.Emit(s)
}

// SetScaleY sets the vertical scale, clamped to the limits.
func (s *Scale) SetScaleY(v float64) {
	s.scaleY = clamp(v, s.MinScale, s.MaxScale)
	s.offsetY = s.clampOffsetY(s.offsetY)
	s.Changed.Emit(s)
}

// SetOffsetX sets the horizontal offset, clamped.
func (s *Scale) SetOffsetX(v float64) {
	s.offsetX = s.clampOffsetX(v)
	s.Changed.Emit(s)
}

// SetOffsetY sets the vertical offset, clamped.
func (s *Scale) SetOffsetY(v float64) {
	s.offsetY = s.clampOffsetY(v)
	s.Changed.Emit(s)
}

// IsIdentity reports whether no zoom or pan is applied.
func (s *Scale) IsIdentity() bool {
	return s.scaleX == 1 && s.scaleY == 1 && s.offsetX == 0 && s.offsetY == 0
}

// X maps a relative position in [0,1] to a screen x coordinate.
func (s *Scale) X(relative float64) float64 {
	v := s.Viewport()
	return lerp(v.Left(), v.Right(), relative)*s.scaleX + s.offsetX
}

// Y maps a relative position in [0,1] to a screen y coordinate.
func (s *Scale) Y(relative float64) float64 {
	v := s.Viewport()
	return lerp(v.Top(), v.Bottom(), relative)*s.scaleY + s.offsetY
}

// RelativeX is the inverse of X.
func (s *Scale) RelativeX(screenX float64) float64 {
	v := s.Viewport()
	if v.Width() == 0 {
		return 0
	}
	return ((screenX-s.offsetX)/s.scaleX - v.Left()) / v.Width()
}

// RelativeY is the inverse of Y.
func (s *Scale) RelativeY(screenY float64) float64 {
	v := s.Viewport()
	if v.Height() == 0 {
		return 0
	}
	return ((screenY-s.offsetY)/s.scaleY - v.Top()) / v.Height()
}

// ScaleBy adds delta to both scales, clamped, keeping the screen position of
// (pivotX, pivotY) fixed.
func (s *Scale) ScaleBy(delta, pivotX, pivotY float64) {
	s.anim = nil
	nx := clamp(s.scaleX+delta, s.MinScale, s.MaxScale)
	ny := clamp(s.scaleY+delta, s.MinScale, s.MaxScale)
	ox := s.offsetX + (s.offsetX-pivotX)*(nx/s.scaleX-1)
	oy := s.offsetY + (s.offsetY-pivotY)*(ny/s.scaleY-1)
	s.scaleX, s.scaleY = nx, ny
	s.offsetX = s.clampOffsetX(ox)
	s.offsetY = s.clampOffsetY(oy)
	s.Changed.Emit(s)
}

// MoveBy pans by (dx, dy) screen pixels, clamped.
func (s *Scale) MoveBy(dx, dy float64) {
	s.anim = nil
	s.offsetX = s.clampOffsetX(s.offsetX + dx)
	s.offsetY = s.clampOffsetY(s.offsetY + dy)
	s.Changed.Emit(s)
}

// ScaleTo zooms so that target, given in current screen coordinates, fills
// the padded viewport. Scale and offset are solved together per axis.
func (s *Scale) ScaleTo(target Rect) {
	s.anim = nil
	v := s.Viewport()
	if target.Width() > 0 && v.Width() > 0 {
		nx := clamp(s.scaleX*v.Width()/target.Width(), s.MinScale, s.MaxScale)
		ox := v.Left() - (target.Left()-s.offsetX)*nx/s.scaleX
		s.scaleX = nx
		s.offsetX = s.clampOffsetX(ox)
	}
	if target.Height() > 0 && v.Height() > 0 {
		ny := clamp(s.scaleY*v.Height()/target.Height(), s.MinScale, s.MaxScale)
		oy := v.Top() - (target.Top()-s.offsetY)*ny/s.scaleY
		s.scaleY = ny
		s.offsetY = s.clampOffsetY(oy)
	}
	s.Changed.Emit(s)
}

// Reset removes any zoom and pan immediately.
func (s *Scale) Reset() {
	s.anim = nil
	s.scaleX, s.scaleY = clamp(1, s.MinScale, s.MaxScale), clamp(1, s.MinScale, s.MaxScale)
	s.offsetX, s.offsetY = 0, 0
	s.clampOffsets()
	s.Changed.Emit(s)
}

// AnimateTo tweens scale and offset to the given values over duration
// seconds. Advance it with Update. Any direct edit cancels it.
func (s *Scale) AnimateTo(scaleX, scaleY, offsetX, offsetY float64, duration float32, fn ease.TweenFunc) {
	s.anim = TweenFields(
		[]*float64{&s.scaleX, &s.scaleY, &s.offsetX, &s.offsetY},
		[]float64{clamp(scaleX, s.MinScale, s.MaxScale), clamp(scaleY, s.MinScale, s.MaxScale), offsetX, offsetY},
		duration, fn)
}

// Animating reports whether an AnimateTo is in progress.
func (s *Scale) Animating() bool {
	return s.anim != nil && !s.anim.Done
}

// Update advances a running AnimateTo by dt seconds and reports whether the
// transform changed.
func (s *Scale) Update(dt float32) bool {
	if !s.anim.Update(dt) {
		s.anim = nil
		return false
	}
	s.scaleX = clamp(s.scaleX, s.MinScale, s.MaxScale)
	s.scaleY = clamp(s.scaleY, s.MinScale, s.MaxScale)
	s.clampOffsets()
	s.Changed.Emit(s)
	return true
}

func (s *Scale) clampOffsets() {
	s.offsetX = s.clampOffsetX(s.offsetX)
	s.offsetY = s.clampOffsetY(s.offsetY)
}

// clampOffsetX keeps the padded viewport edges, once scaled, outside the
// untransformed padded viewport: near*(1-scale) and far*(1-scale) bound the
// offset.
func (s *Scale) clampOffsetX(o float64) float64 {
	v := s.Viewport()
	return clampBetween(o, v.Left()*(1-s.scaleX), v.Right()*(1-s.scaleX))
}

func (s *Scale) clampOffsetY(o float64) float64 {
	v := s.Viewport()
	return clampBetween(o, v.Top()*(1-s.scaleY), v.Bottom()*(1-s.scaleY))
}

// clampBetween clamps v to the interval spanned by a and b in either order.
func clampBetween(v, a, b float64) float64 {
	return clamp(v, math.Min(a, b), math.Max(a, b))
}
