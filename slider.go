package bubblechart

import (
	"math"

	"github.com/tanema/gween/ease"
)

// SliderConfig configures a Slider.
type SliderConfig struct {
	ControlConfig
	Font        Font
	Color       Color // labels and button glyph
	TrackColor  Color
	ThumbColor  Color
	TrackWidth  float64 // default 4
	ThumbRadius float64 // default 8
	ButtonSize  float64 // default 24
}

// Slider selects a fractional position between data slices. A position of
// i+f blends slice i and slice i+1 with weight f. It can play through the
// remaining slices with a linear tween.
type Slider struct {
	Control

	Font        Font
	Color       Color
	TrackColor  Color
	ThumbColor  Color
	TrackWidth  float64
	ThumbRadius float64
	ButtonSize  float64

	Labels *Collection

	slices   []string
	position float64
	play     *TweenGroup
	button   Rect
	track    Rect

	// PositionChange fires with the new position after every change.
	PositionChange Signal[float64]
}

// NewSlider creates a slider with no slices.
func NewSlider(cfg SliderConfig) *Slider {
	if cfg.TrackWidth <= 0 {
		cfg.TrackWidth = 4
	}
	if cfg.ThumbRadius <= 0 {
		cfg.ThumbRadius = 8
	}
	if cfg.ButtonSize <= 0 {
		cfg.ButtonSize = 24
	}
	if cfg.HAlign == AlignNone {
		cfg.HAlign = AlignFit
	}
	if cfg.VAlign == AlignNone {
		cfg.VAlign = AlignBottom
	}
	s := &Slider{
		Font:        cfg.Font,
		Color:       cfg.Color,
		TrackColor:  cfg.TrackColor,
		ThumbColor:  cfg.ThumbColor,
		TrackWidth:  cfg.TrackWidth,
		ThumbRadius: cfg.ThumbRadius,
		ButtonSize:  cfg.ButtonSize,
	}
	s.init(s, cfg.ControlConfig)
	s.Labels = NewCollection(CollectionConfig{
		ControlConfig: ControlConfig{Name: cfg.Name + ".labels", HAlign: AlignFit, VAlign: AlignBottom},
		Transformer:   TransformerFunc(s.relative),
		Direction:     DirectionRight,
		NewItem: func(v float64) Item {
			return NewLabel(LabelConfig{
				ControlConfig: ControlConfig{Padding: Spacing{Left: 2, Right: 2}},
				Text:          s.sliceName(v),
				Font:          s.Font,
				Color:         s.Color,
			})
		},
	})
	s.adopt(s.Labels)

	s.OnMouseDown = s.onMouseDown
	s.OnDrag = s.onDrag
	s.OnDragEnd = s.onDrag
	return s
}

// Bind binds the slider and its labels.
func (s *Slider) Bind(ctx Canvas, sch Scheduler) {
	s.Control.Bind(ctx, sch)
	s.Labels.Bind(ctx, sch)
}

// SetSlices replaces the slice names and resets the position to 0.
func (s *Slider) SetSlices(names []string) {
	s.slices = append(s.slices[:0], names...)
	s.Labels.Count = len(names)
	s.Labels.Min, s.Labels.Max = 0, float64(max(len(names)-1, 0))
	s.Labels.reset()
	s.Pause()
	s.position = 0
	s.Invalidate(true, true)
}

// Slices returns the slice names.
func (s *Slider) Slices() []string { return s.slices }

func (s *Slider) sliceName(v float64) string {
	i := int(math.Round(v))
	if i < 0 || i >= len(s.slices) {
		return ""
	}
	return s.slices[i]
}

// relative maps a position to [0,1] along the track.
func (s *Slider) relative(v float64) float64 {
	if len(s.slices) < 2 {
		return 0
	}
	return v / float64(len(s.slices)-1)
}

// Position returns the fractional position in [0, len(slices)-1].
func (s *Slider) Position() float64 { return s.position }

// Segment splits the position into the two slices it blends and the blend
// weight of the second.
func (s *Slider) Segment() (a, b string, blend float64) {
	if len(s.slices) == 0 {
		return "", "", 0
	}
	i := int(math.Floor(s.position))
	i = min(max(i, 0), len(s.slices)-1)
	j := min(i+1, len(s.slices)-1)
	return s.slices[i], s.slices[j], s.position - float64(i)
}

// SetPosition moves the slider, clamped to the slice range.
func (s *Slider) SetPosition(p float64) {
	p = clamp(p, 0, float64(max(len(s.slices)-1, 0)))
	if p == s.position {
		return
	}
	s.position = p
	s.PositionChange.Emit(p)
	s.Invalidate(false, true)
}

// Play tweens the position to the last slice. duration is the time for a
// full run from the first slice; a slider at the end restarts from 0.
func (s *Slider) Play(duration float32) {
	last := float64(len(s.slices) - 1)
	if last <= 0 {
		return
	}
	if s.position >= last {
		s.SetPosition(0)
	}
	remaining := float32((last - s.position) / last)
	s.play = TweenFields([]*float64{&s.position}, []float64{last}, duration*remaining, ease.Linear)
	s.Invalidate(false, true)
}

// Pause stops playback.
func (s *Slider) Pause() {
	if s.play == nil {
		return
	}
	s.play = nil
	s.Invalidate(false, true)
}

// Playing reports whether playback is running.
func (s *Slider) Playing() bool { return s.play != nil && !s.play.Done }

// Update advances playback by dt seconds and reports whether the position
// changed.
func (s *Slider) Update(dt float32) bool {
	if s.play == nil {
		return false
	}
	prev := s.position
	s.play.Update(dt)
	if s.play.Done {
		s.play = nil
	}
	if s.position == prev {
		return false
	}
	s.PositionChange.Emit(s.position)
	s.Invalidate(false, true)
	return true
}

// Reflow lays out button, track and labels.
func (s *Slider) Reflow(space Rect) {
	if !s.assertReflow(false) {
		s.space = space
		return
	}
	lh := 0.0
	if s.Font != nil {
		lh = s.Font.LineHeight()
	}
	in := s.insets()
	s.height = math.Max(s.ButtonSize, 2*s.ThumbRadius) + lh + in.Vertical()
	s.Control.Reflow(space)

	inner := s.InnerRect()
	s.button = NewRect(inner.Left(), inner.Top(), s.ButtonSize, s.ButtonSize)
	trackLeft := s.button.Right() + s.ThumbRadius*2
	trackRight := inner.Right() - s.ThumbRadius
	s.track = NewRect(trackLeft, s.button.VCenter()-s.TrackWidth/2, math.Max(trackRight-trackLeft, 0), s.TrackWidth)

	s.Labels.Reflow(NewRect(s.track.Left(), s.button.Bottom(), s.track.Width(), inner.Bottom()-s.button.Bottom()))
	// End labels may overhang the track into the surrounding padding; only
	// neighbours are suppressed.
	s.Labels.HideOverlapping(math.Inf(-1), math.Inf(1))
}

// Track returns the track rectangle.
func (s *Slider) Track() Rect { return s.track }

// Button returns the play/pause button rectangle.
func (s *Slider) Button() Rect { return s.button }

// thumbX returns the thumb center.
func (s *Slider) thumbX() float64 {
	return lerp(s.track.Left(), s.track.Right(), s.relative(s.position))
}

// Repaint draws the box, the button, the track, the labels and the thumb.
func (s *Slider) Repaint() {
	if !s.assertRepaint() {
		return
	}
	s.paintBox()
	s.paintButton()
	s.ctx.FillRect(s.track, s.TrackWidth/2, s.TrackColor)
	s.Labels.Repaint()
	s.ctx.FillCircle(s.thumbX(), s.track.VCenter(), s.ThumbRadius, s.ThumbColor)
}

// paintButton draws a pause glyph while playing and a play triangle
// otherwise.
func (s *Slider) paintButton() {
	b := s.button
	s.ctx.StrokeRect(b, b.Width()/4, 1, s.Color)
	g := b.Inset(Uniform(b.Width() / 4))
	if s.Playing() {
		w := g.Width() / 3
		s.ctx.FillRect(NewRect(g.Left(), g.Top(), w, g.Height()), 0, s.Color)
		s.ctx.FillRect(NewRect(g.Right()-w, g.Top(), w, g.Height()), 0, s.Color)
		return
	}
	var p Path
	p.MoveTo(g.Left(), g.Top())
	p.LineTo(g.Right(), g.VCenter())
	p.LineTo(g.Left(), g.Bottom())
	p.Close()
	s.ctx.FillPath(&p, s.Color)
}

// positionAt converts an x coordinate to a position on the track.
func (s *Slider) positionAt(x float64) float64 {
	if s.track.Width() <= 0 {
		return 0
	}
	rel := clamp01((x - s.track.Left()) / s.track.Width())
	return rel * float64(max(len(s.slices)-1, 0))
}

func (s *Slider) onMouseDown(e *Event) {
	e.Cancel = true
	if s.button.Contains(e.X, e.Y) {
		if s.Playing() {
			s.Pause()
		} else {
			s.Play(s.playDuration())
		}
		return
	}
	s.Pause()
	s.SetPosition(s.positionAt(e.X))
}

func (s *Slider) onDrag(e *Event) {
	if s.button.Contains(e.StartX, e.StartY) {
		return
	}
	s.SetPosition(s.positionAt(e.X))
}

// DefaultPlayDuration is the playback time per slice, in seconds.
const DefaultPlayDuration = 0.5

func (s *Slider) playDuration() float32 {
	return float32(DefaultPlayDuration * float64(max(len(s.slices)-1, 1)))
}
