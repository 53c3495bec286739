package bubblechart

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing context every control paints through.
type Canvas interface {
	// FillRect fills r with rounded corners of the given radius.
	FillRect(r Rect, radius float64, c Color)
	// StrokeRect outlines r with rounded corners of the given radius.
	StrokeRect(r Rect, radius, width float64, c Color)
	// Line draws a straight segment.
	Line(x0, y0, x1, y1, width float64, c Color)
	// FillCircle fills a circle.
	FillCircle(cx, cy, r float64, c Color)
	// StrokeCircle outlines a circle.
	StrokeCircle(cx, cy, r, width float64, c Color)
	// FillPath fills a closed path.
	FillPath(p *Path, c Color)
	// StrokePath outlines a path.
	StrokePath(p *Path, width float64, c Color)
	// Text draws s with its top-left corner at (x, y), rotated by angle
	// radians around that corner.
	Text(s string, font Font, x, y, angle float64, c Color)
	// Clip returns a canvas whose output is restricted to r.
	Clip(r Rect) Canvas
}

// --- Path ---

type pathOp uint8

const (
	pathMoveTo pathOp = iota
	pathLineTo
	pathArcTo
	pathClose
)

type pathSegment struct {
	op     pathOp
	x1, y1 float64
	x2, y2 float64
	radius float64
}

// Path is a device-independent outline built from straight segments and
// tangent arcs. The image canvas converts it to a vector.Path.
type Path struct {
	segments []pathSegment
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segments = append(p.segments, pathSegment{op: pathMoveTo, x1: x, y1: y})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, pathSegment{op: pathLineTo, x1: x, y1: y})
}

// ArcTo adds an arc tangent to the lines (current, (x1,y1)) and
// ((x1,y1), (x2,y2)) with the given radius.
func (p *Path) ArcTo(x1, y1, x2, y2, radius float64) {
	p.segments = append(p.segments, pathSegment{op: pathArcTo, x1: x1, y1: y1, x2: x2, y2: y2, radius: radius})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.segments = append(p.segments, pathSegment{op: pathClose})
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.segments = p.segments[:0]
}

// Len returns the number of recorded segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Points returns the explicit end points of every segment, in order. Arc
// segments contribute their corner point.
func (p *Path) Points() []Vec2 {
	pts := make([]Vec2, 0, len(p.segments))
	for _, s := range p.segments {
		if s.op == pathClose {
			continue
		}
		pts = append(pts, Vec2{s.x1, s.y1})
	}
	return pts
}

func (p *Path) vector() *vector.Path {
	var v vector.Path
	for _, s := range p.segments {
		switch s.op {
		case pathMoveTo:
			v.MoveTo(float32(s.x1), float32(s.y1))
		case pathLineTo:
			v.LineTo(float32(s.x1), float32(s.y1))
		case pathArcTo:
			v.ArcTo(float32(s.x1), float32(s.y1), float32(s.x2), float32(s.y2), float32(s.radius))
		case pathClose:
			v.Close()
		}
	}
	return &v
}

// roundedRectPath appends a rounded rectangle outline to p.
func roundedRectPath(p *Path, r Rect, radius float64) {
	radius = math.Min(radius, math.Min(r.Width(), r.Height())/2)
	l, t, rt, b := r.Left(), r.Top(), r.Right(), r.Bottom()
	if radius <= 0 {
		p.MoveTo(l, t)
		p.LineTo(rt, t)
		p.LineTo(rt, b)
		p.LineTo(l, b)
		p.Close()
		return
	}
	p.MoveTo(l+radius, t)
	p.LineTo(rt-radius, t)
	p.ArcTo(rt, t, rt, t+radius, radius)
	p.LineTo(rt, b-radius)
	p.ArcTo(rt, b, rt-radius, b, radius)
	p.LineTo(l+radius, b)
	p.ArcTo(l, b, l, b-radius, radius)
	p.LineTo(l, t+radius)
	p.ArcTo(l, t, l+radius, t, radius)
	p.Close()
}

// --- Ebitengine canvas ---

// whiteSubImage is the 1x1 interior of a 3x3 white image, used as the
// source texture for DrawTriangles so edge sampling stays opaque.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.RGBA())
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ImageCanvas paints onto an *ebiten.Image.
type ImageCanvas struct {
	dst       *ebiten.Image
	antialias bool
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewImageCanvas wraps dst. Shapes are antialiased.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst, antialias: true}
}

// Clear erases the destination image.
func (c *ImageCanvas) Clear() {
	c.dst.Clear()
}

// Image returns the destination image.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.dst
}

func (c *ImageCanvas) FillRect(r Rect, radius float64, col Color) {
	if col.IsTransparent() || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	if radius <= 0 {
		vector.DrawFilledRect(c.dst, float32(r.Left()), float32(r.Top()),
			float32(r.Width()), float32(r.Height()), col.RGBA(), c.antialias)
		return
	}
	var p Path
	roundedRectPath(&p, r, radius)
	c.FillPath(&p, col)
}

func (c *ImageCanvas) StrokeRect(r Rect, radius, width float64, col Color) {
	if col.IsTransparent() || width <= 0 {
		return
	}
	if radius <= 0 {
		vector.StrokeRect(c.dst, float32(r.Left()), float32(r.Top()),
			float32(r.Width()), float32(r.Height()), float32(width), col.RGBA(), c.antialias)
		return
	}
	var p Path
	roundedRectPath(&p, r, radius)
	c.StrokePath(&p, width, col)
}

func (c *ImageCanvas) Line(x0, y0, x1, y1, width float64, col Color) {
	if col.IsTransparent() || width <= 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), col.RGBA(), c.antialias)
}

func (c *ImageCanvas) FillCircle(cx, cy, r float64, col Color) {
	if col.IsTransparent() || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.RGBA(), c.antialias)
}

func (c *ImageCanvas) StrokeCircle(cx, cy, r, width float64, col Color) {
	if col.IsTransparent() || r <= 0 || width <= 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), col.RGBA(), c.antialias)
}

func (c *ImageCanvas) FillPath(p *Path, col Color) {
	if col.IsTransparent() || p.Len() == 0 {
		return
	}
	c.vertices, c.indices = p.vector().AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(col, ebiten.FillRuleNonZero)
}

func (c *ImageCanvas) StrokePath(p *Path, width float64, col Color) {
	if col.IsTransparent() || p.Len() == 0 || width <= 0 {
		return
	}
	op := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinRound}
	c.vertices, c.indices = p.vector().AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawTriangles(col, ebiten.FillRuleFillAll)
}

func (c *ImageCanvas) drawTriangles(col Color, rule ebiten.FillRule) {
	rgba := col.RGBA()
	r := float32(rgba.R) / 255
	g := float32(rgba.G) / 255
	b := float32(rgba.B) / 255
	a := float32(rgba.A) / 255
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule, AntiAlias: c.antialias}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteTexture(), op)
}

func (c *ImageCanvas) Text(s string, font Font, x, y, angle float64, col Color) {
	f, ok := font.(*TTFFont)
	if !ok || s == "" || col.IsTransparent() {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = f.LineHeight()
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, s, f.Face(), op)
}

func (c *ImageCanvas) Clip(r Rect) Canvas {
	rect := image.Rect(int(math.Floor(r.Left())), int(math.Floor(r.Top())),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())))
	sub, ok := c.dst.SubImage(rect).(*ebiten.Image)
	if !ok {
		return c
	}
	return &ImageCanvas{dst: sub, antialias: c.antialias}
}
