package bubblechart

import "math"

// Rect is an axis-aligned rectangle with origin at the top-left and Y growing
// downward. A pinned Rect keeps its far edge fixed when a near edge moves
// (and vice versa), resizing instead of translating.
//
// Width and height may be negative between edits; pinned edge setters
// normalize the result so the rectangle ends with non-negative size.
type Rect struct {
	left, top     float64
	width, height float64
	pinned        bool
}

// NewRect returns an unpinned rectangle.
func NewRect(left, top, width, height float64) Rect {
	return Rect{left: left, top: top, width: width, height: height}
}

// NewPinnedRect returns a pinned rectangle.
func NewPinnedRect(left, top, width, height float64) Rect {
	return Rect{left: left, top: top, width: width, height: height, pinned: true}
}

func (r Rect) Left() float64    { return r.left }
func (r Rect) Top() float64     { return r.top }
func (r Rect) Width() float64   { return r.width }
func (r Rect) Height() float64  { return r.height }
func (r Rect) Right() float64   { return r.left + r.width }
func (r Rect) Bottom() float64  { return r.top + r.height }
func (r Rect) HCenter() float64 { return r.left + r.width/2 }
func (r Rect) VCenter() float64 { return r.top + r.height/2 }

// Pinned reports whether edge setters resize instead of translate.
func (r Rect) Pinned() bool { return r.pinned }

// SetPinned switches between pinned and free edge semantics.
func (r *Rect) SetPinned(p bool) { r.pinned = p }

// Bounds returns a detached, unpinned copy of the geometry.
func (r Rect) Bounds() Rect {
	return Rect{left: r.left, top: r.top, width: r.width, height: r.height}
}

// SetBounds copies the geometry of b, keeping the pinned flag.
func (r *Rect) SetBounds(b Rect) {
	r.left, r.top, r.width, r.height = b.left, b.top, b.width, b.height
}

func (r *Rect) SetWidth(w float64)  { r.width = w }
func (r *Rect) SetHeight(h float64) { r.height = h }

// SetLeft moves the leading x edge. Pinned: the right edge stays put.
func (r *Rect) SetLeft(v float64) {
	if !r.pinned {
		r.left = v
		return
	}
	r.left, r.width = pinNear(v, r.left+r.width)
}

// SetTop moves the leading y edge. Pinned: the bottom edge stays put.
func (r *Rect) SetTop(v float64) {
	if !r.pinned {
		r.top = v
		return
	}
	r.top, r.height = pinNear(v, r.top+r.height)
}

// SetRight moves the trailing x edge. Pinned: the left edge stays put.
func (r *Rect) SetRight(v float64) {
	if !r.pinned {
		r.left = v - r.width
		return
	}
	r.left, r.width = pinFar(r.left, v)
}

// SetBottom moves the trailing y edge. Pinned: the top edge stays put.
func (r *Rect) SetBottom(v float64) {
	if !r.pinned {
		r.top = v - r.height
		return
	}
	r.top, r.height = pinFar(r.top, v)
}

// SetHCenter moves the rectangle horizontally without resizing.
func (r *Rect) SetHCenter(v float64) { r.left = v - r.width/2 }

// SetVCenter moves the rectangle vertically without resizing.
func (r *Rect) SetVCenter(v float64) { r.top = v - r.height/2 }

// MoveTo translates the rectangle regardless of the pinned flag.
func (r *Rect) MoveTo(left, top float64) {
	r.left, r.top = left, top
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.left && x <= r.left+r.width &&
		y >= r.top && y <= r.top+r.height
}

// Intersects reports whether r and o overlap. Shared edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.left <= o.left+o.width && r.left+r.width >= o.left &&
		r.top <= o.top+o.height && r.top+r.height >= o.top
}

// Inset returns the rectangle shrunk by s, floored at zero size.
func (r Rect) Inset(s Spacing) Rect {
	w := math.Max(0, r.width-s.Horizontal())
	h := math.Max(0, r.height-s.Vertical())
	return Rect{left: r.left + s.Left, top: r.top + s.Top, width: w, height: h}
}

// pinNear computes origin and size after moving the near edge to v while the
// far edge stays fixed. The two values are produced together so a crossing
// edge never leaves a negative size behind.
func pinNear(v, far float64) (origin, size float64) {
	size = far - v
	if size < 0 {
		return far, -size
	}
	return v, size
}

// pinFar is pinNear for the trailing edge.
func pinFar(near, v float64) (origin, size float64) {
	size = v - near
	if size < 0 {
		return v, -size
	}
	return near, size
}
