package geom

import "math"

// Rect is an axis-aligned rectangle given by its edges.
//
// A Rect with Right <= Left or Bottom <= Top is empty. The zero value is an
// empty rectangle at the origin.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewEmpty returns an empty rectangle at the origin.
func NewEmpty() Rect {
	return Rect{}
}

// LTRB creates a rectangle from its edges.
func LTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// XYWH creates a rectangle from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// X returns the left edge.
func (r Rect) X() float64 { return r.Left }

// Y returns the top edge.
func (r Rect) Y() float64 { return r.Top }

// Width returns the horizontal extent. Negative for inverted rects.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent. Negative for inverted rects.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// SetXYWH moves and resizes the rectangle in place.
func (r *Rect) SetXYWH(x, y, w, h float64) {
	*r = XYWH(x, y, w, h)
}

// SetWH resizes the rectangle in place, keeping its origin.
func (r *Rect) SetWH(w, h float64) {
	r.Right = r.Left + w
	r.Bottom = r.Top + h
}

// Sorted returns the rectangle with Left <= Right and Top <= Bottom.
func (r Rect) Sorted() Rect {
	return Rect{
		Left:   math.Min(r.Left, r.Right),
		Top:    math.Min(r.Top, r.Bottom),
		Right:  math.Max(r.Left, r.Right),
		Bottom: math.Max(r.Top, r.Bottom),
	}
}

// ContainsPoint reports whether p lies inside r. Edges on the left and top
// are inside, edges on the right and bottom are outside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Contains reports whether o lies completely inside r.
// An empty o is contained by any non-empty r.
func (r Rect) Contains(o Rect) bool {
	if r.IsEmpty() {
		return false
	}
	if o.IsEmpty() {
		return true
	}
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Intersect returns the overlapping area of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   math.Max(r.Left, o.Left),
		Top:    math.Max(r.Top, o.Top),
		Right:  math.Min(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
	}
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Corners returns the four corners clockwise from top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// Transform returns the bounding box of r after applying m.
func (r Rect) Transform(m Matrix) Rect {
	if m.IsIdentity() {
		return r
	}
	c := r.Corners()
	p := m.TransformPoint(c[0])
	out := Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
	for _, q := range c[1:] {
		p = m.TransformPoint(q)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// IsFinite reports whether all edges are finite numbers.
func (r Rect) IsFinite() bool {
	return isFinite(r.Left) && isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom)
}
