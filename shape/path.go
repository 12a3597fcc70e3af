package shape

import (
	"github.com/gogpu/ggstate/geom"
)

// Verb is a path construction command.
type Verb uint8

const (
	// MoveTo starts a subpath at Points[0].
	MoveTo Verb = iota
	// LineTo draws a line to Points[0].
	LineTo
	// CurveTo draws a cubic Bezier with controls Points[0], Points[1]
	// ending at Points[2].
	CurveTo
	// Close closes the current subpath.
	Close
)

// Segment is one path command in shape-local coordinates.
type Segment struct {
	Verb   Verb
	Points [3]geom.Point
}

// Move returns a MoveTo segment.
func Move(x, y float64) Segment {
	return Segment{Verb: MoveTo, Points: [3]geom.Point{{X: x, Y: y}}}
}

// Line returns a LineTo segment.
func Line(x, y float64) Segment {
	return Segment{Verb: LineTo, Points: [3]geom.Point{{X: x, Y: y}}}
}

// Curve returns a CurveTo segment.
func Curve(c1x, c1y, c2x, c2y, x, y float64) Segment {
	return Segment{Verb: CurveTo, Points: [3]geom.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}}
}

// ClosePath returns a Close segment.
func ClosePath() Segment {
	return Segment{Verb: Close}
}

// points returns the points a segment actually uses.
func (s Segment) points() []geom.Point {
	switch s.Verb {
	case MoveTo, LineTo:
		return s.Points[:1]
	case CurveTo:
		return s.Points[:3]
	default:
		return nil
	}
}

// pathBounds returns the bounding box of all segment points. Curve control
// points are included, so the box may be larger than the drawn curve.
func pathBounds(segs []Segment) geom.Rect {
	first := true
	var r geom.Rect
	for _, s := range segs {
		for _, p := range s.points() {
			if first {
				r = geom.Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
				first = false
				continue
			}
			r.Left = min(r.Left, p.X)
			r.Top = min(r.Top, p.Y)
			r.Right = max(r.Right, p.X)
			r.Bottom = max(r.Bottom, p.Y)
		}
	}
	return r
}

// rectOutline returns a closed rectangle path.
func rectOutline(r geom.Rect) []Segment {
	return []Segment{
		Move(r.Left, r.Top),
		Line(r.Right, r.Top),
		Line(r.Right, r.Bottom),
		Line(r.Left, r.Bottom),
		ClosePath(),
	}
}

// ellipseOutline approximates the ellipse inscribed in r with four cubics.
func ellipseOutline(r geom.Rect) []Segment {
	// kappa = 4 * (sqrt(2) - 1) / 3
	const kappa = 0.5522847498307936

	c := r.Center()
	rx := r.Width() / 2
	ry := r.Height() / 2
	kx := rx * kappa
	ky := ry * kappa

	return []Segment{
		Move(c.X+rx, c.Y),
		Curve(c.X+rx, c.Y+ky, c.X+kx, c.Y+ry, c.X, c.Y+ry),
		Curve(c.X-kx, c.Y+ry, c.X-rx, c.Y+ky, c.X-rx, c.Y),
		Curve(c.X-rx, c.Y-ky, c.X-kx, c.Y-ry, c.X, c.Y-ry),
		Curve(c.X+kx, c.Y-ry, c.X+rx, c.Y-ky, c.X+rx, c.Y),
		ClosePath(),
	}
}
