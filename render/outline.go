package render

import (
	"image"
	"math"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggstate/geom"
	"github.com/gogpu/ggstate/shape"
)

// outlineKey identifies a device-space outline: a shape revision seen
// through a particular scene-to-surface transform.
type outlineKey struct {
	id  uuid.UUID
	rev uint64
	m   geom.Matrix
}

// deviceOutline is a shape outline transformed to surface pixels.
type deviceOutline struct {
	segs   []shape.Segment
	bounds image.Rectangle
}

// buildOutline maps the local outline of s to the surface: the shape matrix
// first, then the scene-to-surface transform m.
func buildOutline(s *shape.Shape, m geom.Matrix) deviceOutline {
	local := s.Outline()
	if len(local) == 0 {
		return deviceOutline{}
	}
	full := m.Multiply(s.Matrix())
	segs := make([]shape.Segment, len(local))
	for i, seg := range local {
		out := shape.Segment{Verb: seg.Verb}
		for j := range seg.Points {
			out.Points[j] = full.TransformPoint(seg.Points[j])
		}
		segs[i] = out
	}
	return deviceOutline{
		segs:   segs,
		bounds: pixelBounds(s.Bounds().Transform(m)),
	}
}

// pixelBounds rounds r outward to whole pixels.
func pixelBounds(r geom.Rect) image.Rectangle {
	if r.IsEmpty() || !r.IsFinite() {
		return image.Rectangle{}
	}
	return image.Rect(
		clampInt(math.Floor(r.Left)),
		clampInt(math.Floor(r.Top)),
		clampInt(math.Ceil(r.Right)),
		clampInt(math.Ceil(r.Bottom)),
	)
}

func clampInt(v float64) int {
	const limit = 1 << 30
	return int(max(-limit, min(limit, v)))
}

// rasterize writes the coverage of the outline inside area into mask.
// area must lie within mask's bounds.
func rasterize(z *vector.Rasterizer, mask *image.Alpha, o deviceOutline, area image.Rectangle) {
	z.Reset(area.Dx(), area.Dy())
	z.DrawOp = draw.Src

	// The rasterizer's origin is area.Min.
	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	pt := func(p geom.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	open := false
	for _, seg := range o.segs {
		switch seg.Verb {
		case shape.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Points[0]))
			open = true
		case shape.LineTo:
			z.LineTo(pt(seg.Points[0]))
		case shape.CurveTo:
			bx, by := pt(seg.Points[0])
			cx, cy := pt(seg.Points[1])
			dx, dy := pt(seg.Points[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case shape.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, area, image.Opaque, image.Point{})
}
