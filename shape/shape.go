package shape

import (
	"math"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/ggstate/geom"
)

// revisions is shared by every shape, so a revision is never reused, not
// even by a shape re-created under the id of a deleted one.
var revisions atomic.Uint64

func nextRevision() uint64 { return revisions.Add(1) }

// Shape is a drawable entity keyed by its id.
//
// Shapes are created by New and mutated through their setters; the zero
// value is not usable. A Shape is not safe for concurrent use.
type Shape struct {
	id          uuid.UUID
	kind        Kind
	selrect     geom.Rect
	rotation    float64
	transform   geom.Matrix
	fills       []Fill
	children    []uuid.UUID
	blendMode   BlendMode
	opacity     float64
	hidden      bool
	clipContent bool
	path        []Segment

	rev uint64
}

// New creates a rectangle shape with an empty selection rectangle, identity
// transform, full opacity and no fills.
func New(id uuid.UUID) *Shape {
	return &Shape{
		id:        id,
		kind:      KindRect,
		selrect:   geom.NewEmpty(),
		transform: geom.Identity(),
		opacity:   1,
		rev:       nextRevision(),
	}
}

// ID returns the shape identifier.
func (s *Shape) ID() uuid.UUID { return s.id }

// Kind returns the shape kind.
func (s *Shape) Kind() Kind { return s.kind }

// Selrect returns the selection rectangle in untransformed scene coordinates.
func (s *Shape) Selrect() geom.Rect { return s.selrect }

// Rotation returns the rotation in degrees.
func (s *Shape) Rotation() float64 { return s.rotation }

// Transform returns the shape transform, applied around the selrect center.
func (s *Shape) Transform() geom.Matrix { return s.transform }

// Fills returns the fills in paint order. The slice must not be modified.
func (s *Shape) Fills() []Fill { return s.fills }

// Children returns child ids in paint order. The slice must not be modified.
func (s *Shape) Children() []uuid.UUID { return s.children }

// BlendMode returns how the shape composites.
func (s *Shape) BlendMode() BlendMode { return s.blendMode }

// Opacity returns the shape opacity in [0, 1].
func (s *Shape) Opacity() float64 { return s.opacity }

// Hidden reports whether the shape and its subtree are skipped when drawing.
func (s *Shape) Hidden() bool { return s.hidden }

// ClipContent reports whether children are clipped to this shape's bounds.
func (s *Shape) ClipContent() bool { return s.clipContent }

// Path returns the path segments of a KindPath shape.
func (s *Shape) Path() []Segment { return s.path }

// Revision increases every time the shape is modified. Revisions are unique
// across all shapes.
func (s *Shape) Revision() uint64 { return s.rev }

func (s *Shape) touch() { s.rev = nextRevision() }

// SetKind changes the shape kind.
func (s *Shape) SetKind(k Kind) {
	s.kind = k
	s.touch()
}

// SetSelrect sets the selection rectangle from its edges. Inverted edges are
// normalized.
func (s *Shape) SetSelrect(left, top, right, bottom float64) {
	s.selrect = geom.LTRB(left, top, right, bottom).Sorted()
	s.touch()
}

// SetRotation sets the rotation in degrees.
func (s *Shape) SetRotation(deg float64) {
	s.rotation = deg
	s.touch()
}

// SetTransform sets the affine transform coefficients.
func (s *Shape) SetTransform(a, b, c, d, e, f float64) {
	s.transform = geom.Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
	s.touch()
}

// AddFill appends a fill on top of the existing ones.
func (s *Shape) AddFill(f Fill) {
	s.fills = append(s.fills, f)
	s.touch()
}

// ClearFills removes all fills.
func (s *Shape) ClearFills() {
	s.fills = s.fills[:0]
	s.touch()
}

// AddChild appends a child id. Adding an id already present, or the shape's
// own id, is a no-op.
func (s *Shape) AddChild(id uuid.UUID) {
	if id == s.id || slices.Contains(s.children, id) {
		return
	}
	s.children = append(s.children, id)
	s.touch()
}

// RemoveChild drops a child id and reports whether it was present.
func (s *Shape) RemoveChild(id uuid.UUID) bool {
	i := slices.Index(s.children, id)
	if i < 0 {
		return false
	}
	s.children = slices.Delete(s.children, i, i+1)
	s.touch()
	return true
}

// ClearChildren removes all child ids.
func (s *Shape) ClearChildren() {
	s.children = s.children[:0]
	s.touch()
}

// SetBlendMode sets the blend mode. Unknown modes fall back to normal.
func (s *Shape) SetBlendMode(m BlendMode) {
	if !m.Valid() {
		m = BlendNormal
	}
	s.blendMode = m
	s.touch()
}

// SetOpacity sets the opacity, clamped to [0, 1]. NaN is treated as 0.
func (s *Shape) SetOpacity(o float64) {
	switch {
	case math.IsNaN(o) || o < 0:
		o = 0
	case o > 1:
		o = 1
	}
	s.opacity = o
	s.touch()
}

// SetHidden shows or hides the shape.
func (s *Shape) SetHidden(hidden bool) {
	s.hidden = hidden
	s.touch()
}

// SetClipContent toggles clipping of children to this shape's bounds.
func (s *Shape) SetClipContent(clip bool) {
	s.clipContent = clip
	s.touch()
}

// SetPath replaces the path segments. The slice is copied.
func (s *Shape) SetPath(segs []Segment) {
	s.path = slices.Clone(segs)
	s.touch()
}

// Matrix returns the local-to-scene transform: rotation and transform both
// applied around the center of the selection rectangle.
func (s *Shape) Matrix() geom.Matrix {
	m := s.transform
	if s.rotation != 0 {
		m = geom.RotateDegrees(s.rotation).Multiply(m)
	}
	if m.IsIdentity() {
		return m
	}
	return m.Around(s.localBounds().Center())
}

// localBounds is the untransformed extent of the shape's geometry.
func (s *Shape) localBounds() geom.Rect {
	if s.kind == KindPath && s.selrect.IsEmpty() {
		return pathBounds(s.path)
	}
	return s.selrect
}

// Bounds returns the bounding box of the shape in scene coordinates.
func (s *Shape) Bounds() geom.Rect {
	return s.localBounds().Transform(s.Matrix())
}

// Outline returns the shape geometry as path segments in local coordinates.
// Groups have no outline.
func (s *Shape) Outline() []Segment {
	switch s.kind {
	case KindRect, KindFrame:
		if s.selrect.IsEmpty() {
			return nil
		}
		return rectOutline(s.selrect)
	case KindCircle:
		if s.selrect.IsEmpty() {
			return nil
		}
		return ellipseOutline(s.selrect)
	case KindPath:
		return s.path
	default:
		return nil
	}
}

// Contains reports whether scene point p hits the shape's geometry.
// Paths are tested against their bounding box.
func (s *Shape) Contains(p geom.Point) bool {
	inv, ok := s.Matrix().Invert()
	if !ok {
		return false
	}
	local := inv.TransformPoint(p)
	r := s.localBounds()

	switch s.kind {
	case KindRect, KindFrame, KindPath:
		return r.ContainsPoint(local)
	case KindCircle:
		if r.IsEmpty() {
			return false
		}
		c := r.Center()
		dx := (local.X - c.X) / (r.Width() / 2)
		dy := (local.Y - c.Y) / (r.Height() / 2)
		return dx*dx+dy*dy <= 1
	default:
		return false
	}
}
