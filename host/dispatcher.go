package host

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ggstate"
	"github.com/gogpu/ggstate/shape"
)

var (
	// ErrNotInitialized is returned by calls made before Init.
	ErrNotInitialized = errors.New("host: session not initialized")

	// ErrNoCurrentShape is returned by calls that edit the current shape
	// when no shape is selected.
	ErrNoCurrentShape = errors.New("host: no current shape")
)

// Dispatcher forwards host calls to a Session.
//
// A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	session *ggstate.Session
	opts    []ggstate.Option
}

// NewDispatcher returns a Dispatcher whose Init passes opts to ggstate.New.
func NewDispatcher(opts ...ggstate.Option) *Dispatcher {
	return &Dispatcher{opts: opts}
}

// Init replaces the session with a new one for a surface of the given size.
func (d *Dispatcher) Init(width, height, capacity int) {
	d.session = ggstate.New(width, height, capacity, d.opts...)
	ggstate.Logger().Debug("host: init", "width", width, "height", height, "capacity", capacity)
}

// Session returns the current session, or nil before Init.
func (d *Dispatcher) Session() *ggstate.Session {
	return d.session
}

func (d *Dispatcher) requireSession() (*ggstate.Session, error) {
	if d.session == nil {
		return nil, ErrNotInitialized
	}
	return d.session, nil
}

// current returns the current shape.
func (d *Dispatcher) current() (*shape.Shape, error) {
	s, err := d.requireSession()
	if err != nil {
		return nil, err
	}
	sh := s.CurrentShape()
	if sh == nil {
		return nil, ErrNoCurrentShape
	}
	return sh, nil
}

// withCurrent runs fn on the current shape.
func (d *Dispatcher) withCurrent(fn func(*shape.Shape)) error {
	sh, err := d.current()
	if err != nil {
		return err
	}
	fn(sh)
	return nil
}

// Resize resizes the surface.
func (d *Dispatcher) Resize(width, height int) error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	s.Resize(width, height)
	return nil
}

// SetView sets zoom and pan.
func (d *Dispatcher) SetView(zoom, panX, panY float64) error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	s.SetView(zoom, panX, panY)
	return nil
}

// UseShape selects the shape identified by the four words, creating it if
// needed.
func (d *Dispatcher) UseShape(a, b, c, dw uint32) error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	s.UseShape(UUIDFromWords(a, b, c, dw))
	return nil
}

// SetShapeKind sets the kind of the current shape.
func (d *Dispatcher) SetShapeKind(kind int) error {
	if kind < int(shape.KindRect) || kind > int(shape.KindGroup) {
		return fmt.Errorf("host: invalid shape kind %d", kind)
	}
	return d.withCurrent(func(sh *shape.Shape) { sh.SetKind(shape.Kind(kind)) })
}

// SetSelrect sets the selection rectangle of the current shape.
func (d *Dispatcher) SetSelrect(left, top, right, bottom float64) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetSelrect(left, top, right, bottom) })
}

// SetRotation sets the rotation of the current shape in degrees.
func (d *Dispatcher) SetRotation(deg float64) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetRotation(deg) })
}

// SetTransform sets the affine transform of the current shape.
func (d *Dispatcher) SetTransform(a, b, c, dd, e, f float64) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetTransform(a, b, c, dd, e, f) })
}

// AddSolidFill appends a fill given as packed 0xAARRGGBB.
func (d *Dispatcher) AddSolidFill(argb uint32) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.AddFill(shape.SolidFill(argb)) })
}

// ClearFills removes every fill of the current shape.
func (d *Dispatcher) ClearFills() error {
	return d.withCurrent((*shape.Shape).ClearFills)
}

// AddChild appends a child id to the current shape. The child does not
// need to exist yet.
func (d *Dispatcher) AddChild(a, b, c, dw uint32) error {
	id := UUIDFromWords(a, b, c, dw)
	return d.withCurrent(func(sh *shape.Shape) { sh.AddChild(id) })
}

// ClearChildren removes every child of the current shape.
func (d *Dispatcher) ClearChildren() error {
	return d.withCurrent((*shape.Shape).ClearChildren)
}

// SetBlendMode sets the blend mode of the current shape. Unknown modes
// select normal blending.
func (d *Dispatcher) SetBlendMode(mode int) error {
	m := shape.BlendNormal
	if mode >= 0 && mode <= math.MaxUint8 {
		m = shape.BlendMode(mode)
	}
	return d.withCurrent(func(sh *shape.Shape) { sh.SetBlendMode(m) })
}

// SetOpacity sets the opacity of the current shape.
func (d *Dispatcher) SetOpacity(opacity float64) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetOpacity(opacity) })
}

// SetHidden hides or shows the current shape and its children.
func (d *Dispatcher) SetHidden(hidden bool) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetHidden(hidden) })
}

// SetClipContent sets whether the current shape clips its children.
func (d *Dispatcher) SetClipContent(clip bool) error {
	return d.withCurrent(func(sh *shape.Shape) { sh.SetClipContent(clip) })
}

// Navigate runs a layout pass.
func (d *Dispatcher) Navigate() error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	return s.Navigate()
}

// Render redraws the whole surface.
func (d *Dispatcher) Render(cached bool) error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	s.RenderAll(cached)
	return nil
}

// RenderFromCache redraws the cached surface image.
func (d *Dispatcher) RenderFromCache() error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	return s.RenderFromCache()
}

// DeleteShape removes the shape identified by the four words. Deleting an
// unknown shape is not an error.
func (d *Dispatcher) DeleteShape(a, b, c, dw uint32) error {
	s, err := d.requireSession()
	if err != nil {
		return err
	}
	s.DeleteShape(UUIDFromWords(a, b, c, dw))
	return nil
}
