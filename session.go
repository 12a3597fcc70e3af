package ggstate

import (
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/ggstate/render"
	"github.com/gogpu/ggstate/shape"
	"github.com/gogpu/ggstate/view"
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Session is the render state of one surface: shapes, selection, viewbox
// and the engine that draws them.
//
// A Session is not safe for concurrent use; overlapping calls panic.
type Session struct {
	noCopy noCopy
	busy   atomic.Bool

	viewbox view.Viewbox
	shapes  shape.Map

	// currentID is only meaningful when hasCurrent is set. The current shape
	// itself is looked up in shapes on every access.
	currentID  uuid.UUID
	hasCurrent bool

	engine render.Engine
}

// New creates a Session for a surface of the given pixel size.
// capacity is a hint for the number of shapes; negative values are treated
// as zero.
func New(width, height, capacity int, opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	engine := o.engine
	if engine == nil {
		engine = render.NewSoftwareEngine(width, height)
	}
	if o.background != nil {
		if bs, ok := engine.(render.BackgroundSetter); ok {
			bs.SetBackground(o.background)
		}
	}

	return &Session{
		viewbox: view.New(width, height),
		shapes:  shape.NewMap(capacity),
		engine:  engine,
	}
}

// acquire marks the session busy for the duration of one operation.
// Usage: defer s.acquire()()
func (s *Session) acquire() func() {
	if !s.busy.CompareAndSwap(false, true) {
		panic("ggstate: concurrent use of Session")
	}
	return func() { s.busy.Store(false) }
}

// Resize retargets the engine and updates the viewbox size. Pan and zoom are
// kept. Negative sizes are treated as zero.
func (s *Session) Resize(width, height int) {
	defer s.acquire()()

	s.engine.Resize(width, height)
	s.viewbox.SetWH(float64(width), float64(height))
	Logger().Debug("session: resize", "width", width, "height", height)
}

// UseShape makes id the current shape, creating an empty shape for it if the
// collection has none. An existing shape is reused unchanged.
func (s *Session) UseShape(id uuid.UUID) {
	defer s.acquire()()

	if _, created := s.shapes.Ensure(id); created {
		Logger().Debug("session: shape created", "id", id, "shapes", len(s.shapes))
	}
	s.currentID = id
	s.hasCurrent = true
}

// CurrentShape returns the current shape, or nil when nothing is selected or
// the selected shape has been deleted.
func (s *Session) CurrentShape() *shape.Shape {
	defer s.acquire()()

	return s.current()
}

func (s *Session) current() *shape.Shape {
	if !s.hasCurrent {
		return nil
	}
	return s.shapes[s.currentID]
}

// CurrentID returns the id of the current shape.
func (s *Session) CurrentID() (uuid.UUID, bool) {
	defer s.acquire()()

	return s.currentID, s.hasCurrent
}

// Shape returns the shape stored under id, or nil.
func (s *Session) Shape(id uuid.UUID) *shape.Shape {
	defer s.acquire()()

	return s.shapes[id]
}

// Len returns the number of shapes in the collection.
func (s *Session) Len() int {
	defer s.acquire()()

	return len(s.shapes)
}

// DeleteShape removes id from the collection and from every parent's
// children. If id was current the selection is cleared. It reports whether
// a shape was removed.
func (s *Session) DeleteShape(id uuid.UUID) bool {
	defer s.acquire()()

	if !s.shapes.Remove(id) {
		return false
	}
	if s.hasCurrent && s.currentID == id {
		s.currentID = uuid.Nil
		s.hasCurrent = false
	}
	Logger().Debug("session: shape deleted", "id", id, "shapes", len(s.shapes))
	return true
}

// SetView sets zoom and pan in one step. Nothing is drawn until Navigate or
// RenderAll.
func (s *Session) SetView(zoom, panX, panY float64) {
	defer s.acquire()()

	s.viewbox.SetAll(zoom, panX, panY)
}

// Viewbox returns a copy of the current viewbox.
func (s *Session) Viewbox() view.Viewbox {
	defer s.acquire()()

	return s.viewbox
}

// Navigate runs the engine's layout pass for the current viewbox. Failures
// are returned as *NavigateError wrapping the engine error.
func (s *Session) Navigate() error {
	defer s.acquire()()

	if err := s.engine.Navigate(s.viewbox, s.shapes); err != nil {
		Logger().Debug("session: navigate failed", "err", err)
		return &NavigateError{Viewbox: s.viewbox, Err: err}
	}
	Logger().Debug("session: navigate",
		slog.Float64("zoom", s.viewbox.Zoom),
		slog.Float64("panX", s.viewbox.PanX),
		slog.Float64("panY", s.viewbox.PanY))
	return nil
}

// RenderAll redraws the whole surface. When generateCachedSurfaceImage is
// set the engine keeps the result for later cache redraws.
func (s *Session) RenderAll(generateCachedSurfaceImage bool) {
	defer s.acquire()()

	s.engine.RenderAll(s.viewbox, s.shapes, generateCachedSurfaceImage)
}

// RenderFromCache redraws the engine's cached surface image for the current
// viewbox. It returns render.ErrNoCachedSurface when there is nothing to
// redraw or the engine keeps no cache.
func (s *Session) RenderFromCache() error {
	defer s.acquire()()

	cr, ok := s.engine.(render.CacheRenderer)
	if !ok {
		return render.ErrNoCachedSurface
	}
	return cr.RenderFromCache(s.viewbox)
}

// ShapeAt returns the topmost visible shape at surface pixel (x, y).
// It reports false when nothing is there or the engine cannot hit-test.
func (s *Session) ShapeAt(x, y float64) (uuid.UUID, bool) {
	defer s.acquire()()

	ht, ok := s.engine.(render.HitTester)
	if !ok {
		return uuid.Nil, false
	}
	return ht.HitTest(s.viewbox, s.shapes, x, y)
}

// Image returns the engine's target surface, or nil for engines that do not
// expose one. The image is owned by the engine and changes with every pass.
func (s *Session) Image() *image.RGBA {
	defer s.acquire()()

	if src, ok := s.engine.(render.ImageSource); ok {
		return src.Image()
	}
	return nil
}
