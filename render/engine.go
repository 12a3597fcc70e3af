package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/gogpu/ggstate/shape"
	"github.com/gogpu/ggstate/view"
)

// Engine turns a viewbox and a shape collection into pixels or layout data.
//
// Engines hold no reference to the shape collection between calls; every
// call receives the collection it should work on.
type Engine interface {
	// Resize retargets the engine to a surface of the given pixel size.
	Resize(width, height int)

	// Navigate recomputes layout for the viewbox (visibility, hit-testing
	// data) without necessarily drawing a frame. It fails when the viewbox
	// is unusable or the shape graph is inconsistent.
	Navigate(vb view.Viewbox, shapes shape.Map) error

	// RenderAll redraws the whole surface. When generateCachedSurfaceImage
	// is set the engine also keeps a snapshot of the result for later
	// redraws from cache.
	RenderAll(vb view.Viewbox, shapes shape.Map, generateCachedSurfaceImage bool)
}

// CacheRenderer is implemented by engines that can redraw the surface from
// a cached surface image.
type CacheRenderer interface {
	// RenderFromCache redraws the cached image for vb, or returns
	// ErrNoCachedSurface.
	RenderFromCache(vb view.Viewbox) error
}

// HitTester is implemented by engines that can find the shape under a
// surface pixel.
type HitTester interface {
	HitTest(vb view.Viewbox, shapes shape.Map, x, y float64) (uuid.UUID, bool)
}

// ImageSource is implemented by engines whose target surface is readable
// from the CPU.
type ImageSource interface {
	Image() *image.RGBA
}

// BackgroundSetter is implemented by engines with a configurable clear color.
type BackgroundSetter interface {
	SetBackground(c color.Color)
}

// Sizer is implemented by engines that report their target size.
type Sizer interface {
	Size() (width, height int)
}

var (
	// ErrInvalidViewbox is returned when the viewbox cannot map scene
	// coordinates to the surface.
	ErrInvalidViewbox = errors.New("render: invalid viewbox")

	// ErrInconsistentScene is returned when the shape graph references
	// missing shapes or contains a cycle.
	ErrInconsistentScene = errors.New("render: inconsistent scene")

	// ErrNoCachedSurface is returned by RenderFromCache when no cached
	// surface image exists.
	ErrNoCachedSurface = errors.New("render: no cached surface image")
)

// SceneError describes an inconsistency in the shape graph.
// It matches ErrInconsistentScene with errors.Is.
type SceneError struct {
	// Shape is the shape whose children are inconsistent.
	Shape uuid.UUID

	// Child is the offending child id.
	Child uuid.UUID

	// Cycle is true when Child leads back to Shape; otherwise Child is
	// missing from the collection.
	Cycle bool
}

func (e *SceneError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("render: inconsistent scene: shape %s: child %s closes a cycle", e.Shape, e.Child)
	}
	return fmt.Sprintf("render: inconsistent scene: shape %s: missing child %s", e.Shape, e.Child)
}

// Unwrap returns ErrInconsistentScene.
func (e *SceneError) Unwrap() error {
	return ErrInconsistentScene
}
