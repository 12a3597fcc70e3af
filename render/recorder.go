package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/ggstate/shape"
	"github.com/gogpu/ggstate/view"
)

// Op names an engine call recorded by a Recorder.
type Op string

// Recorded operations.
const (
	OpResize          Op = "resize"
	OpNavigate        Op = "navigate"
	OpRenderAll       Op = "render_all"
	OpRenderFromCache Op = "render_from_cache"
	OpHitTest         Op = "hit_test"
)

// Call is one recorded engine call.
type Call struct {
	Op Op

	// Width and Height are the Resize arguments.
	Width, Height int

	// Viewbox and Shapes describe the input of viewbox-driven calls.
	Viewbox view.Viewbox
	Shapes  int

	// Cached is the RenderAll flag.
	Cached bool

	// Err is the error returned by the call, if any.
	Err error
}

// String formats the call for traces.
func (c Call) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	switch c.Op {
	case OpResize:
		fmt.Fprintf(&b, " %dx%d", c.Width, c.Height)
	case OpNavigate, OpRenderAll, OpRenderFromCache, OpHitTest:
		fmt.Fprintf(&b, " zoom=%g pan=(%g,%g) size=%gx%g shapes=%d",
			c.Viewbox.Zoom, c.Viewbox.PanX, c.Viewbox.PanY,
			c.Viewbox.Width, c.Viewbox.Height, c.Shapes)
	}
	if c.Op == OpRenderAll {
		fmt.Fprintf(&b, " cached=%t", c.Cached)
	}
	if c.Err != nil {
		fmt.Fprintf(&b, " err=%q", c.Err)
	}
	return b.String()
}

// Recorder is an Engine that records every call and forwards it to an inner
// engine. A nil inner engine makes it a pure recording stub.
//
// Optional interfaces are forwarded when the inner engine implements them.
type Recorder struct {
	inner  Engine
	calls  []Call
	width  int
	height int
}

// NewRecorder wraps e.
func NewRecorder(e Engine) *Recorder {
	return &Recorder{inner: e}
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// Resize records and forwards the call.
func (r *Recorder) Resize(width, height int) {
	r.calls = append(r.calls, Call{Op: OpResize, Width: width, Height: height})
	r.width, r.height = width, height
	if r.inner != nil {
		r.inner.Resize(width, height)
	}
}

// Navigate records and forwards the call.
func (r *Recorder) Navigate(vb view.Viewbox, shapes shape.Map) error {
	var err error
	if r.inner != nil {
		err = r.inner.Navigate(vb, shapes)
	}
	r.calls = append(r.calls, Call{Op: OpNavigate, Viewbox: vb, Shapes: len(shapes), Err: err})
	return err
}

// RenderAll records and forwards the call.
func (r *Recorder) RenderAll(vb view.Viewbox, shapes shape.Map, generateCachedSurfaceImage bool) {
	r.calls = append(r.calls, Call{Op: OpRenderAll, Viewbox: vb, Shapes: len(shapes), Cached: generateCachedSurfaceImage})
	if r.inner != nil {
		r.inner.RenderAll(vb, shapes, generateCachedSurfaceImage)
	}
}

// RenderFromCache forwards to a CacheRenderer, or fails with
// ErrNoCachedSurface.
func (r *Recorder) RenderFromCache(vb view.Viewbox) error {
	err := ErrNoCachedSurface
	if cr, ok := r.inner.(CacheRenderer); ok {
		err = cr.RenderFromCache(vb)
	}
	r.calls = append(r.calls, Call{Op: OpRenderFromCache, Viewbox: vb, Err: err})
	return err
}

// HitTest forwards to a HitTester.
func (r *Recorder) HitTest(vb view.Viewbox, shapes shape.Map, x, y float64) (uuid.UUID, bool) {
	r.calls = append(r.calls, Call{Op: OpHitTest, Viewbox: vb, Shapes: len(shapes)})
	if ht, ok := r.inner.(HitTester); ok {
		return ht.HitTest(vb, shapes, x, y)
	}
	return uuid.Nil, false
}

// Image forwards to an ImageSource.
func (r *Recorder) Image() *image.RGBA {
	if src, ok := r.inner.(ImageSource); ok {
		return src.Image()
	}
	return nil
}

// SetBackground forwards to a BackgroundSetter.
func (r *Recorder) SetBackground(c color.Color) {
	if bs, ok := r.inner.(BackgroundSetter); ok {
		bs.SetBackground(c)
	}
}

// Size reports the inner engine's size, or the last Resize arguments.
func (r *Recorder) Size() (width, height int) {
	if s, ok := r.inner.(Sizer); ok {
		return s.Size()
	}
	return r.width, r.height
}

var (
	_ Engine           = (*Recorder)(nil)
	_ CacheRenderer    = (*Recorder)(nil)
	_ HitTester        = (*Recorder)(nil)
	_ ImageSource      = (*Recorder)(nil)
	_ BackgroundSetter = (*Recorder)(nil)
	_ Sizer            = (*Recorder)(nil)
)
