// Package ggstate coordinates the rendering state of one drawing surface.
//
// # Overview
//
// A [Session] owns everything a surface needs between host calls: the shape
// collection, the current selection, the viewbox and the rendering engine.
// The host drives it through short synchronous calls; nothing runs in the
// background.
//
// # Quick Start
//
//	import "github.com/gogpu/ggstate"
//
//	s := ggstate.New(800, 600, 64)
//
//	// Select (and lazily create) a shape, then edit it.
//	s.UseShape(id)
//	s.CurrentShape().SetSelrect(10, 10, 200, 120)
//	s.CurrentShape().AddFill(shape.SolidFill(0xffff0000))
//
//	// Attach it to the root and draw.
//	s.UseShape(shape.Root)
//	s.CurrentShape().AddChild(id)
//	s.RenderAll(true)
//
//	// Pan and zoom reuse the cached surface image when possible.
//	s.SetView(2, -100, -50)
//	if err := s.Navigate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Selection
//
// The session stores only the id of the current shape. [Session.CurrentShape]
// looks it up on every call, so it can never return a shape that is no
// longer in the collection.
//
// # Engines
//
// The default engine is [render.SoftwareEngine]. Any [render.Engine] can be
// injected with [WithEngine]; optional engine capabilities (cache redraw,
// hit testing, image access) are detected with type assertions.
//
// # Thread Safety
//
// A Session must be used from one goroutine at a time. Overlapping calls on
// the same Session panic. Sessions must not be copied after first use;
// go vet reports copies. Independent Sessions may be used concurrently.
package ggstate
