// Package render provides the rendering engines a session drives.
//
// # Engine contract
//
// An [Engine] receives the session's viewbox and shape collection on every
// call and keeps whatever derived state it needs (target surface, cached
// surface image, hit-testing index) between calls:
//
//	Resize(width, height)                 // retarget the surface
//	Navigate(viewbox, shapes) error       // layout pass, may redraw from cache
//	RenderAll(viewbox, shapes, cached)    // full redraw
//
// Optional capabilities are discovered with type assertions:
// [CacheRenderer], [HitTester], [ImageSource], [BackgroundSetter] and
// [Sizer].
//
// # Software engine
//
// [SoftwareEngine] draws into a CPU [PixmapTarget]. Outlines are rasterized
// with golang.org/x/image/vector into a coverage mask and composited with
// the shape's blend mode. The tree is walked from the root shape
// (uuid.Nil); children paint in list order, later children on top.
//
// Thread Safety: engines are NOT thread-safe. Each engine must be driven by a
// single goroutine at a time.
package render
