// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggstate/geom"
	"github.com/gogpu/ggstate/internal/blend"
	"github.com/gogpu/ggstate/internal/lru"
	"github.com/gogpu/ggstate/internal/tiles"
	"github.com/gogpu/ggstate/shape"
	"github.com/gogpu/ggstate/view"
)

// outlineCacheSize bounds the number of device outlines kept between passes.
const outlineCacheSize = 4096

// SoftwareEngine is a CPU-based Engine drawing into a PixmapTarget.
//
// Example:
//
//	engine := render.NewSoftwareEngine(800, 600)
//	engine.RenderAll(vb, shapes, true)
//	img := engine.Image()
type SoftwareEngine struct {
	target     *PixmapTarget
	background color.Color

	// raster and mask are reused for every shape.
	raster vector.Rasterizer
	mask   *image.Alpha

	outlines *lru.Cache[outlineKey, deviceOutline]

	// index maps surface tiles to the shapes painted there. indexVB and
	// indexStamp describe the viewbox and collection it was built from;
	// indexOK is false until the first layout.
	index      *tiles.Grid
	indexVB    view.Viewbox
	indexStamp sceneStamp
	indexOK    bool

	cache *cachedSurface
}

// NewSoftwareEngine creates an engine with a transparent surface of the
// given size. Negative dimensions are treated as zero.
func NewSoftwareEngine(width, height int) *SoftwareEngine {
	e := &SoftwareEngine{
		target:     NewPixmapTarget(width, height),
		background: color.Transparent,
		outlines:   lru.New[outlineKey, deviceOutline](outlineCacheSize),
	}
	e.mask = image.NewAlpha(e.target.Image().Bounds())
	e.index = tiles.NewGrid(e.target.Width(), e.target.Height())
	return e
}

// Resize retargets the engine. The surface contents are discarded; the
// cached surface image is kept and reused by Navigate when it still covers
// the visible area.
func (e *SoftwareEngine) Resize(width, height int) {
	e.target.Resize(width, height)
	e.mask = image.NewAlpha(e.target.Image().Bounds())
	e.index.Resize(e.target.Width(), e.target.Height())
	e.indexOK = false
	slogger().Debug("render: resize", "width", e.target.Width(), "height", e.target.Height())
}

// Size returns the target dimensions.
func (e *SoftwareEngine) Size() (width, height int) {
	return e.target.Width(), e.target.Height()
}

// Image returns the target surface.
func (e *SoftwareEngine) Image() *image.RGBA {
	return e.target.Image()
}

// Target returns the render target.
func (e *SoftwareEngine) Target() *PixmapTarget {
	return e.target
}

// SetBackground sets the color the surface is cleared to before drawing.
func (e *SoftwareEngine) SetBackground(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	e.background = c
}

// Navigate validates vb and the shape graph, rebuilds the hit-testing index
// and, when a cached surface image exists, redraws the surface from it. If
// the cache does not cover the new visible area a full cached render is done
// instead. Without a cache nothing is drawn.
func (e *SoftwareEngine) Navigate(vb view.Viewbox, shapes shape.Map) error {
	if err := vb.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidViewbox, err)
	}
	if err := CheckScene(shapes); err != nil {
		return err
	}

	e.layout(vb, shapes)

	switch {
	case e.cache == nil:
		slogger().Debug("render: navigate without cache", "shapes", e.index.Len())
	case e.cache.covers(vb):
		e.cache.draw(e.target, e.background, vb)
		slogger().Debug("render: navigate from cache", "zoom", vb.Zoom)
	default:
		slogger().Debug("render: cache does not cover viewbox, rendering")
		e.RenderAll(vb, shapes, true)
	}
	return nil
}

// RenderFromCache redraws the cached surface image for vb.
func (e *SoftwareEngine) RenderFromCache(vb view.Viewbox) error {
	if e.cache == nil {
		return ErrNoCachedSurface
	}
	if err := vb.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidViewbox, err)
	}
	e.cache.draw(e.target, e.background, vb)
	return nil
}

// HasCache reports whether a cached surface image exists.
func (e *SoftwareEngine) HasCache() bool {
	return e.cache != nil
}

// RenderAll clears the surface and draws the tree below the root shape.
// Missing children and cycles are logged and skipped. An invalid viewbox
// leaves the surface untouched.
func (e *SoftwareEngine) RenderAll(vb view.Viewbox, shapes shape.Map, generateCachedSurfaceImage bool) {
	if err := vb.Validate(); err != nil {
		slogger().Warn("render: skipping render", "err", err)
		return
	}

	e.target.Clear(e.background)
	e.index.Clear()

	p := pass{
		engine:   e,
		m:        vb.Matrix(),
		area:     vb.VisibleArea(),
		complete: true,
		clips:    []image.Rectangle{e.target.Image().Bounds()},
	}
	w := walker{
		shapes: shapes,
		onError: func(err *SceneError) {
			slogger().Warn("render: skipping shape", "err", err)
		},
	}
	w.walk(p.enter, p.leave)

	e.indexVB = vb
	e.indexStamp = stampOf(shapes)
	e.indexOK = true

	if generateCachedSurfaceImage {
		e.cache = &cachedSurface{
			img:      e.target.Snapshot(),
			vb:       vb,
			complete: p.complete,
		}
	}
	slogger().Debug("render: render all",
		"shapes", e.index.Len(),
		"cached", generateCachedSurfaceImage,
		"complete", p.complete,
		slog.Float64("zoom", vb.Zoom))
}

// HitTest returns the topmost visible shape containing surface pixel
// (x, y). The index is rebuilt when vb or the collection changed since the
// last layout.
func (e *SoftwareEngine) HitTest(vb view.Viewbox, shapes shape.Map, x, y float64) (uuid.UUID, bool) {
	if vb.Validate() != nil {
		return uuid.Nil, false
	}
	if !e.indexOK || e.indexVB != vb || e.indexStamp != stampOf(shapes) {
		e.layout(vb, shapes)
	}

	inv, ok := vb.Matrix().Invert()
	if !ok {
		return uuid.Nil, false
	}
	p := inv.TransformPoint(geom.Pt(x, y))

	ids := e.index.At(int(x), int(y))
	for i := len(ids) - 1; i >= 0; i-- {
		s, ok := shapes[ids[i]]
		if !ok || s.Hidden() {
			continue
		}
		if s.Contains(p) {
			return s.ID(), true
		}
	}
	return uuid.Nil, false
}

// layout rebuilds the hit-testing index without drawing.
func (e *SoftwareEngine) layout(vb view.Viewbox, shapes shape.Map) {
	e.index.Clear()
	p := pass{
		engine: e,
		m:      vb.Matrix(),
		area:   vb.VisibleArea(),
		clips:  []image.Rectangle{e.target.Image().Bounds()},
		layout: true,
	}
	w := walker{shapes: shapes}
	w.walk(p.enter, p.leave)
	e.indexVB = vb
	e.indexStamp = stampOf(shapes)
	e.indexOK = true
}

// sceneStamp summarizes a collection. Any edit, insertion or removal
// changes it: edits and new shapes raise the newest revision, removals
// change the count.
type sceneStamp struct {
	shapes int
	rev    uint64
}

func stampOf(shapes shape.Map) sceneStamp {
	st := sceneStamp{shapes: len(shapes)}
	for _, s := range shapes {
		st.rev = max(st.rev, s.Revision())
	}
	return st
}

// outline returns the device outline of s, cached by revision and transform.
func (e *SoftwareEngine) outline(s *shape.Shape, m geom.Matrix) deviceOutline {
	key := outlineKey{id: s.ID(), rev: s.Revision(), m: m}
	return e.outlines.GetOrCreate(key, func() deviceOutline {
		return buildOutline(s, m)
	})
}

// pass carries the state of one tree walk.
type pass struct {
	engine *SoftwareEngine
	m      geom.Matrix
	area   geom.Rect

	// clips is a stack of device clip rectangles; the top applies.
	clips []image.Rectangle

	// complete stays true while every drawn shape lies inside area.
	complete bool

	// layout skips drawing and only fills the index.
	layout bool
}

func (p *pass) clip() image.Rectangle {
	return p.clips[len(p.clips)-1]
}

func (p *pass) enter(s *shape.Shape) bool {
	if s.Hidden() {
		return false
	}

	bounds := s.Bounds()
	if !bounds.IsEmpty() && !p.area.Contains(bounds) {
		p.complete = false
	}

	o := p.engine.outline(s, p.m)
	visible := o.bounds.Intersect(p.clip())
	if !visible.Empty() && bounds.Intersects(p.area) {
		p.engine.index.Insert(s.ID(), visible)
		if !p.layout {
			p.paint(s, o, visible)
		}
	}

	if s.ClipContent() && s.Kind() == shape.KindFrame {
		p.clips = append(p.clips, visible)
	}
	return true
}

func (p *pass) leave(s *shape.Shape) {
	if s.ClipContent() && s.Kind() == shape.KindFrame {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

// paint composites every fill of s inside the visible pixel rectangle.
func (p *pass) paint(s *shape.Shape, o deviceOutline, visible image.Rectangle) {
	fills := s.Fills()
	if len(fills) == 0 || len(o.segs) == 0 || s.Opacity() == 0 {
		return
	}
	e := p.engine
	rasterize(&e.raster, e.mask, o, visible)
	for _, f := range fills {
		blend.Mask(e.target.Image(), visible, e.mask, f.Color, s.Opacity(), s.BlendMode())
	}
}

// Ensure SoftwareEngine implements the engine interfaces.
var (
	_ Engine           = (*SoftwareEngine)(nil)
	_ CacheRenderer    = (*SoftwareEngine)(nil)
	_ HitTester        = (*SoftwareEngine)(nil)
	_ ImageSource      = (*SoftwareEngine)(nil)
	_ BackgroundSetter = (*SoftwareEngine)(nil)
	_ Sizer            = (*SoftwareEngine)(nil)
)
