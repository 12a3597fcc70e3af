// Package view holds the viewport transform of a render session.
package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ggstate/geom"
)

// ErrInvalid is returned by Validate for a viewbox that cannot be used to
// map scene coordinates to surface pixels.
var ErrInvalid = errors.New("view: invalid viewbox")

// Viewbox describes which part of the scene is visible on the surface.
//
// A scene point p lands on surface pixel zoom*(p+pan). Area is the visible
// part of the scene in scene coordinates; it is kept in sync by the setters
// but starts out empty until the first pan, zoom or resize.
type Viewbox struct {
	PanX, PanY    float64
	Zoom          float64
	Width, Height float64
	Area          geom.Rect
}

// New returns a viewbox for a surface of the given pixel size with zero pan,
// unit zoom and an empty area. Negative sizes are treated as zero.
func New(width, height int) Viewbox {
	return Viewbox{
		Zoom:   1,
		Width:  float64(max(width, 0)),
		Height: float64(max(height, 0)),
		Area:   geom.NewEmpty(),
	}
}

// SetWH updates the surface size. Pan and zoom are unchanged; the area keeps
// its origin and takes the new size in scene units. Negative sizes are
// treated as zero, matching render targets.
func (v *Viewbox) SetWH(width, height float64) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
	v.Area.SetWH(v.Width/v.Zoom, v.Height/v.Zoom)
}

// SetPan moves the viewbox.
func (v *Viewbox) SetPan(panX, panY float64) {
	v.PanX = panX
	v.PanY = panY
	v.Area.SetXYWH(-v.PanX, -v.PanY, v.Width/v.Zoom, v.Height/v.Zoom)
}

// SetZoom changes the zoom factor, keeping the pan.
func (v *Viewbox) SetZoom(zoom float64) {
	v.Zoom = zoom
	v.Area.SetWH(v.Width/v.Zoom, v.Height/v.Zoom)
}

// SetAll sets zoom and pan in one step and recomputes the area.
func (v *Viewbox) SetAll(zoom, panX, panY float64) {
	v.PanX = panX
	v.PanY = panY
	v.Zoom = zoom
	v.Area.SetXYWH(-v.PanX, -v.PanY, v.Width/v.Zoom, v.Height/v.Zoom)
}

// VisibleArea returns the visible scene rectangle derived from pan, zoom and
// size, independent of whether Area has been populated yet.
func (v Viewbox) VisibleArea() geom.Rect {
	return geom.XYWH(-v.PanX, -v.PanY, v.Width/v.Zoom, v.Height/v.Zoom)
}

// Matrix returns the scene-to-surface transform.
func (v Viewbox) Matrix() geom.Matrix {
	return geom.Scale(v.Zoom, v.Zoom).Multiply(geom.Translate(v.PanX, v.PanY))
}

// Validate reports whether the viewbox can be used for rendering.
func (v Viewbox) Validate() error {
	switch {
	case math.IsNaN(v.Zoom) || math.IsInf(v.Zoom, 0) || v.Zoom <= 0:
		return fmt.Errorf("%w: zoom %v", ErrInvalid, v.Zoom)
	case math.IsNaN(v.PanX) || math.IsInf(v.PanX, 0) || math.IsNaN(v.PanY) || math.IsInf(v.PanY, 0):
		return fmt.Errorf("%w: pan (%v, %v)", ErrInvalid, v.PanX, v.PanY)
	case v.Width < 0 || v.Height < 0:
		return fmt.Errorf("%w: size %vx%v", ErrInvalid, v.Width, v.Height)
	}
	return nil
}
