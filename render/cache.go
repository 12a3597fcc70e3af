package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggstate/view"
)

// cachedSurface is a snapshot of a full render and the viewbox it was
// rendered for.
type cachedSurface struct {
	img *image.RGBA
	vb  view.Viewbox

	// complete is true when every drawn shape was inside the visible area,
	// so the snapshot holds the whole scene.
	complete bool
}

// covers reports whether redrawing the snapshot for vb shows everything a
// full render would.
func (c *cachedSurface) covers(vb view.Viewbox) bool {
	if c.complete {
		return true
	}
	return c.vb.VisibleArea().Contains(vb.VisibleArea())
}

// cacheTransform returns the affine map from snapshot pixels to surface
// pixels for vb.
func (c *cachedSurface) cacheTransform(vb view.Viewbox) f64.Aff3 {
	s := vb.Zoom / c.vb.Zoom
	return f64.Aff3{
		s, 0, vb.Zoom * (vb.PanX - c.vb.PanX),
		0, s, vb.Zoom * (vb.PanY - c.vb.PanY),
	}
}

// draw clears t to bg and resamples the snapshot onto it. The snapshot
// replaces the pixels it covers; it already holds the background.
func (c *cachedSurface) draw(t *PixmapTarget, bg color.Color, vb view.Viewbox) {
	t.Clear(bg)
	dst := t.Image()
	s2d := c.cacheTransform(vb)
	if s2d[0] == 1 && isPixelOffset(s2d[2]) && isPixelOffset(s2d[5]) {
		// Integer translation: plain copy.
		off := image.Pt(int(s2d[2]), int(s2d[5]))
		r := c.img.Bounds().Add(off).Intersect(dst.Bounds())
		draw.Copy(dst, r.Min, c.img, r.Sub(off), draw.Src, nil)
		return
	}
	draw.ApproxBiLinear.Transform(dst, s2d, c.img, c.img.Bounds(), draw.Src, nil)
}

func isPixelOffset(v float64) bool {
	const limit = 1 << 30
	return v > -limit && v < limit && v == float64(int(v))
}
