// Package blend composites coverage masks onto premultiplied RGBA surfaces.
//
// Separable blend modes follow the W3C Compositing and Blending Level 1
// formula on premultiplied colors:
//
//	Cr = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//	Ar = Sa + Da - Sa * Da
//
// where B operates on unpremultiplied channels.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/ggstate/shape"
)

// channelFunc is B(s, d) for one unpremultiplied channel in [0, 1].
type channelFunc func(s, d float32) float32

func multiply(s, d float32) float32 { return s * d }
func screen(s, d float32) float32   { return s + d - s*d }
func darken(s, d float32) float32   { return min(s, d) }
func lighten(s, d float32) float32  { return max(s, d) }
func exclusion(s, d float32) float32 {
	return s + d - 2*s*d
}

func difference(s, d float32) float32 {
	return float32(math.Abs(float64(s - d)))
}

func hardLight(s, d float32) float32 {
	if s <= 0.5 {
		return multiply(d, 2*s)
	}
	return screen(d, 2*s-1)
}

// overlay is HardLight with the layers swapped.
func overlay(s, d float32) float32 { return hardLight(d, s) }

// channelFor returns B for a blend mode, or nil for normal source-over.
func channelFor(m shape.BlendMode) channelFunc {
	switch m {
	case shape.BlendMultiply:
		return multiply
	case shape.BlendScreen:
		return screen
	case shape.BlendOverlay:
		return overlay
	case shape.BlendDarken:
		return darken
	case shape.BlendLighten:
		return lighten
	case shape.BlendDifference:
		return difference
	case shape.BlendExclusion:
		return exclusion
	default:
		return nil
	}
}

// Mask composites src onto dst inside r, weighted by the coverage in mask
// and by opacity. mask must cover r; pixels with zero coverage are left
// untouched.
func Mask(dst *image.RGBA, r image.Rectangle, mask *image.Alpha, src color.NRGBA, opacity float64, mode shape.BlendMode) {
	r = r.Intersect(dst.Bounds()).Intersect(mask.Bounds())
	if r.Empty() || src.A == 0 || opacity <= 0 {
		return
	}

	fn := channelFor(mode)
	base := float32(src.A) / 255 * float32(opacity)
	su := [3]float32{float32(src.R) / 255, float32(src.G) / 255, float32(src.B) / 255}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, mi, di = x+1, mi+1, di+4 {
			cov := mask.Pix[mi]
			if cov == 0 {
				continue
			}
			sa := base * float32(cov) / 255
			px := dst.Pix[di : di+4 : di+4]
			composite(px, su, sa, fn)
		}
	}
}

// composite blends one unpremultiplied source color with alpha sa onto the
// premultiplied pixel px.
func composite(px []byte, su [3]float32, sa float32, fn channelFunc) {
	da := float32(px[3]) / 255
	ra := sa + da - sa*da

	for c := 0; c < 3; c++ {
		dp := float32(px[c]) / 255
		sp := su[c] * sa
		var out float32
		if fn == nil || da == 0 {
			out = sp + dp*(1-sa)
		} else {
			du := dp / da
			out = (1-sa)*dp + (1-da)*sp + sa*da*fn(su[c], du)
		}
		px[c] = toByte(min(out, ra))
	}
	px[3] = toByte(ra)
}

func toByte(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return byte(v*255 + 0.5)
}
