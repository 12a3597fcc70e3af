package blend

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/ggstate/shape"
)

func fullMask(r image.Rectangle) *image.Alpha {
	m := image.NewAlpha(r)
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	return m
}

func filled(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestMaskNormalOpaque(t *testing.T) {
	dst := filled(color.RGBA{255, 255, 255, 255})
	r := dst.Bounds()
	Mask(dst, r, fullMask(r), color.NRGBA{255, 0, 0, 255}, 1, shape.BlendNormal)

	if got := dst.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want opaque red", got)
	}
}

func TestMaskOpacity(t *testing.T) {
	dst := filled(color.RGBA{0, 0, 0, 255})
	r := dst.Bounds()
	Mask(dst, r, fullMask(r), color.NRGBA{255, 255, 255, 255}, 0.5, shape.BlendNormal)

	got := dst.RGBAAt(0, 0)
	if got.R < 126 || got.R > 129 || got.A != 255 {
		t.Errorf("pixel = %v, want ~50%% gray", got)
	}
}

func TestMaskZeroCoverage(t *testing.T) {
	dst := filled(color.RGBA{10, 20, 30, 255})
	r := dst.Bounds()
	Mask(dst, r, image.NewAlpha(r), color.NRGBA{255, 0, 0, 255}, 1, shape.BlendNormal)

	if got := dst.RGBAAt(2, 2); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel changed to %v with zero coverage", got)
	}
}

func TestMaskSeparableModes(t *testing.T) {
	gray := color.RGBA{128, 128, 128, 255}
	src := color.NRGBA{255, 0, 0, 255}

	tests := []struct {
		mode  shape.BlendMode
		check func(color.RGBA) bool
	}{
		{shape.BlendMultiply, func(c color.RGBA) bool { return c.R == 128 && c.G == 0 }},
		{shape.BlendScreen, func(c color.RGBA) bool { return c.R == 255 && c.G == 128 }},
		{shape.BlendDarken, func(c color.RGBA) bool { return c.R == 128 && c.G == 0 }},
		{shape.BlendLighten, func(c color.RGBA) bool { return c.R == 255 && c.G == 128 }},
		{shape.BlendDifference, func(c color.RGBA) bool { return c.R == 127 && c.G == 128 }},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			dst := filled(gray)
			r := dst.Bounds()
			Mask(dst, r, fullMask(r), src, 1, tt.mode)
			if got := dst.RGBAAt(0, 0); !tt.check(got) {
				t.Errorf("%s result = %v", tt.mode, got)
			}
		})
	}
}

func TestMaskOntoTransparent(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	r := dst.Bounds()
	Mask(dst, r, fullMask(r), color.NRGBA{0, 0, 255, 255}, 1, shape.BlendMultiply)

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel = %v, want source color over transparent", got)
	}
}
