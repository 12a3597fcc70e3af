package shape

import "image/color"

// Fill is a solid paint applied to a shape's outline.
type Fill struct {
	Color color.NRGBA
}

// SolidFill creates a fill from a packed 0xAARRGGBB color, the layout hosts
// use to pass colors across the call boundary.
func SolidFill(argb uint32) Fill {
	return Fill{Color: color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}}
}

// ARGB returns the fill color packed as 0xAARRGGBB.
func (f Fill) ARGB() uint32 {
	c := f.Color
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
