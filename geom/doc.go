// Package geom provides the small amount of 2D geometry the render session
// needs: points, axis-aligned rectangles and affine matrices.
//
// All values are plain float64 value types. Scene coordinates use the usual
// raster convention: origin at top-left, X to the right, Y down.
package geom
