// Package shape defines the drawable entities a render session owns.
//
// A Shape is identified by a uuid and carries its geometry (kind, selection
// rectangle, transform), its paint (fills, blend mode, opacity) and the ids
// of its children. Shapes never reference each other by pointer: the
// hierarchy is expressed through ids resolved against a Map, so a Map is the
// only owner of Shape values.
//
// Every setter bumps the shape's revision, which renderers use as a cache
// key for derived data such as device-space outlines.
package shape
