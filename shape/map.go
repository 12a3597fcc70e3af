package shape

import "github.com/google/uuid"

// Root is the id of the shape every render pass starts from.
var Root = uuid.Nil

// Map is a collection of shapes keyed by id. It owns the shapes it holds.
type Map map[uuid.UUID]*Shape

// NewMap returns an empty map sized for capacity shapes. The capacity is a
// hint only; negative values are treated as zero.
func NewMap(capacity int) Map {
	return make(Map, max(capacity, 0))
}

// Ensure returns the shape for id, inserting a new one if absent.
// The second result reports whether the shape was created.
func (m Map) Ensure(id uuid.UUID) (*Shape, bool) {
	if s, ok := m[id]; ok {
		return s, false
	}
	s := New(id)
	m[id] = s
	return s, true
}

// Remove deletes the shape for id and detaches id from every parent's
// children. It reports whether a shape was removed.
func (m Map) Remove(id uuid.UUID) bool {
	if _, ok := m[id]; !ok {
		return false
	}
	delete(m, id)
	for _, s := range m {
		s.RemoveChild(id)
	}
	return true
}

// Parent returns the shape listing id among its children, if any.
func (m Map) Parent(id uuid.UUID) (*Shape, bool) {
	for _, s := range m {
		for _, c := range s.children {
			if c == id {
				return s, true
			}
		}
	}
	return nil, false
}

// Children returns the shapes listed as children of id, in paint order.
// Ids missing from the map are skipped.
func (m Map) Children(id uuid.UUID) []*Shape {
	s, ok := m[id]
	if !ok {
		return nil
	}
	out := make([]*Shape, 0, len(s.children))
	for _, c := range s.children {
		if child, ok := m[c]; ok {
			out = append(out, child)
		}
	}
	return out
}
