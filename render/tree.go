package render

import (
	"github.com/google/uuid"

	"github.com/gogpu/ggstate/shape"
)

// CheckScene verifies that every child id refers to a shape in the
// collection and that the child graph has no cycles.
func CheckScene(shapes shape.Map) error {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[uuid.UUID]uint8, len(shapes))

	var visit func(id uuid.UUID, s *shape.Shape) error
	visit = func(id uuid.UUID, s *shape.Shape) error {
		state[id] = active
		for _, c := range s.Children() {
			child, ok := shapes[c]
			if !ok {
				return &SceneError{Shape: id, Child: c}
			}
			switch state[c] {
			case active:
				return &SceneError{Shape: id, Child: c, Cycle: true}
			case unvisited:
				if err := visit(c, child); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	for id, s := range shapes {
		if state[id] != unvisited {
			continue
		}
		if err := visit(id, s); err != nil {
			return err
		}
	}
	return nil
}

// walker visits the tree below the root in paint order. Missing children and
// cycles are reported to onError and skipped, so a render pass always
// completes.
type walker struct {
	shapes  shape.Map
	onError func(*SceneError)
	active  map[uuid.UUID]bool
}

// walk calls enter for each shape before its children and leave after them.
// enter returns false to skip the subtree.
func (w *walker) walk(enter func(*shape.Shape) bool, leave func(*shape.Shape)) {
	root, ok := w.shapes[shape.Root]
	if !ok {
		return
	}
	w.active = make(map[uuid.UUID]bool)
	w.visit(root, enter, leave)
}

func (w *walker) visit(s *shape.Shape, enter func(*shape.Shape) bool, leave func(*shape.Shape)) {
	if !enter(s) {
		return
	}
	w.active[s.ID()] = true
	for _, c := range s.Children() {
		child, ok := w.shapes[c]
		switch {
		case !ok:
			w.report(&SceneError{Shape: s.ID(), Child: c})
		case w.active[c]:
			w.report(&SceneError{Shape: s.ID(), Child: c, Cycle: true})
		default:
			w.visit(child, enter, leave)
		}
	}
	delete(w.active, s.ID())
	if leave != nil {
		leave(s)
	}
}

func (w *walker) report(err *SceneError) {
	if w.onError != nil {
		w.onError(err)
	}
}
