package ggstate

import (
	"fmt"

	"github.com/gogpu/ggstate/view"
)

// NavigateError is returned by Session.Navigate when the engine's layout
// pass fails. It carries the viewbox the pass was attempted with.
type NavigateError struct {
	Viewbox view.Viewbox
	Err     error
}

func (e *NavigateError) Error() string {
	return fmt.Sprintf("ggstate: navigate (zoom %g, pan %g,%g, size %gx%g): %v",
		e.Viewbox.Zoom, e.Viewbox.PanX, e.Viewbox.PanY, e.Viewbox.Width, e.Viewbox.Height, e.Err)
}

// Unwrap returns the engine error.
func (e *NavigateError) Unwrap() error {
	return e.Err
}
