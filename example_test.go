package ggstate_test

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/ggstate"
	"github.com/gogpu/ggstate/render"
	"github.com/gogpu/ggstate/shape"
)

func Example() {
	s := ggstate.New(200, 100, 8)

	box := uuid.MustParse("6f1b2c3d-0000-4000-8000-000000000001")
	s.UseShape(box)
	s.CurrentShape().SetSelrect(20, 20, 60, 60)
	s.CurrentShape().AddFill(shape.SolidFill(0xff3366cc))

	s.UseShape(shape.Root)
	s.CurrentShape().AddChild(box)
	s.RenderAll(true)

	c := s.Image().RGBAAt(40, 40)
	fmt.Printf("pixel: %d %d %d %d\n", c.R, c.G, c.B, c.A)

	id, ok := s.ShapeAt(40, 40)
	fmt.Println("hit:", id, ok)
	// Output:
	// pixel: 51 102 204 255
	// hit: 6f1b2c3d-0000-4000-8000-000000000001 true
}

func ExampleSession_Navigate() {
	s := ggstate.New(100, 100, 0)
	s.UseShape(shape.Root)
	s.CurrentShape().AddChild(uuid.MustParse("00000000-0000-4000-8000-00000000beef"))

	err := s.Navigate()
	var ne *ggstate.NavigateError
	fmt.Println(errors.As(err, &ne), errors.Is(err, render.ErrInconsistentScene))
	// Output:
	// true true
}
