package view

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ggstate/geom"
)

func TestNew(t *testing.T) {
	v := New(800, 600)
	if v.PanX != 0 || v.PanY != 0 || v.Zoom != 1 {
		t.Errorf("New() pan/zoom = (%v, %v, %v), want (0, 0, 1)", v.PanX, v.PanY, v.Zoom)
	}
	if v.Width != 800 || v.Height != 600 {
		t.Errorf("New() size = %vx%v, want 800x600", v.Width, v.Height)
	}
	if !v.Area.IsEmpty() {
		t.Errorf("New() area = %+v, want empty", v.Area)
	}
}

func TestSetWH(t *testing.T) {
	v := New(100, 100)
	v.SetAll(2, 0, 0)
	v.SetWH(200, 150)

	if v.Width != 200 || v.Height != 150 {
		t.Errorf("size = %vx%v, want 200x150", v.Width, v.Height)
	}
	if v.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", v.Zoom)
	}
	if v.Area.Width() != 100 || v.Area.Height() != 75 {
		t.Errorf("area size = %vx%v, want 100x75", v.Area.Width(), v.Area.Height())
	}
}

func TestNegativeSizeClamped(t *testing.T) {
	v := New(-10, 20)
	if v.Width != 0 || v.Height != 20 {
		t.Errorf("New(-10, 20) size = %vx%v, want 0x20", v.Width, v.Height)
	}
	v.SetWH(30, -5)
	if v.Width != 30 || v.Height != 0 {
		t.Errorf("SetWH(30, -5) size = %vx%v, want 30x0", v.Width, v.Height)
	}
	if err := v.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSetAll(t *testing.T) {
	v := New(400, 200)
	v.SetAll(2, -50, -10)

	want := geom.XYWH(50, 10, 200, 100)
	if v.Area != want {
		t.Errorf("area = %+v, want %+v", v.Area, want)
	}
	if v.VisibleArea() != want {
		t.Errorf("VisibleArea() = %+v, want %+v", v.VisibleArea(), want)
	}
}

func TestMatrix(t *testing.T) {
	v := New(100, 100)
	v.SetAll(2, 10, 5)
	got := v.Matrix().TransformPoint(geom.Pt(0, 0))
	if got != geom.Pt(20, 10) {
		t.Errorf("Matrix() maps origin to %v, want (20, 10)", got)
	}
	// The visible area's corner lands on the surface origin.
	corner := v.Matrix().TransformPoint(geom.Pt(v.Area.Left, v.Area.Top))
	if corner != geom.Pt(0, 0) {
		t.Errorf("area corner maps to %v, want origin", corner)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Viewbox)
		ok   bool
	}{
		{"default", func(*Viewbox) {}, true},
		{"zero zoom", func(v *Viewbox) { v.Zoom = 0 }, false},
		{"negative zoom", func(v *Viewbox) { v.Zoom = -1 }, false},
		{"nan zoom", func(v *Viewbox) { v.Zoom = math.NaN() }, false},
		{"inf pan", func(v *Viewbox) { v.PanX = math.Inf(1) }, false},
		{"negative width", func(v *Viewbox) { v.Width = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(10, 10)
			tt.mod(&v)
			err := v.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
