package geom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", RotateDegrees(90), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(10, 20).Multiply(RotateDegrees(30)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() ok = false, want true")
	}
	p := Pt(7, -3)
	back := inv.TransformPoint(m.TransformPoint(p))
	if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
		t.Errorf("inverse round trip = %v, want %v", back, p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of singular matrix ok = true, want false")
	}
}

func TestMatrixAround(t *testing.T) {
	m := RotateDegrees(180).Around(Pt(5, 5))
	got := m.TransformPoint(Pt(0, 0))
	if !approx(got.X, 10) || !approx(got.Y, 10) {
		t.Errorf("rotate 180 around (5,5) of origin = %v, want (10,10)", got)
	}
	c := m.TransformPoint(Pt(5, 5))
	if !approx(c.X, 5) || !approx(c.Y, 5) {
		t.Errorf("center moved to %v", c)
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !Scale(2, 3).IsAxisAligned() {
		t.Error("Scale should be axis aligned")
	}
	if RotateDegrees(45).IsAxisAligned() {
		t.Error("45 degree rotation should not be axis aligned")
	}
	if (Matrix{A: math.NaN(), E: 1}).IsFinite() {
		t.Error("NaN matrix reported finite")
	}
}
