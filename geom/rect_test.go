package geom

import "testing"

func TestNewEmpty(t *testing.T) {
	r := NewEmpty()
	if !r.IsEmpty() {
		t.Errorf("NewEmpty() = %+v, want empty", r)
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("NewEmpty() size = %vx%v, want 0x0", r.Width(), r.Height())
	}
}

func TestRectSetWH(t *testing.T) {
	r := XYWH(10, 20, 1, 1)
	r.SetWH(100, 50)
	if r.Left != 10 || r.Top != 20 || r.Width() != 100 || r.Height() != 50 {
		t.Errorf("SetWH result = %+v", r)
	}
}

func TestRectContains(t *testing.T) {
	outer := XYWH(0, 0, 100, 100)
	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"inside", XYWH(10, 10, 20, 20), true},
		{"same", outer, true},
		{"overlapping", XYWH(90, 90, 20, 20), false},
		{"outside", XYWH(200, 200, 1, 1), false},
		{"empty", NewEmpty(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
	if NewEmpty().Contains(NewEmpty()) {
		t.Error("empty rect should contain nothing")
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := XYWH(0, 0, 10, 10)
	b := XYWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != XYWH(5, 5, 5, 5) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := a.Union(b); got != XYWH(0, 0, 15, 15) {
		t.Errorf("Union = %+v", got)
	}
	if a.Intersects(XYWH(10, 0, 5, 5)) {
		t.Error("touching rects should not intersect")
	}
	if got := NewEmpty().Union(b); got != b {
		t.Errorf("empty.Union(b) = %+v, want %+v", got, b)
	}
}

func TestRectTransform(t *testing.T) {
	r := XYWH(0, 0, 10, 20)
	got := r.Transform(RotateDegrees(90))
	want := LTRB(-20, 0, 0, 10)
	if !approx(got.Left, want.Left) || !approx(got.Top, want.Top) ||
		!approx(got.Right, want.Right) || !approx(got.Bottom, want.Bottom) {
		t.Errorf("Transform(rotate 90) = %+v, want %+v", got, want)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := XYWH(0, 0, 10, 10)
	if !r.ContainsPoint(Pt(0, 0)) {
		t.Error("top-left corner should be inside")
	}
	if r.ContainsPoint(Pt(10, 5)) {
		t.Error("right edge should be outside")
	}
}
