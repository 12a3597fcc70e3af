package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/ggstate/shape"
)

func TestRecorderRecordsCalls(t *testing.T) {
	r := NewRecorder(nil)
	shapes := shape.NewMap(0)
	shapes.Ensure(shape.Root)
	vb := testViewbox(10, 10, 2, 1, 1)

	r.Resize(10, 10)
	if err := r.Navigate(vb, shapes); err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	r.RenderAll(vb, shapes, true)

	calls := r.Calls()
	if len(calls) != 3 {
		t.Fatalf("len(Calls()) = %d, want 3", len(calls))
	}
	wantOps := []Op{OpResize, OpNavigate, OpRenderAll}
	for i, op := range wantOps {
		if calls[i].Op != op {
			t.Errorf("Calls()[%d].Op = %v, want %v", i, calls[i].Op, op)
		}
	}
	if calls[0].Width != 10 || calls[0].Height != 10 {
		t.Errorf("resize call = %+v", calls[0])
	}
	if calls[1].Viewbox != vb || calls[1].Shapes != 1 {
		t.Errorf("navigate call = %+v", calls[1])
	}
	if !calls[2].Cached {
		t.Error("render call Cached = false, want true")
	}
	if w, h := r.Size(); w != 10 || h != 10 {
		t.Errorf("Size() = %d,%d, want 10,10", w, h)
	}
	if r.Image() != nil {
		t.Error("Image() of stub recorder != nil")
	}

	r.Reset()
	if len(r.Calls()) != 0 {
		t.Errorf("len(Calls()) after Reset = %d", len(r.Calls()))
	}
}

func TestRecorderForwards(t *testing.T) {
	shapes, a, _ := testScene(t)
	e := NewSoftwareEngine(100, 100)
	r := NewRecorder(e)
	vb := testViewbox(100, 100, 1, 0, 0)

	if err := r.RenderFromCache(vb); !errors.Is(err, ErrNoCachedSurface) {
		t.Errorf("RenderFromCache() = %v, want ErrNoCachedSurface", err)
	}
	r.RenderAll(vb, shapes, true)
	if err := r.RenderFromCache(vb); err != nil {
		t.Errorf("RenderFromCache() error = %v", err)
	}
	if id, ok := r.HitTest(vb, shapes, 20, 20); !ok || id != a {
		t.Errorf("HitTest() = %v, %v, want %v", id, ok, a)
	}
	if r.Image() != e.Image() {
		t.Error("Image() not forwarded")
	}

	bad := testViewbox(100, 100, -1, 0, 0)
	err := r.Navigate(bad, shapes)
	if !errors.Is(err, ErrInvalidViewbox) {
		t.Fatalf("Navigate() = %v, want ErrInvalidViewbox", err)
	}
	last := r.Calls()[len(r.Calls())-1]
	if last.Err != err {
		t.Errorf("recorded Err = %v, want %v", last.Err, err)
	}
	if s := last.String(); !strings.HasPrefix(s, "navigate zoom=-1") || !strings.Contains(s, "err=") {
		t.Errorf("String() = %q", s)
	}
}
