package tiles

import (
	"image"
	"testing"

	"github.com/google/uuid"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		tilesX, tilesY int
	}{
		{"exact", 128, 64, 2, 1},
		{"partial", 130, 65, 3, 2},
		{"tiny", 1, 1, 1, 1},
		{"zero", 0, 100, 0, 0},
		{"negative", -5, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.w, tt.h)
			if g.TilesX() != tt.tilesX || g.TilesY() != tt.tilesY {
				t.Errorf("tiles = %dx%d, want %dx%d", g.TilesX(), g.TilesY(), tt.tilesX, tt.tilesY)
			}
		})
	}
}

func TestInsertAndAt(t *testing.T) {
	g := NewGrid(256, 256)
	a, b := uuid.New(), uuid.New()

	g.Insert(a, image.Rect(0, 0, 100, 100))
	g.Insert(b, image.Rect(50, 50, 200, 200))

	got := g.At(60, 60)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("At(60,60) = %v, want [a b]", got)
	}
	if got := g.At(10, 10); len(got) != 1 || got[0] != a {
		t.Errorf("At(10,10) = %v, want [a]", got)
	}
	if got := g.At(250, 10); len(got) != 0 {
		t.Errorf("At(250,10) = %v, want empty", got)
	}
	if got := g.At(-1, 0); got != nil {
		t.Errorf("At(-1,0) = %v, want nil", got)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestInsertOutside(t *testing.T) {
	g := NewGrid(64, 64)
	g.Insert(uuid.New(), image.Rect(100, 100, 200, 200))
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestClearAndResize(t *testing.T) {
	g := NewGrid(64, 64)
	g.Insert(uuid.New(), image.Rect(0, 0, 10, 10))
	g.Clear()
	if len(g.At(5, 5)) != 0 || g.Len() != 0 {
		t.Error("Clear() left entries behind")
	}

	g.Insert(uuid.New(), image.Rect(0, 0, 10, 10))
	g.Resize(200, 200)
	if len(g.At(5, 5)) != 0 {
		t.Error("Resize() should clear entries")
	}
	if g.TilesX() != 4 {
		t.Errorf("TilesX() = %d, want 4", g.TilesX())
	}
}
