// Package tiles implements the hit-testing index built during layout passes.
//
// The surface is divided into 64x64 pixel tiles. Each tile lists the ids of
// the shapes whose device bounds touch it, in paint order, so a point query
// only has to examine the shapes of a single tile.
package tiles

import (
	"image"

	"github.com/google/uuid"
)

// Tile size in pixels.
const (
	TileWidth  = 64
	TileHeight = 64
)

// Grid is a row-major grid of tiles covering a surface.
//
// Thread safety: Grid is NOT thread-safe.
type Grid struct {
	// cells[ty*tilesX+tx] holds shape ids in paint order.
	cells  [][]uuid.UUID
	tilesX int
	tilesY int
	width  int
	height int
	count  int
}

// NewGrid creates an empty grid for a surface of the given pixel size.
// Non-positive sizes produce a grid with no tiles.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize changes the covered surface size and clears the grid.
func (g *Grid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.cells = nil
		g.tilesX, g.tilesY = 0, 0
		g.width, g.height = 0, 0
		g.count = 0
		return
	}
	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.width = width
	g.height = height
	g.cells = make([][]uuid.UUID, g.tilesX*g.tilesY)
	g.count = 0
}

// Clear removes all entries, keeping the tile allocation.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.count = 0
}

// Insert records id in every tile intersecting the pixel rectangle r.
// Calls must be made in paint order. Rectangles outside the surface are
// ignored.
func (g *Grid) Insert(id uuid.UUID, r image.Rectangle) {
	tx1, ty1, tx2, ty2, ok := g.tileRange(r)
	if !ok {
		return
	}
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			i := ty*g.tilesX + tx
			g.cells[i] = append(g.cells[i], id)
		}
	}
	g.count++
}

// At returns the ids recorded in the tile containing pixel (px, py), in
// paint order. The returned slice must not be modified.
func (g *Grid) At(px, py int) []uuid.UUID {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	return g.cells[(py/TileHeight)*g.tilesX+px/TileWidth]
}

// Len returns the number of inserted shapes.
func (g *Grid) Len() int {
	return g.count
}

// TilesX returns the number of tiles horizontally.
func (g *Grid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *Grid) TilesY() int {
	return g.tilesY
}

// tileRange clamps r to the surface and converts it to inclusive tile
// coordinates.
func (g *Grid) tileRange(r image.Rectangle) (tx1, ty1, tx2, ty2 int, ok bool) {
	r = r.Intersect(image.Rect(0, 0, g.width, g.height))
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	return r.Min.X / TileWidth, r.Min.Y / TileHeight,
		(r.Max.X - 1) / TileWidth, (r.Max.Y - 1) / TileHeight, true
}
