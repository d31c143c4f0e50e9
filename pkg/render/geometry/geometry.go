// Package geometry extracts the drawable parts of a tiling in board
// coordinates.
//
// Coordinates are in cell units with the origin at the top-left corner of
// the board: cell (row r, column c) spans x in [c-1, c] and y in [r-1, r].
// Every vector sink scales and styles these primitives; none of them walks
// the grid itself.
package geometry

import (
	"github.com/matzehuels/polytile/pkg/tiling"
)

// Segment is a straight line between two lattice points.
type Segment struct {
	X1, Y1, X2, Y2 int
}

// Cell is one covered board cell.
type Cell struct {
	Row, Col    int
	Tile        tiling.TileID
	Orientation int
}

// Boundaries returns the unit segments separating horizontally or vertically
// adjacent cells with different tile ids. For each cell in row-major order,
// the segment to its right comes before the segment below it.
func Boundaries(g *tiling.Grid) []Segment {
	var segs []Segment
	h, w := g.Height(), g.Width()
	for i := 1; i <= h; i++ {
		for j := 1; j <= w; j++ {
			if j < w && g.At(i, j) != g.At(i, j+1) {
				segs = append(segs, Segment{j, i - 1, j, i})
			}
			if i < h && g.At(i, j) != g.At(i+1, j) {
				segs = append(segs, Segment{j - 1, i, j, i})
			}
		}
	}
	return segs
}

// Frame returns the four sides of the board outline: top, left, bottom, right.
func Frame(g *tiling.Grid) []Segment {
	h, w := g.Height(), g.Width()
	return []Segment{
		{0, 0, w, 0},
		{0, 0, 0, h},
		{0, h, w, h},
		{w, 0, w, h},
	}
}

// Fills returns every covered cell in row-major order.
func Fills(g *tiling.Grid) []Cell {
	cells := make([]Cell, 0, g.Height()*g.Width())
	for i := 1; i <= g.Height(); i++ {
		for j := 1; j <= g.Width(); j++ {
			id := g.At(i, j)
			if id == tiling.NoTile {
				continue
			}
			cells = append(cells, Cell{Row: i, Col: j, Tile: id, Orientation: g.Orientation(id)})
		}
	}
	return cells
}
