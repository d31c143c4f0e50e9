package tiling

import (
	"slices"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

// Placement records one successful placement. Row and Col are the 1-based
// anchor cell.
type Placement struct {
	Index       int    // position of the symbol in the tiling string
	Symbol      byte   // the symbol itself
	Orientation int    // index into the orientation family
	Row, Col    int    // anchor cell
	Tile        TileID // id stamped on the covered cells
}

// Grid is a read-only view of a board. Rows and columns are 1-based;
// indices one step outside the board address the border and report NoTile.
type Grid struct {
	height, width int
	stride        int
	tiles         [][]TileID
	count         int
	filled        int
	placements    []Placement
	ignored       int
}

// FromRows builds a Grid from tile ids given row by row, with -1 for empty
// cells. It is meant for formatters that receive grids from elsewhere, so
// the result has no placement records.
func FromRows(rows [][]int, stride int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "grid must have at least one cell")
	}
	if stride < 1 {
		return nil, errs.New(errs.ErrCodeInvalidEncoding, "stride must be at least 1, got %d", stride)
	}
	h, w := len(rows), len(rows[0])
	b := newBoard(h, w, stride)
	seen := make(map[TileID]bool)
	for i, r := range rows {
		if len(r) != w {
			return nil, errs.New(errs.ErrCodeInvalidInput, "row %d has %d cells, want %d", i, len(r), w)
		}
		for j, id := range r {
			if id < 0 {
				continue
			}
			b.tiles[i+1][j+1] = TileID(id)
			b.occupied[i+1][j+1] = true
			b.filled++
			seen[TileID(id)] = true
		}
	}
	b.count = len(seen)
	return b.snapshot(), nil
}

// Height returns the number of board rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of board columns.
func (g *Grid) Width() int { return g.width }

// Stride returns the multiplier separating sequence numbers in tile ids.
func (g *Grid) Stride() int { return g.stride }

// At returns the tile covering (row, col).
func (g *Grid) At(row, col int) TileID {
	if row < 0 || row > g.height+1 || col < 0 || col > g.width+1 {
		return NoTile
	}
	return g.tiles[row][col]
}

// Covered reports whether a placement covers (row, col).
func (g *Grid) Covered(row, col int) bool { return g.At(row, col) != NoTile }

// Count returns the number of placed tiles.
func (g *Grid) Count() int { return g.count }

// Complete reports whether every board cell is covered.
func (g *Grid) Complete() bool { return g.filled == g.height*g.width }

// Open returns the number of uncovered cells.
func (g *Grid) Open() int { return g.height*g.width - g.filled }

// Ignored returns how many symbols were skipped because the board was full.
func (g *Grid) Ignored() int { return g.ignored }

// Placements returns the placements in the order they were made.
func (g *Grid) Placements() []Placement { return slices.Clone(g.placements) }

// Sequence returns the zero-based placement number encoded in id.
func (g *Grid) Sequence(id TileID) int { return int(id) / g.stride }

// Orientation returns the orientation index encoded in id.
func (g *Grid) Orientation(id TileID) int { return int(id) % g.stride }

// Rows returns a copy of the tile ids without the border, -1 marking
// uncovered cells.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for i := range rows {
		rows[i] = make([]int, g.width)
		for j := range rows[i] {
			rows[i][j] = int(g.tiles[i+1][j+1])
		}
	}
	return rows
}
