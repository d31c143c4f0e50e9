package tiling

import (
	"github.com/matzehuels/polytile/pkg/polyomino"
)

// TileID labels the cells covered by one placement.
type TileID int

// NoTile marks a cell that no placement covers.
const NoTile TileID = -1

// board is the mutable state of one run. Both grids carry a one-cell
// border, so real cells are addressed 1..height and 1..width and bounds
// checks never special-case the edges. Border cells are never targeted.
type board struct {
	height, width int
	stride        int
	occupied      [][]bool
	tiles         [][]TileID
	count         int
	filled        int
	placements    []Placement
	ignored       int
}

func newBoard(height, width, stride int) *board {
	b := &board{
		height:   height,
		width:    width,
		stride:   stride,
		occupied: make([][]bool, height+2),
		tiles:    make([][]TileID, height+2),
	}
	for i := range b.occupied {
		b.occupied[i] = make([]bool, width+2)
		b.tiles[i] = make([]TileID, width+2)
		for j := range b.tiles[i] {
			b.tiles[i][j] = NoTile
		}
	}
	return b
}

// anchor returns the topmost, then leftmost, open cell.
func (b *board) anchor() (row, col int, ok bool) {
	if b.filled == b.height*b.width {
		return 0, 0, false
	}
	for i := 1; i <= b.height; i++ {
		for j := 1; j <= b.width; j++ {
			if !b.occupied[i][j] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// fits checks s anchored at (row, col) without touching the board.
func (b *board) fits(s polyomino.Shape, row, col int) (Reason, bool) {
	if s.Offset >= col || col+s.Width-s.Offset >= b.width+2 || row+s.Length >= b.height+2 {
		return ReasonOutOfBounds, false
	}
	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Length; y++ {
			if s.Covered(y, x) && b.occupied[row+y][col+x-s.Offset] {
				return ReasonOverlap, false
			}
		}
	}
	return "", true
}

// stamp commits s anchored at (row, col). Callers must check fits first.
func (b *board) stamp(s polyomino.Shape, row, col, orientation int) TileID {
	id := TileID(b.stride*b.count + orientation)
	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Length; y++ {
			if s.Covered(y, x) {
				b.occupied[row+y][col+x-s.Offset] = true
				b.tiles[row+y][col+x-s.Offset] = id
				b.filled++
			}
		}
	}
	b.count++
	return id
}

func (b *board) snapshot() *Grid {
	tiles := make([][]TileID, len(b.tiles))
	for i, r := range b.tiles {
		tiles[i] = append([]TileID(nil), r...)
	}
	return &Grid{
		height:     b.height,
		width:      b.width,
		stride:     b.stride,
		tiles:      tiles,
		count:      b.count,
		filled:     b.filled,
		placements: append([]Placement(nil), b.placements...),
		ignored:    b.ignored,
	}
}
