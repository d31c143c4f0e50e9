package geometry

import (
	"github.com/matzehuels/polytile/pkg/tiling"
)

// Arrow is one edge of the Korn–Pak chain graph. It starts at the centre
// (X, Y) of a 2×2 block and points DX, DY cells toward the tile that owns
// three of the block's four cells.
type Arrow struct {
	X, Y   int
	DX, DY int
}

// Tip returns the end point of the arrow.
func (a Arrow) Tip() (x, y int) { return a.X + a.DX, a.Y + a.DY }

// Chains returns the chain arrows of g. Blocks start at odd rows and
// columns. A block without a three-cell majority tile, or whose majority
// tile never leaves it, has no arrow.
func Chains(g *tiling.Grid) []Arrow {
	var arrows []Arrow
	h, w := g.Height(), g.Width()
	for i := 1; i < h; i += 2 {
		for j := 1; j <= w; j += 2 {
			most, ok := majority(g, i, j)
			if !ok {
				continue
			}
			var dx, dy int
			for di := -1; di <= 2; di++ {
				for dj := -1; dj <= 2; dj++ {
					r, c := i+di, j+dj
					if r < 1 || r > h || c < 1 || c > w {
						continue
					}
					if (di == 0 || di == 1) && (dj == 0 || dj == 1) {
						continue
					}
					if g.At(r, c) == most {
						dx, dy = step(dj), step(di)
					}
				}
			}
			if dx == 0 && dy == 0 {
				continue
			}
			arrows = append(arrows, Arrow{X: j, Y: i, DX: dx, DY: dy})
		}
	}
	return arrows
}

// majority returns the tile covering at least three cells of the 2×2 block
// whose top-left cell is (i, j).
func majority(g *tiling.Grid, i, j int) (tiling.TileID, bool) {
	counts := make(map[tiling.TileID]int, 4)
	for di := 0; di <= 1; di++ {
		for dj := 0; dj <= 1; dj++ {
			counts[g.At(i+di, j+dj)]++
		}
	}
	for id, n := range counts {
		if n >= 3 && id != tiling.NoTile {
			return id, true
		}
	}
	return tiling.NoTile, false
}

// step maps a ring offset (-1 or 2) to an arrow component, 0 inside the block.
func step(d int) int {
	switch d {
	case -1:
		return -2
	case 2:
		return 2
	}
	return 0
}
