// Package tiling places copies of a polyomino onto a rectangular board,
// driven by a tiling string.
//
// # Placement
//
// An [Engine] owns a board of Height×Width cells and the orientation
// family of one polyomino. For every symbol of the tiling string it
//
//  1. finds the anchor cell: the topmost, then leftmost, open cell;
//  2. maps the symbol to an orientation through the [Encoding];
//  3. checks that the orientation, aligned so its first top-row cell sits on
//     the anchor, stays inside the board and covers only open cells;
//  4. stamps the covered cells with a [TileID].
//
// The first symbol that cannot be placed aborts the run. The returned error
// carries ErrCodeIllegalPlacement and wraps a [*PlacementError] naming the
// symbol index, the attempted orientation and the board size; no cell is
// written for the failing symbol.
//
//	f, _ := polyomino.BuildFamily(spec)
//	e, err := tiling.NewEngine(f, tiling.DefaultEncoding, 4, 4)
//	if err != nil {
//	    return err
//	}
//	grid, err := e.PlaceAll("4312")
//
// # Tile IDs
//
// Every covered cell holds stride*sequence + orientation, where sequence
// counts successful placements from zero and stride is the encoding
// modulus (4 for Korn–Pak strings). Cells never covered hold [NoTile].
// Two neighbouring cells belong to the same tile iff their IDs are equal.
//
// # Exhausted Boards
//
// A symbol that arrives after every cell is covered fails with
// ErrCodeOverfullInput. [WithIgnoreOverflow] restores the lenient
// behaviour of skipping such symbols; the skipped count is reported by
// [Grid.Ignored].
package tiling
