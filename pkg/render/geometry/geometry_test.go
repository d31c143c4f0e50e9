package geometry

import (
	"slices"
	"testing"

	"github.com/matzehuels/polytile/pkg/tiling"
)

func mustGrid(t *testing.T, rows [][]int) *tiling.Grid {
	t.Helper()
	g, err := tiling.FromRows(rows, 4)
	if err != nil {
		t.Fatalf("FromRows() error: %v", err)
	}
	return g
}

// square is the 4x4 tiling produced by "4312".
var square = [][]int{
	{3, 3, 3, 6},
	{8, 3, 6, 6},
	{8, 8, 13, 6},
	{8, 13, 13, 13},
}

func TestBoundaries(t *testing.T) {
	segs := Boundaries(mustGrid(t, square))
	if len(segs) != 12 {
		t.Fatalf("Boundaries() returned %d segments, want 12: %v", len(segs), segs)
	}
	if segs[0] != (Segment{0, 1, 1, 1}) {
		t.Errorf("first segment = %v, want {0 1 1 1}", segs[0])
	}
	if !slices.Contains(segs, Segment{3, 0, 3, 1}) {
		t.Error("missing vertical segment between (1,3) and (1,4)")
	}
	for _, s := range segs {
		if s.X1 != s.X2 && s.Y1 != s.Y2 {
			t.Errorf("segment %v is not axis-aligned", s)
		}
	}
}

func TestBoundariesSingleTile(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	if segs := Boundaries(g); len(segs) != 0 {
		t.Errorf("Boundaries() = %v, want none", segs)
	}
}

func TestFrame(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0}, {0, 0, 0}})
	want := []Segment{{0, 0, 3, 0}, {0, 0, 0, 2}, {0, 2, 3, 2}, {3, 0, 3, 2}}
	if got := Frame(g); !slices.Equal(got, want) {
		t.Errorf("Frame() = %v, want %v", got, want)
	}
}

func TestFills(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 3}, {-1, 6}})
	want := []Cell{
		{Row: 1, Col: 1, Tile: 3, Orientation: 3},
		{Row: 1, Col: 2, Tile: 3, Orientation: 3},
		{Row: 2, Col: 2, Tile: 6, Orientation: 2},
	}
	if got := Fills(g); !slices.Equal(got, want) {
		t.Errorf("Fills() = %v, want %v", got, want)
	}
}

func TestChains(t *testing.T) {
	want := []Arrow{
		{X: 1, Y: 1, DX: 2, DY: 0},
		{X: 3, Y: 1, DX: 0, DY: 2},
		{X: 1, Y: 3, DX: 0, DY: -2},
		{X: 3, Y: 3, DX: -2, DY: 0},
	}
	got := Chains(mustGrid(t, square))
	if !slices.Equal(got, want) {
		t.Errorf("Chains() = %v, want %v", got, want)
	}

	x, y := got[0].Tip()
	if x != 3 || y != 1 {
		t.Errorf("Tip() = (%d, %d), want (3, 1)", x, y)
	}
}

func TestChainsSkipsBlocksWithoutMajority(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0},
		{4, 4},
	})
	if got := Chains(g); len(got) != 0 {
		t.Errorf("Chains() = %v, want none", got)
	}

	empty := mustGrid(t, [][]int{{-1, -1}, {-1, -1}})
	if got := Chains(empty); len(got) != 0 {
		t.Errorf("Chains() on empty grid = %v, want none", got)
	}
}

func TestDirectionColor(t *testing.T) {
	if DirectionColor(0) != (RGB{0.5, 0.5, 1.0}) {
		t.Errorf("DirectionColor(0) = %v", DirectionColor(0))
	}
	if DirectionColor(5) != DirectionColor(1) {
		t.Error("DirectionColor should cycle every four orientations")
	}
	if got := DirectionColor(0).PS(); got != "0.500 0.500 1.000" {
		t.Errorf("PS() = %q", got)
	}
	if got := DirectionColor(3).Hex(); got != "#ff33ff" {
		t.Errorf("Hex() = %q, want #ff33ff", got)
	}
}
