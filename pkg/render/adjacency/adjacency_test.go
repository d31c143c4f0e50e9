package adjacency

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/polytile/pkg/tiling"
)

func square(t *testing.T) *tiling.Grid {
	t.Helper()
	g, err := tiling.FromRows([][]int{
		{3, 3, 3, 6},
		{8, 3, 6, 6},
		{8, 8, 13, 6},
		{8, 13, 13, 13},
	}, 4)
	if err != nil {
		t.Fatalf("FromRows() error: %v", err)
	}
	return g
}

func TestBuild(t *testing.T) {
	gr := Build(square(t))

	wantNodes := []Node{
		{Tile: 3, Sequence: 0, Orientation: 3, Cells: 4},
		{Tile: 6, Sequence: 1, Orientation: 2, Cells: 4},
		{Tile: 8, Sequence: 2, Orientation: 0, Cells: 4},
		{Tile: 13, Sequence: 3, Orientation: 1, Cells: 4},
	}
	if !slices.Equal(gr.Nodes, wantNodes) {
		t.Errorf("Nodes = %v, want %v", gr.Nodes, wantNodes)
	}

	wantEdges := []Edge{
		{From: 3, To: 6},
		{From: 3, To: 8},
		{From: 6, To: 13},
		{From: 8, To: 13},
	}
	if !slices.Equal(gr.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", gr.Edges, wantEdges)
	}
	if d := gr.Degree(3); d != 2 {
		t.Errorf("Degree(3) = %d, want 2", d)
	}
}

func TestBuildIgnoresEmptyCells(t *testing.T) {
	g, err := tiling.FromRows([][]int{{0, -1}, {-1, -1}}, 4)
	if err != nil {
		t.Fatalf("FromRows() error: %v", err)
	}
	gr := Build(g)
	if len(gr.Nodes) != 1 || gr.Nodes[0].Cells != 1 || len(gr.Edges) != 0 {
		t.Errorf("Build() = %+v, want one isolated single-cell node", gr)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(square(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	for _, want := range []string{
		`"t3" [label="0\no3", fillcolor="#ff33ff"];`,
		`"t8" [label="2\no0", fillcolor="#8080ff"];`,
		`"t3" -- "t6";`,
		`"t8" -- "t13";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should produce an undirected graph")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(square(t), Options{Detailed: true})
	if !strings.Contains(dot, `id 13\n4 cells`) {
		t.Error("ToDOT() detailed output missing tile id and cell count")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without view box: %q", got)
	}
}
