package adjacency

import (
	"cmp"
	"slices"

	"github.com/matzehuels/polytile/pkg/tiling"
)

// Node is one placed tile.
type Node struct {
	Tile        tiling.TileID
	Sequence    int
	Orientation int
	Cells       int
}

// Edge joins two tiles that share a side. From is the earlier placement.
type Edge struct {
	From, To tiling.TileID
}

// Graph is the adjacency graph of a grid.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Build computes the adjacency graph of g. Nodes are in placement order and
// edges are sorted by their endpoints' placement order.
func Build(g *tiling.Grid) *Graph {
	nodes := make(map[tiling.TileID]*Node)
	edges := make(map[Edge]struct{})

	link := func(a, b tiling.TileID) {
		if a == b || a == tiling.NoTile || b == tiling.NoTile {
			return
		}
		if g.Sequence(b) < g.Sequence(a) {
			a, b = b, a
		}
		edges[Edge{From: a, To: b}] = struct{}{}
	}

	for i := 1; i <= g.Height(); i++ {
		for j := 1; j <= g.Width(); j++ {
			id := g.At(i, j)
			if id == tiling.NoTile {
				continue
			}
			n, ok := nodes[id]
			if !ok {
				n = &Node{Tile: id, Sequence: g.Sequence(id), Orientation: g.Orientation(id)}
				nodes[id] = n
			}
			n.Cells++
			link(id, g.At(i, j+1))
			link(id, g.At(i+1, j))
		}
	}

	out := &Graph{
		Nodes: make([]Node, 0, len(nodes)),
		Edges: make([]Edge, 0, len(edges)),
	}
	for _, n := range nodes {
		out.Nodes = append(out.Nodes, *n)
	}
	slices.SortFunc(out.Nodes, func(a, b Node) int { return cmp.Compare(a.Sequence, b.Sequence) })
	for e := range edges {
		out.Edges = append(out.Edges, e)
	}
	slices.SortFunc(out.Edges, func(a, b Edge) int {
		return cmp.Or(
			cmp.Compare(g.Sequence(a.From), g.Sequence(b.From)),
			cmp.Compare(g.Sequence(a.To), g.Sequence(b.To)),
		)
	})
	return out
}

// Degree returns the number of neighbours of tile.
func (gr *Graph) Degree(tile tiling.TileID) int {
	n := 0
	for _, e := range gr.Edges {
		if e.From == tile || e.To == tile {
			n++
		}
	}
	return n
}
