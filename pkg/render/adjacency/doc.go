// Package adjacency renders the tile adjacency graph of a tiling.
//
// # Overview
//
// Every placed tile becomes a node, labeled with its placement number and
// orientation and filled with its orientation colour. Two tiles are joined
// by an edge when they share at least one cell side. The graph is emitted as
// Graphviz DOT and rendered in-process to SVG:
//
//	dot := adjacency.ToDOT(grid, adjacency.Options{})
//	svg, err := adjacency.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package adjacency
