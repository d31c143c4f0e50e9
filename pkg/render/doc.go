// Package render turns placed tilings into pictures.
//
// # Overview
//
// This package holds the format conversion shared by all pictures. The
// drawings themselves live in subpackages:
//
//   - [art]: ASCII art of the tile boundaries
//   - [geometry]: boundaries, orientation fills and Korn–Pak chain arrows
//     in board coordinates, shared by the vector sinks
//   - [sink]: output formats (TXT, EPS, SVG, PNG, PDF, JSON)
//   - [adjacency]: the tile adjacency graph as DOT or Graphviz SVG
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(grid, sink.WithCellSize(20))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [art]: github.com/matzehuels/polytile/pkg/render/art
// [geometry]: github.com/matzehuels/polytile/pkg/render/geometry
// [sink]: github.com/matzehuels/polytile/pkg/render/sink
// [adjacency]: github.com/matzehuels/polytile/pkg/render/adjacency
package render
