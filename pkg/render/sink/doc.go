// Package sink provides output format renderers for placed tilings.
//
// # Overview
//
// A "sink" transforms a [tiling.Grid] into a final output format. This
// package provides renderers for:
//
//   - TXT: the ASCII picture from [art.Render]
//   - EPS: the classic PostScript drawing with optional direction colours
//     and Korn–Pak chain arrows
//   - SVG: the same picture as scalable vector graphics
//   - JSON: tile ids and placement records for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # EPS and SVG Output
//
// Both vector sinks draw the primitives of [geometry]: tile boundaries in
// dark grey, the board frame in black, optional orientation fills and
// optional chain arrows.
//
//	eps := sink.RenderEPS(grid, sink.WithEPSColorDirection(), sink.WithEPSChains())
//	svg := sink.RenderSVG(grid, sink.WithCellSize(24), sink.WithChains())
//
// The EPS bounding box is 10 points per cell plus a 2 point margin on each
// side, so a 4×6 board yields "%%BoundingBox: 0 0 64 44".
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the grid as PDF/PNG by first generating
// SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(ctx, grid, opts...)
//	png, err := sink.RenderPNG(ctx, grid, sink.WithScale(2), opts...)
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [tiling.Grid]: github.com/matzehuels/polytile/pkg/tiling.Grid
// [art.Render]: github.com/matzehuels/polytile/pkg/render/art.Render
// [geometry]: github.com/matzehuels/polytile/pkg/render/geometry
// [render.ToPDF]: github.com/matzehuels/polytile/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/polytile/pkg/render.ToPNG
package sink
