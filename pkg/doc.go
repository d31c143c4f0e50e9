// Package pkg provides the core libraries for polytile.
//
// # Overview
//
// Polytile decodes tiling strings: each digit selects an orientation of a
// polyomino, and tiles are placed greedily at the first uncovered cell of a
// rectangular board in row-major order. The pkg directory is organized into
// these areas:
//
//  1. [polyomino] - Shapes and their orientation families
//  2. [tiling] - The placement engine and the read-only board view
//  3. [input] - Problem files (board size header plus tiling string)
//  4. [render] - ASCII art, EPS, SVG, PNG, PDF, JSON and adjacency graphs
//  5. [pipeline] - Orchestration (load → place → render) with caching
//
// # Architecture
//
// The typical data flow through polytile:
//
//	Problem file or tiling string
//	         ↓
//	    [polyomino] package (orientation family of the shape)
//	         ↓
//	    [tiling] package (greedy placement → Grid)
//	         ↓
//	    [render] package (pictures and graphs)
//	         ↓
//	    TXT/EPS/SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Place a tiling string and print the board:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/polytile/pkg/polyomino"
//	    "github.com/matzehuels/polytile/pkg/render/art"
//	    "github.com/matzehuels/polytile/pkg/tiling"
//	)
//
//	spec, _ := polyomino.Preset("T")
//	f, _ := polyomino.BuildFamily(spec)
//	g, err := tiling.Place(f, tiling.DefaultEncoding, 4, 4, "4312")
//	if err != nil {
//	    // g still holds the tiles placed before the failing symbol
//	}
//	fmt.Println(art.Render(g))
//
// # Supporting Packages
//
// [config] - TOML or YAML shape, encoding and render settings.
//
// [cache] - Artifact cache: zstd-compressed files for the CLI, a no-op
// cache when caching is disabled.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Hooks for placement, render and cache events.
//
// [buildinfo] - Version information set at link time.
//
// [polyomino]: github.com/matzehuels/polytile/pkg/polyomino
// [tiling]: github.com/matzehuels/polytile/pkg/tiling
// [input]: github.com/matzehuels/polytile/pkg/input
// [render]: github.com/matzehuels/polytile/pkg/render
// [pipeline]: github.com/matzehuels/polytile/pkg/pipeline
// [config]: github.com/matzehuels/polytile/pkg/config
// [cache]: github.com/matzehuels/polytile/pkg/cache
// [errors]: github.com/matzehuels/polytile/pkg/errors
// [observability]: github.com/matzehuels/polytile/pkg/observability
// [buildinfo]: github.com/matzehuels/polytile/pkg/buildinfo
package pkg
