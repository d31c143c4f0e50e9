// Package polyomino derives the orientation family of a single polyomino.
//
// # Overview
//
// A polyomino is a shape made of unit cells joined edge to edge. polytile
// tiles a board with copies of one configured polyomino, each copy placed
// in one of the shape's orientations. This package turns the configured
// base shape ([Spec]) into the ordered, immutable set of those orientations
// ([Family]).
//
// # Layout
//
// A [Shape] stores its occupancy column-major: the cell in column x and row
// y lives at Cells[x*Length+y]. Length counts rows, Width counts columns.
// Every shape also records its anchor [Shape.Offset], the column of the
// first covered cell in row 0; the placement engine aligns that cell with
// the anchor cell of the board.
//
// # Building a Family
//
// [BuildFamily] records the base shape, then repeatedly applies [Rotate]
// (90° counter-clockwise) until Rotations orientations are collected. When
// Reflect is set, the shape is mirrored with [Reflect] and the rotation
// cycle repeats, so the family holds Rotations*2 orientations:
//
//	spec, _ := polyomino.Preset("T")
//	f, err := polyomino.BuildFamily(spec)
//	if err != nil {
//	    return err // configuration error: some orientation has an empty top row
//	}
//	for i := 0; i < f.Len(); i++ {
//	    fmt.Println(f.At(i))
//	}
//
// Shapes are given as pictures through [Parse], where X, # or * marks a
// covered cell and '.', '_' or a space marks an empty one.
package polyomino
