// Package input reads tiling problems from free-form text.
//
// A problem file may start with any amount of commentary. The first line
// that begins with an integer is the header, holding the board height, the
// board width and an optional tag:
//
//	Korn–Pak tiling, found by the solver
//	4 4 2
//	43.12
//
// The lines after the header are the tiling string. Dots and spaces are
// stripped, so solvers may print the string in grouped or padded form, and
// lines are concatenated until one symbol per tile has been collected.
package input
