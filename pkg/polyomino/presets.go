package polyomino

import (
	"maps"
	"slices"
	"strings"
)

// DefaultPreset is the shape used when none is configured.
const DefaultPreset = "T"

type preset struct {
	rows      []string
	rotations int
	reflect   bool
}

// presets are given in the orientation the family starts from. T matches
// the encoding convention of Korn–Pak tiling strings: orientation 0 points
// right.
var presets = map[string]preset{
	"T": {rows: []string{"X.", "XX", "X."}, rotations: 4},
	"L": {rows: []string{"X.", "X.", "XX"}, rotations: 4, reflect: true},
	"I": {rows: []string{"X", "X", "X", "X"}, rotations: 2},
	"S": {rows: []string{".XX", "XX."}, rotations: 2, reflect: true},
	"O": {rows: []string{"XX", "XX"}, rotations: 1},
}

// Preset returns the spec of a built-in tetromino. Names are case-insensitive.
func Preset(name string) (Spec, bool) {
	key := strings.ToUpper(name)
	p, ok := presets[key]
	if !ok {
		return Spec{}, false
	}
	spec, err := NewSpec(key, p.rows, p.rotations, p.reflect)
	if err != nil {
		panic("polyomino: invalid preset " + key + ": " + err.Error())
	}
	return spec, true
}

// Presets lists the built-in shape names in sorted order.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}
