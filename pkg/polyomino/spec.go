package polyomino

import (
	"slices"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

// Spec is the configured base shape and how many orientations to derive from it.
type Spec struct {
	Name      string
	Length    int
	Width     int
	Cells     []bool // column-major, see Shape
	Rotations int    // rotation steps per cycle, at least 1
	Reflect   bool   // repeat the rotation cycle for the mirror image
}

// NewSpec builds a Spec from a picture of the base shape.
func NewSpec(name string, rows []string, rotations int, reflect bool) (Spec, error) {
	s, err := Parse(rows)
	if err != nil {
		return Spec{}, err
	}
	spec := Spec{
		Name:      name,
		Length:    s.Length,
		Width:     s.Width,
		Cells:     s.Cells,
		Rotations: rotations,
		Reflect:   reflect,
	}
	return spec, spec.Validate()
}

// Validate checks the structural constraints on the base shape. Whether all
// orientations have a usable anchor is only known once the family is built.
func (s Spec) Validate() error {
	if s.Name != "" {
		if err := errs.ValidateShapeName(s.Name); err != nil {
			return err
		}
	}
	if s.Length <= 0 || s.Width <= 0 {
		return errs.New(errs.ErrCodeInvalidShape, "shape dimensions must be positive, got %dx%d", s.Length, s.Width)
	}
	if len(s.Cells) != s.Length*s.Width {
		return errs.New(errs.ErrCodeInvalidShape, "shape has %d cells, want %d (%dx%d)",
			len(s.Cells), s.Length*s.Width, s.Length, s.Width)
	}
	if s.Rotations < 1 {
		return errs.New(errs.ErrCodeInvalidShape, "rotations must be at least 1, got %d", s.Rotations)
	}
	if !slices.Contains(s.Cells, true) {
		return errs.New(errs.ErrCodeInvalidShape, "shape covers no cells")
	}
	return nil
}

// Base returns the untransformed base shape.
func (s Spec) Base() Shape {
	cells := slices.Clone(s.Cells)
	return Shape{
		Length: s.Length,
		Width:  s.Width,
		Cells:  cells,
		Offset: anchorOffset(s.Length, s.Width, cells),
	}
}

// Size returns the number of orientations the family of s will hold.
func (s Spec) Size() int {
	if s.Reflect {
		return s.Rotations * 2
	}
	return s.Rotations
}

func (s Spec) label() string {
	if s.Name == "" {
		return "shape"
	}
	return s.Name
}
