package polyomino

import (
	errs "github.com/matzehuels/polytile/pkg/errors"
)

// Family is the ordered set of orientations of one polyomino. Index 0 is
// the base shape, followed by its successive counter-clockwise rotations
// and, when reflection is enabled, the same cycle for the mirror image.
// A Family is never mutated after BuildFamily returns.
type Family struct {
	spec   Spec
	shapes []Shape
}

// BuildFamily derives all orientations of spec. It fails with
// ErrCodeInvalidShape when the spec is malformed or when any orientation
// has no covered cell in its top row, since such a shape has no anchor.
func BuildFamily(spec Spec) (*Family, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	shapes := make([]Shape, 0, spec.Size())
	cur := spec.Base()
	passes := spec.Size() / spec.Rotations
	for p := 0; p < passes; p++ {
		for r := 0; r < spec.Rotations; r++ {
			if cur.Offset < 0 {
				return nil, errs.New(errs.ErrCodeInvalidShape,
					"orientation %d of %s has an empty top row", len(shapes), spec.label())
			}
			shapes = append(shapes, cur)
			cur = Rotate(cur)
		}
		cur = Reflect(cur)
	}

	spec.Cells = spec.Base().Cells
	return &Family{spec: spec, shapes: shapes}, nil
}

// Len returns the number of orientations.
func (f *Family) Len() int { return len(f.shapes) }

// At returns a copy of orientation i.
func (f *Family) At(i int) Shape { return f.shapes[i].clone() }

// Spec returns the spec the family was built from.
func (f *Family) Spec() Spec {
	s := f.spec
	s.Cells = f.shapes[0].clone().Cells
	return s
}

// Name returns the configured shape name.
func (f *Family) Name() string { return f.spec.label() }

// CellCount returns the number of cells one tile covers.
func (f *Family) CellCount() int { return f.shapes[0].CellCount() }

// Distinct reports whether all orientations have pairwise different
// footprints. Symmetric shapes legitimately repeat footprints.
func (f *Family) Distinct() bool {
	for i := range f.shapes {
		for j := i + 1; j < len(f.shapes); j++ {
			if f.shapes[i].Equal(f.shapes[j]) {
				return false
			}
		}
	}
	return true
}
