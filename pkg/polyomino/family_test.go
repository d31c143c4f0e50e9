package polyomino

import (
	"slices"
	"testing"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

func TestTTetrominoSpec(t *testing.T) {
	spec, ok := Preset("t")
	if !ok {
		t.Fatal("Preset(t) not found")
	}
	if spec.Length != 3 || spec.Width != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", spec.Length, spec.Width)
	}
	want := []bool{true, true, true, false, true, false}
	if !slices.Equal(spec.Cells, want) {
		t.Errorf("Cells = %v, want %v", spec.Cells, want)
	}
}

func TestBuildFamilyCount(t *testing.T) {
	tests := []struct {
		preset string
		want   int
	}{
		{"T", 4},
		{"L", 8},
		{"I", 2},
		{"S", 4},
		{"O", 1},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			spec, _ := Preset(tt.preset)
			f, err := BuildFamily(spec)
			if err != nil {
				t.Fatalf("BuildFamily() error: %v", err)
			}
			if f.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", f.Len(), tt.want)
			}
			if f.Len() != spec.Size() {
				t.Errorf("Len() = %d, Spec.Size() = %d", f.Len(), spec.Size())
			}
		})
	}
}

func TestBuildFamilyDistinct(t *testing.T) {
	for _, name := range []string{"T", "L", "I", "S"} {
		t.Run(name, func(t *testing.T) {
			spec, _ := Preset(name)
			f, err := BuildFamily(spec)
			if err != nil {
				t.Fatalf("BuildFamily() error: %v", err)
			}
			if !f.Distinct() {
				t.Errorf("%s orientations are not pairwise distinct", name)
			}
		})
	}
}

func TestBuildFamilySymmetricShapeRepeats(t *testing.T) {
	// T is mirror-symmetric, so its reflected cycle repeats footprints.
	spec, _ := Preset("T")
	spec.Reflect = true
	f, err := BuildFamily(spec)
	if err != nil {
		t.Fatalf("BuildFamily() error: %v", err)
	}
	if f.Len() != 8 {
		t.Errorf("Len() = %d, want 8", f.Len())
	}
	if f.Distinct() {
		t.Error("reflected T family should contain repeated footprints")
	}
}

func TestBuildFamilyTOrientations(t *testing.T) {
	spec, _ := Preset("T")
	f, err := BuildFamily(spec)
	if err != nil {
		t.Fatalf("BuildFamily() error: %v", err)
	}

	want := []struct {
		rows   []string
		offset int
	}{
		{[]string{"X.", "XX", "X."}, 0},
		{[]string{".X.", "XXX"}, 1},
		{[]string{".X", "XX", ".X"}, 1},
		{[]string{"XXX", ".X."}, 0},
	}
	for i, w := range want {
		s := f.At(i)
		if !slices.Equal(s.Rows(), w.rows) {
			t.Errorf("At(%d) rows = %q, want %q", i, s.Rows(), w.rows)
		}
		if s.Offset != w.offset {
			t.Errorf("At(%d) offset = %d, want %d", i, s.Offset, w.offset)
		}
	}
}

func TestBuildFamilyIndexZeroIsBase(t *testing.T) {
	for _, name := range Presets() {
		spec, _ := Preset(name)
		f, err := BuildFamily(spec)
		if err != nil {
			t.Fatalf("BuildFamily(%s) error: %v", name, err)
		}
		if !f.At(0).Equal(spec.Base()) {
			t.Errorf("%s: At(0) is not the base shape", name)
		}
	}
}

func TestBuildFamilyReflectedCycle(t *testing.T) {
	spec, _ := Preset("L")
	f, err := BuildFamily(spec)
	if err != nil {
		t.Fatalf("BuildFamily() error: %v", err)
	}
	if !f.At(4).Equal(Reflect(f.At(0))) {
		t.Errorf("At(4) = \n%v\nwant mirror of base", f.At(4))
	}
	for i := 5; i < 8; i++ {
		if !f.At(i).Equal(Rotate(f.At(i - 1))) {
			t.Errorf("At(%d) is not the rotation of At(%d)", i, i-1)
		}
	}
}

func TestBuildFamilyEmptyTopRow(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"base", []string{"..", "XX"}},
		// The right column is empty, so the first rotation has an empty top row.
		{"rotation", []string{"X.", "X."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewSpec("", tt.rows, 4, false)
			if err != nil {
				t.Fatalf("NewSpec() error: %v", err)
			}
			_, err = BuildFamily(spec)
			if !errs.Is(err, errs.ErrCodeInvalidShape) {
				t.Errorf("BuildFamily() error = %v, want %s", err, errs.ErrCodeInvalidShape)
			}
		})
	}
}

func TestSpecValidate(t *testing.T) {
	good, _ := Preset("T")

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"zero rotations", func(s *Spec) { s.Rotations = 0 }},
		{"cell count mismatch", func(s *Spec) { s.Cells = s.Cells[:5] }},
		{"zero length", func(s *Spec) { s.Length = 0 }},
		{"no covered cells", func(s *Spec) { s.Cells = make([]bool, 6) }},
		{"bad name", func(s *Spec) { s.Name = "t/t" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			s.Cells = slices.Clone(good.Cells)
			tt.mutate(&s)
			if err := s.Validate(); !errs.Is(err, errs.ErrCodeInvalidShape) {
				t.Errorf("Validate() error = %v, want %s", err, errs.ErrCodeInvalidShape)
			}
			if _, err := BuildFamily(s); err == nil {
				t.Error("BuildFamily() should reject an invalid spec")
			}
		})
	}
}

func TestFamilyIsImmutable(t *testing.T) {
	spec, _ := Preset("T")
	f, err := BuildFamily(spec)
	if err != nil {
		t.Fatalf("BuildFamily() error: %v", err)
	}

	s := f.At(1)
	for i := range s.Cells {
		s.Cells[i] = false
	}
	spec.Cells[0] = false

	if f.At(1).CellCount() != 4 {
		t.Error("mutating a returned shape changed the family")
	}
	if !f.Spec().Cells[0] {
		t.Error("mutating the input spec changed the family")
	}
}

func TestFamilyCellCount(t *testing.T) {
	spec, err := NewSpec("plus", []string{".X.", "XXX", ".X."}, 1, false)
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	f, err := BuildFamily(spec)
	if err != nil {
		t.Fatalf("BuildFamily() error: %v", err)
	}
	if f.CellCount() != 5 {
		t.Errorf("CellCount() = %d, want 5", f.CellCount())
	}
	if f.Name() != "plus" {
		t.Errorf("Name() = %q, want plus", f.Name())
	}
}

func TestPresets(t *testing.T) {
	want := []string{"I", "L", "O", "S", "T"}
	if got := Presets(); !slices.Equal(got, want) {
		t.Errorf("Presets() = %v, want %v", got, want)
	}
	if _, ok := Preset("Q"); ok {
		t.Error("Preset(Q) should not exist")
	}
}
