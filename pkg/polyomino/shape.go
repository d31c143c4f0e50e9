package polyomino

import (
	"slices"
	"strings"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

// Shape is a single orientation of a polyomino.
type Shape struct {
	Length int    // rows
	Width  int    // columns
	Cells  []bool // column-major, Cells[x*Length+y] is column x, row y
	Offset int    // column of the first covered cell in row 0, -1 if row 0 is empty
}

// Covered reports whether the cell at (row, col) belongs to the shape.
func (s Shape) Covered(row, col int) bool {
	return s.Cells[col*s.Length+row]
}

// CellCount returns the number of covered cells.
func (s Shape) CellCount() int {
	n := 0
	for _, c := range s.Cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether s and o have the same footprint.
func (s Shape) Equal(o Shape) bool {
	return s.Length == o.Length && s.Width == o.Width && slices.Equal(s.Cells, o.Cells)
}

// Rows renders the shape as one string per row, 'X' covered and '.' empty.
func (s Shape) Rows() []string {
	rows := make([]string, s.Length)
	var b strings.Builder
	for y := 0; y < s.Length; y++ {
		b.Reset()
		for x := 0; x < s.Width; x++ {
			if s.Covered(y, x) {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return strings.Join(s.Rows(), "\n")
}

func (s Shape) clone() Shape {
	s.Cells = slices.Clone(s.Cells)
	return s
}

// anchorOffset scans row 0 for its first covered cell.
func anchorOffset(length, width int, cells []bool) int {
	for x := 0; x < width; x++ {
		if cells[x*length] {
			return x
		}
	}
	return -1
}

// Rotate returns s turned 90° counter-clockwise. The rotated shape has the
// dimensions swapped and a recomputed Offset.
func Rotate(s Shape) Shape {
	l, w := s.Width, s.Length
	cells := make([]bool, l*w)
	for x := 0; x < w; x++ {
		for y := 0; y < l; y++ {
			cells[l*x+y] = s.Cells[w*(l-y-1)+x]
		}
	}
	return Shape{Length: l, Width: w, Cells: cells, Offset: anchorOffset(l, w, cells)}
}

// Reflect returns s mirrored across its vertical axis.
func Reflect(s Shape) Shape {
	l, w := s.Length, s.Width
	cells := make([]bool, l*w)
	for x := 0; x < w; x++ {
		for y := 0; y < l; y++ {
			cells[l*x+y] = s.Cells[l*(w-x-1)+y]
		}
	}
	return Shape{Length: l, Width: w, Cells: cells, Offset: anchorOffset(l, w, cells)}
}

// Parse builds a shape from a picture, one string per row. All rows must
// have the same width.
func Parse(rows []string) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, errs.New(errs.ErrCodeInvalidShape, "shape has no rows")
	}
	grid := make([][]rune, len(rows))
	for i, r := range rows {
		grid[i] = []rune(r)
	}
	l, w := len(grid), len(grid[0])
	if w == 0 {
		return Shape{}, errs.New(errs.ErrCodeInvalidShape, "shape has no columns")
	}

	cells := make([]bool, l*w)
	for y, row := range grid {
		if len(row) != w {
			return Shape{}, errs.New(errs.ErrCodeInvalidShape, "row %d has %d columns, want %d", y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case 'X', 'x', '#', '*':
				cells[x*l+y] = true
			case '.', '_', ' ':
			default:
				return Shape{}, errs.New(errs.ErrCodeInvalidShape, "unexpected character %q in row %d", ch, y)
			}
		}
	}
	return Shape{Length: l, Width: w, Cells: cells, Offset: anchorOffset(l, w, cells)}, nil
}
