package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

// maxLine bounds a single input line. Tiling strings for large boards are
// often printed on one line.
const maxLine = 4 << 20

var stripper = strings.NewReplacer(".", "", " ", "")

// Problem is a parsed tiling problem.
type Problem struct {
	Height  int
	Width   int
	Tag     int    // free-form third header value, 0 when absent
	Symbols string // exactly Height*Width/cellsPerTile symbols
}

// Name returns the base name used for output files, "HxW-Tag".
func (p *Problem) Name() string {
	return fmt.Sprintf("%dx%d-%d", p.Height, p.Width, p.Tag)
}

// Parse reads a problem from r for a shape covering cellsPerTile cells.
func Parse(r io.Reader, cellsPerTile int) (*Problem, error) {
	if cellsPerTile < 1 {
		return nil, errs.New(errs.ErrCodeInvalidShape, "cells per tile must be positive, got %d", cellsPerTile)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	p, err := readHeader(sc)
	if err != nil {
		return nil, err
	}
	if err := errs.ValidateDimensions(p.Height, p.Width, cellsPerTile); err != nil {
		return nil, err
	}

	target := p.Height * p.Width / cellsPerTile
	var b strings.Builder
	b.Grow(target)
	for b.Len() < target && sc.Scan() {
		line := strings.TrimRight(stripper.Replace(sc.Text()), "\r\t")
		if rest := target - b.Len(); len(line) > rest {
			line = line[:rest]
		}
		b.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read tiling string")
	}
	if b.Len() < target {
		return nil, errs.New(errs.ErrCodeInvalidInput,
			"tiling string has %d symbols, want %d for a %dx%d board", b.Len(), target, p.Height, p.Width)
	}

	p.Symbols = b.String()
	if err := errs.ValidateTilingString(p.Symbols); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseFile reads a problem from the file at path.
func ParseFile(path string, cellsPerTile int) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f, cellsPerTile)
}

func readHeader(sc *bufio.Scanner) (*Problem, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		return parseHeader(fields)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read header")
	}
	return nil, errs.New(errs.ErrCodeInvalidInput, "no header line with board dimensions")
}

func parseHeader(fields []string) (*Problem, error) {
	if len(fields) < 2 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "header %q needs height and width", strings.Join(fields, " "))
	}
	vals := make([]int, 0, 3)
	for _, f := range fields[:min(len(fields), 3)] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "header value %q is not an integer", f)
		}
		vals = append(vals, v)
	}
	p := &Problem{Height: vals[0], Width: vals[1]}
	if len(vals) == 3 {
		p.Tag = vals[2]
	}
	return p, nil
}
