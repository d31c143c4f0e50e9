package pipeline

import (
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/input"
)

// LoadProblem returns the problem described by opts. Inline symbols take
// precedence over an input file. cellsPerTile is the family's cell count;
// the board area must be a multiple of it.
func LoadProblem(opts Options, cellsPerTile int) (*input.Problem, error) {
	if opts.Symbols == "" {
		return input.ParseFile(opts.Input, cellsPerTile)
	}
	if err := errs.ValidateDimensions(opts.Height, opts.Width, cellsPerTile); err != nil {
		return nil, err
	}
	if err := errs.ValidateTilingString(opts.Symbols); err != nil {
		return nil, err
	}
	return &input.Problem{
		Height:  opts.Height,
		Width:   opts.Width,
		Tag:     opts.Tag,
		Symbols: opts.Symbols,
	}, nil
}
