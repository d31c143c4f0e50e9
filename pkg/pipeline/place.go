package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/observability"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// BuildFamily builds the orientation family configured in opts.
func BuildFamily(opts Options) (*polyomino.Family, error) {
	opts.SetPlaceDefaults()
	f, err := polyomino.BuildFamily(opts.Shape)
	if err != nil {
		return nil, err
	}
	if err := opts.Encoding.Validate(f.Len()); err != nil {
		return nil, err
	}
	return f, nil
}

// Place runs the placement engine over the problem's tiling string. On an
// illegal string the returned grid holds the tiles placed before the
// failing symbol.
func Place(ctx context.Context, f *polyomino.Family, p *input.Problem, opts Options) (*tiling.Grid, error) {
	var engineOpts []tiling.Option
	if opts.IgnoreOverflow {
		engineOpts = append(engineOpts, tiling.WithIgnoreOverflow())
	}

	hooks := observability.Pipeline()
	hooks.OnPlaceStart(ctx, f.Name(), p.Height, p.Width, len(p.Symbols))
	start := time.Now()

	e, err := tiling.NewEngine(f, opts.Encoding, p.Height, p.Width, engineOpts...)
	if err != nil {
		hooks.OnPlaceComplete(ctx, f.Name(), 0, time.Since(start), err)
		return nil, err
	}
	g, err := e.PlaceAll(p.Symbols)
	tiles := 0
	if g != nil {
		tiles = g.Count()
	}
	hooks.OnPlaceComplete(ctx, f.Name(), tiles, time.Since(start), err)
	return g, err
}
