package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/render/adjacency"
	"github.com/matzehuels/polytile/pkg/render/sink"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// RenderFormat generates a single artifact. The problem may be nil, in
// which case JSON output carries no symbols or tag.
func RenderFormat(ctx context.Context, g *tiling.Grid, f *polyomino.Family, p *input.Problem, format string, opts Options) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatTXT:
		data = sink.RenderText(g)
	case FormatEPS:
		data = sink.RenderEPS(g, buildEPSOptions(opts)...)
	case FormatSVG:
		data = sink.RenderSVG(g, buildSVGOptions(opts)...)
	case FormatPNG:
		data, err = sink.RenderPNG(ctx, g, sink.WithPNGSVGOptions(buildSVGOptions(opts)...), sink.WithScale(opts.Scale))
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, g, sink.WithPDFSVGOptions(buildSVGOptions(opts)...))
	case FormatJSON:
		data, err = sink.RenderJSON(g, buildJSONOptions(f, p)...)
	case FormatDOT:
		data = []byte(adjacency.ToDOT(g, adjacency.Options{Detailed: opts.Detailed}))
	case FormatGraph:
		data, err = adjacency.RenderSVG(ctx, adjacency.ToDOT(g, adjacency.Options{Detailed: opts.Detailed}))
	default:
		return nil, ValidateFormat(format)
	}

	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func buildEPSOptions(opts Options) []sink.EPSOption {
	var epsOpts []sink.EPSOption
	if opts.ColorDirection {
		epsOpts = append(epsOpts, sink.WithEPSColorDirection())
	}
	if opts.Chains {
		epsOpts = append(epsOpts, sink.WithEPSChains())
	}
	return epsOpts
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithCellSize(opts.CellSize)}
	if opts.ColorDirection {
		svgOpts = append(svgOpts, sink.WithColorDirection())
	}
	if opts.Chains {
		svgOpts = append(svgOpts, sink.WithChains())
	}
	return svgOpts
}

func buildJSONOptions(f *polyomino.Family, p *input.Problem) []sink.JSONOption {
	var jsonOpts []sink.JSONOption
	if f != nil {
		jsonOpts = append(jsonOpts, sink.WithJSONShape(f.Name()))
	}
	if p != nil {
		jsonOpts = append(jsonOpts, sink.WithJSONSymbols(p.Symbols), sink.WithJSONTag(p.Tag))
	}
	return jsonOpts
}
