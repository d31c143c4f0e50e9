package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/pipeline"
)

// renderOpts holds the render-specific command-line flags.
type renderOpts struct {
	output         string // output directory
	formats        string // comma-separated formats, overrides the config
	colorDirection bool
	chains         bool
	cellSize       int
	scale          float64
	detailed       bool // detailed adjacency graph labels
	noCache        bool
	refresh        bool
}

// renderCommand creates the render command for writing output files.
func (c *CLI) renderCommand() *cobra.Command {
	var pf problemFlags
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a placed board to files",
		Long: `Render places a tiling string and writes one file per format, named after
the problem: HxW-tag.<format>.

Formats: ` + strings.Join(pipeline.FormatNames, ", ") + `.
PNG and PDF need rsvg-convert on PATH.`,
		Example: `  polytile render problem.txt -f eps,svg --chains
  polytile render --symbols 43124312 -H 8 -W 4 -f json -o out/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.buildOptions(cmd, &pf, args)
			if err != nil {
				return err
			}
			ro.apply(cmd, &opts)
			return c.runRender(cmd, opts, ro)
		},
	}

	pf.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&ro.output, "output", "o", ".", "output directory")
	fl.StringVarP(&ro.formats, "format", "f", "", "output format(s), comma-separated (default from config, else txt)")
	fl.BoolVar(&ro.colorDirection, "color-direction", false, "fill tiles by orientation")
	fl.BoolVar(&ro.chains, "chains", false, "draw chain arrows")
	fl.IntVar(&ro.cellSize, "cell-size", 0, "SVG cell size in pixels")
	fl.Float64Var(&ro.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	fl.BoolVar(&ro.detailed, "detailed", false, "detailed adjacency graph labels")
	fl.BoolVar(&ro.noCache, "no-cache", false, "disable the artifact cache")
	fl.BoolVar(&ro.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// apply overrides config-derived options with the flags the user set.
func (ro renderOpts) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		opts.Formats = parseFormats(ro.formats)
	}
	if fl.Changed("color-direction") {
		opts.ColorDirection = ro.colorDirection
	}
	if fl.Changed("chains") {
		opts.Chains = ro.chains
	}
	if fl.Changed("cell-size") {
		opts.CellSize = ro.cellSize
	}
	opts.Scale = ro.scale
	opts.Detailed = ro.detailed
	opts.Refresh = ro.refresh
}

func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, ro renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Placing and rendering...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.Stop()
		if errs.IsTilingFailure(err) {
			printError("%s", errs.UserMessage(err))
			printDetail("%v", err)
		}
		return err
	}
	spinner.Update("Writing files...")

	if err := os.MkdirAll(ro.output, 0o755); err != nil {
		spinner.Stop()
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create output directory %s", ro.output)
	}

	formats := make([]string, 0, len(result.Artifacts))
	for format := range result.Artifacts {
		formats = append(formats, format)
	}
	slices.Sort(formats)

	var written []string
	for _, format := range formats {
		path := filepath.Join(ro.output, pipeline.FileName(result.Problem.Name(), format))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			spinner.Stop()
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", StyleHighlight.Render(result.Problem.Name())))

	for _, path := range written {
		printFile(path)
	}
	fmt.Println(statsLine(result.Stats.Tiles, result.Stats.Open, result.Stats.Ignored, result.CacheInfo.RenderHit))
	prog.done(fmt.Sprintf("Rendered %d files", len(written)))
	return nil
}
