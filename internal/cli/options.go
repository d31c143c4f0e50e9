package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polytile/pkg/config"
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/pipeline"
	"github.com/matzehuels/polytile/pkg/polyomino"
)

// problemFlags holds the flags shared by every command that places a
// tiling string. Flags override the configuration file.
type problemFlags struct {
	shape          string
	modulus        int
	shift          int
	ignoreOverflow bool
	height         int
	width          int
	tag            int
	symbols        string
}

func (f *problemFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.shape, "shape", "s", "", "shape preset: "+strings.Join(polyomino.Presets(), ", "))
	fl.IntVar(&f.modulus, "modulus", 0, "number of orientations a digit can address")
	fl.IntVar(&f.shift, "shift", 0, "offset added to each digit before the modulus")
	fl.BoolVar(&f.ignoreOverflow, "ignore-overflow", false, "drop symbols left over once the board is full")
	fl.IntVarP(&f.height, "height", "H", 0, "board height (with --symbols)")
	fl.IntVarP(&f.width, "width", "W", 0, "board width (with --symbols)")
	fl.IntVar(&f.tag, "tag", 0, "problem tag used in output file names (with --symbols)")
	fl.StringVar(&f.symbols, "symbols", "", "tiling string; replaces the input file")
}

// loadConfig reads the --config file, or returns the defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// buildOptions merges configuration, flags and the problem source into
// pipeline options. args holds at most one input path; "-" reads stdin.
func (c *CLI) buildOptions(cmd *cobra.Command, pf *problemFlags, args []string) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts, err := pipeline.FromConfig(cfg)
	if err != nil {
		return pipeline.Options{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("shape") {
		spec, ok := polyomino.Preset(pf.shape)
		if !ok {
			return opts, errs.New(errs.ErrCodeInvalidShape, "unknown shape %q (available: %s)",
				pf.shape, strings.Join(polyomino.Presets(), ", "))
		}
		opts.Shape = spec
	}
	if fl.Changed("modulus") {
		opts.Encoding.Modulus = pf.modulus
	}
	if fl.Changed("shift") {
		opts.Encoding.Shift = pf.shift
	}
	opts.IgnoreOverflow = pf.ignoreOverflow

	switch {
	case pf.symbols != "":
		if len(args) > 0 {
			return opts, errs.New(errs.ErrCodeInvalidInput, "--symbols and an input file are mutually exclusive")
		}
		opts.Height, opts.Width, opts.Tag = pf.height, pf.width, pf.tag
		opts.Symbols = pf.symbols
	case len(args) == 0:
		return opts, errs.New(errs.ErrCodeInvalidInput, "an input file (or - for stdin) or --symbols is required")
	case args[0] == "-":
		if err := readStdinProblem(&opts); err != nil {
			return opts, err
		}
	default:
		if err := errs.ValidatePath(args[0]); err != nil {
			return opts, err
		}
		opts.Input = args[0]
	}
	return opts, nil
}

// readStdinProblem parses a problem from standard input into opts. The
// shape must be known first since it sets the tiling string length.
func readStdinProblem(opts *pipeline.Options) error {
	f, err := pipeline.BuildFamily(*opts)
	if err != nil {
		return err
	}
	p, err := input.Parse(os.Stdin, f.CellCount())
	if err != nil {
		return err
	}
	opts.Height, opts.Width, opts.Tag = p.Height, p.Width, p.Tag
	opts.Symbols = p.Symbols
	return nil
}
