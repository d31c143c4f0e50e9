package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/pipeline"
	"github.com/matzehuels/polytile/pkg/render/art"
)

// placeCommand creates the place command, which prints the placed board.
func (c *CLI) placeCommand() *cobra.Command {
	var pf problemFlags
	var color bool

	cmd := &cobra.Command{
		Use:   "place [file|-]",
		Short: "Place a tiling string and print the board",
		Long: `Place reads a problem (a header line "H W [tag]" followed by the tiling
string) and prints the resulting board as ASCII art.

If the string is illegal for the board, the tiles placed before the failing
symbol are printed and the command fails.`,
		Example: `  polytile place problem.txt
  polytile place --symbols 4312 -H 4 -W 4
  solver | polytile place -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.buildOptions(cmd, &pf, args)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatTXT}
			return c.runPlace(cmd, opts, color)
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&color, "color", false, "print a coloured preview instead of ASCII art")
	return cmd
}

func (c *CLI) runPlace(cmd *cobra.Command, opts pipeline.Options, color bool) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), opts)
	if result != nil && result.Grid != nil {
		if color {
			fmt.Println(renderPreview(result.Grid))
		} else {
			fmt.Println(art.Render(result.Grid))
		}
	}
	if err != nil {
		if errs.IsTilingFailure(err) {
			printError("%s", errs.UserMessage(err))
			printDetail("%v", err)
		}
		return err
	}

	printSuccess("Tiled %s %s with %s",
		StyleHighlight.Render(result.Problem.Name()),
		StyleDim.Render("("+boardSize(result.Problem.Height, result.Problem.Width)+")"),
		StyleValue.Render(result.Family.Name()))
	fmt.Println(statsLine(result.Stats.Tiles, result.Stats.Open, result.Stats.Ignored, result.CacheInfo.RenderHit))
	fmt.Println()
	printNextStep("Write EPS and SVG", "polytile render "+problemArg(opts)+" -f eps,svg")
	return nil
}

// problemArg reproduces the problem source of opts as command arguments.
func problemArg(opts pipeline.Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return fmt.Sprintf("--symbols %s -H %d -W %d", opts.Symbols, opts.Height, opts.Width)
}
