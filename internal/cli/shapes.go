package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/pipeline"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// shapesCommand creates the shapes command for inspecting orientation families.
func (c *CLI) shapesCommand() *cobra.Command {
	var modulus, shift int

	cmd := &cobra.Command{
		Use:   "shapes [preset]",
		Short: "List shape presets or print a shape's orientations",
		Long: `Without arguments, shapes lists the built-in presets. With a preset name, or
with --config naming a custom shape, it prints every orientation in family
order together with the digits that select it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && c.configPath == "" {
				fmt.Println(presetTable())
				return nil
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := pipeline.FromConfig(cfg)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				spec, ok := polyomino.Preset(args[0])
				if !ok {
					return errs.New(errs.ErrCodeInvalidShape, "unknown shape %q (available: %s)",
						args[0], strings.Join(polyomino.Presets(), ", "))
				}
				opts.Shape = spec
			}
			if cmd.Flags().Changed("modulus") {
				opts.Encoding.Modulus = modulus
			}
			if cmd.Flags().Changed("shift") {
				opts.Encoding.Shift = shift
			}

			f, err := polyomino.BuildFamily(opts.Shape)
			if err != nil {
				return err
			}
			enc := opts.Encoding
			if err := enc.Validate(f.Len()); err != nil {
				printWarning("%s; digits not shown", errs.UserMessage(err))
				enc = tiling.Encoding{}
			}
			fmt.Println(familyView(f, enc))
			return nil
		},
	}

	cmd.Flags().IntVar(&modulus, "modulus", 0, "number of orientations a digit can address")
	cmd.Flags().IntVar(&shift, "shift", 0, "offset added to each digit before the modulus")
	return cmd
}

// presetTable lists the built-in shapes.
func presetTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, name := range polyomino.Presets() {
		spec, _ := polyomino.Preset(name)
		f, err := polyomino.BuildFamily(spec)
		if err != nil {
			continue
		}
		distinct := "yes"
		if !f.Distinct() {
			distinct = "no"
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(f.CellCount()),
			strconv.Itoa(f.Len()),
			distinct,
			strings.Join(spec.Base().Rows(), " "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Shape", "Cells", "Orientations", "Distinct", "Base").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		})
	return t.Render()
}

// familyView draws every orientation of f side by side. Each picture is
// labelled with its index and, when enc is usable, the smallest digit that
// selects it.
func familyView(f *polyomino.Family, enc tiling.Encoding) string {
	blocks := make([]string, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		s := f.At(i)
		label := fmt.Sprintf("o%d", i)
		if enc.Modulus > 0 {
			if d, ok := enc.Symbol(i); ok {
				label += fmt.Sprintf(" '%c'", d)
			}
		}

		var b strings.Builder
		b.WriteString(StyleHighlight.Render(label))
		for _, row := range s.Rows() {
			b.WriteByte('\n')
			b.WriteString(shapeRow(row, i))
		}
		blocks = append(blocks, lipgloss.NewStyle().PaddingRight(3).Render(b.String()))
	}

	title := StyleTitle.Render(fmt.Sprintf("%s: %d orientations, %d cells", f.Name(), f.Len(), f.CellCount()))
	spec := f.Spec()
	symmetry := fmt.Sprintf("%d rotations", spec.Rotations)
	if spec.Reflect {
		symmetry += " per side, reflected"
	}
	return title + "\n" + StyleDim.Render(symmetry) + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// shapeRow replaces the X/. picture characters with coloured blocks.
func shapeRow(row string, orientation int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(directionHex(orientation)))
	var b strings.Builder
	for _, ch := range row {
		if ch == 'X' {
			b.WriteString(style.Render(previewCell))
		} else {
			b.WriteString(StyleDim.Render(previewEmpty))
		}
	}
	return b.String()
}
