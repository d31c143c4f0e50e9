package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/pipeline"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// viewCommand creates the interactive step-through viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var pf problemFlags

	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Step through a placement symbol by symbol",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.buildOptions(cmd, &pf, args)
			if err != nil {
				return err
			}
			if err := opts.ValidateForPlace(); err != nil {
				return err
			}
			f, err := pipeline.BuildFamily(opts)
			if err != nil {
				return err
			}
			p, err := pipeline.LoadProblem(opts, f.CellCount())
			if err != nil {
				return err
			}

			var engineOpts []tiling.Option
			if opts.IgnoreOverflow {
				engineOpts = append(engineOpts, tiling.WithIgnoreOverflow())
			}
			m, err := newViewModel(f, opts.Encoding, p, engineOpts...)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("starting viewer", "problem", p.Name(), "symbols", len(p.Symbols))
			prog := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			_, err = prog.Run()
			return err
		},
	}

	pf.register(cmd)
	return cmd
}

// viewModel is the bubbletea model of the step-through viewer. It runs the
// whole placement up front and keeps a snapshot per step, so stepping
// backwards is a lookup.
type viewModel struct {
	problem *input.Problem
	family  *polyomino.Family
	enc     tiling.Encoding
	grids   []*tiling.Grid      // grids[i] is the board after i symbols
	steps   []*tiling.Placement // steps[i] placed symbol i; nil when ignored
	failure error               // error of symbol len(steps), if any
	cursor  int                 // number of symbols applied
}

// newViewModel runs the placement and records every intermediate board.
func newViewModel(f *polyomino.Family, enc tiling.Encoding, p *input.Problem, opts ...tiling.Option) (viewModel, error) {
	e, err := tiling.NewEngine(f, enc, p.Height, p.Width, opts...)
	if err != nil {
		return viewModel{}, err
	}
	m := viewModel{
		problem: p,
		family:  e.Family(),
		enc:     e.Encoding(),
		grids:   []*tiling.Grid{e.Snapshot()},
	}
	for i := 0; i < len(p.Symbols); i++ {
		pl, err := e.Step(p.Symbols[i])
		if err != nil {
			m.failure = err
			break
		}
		m.steps = append(m.steps, pl)
		m.grids = append(m.grids, e.Snapshot())
	}
	return m, nil
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", " ", "n":
		if m.cursor < len(m.steps) {
			m.cursor++
		}
	case "left", "h", "p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.steps)
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %s", m.problem.Name(), m.family.Name())))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.legend()))
	b.WriteString("\n\n")

	g := m.grids[m.cursor]
	b.WriteString(renderPreview(g))
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	return b.String()
}

// legend lists which orientation each digit selects.
func (m viewModel) legend() string {
	parts := make([]string, 0, 10)
	for d := byte('0'); d <= '9'; d++ {
		o, err := m.enc.Orientation(d)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%c→o%d", d, o))
	}
	return strings.Join(parts, " ")
}

// status describes the most recent step. A failure on the first symbol is
// reported on the empty board.
func (m viewModel) status() string {
	progress := StyleDim.Render(fmt.Sprintf("[%d/%d]", m.cursor, len(m.problem.Symbols)))

	var line string
	switch {
	case m.cursor == 0:
		line = StyleDim.Render("empty board")
	case m.steps[m.cursor-1] == nil:
		line = StyleWarning.Render(fmt.Sprintf("symbol %d ignored: board is full", m.cursor-1))
	default:
		pl := m.steps[m.cursor-1]
		line = fmt.Sprintf("symbol %d %s → orientation %d at row %d, column %d",
			pl.Index, StyleHighlight.Render(fmt.Sprintf("'%c'", pl.Symbol)), pl.Orientation, pl.Row, pl.Col)
	}

	if m.cursor == len(m.steps) && (m.cursor > 0 || m.failure != nil) {
		g := m.grids[m.cursor]
		switch {
		case m.failure != nil:
			line += "\n" + StyleError.Render(iconError+" "+m.failure.Error())
		case g.Complete():
			line += "\n" + StyleSuccess.Render(iconSuccess+" board complete")
		default:
			line += "\n" + StyleWarning.Render(fmt.Sprintf("%s %d cells open", iconWarning, g.Open()))
		}
	}
	return progress + " " + line
}
