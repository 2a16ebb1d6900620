package commands

import (
	"fmt"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/knitvis/knit"
	"github.com/knitvis/knit/internal/term"
)

type ShowCmd struct {
	File    string `arg:"" help:"Chart file." type:"existingfile"`
	Tags    bool   `help:"Print the color-tag grid instead of the colored view."`
	Symbols bool   `help:"Print plain stitch symbols without color."`
	Key     bool   `help:"Append the stitch symbol key."`
}

const defaultTerminalWidth = 80

func (s *ShowCmd) Run(ctx *Context) error {
	chart, err := knit.Load(s.File)
	if err != nil {
		return err
	}

	region := chart.Bounds()
	if maxCols := displayCols(); region.Dx() > maxCols {
		region.Max.X = region.Min.X + maxCols
		fmt.Fprintf(ctx.Out, "showing first %d of %d columns\n", maxCols, chart.Cols())
	}

	switch {
	case s.Tags:
		grid, err := chart.ColorTags(region)
		if err != nil {
			return err
		}
		for _, row := range grid {
			fmt.Fprintln(ctx.Out, strings.Join(row, " "))
		}
	case s.Symbols:
		grid, err := chart.SymbolicPattern(region)
		if err != nil {
			return err
		}
		for _, row := range grid {
			fmt.Fprintln(ctx.Out, strings.Join(row, " "))
		}
	default:
		grid, err := term.Grid(chart, region)
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, grid)
		fmt.Fprintf(ctx.Out, "\n%s", term.Legend(chart.Palette()))
	}

	if s.Key {
		fmt.Fprintf(ctx.Out, "\n%s", term.StitchKey())
	}
	return nil
}

// displayCols reports how many chart columns fit the terminal, falling back
// to a conventional width when stdout is not a terminal.
func displayCols() int {
	width, _, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = defaultTerminalWidth
	}
	return max(width/term.CellWidth, 1)
}
