package commands

import (
	"fmt"

	"github.com/knitvis/knit"
)

type NewCmd struct {
	File   string `arg:"" help:"Chart file to create." type:"path"`
	Rows   int    `help:"Number of chart rows." required:""`
	Cols   int    `help:"Number of chart columns." required:""`
	Stitch string `help:"Uniform stitch kind." default:"K"`
	Color  string `help:"Uniform yarn color (name or hex)." default:"gray"`
}

func (n *NewCmd) Run(ctx *Context) error {
	if n.Rows <= 0 || n.Cols <= 0 {
		return fmt.Errorf("chart must have positive dimensions, got %dx%d", n.Rows, n.Cols)
	}
	kind := knit.ParseKind(n.Stitch)
	if !kind.IsValid() {
		return fmt.Errorf("unknown stitch kind %q", n.Stitch)
	}
	color, err := parseColor(n.Color)
	if err != nil {
		return err
	}

	pattern := make([][]knit.StitchKind, n.Rows)
	for i := range pattern {
		row := make([]knit.StitchKind, n.Cols)
		for j := range row {
			row[j] = kind
		}
		pattern[i] = row
	}
	chart, err := knit.New(pattern, knit.WithColor(color))
	if err != nil {
		return err
	}
	if err := chart.Save(n.File); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "created %s (%dx%d, %s in %s)\n", n.File, n.Rows, n.Cols, kind, color)
	return nil
}
