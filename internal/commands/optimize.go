package commands

import (
	"fmt"

	"github.com/knitvis/knit"
)

type OptimizeCmd struct {
	File string `arg:"" help:"Chart file, rewritten in place." type:"existingfile"`
}

func (o *OptimizeCmd) Run(ctx *Context) error {
	chart, err := knit.Load(o.File)
	if err != nil {
		return err
	}

	before := chart.Palette().Len()
	if !chart.OptimizePalette() {
		fmt.Fprintf(ctx.Out, "palette already minimal (%d colors)\n", before)
		return nil
	}
	if err := chart.Save(o.File); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "removed %d unused colors, %d remain\n",
		before-chart.Palette().Len(), chart.Palette().Len())
	return nil
}
