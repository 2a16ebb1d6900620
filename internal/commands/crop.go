package commands

import (
	"fmt"
	"image"

	"github.com/knitvis/knit"
)

type CropCmd struct {
	File string `arg:"" help:"Source chart file." type:"existingfile"`
	Out  string `arg:"" help:"Destination chart file." type:"path"`
	Rows string `help:"Row range A:B, half open." default:":"`
	Cols string `help:"Column range A:B, half open." default:":"`
}

func (c *CropCmd) Run(ctx *Context) error {
	chart, err := knit.Load(c.File)
	if err != nil {
		return err
	}

	r0, r1, err := parseRange(c.Rows, chart.Rows())
	if err != nil {
		return err
	}
	c0, c1, err := parseRange(c.Cols, chart.Cols())
	if err != nil {
		return err
	}

	sub, err := chart.SubChart(image.Rect(c0, r0, c1, r1))
	if err != nil {
		return err
	}
	if err := sub.Save(c.Out); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "cropped %dx%d region into %s\n", sub.Rows(), sub.Cols(), c.Out)
	return nil
}
