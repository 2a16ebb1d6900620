package commands

import (
	"fmt"
	"image"

	"github.com/knitvis/knit"
)

type PasteCmd struct {
	File string `arg:"" help:"Destination chart file, edited in place." type:"existingfile"`
	Src  string `arg:"" help:"Chart file to paste." type:"existingfile"`
	Row  int    `help:"Destination row of the top-left cell." required:""`
	Col  int    `help:"Destination column of the top-left cell." required:""`
}

func (p *PasteCmd) Run(ctx *Context) error {
	dst, err := knit.Load(p.File)
	if err != nil {
		return err
	}
	src, err := knit.Load(p.Src)
	if err != nil {
		return err
	}

	region := image.Rect(p.Col, p.Row, p.Col+src.Cols(), p.Row+src.Rows())
	if err := dst.SetSubChart(region, src); err != nil {
		return err
	}
	if err := dst.Save(p.File); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "pasted %dx%d chart into %s at (%d, %d)\n",
		src.Rows(), src.Cols(), p.File, p.Row, p.Col)
	return nil
}
