package commands

import (
	"fmt"

	"github.com/knitvis/knit"
)

type SetCmd struct {
	File   string `arg:"" help:"Chart file, edited in place." type:"existingfile"`
	Row    int    `help:"Row of the stitch." required:""`
	Col    int    `help:"Column of the stitch." required:""`
	Stitch string `help:"New stitch kind name."`
	Color  string `help:"New yarn color (name or hex)."`
}

func (s *SetCmd) Run(ctx *Context) error {
	if s.Stitch == "" && s.Color == "" {
		return fmt.Errorf("nothing to set: pass --stitch, --color, or both")
	}

	chart, err := knit.Load(s.File)
	if err != nil {
		return err
	}

	if s.Stitch != "" {
		kind := knit.ParseKind(s.Stitch)
		if err := chart.SetStitchKind(s.Row, s.Col, kind); err != nil {
			return err
		}
	}
	if s.Color != "" {
		color, err := parseColor(s.Color)
		if err != nil {
			return err
		}
		if err := chart.SetStitchColor(s.Row, s.Col, color); err != nil {
			return err
		}
	}

	if err := chart.Save(s.File); err != nil {
		return err
	}
	st, err := chart.StitchAt(s.Row, s.Col)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "set (%d, %d) to %s in %s\n", s.Row, s.Col, st.Kind, st.Color)
	return nil
}
