package commands

import (
	"fmt"

	"github.com/knitvis/knit"
)

type InfoCmd struct {
	File   string `arg:"" help:"Chart file." type:"existingfile"`
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (n *InfoCmd) Run(ctx *Context) error {
	chart, err := knit.Load(n.File)
	if err != nil {
		return err
	}
	counts, err := stitchCounts(chart)
	if err != nil {
		return err
	}

	switch n.Output {
	case "json":
		b, err := toJSON(chartInfo(chart, counts))
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Out, string(b))
	case "yaml":
		b, err := toYAML(chartInfo(chart, counts))
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, string(b))
	default:
		fmt.Fprintf(ctx.Out, "File:    %s\n", n.File)
		fmt.Fprintf(ctx.Out, "Size:    %d rows x %d cols (%d stitches)\n",
			chart.Rows(), chart.Cols(), chart.Rows()*chart.Cols())
		fmt.Fprintf(ctx.Out, "Palette: %d colors\n", chart.Palette().Len())
		for _, k := range knit.Kinds() {
			if c := counts[k.String()]; c > 0 {
				fmt.Fprintf(ctx.Out, "  %-6s %d\n", k, c)
			}
		}
		if c := counts[knit.KindUnknown.String()]; c > 0 {
			fmt.Fprintf(ctx.Out, "  %-6s %d\n", knit.KindUnknown, c)
		}
	}
	return nil
}

// stitchCounts tallies cells by stitch name.
func stitchCounts(c *knit.Chart) (map[string]int, error) {
	counts := make(map[string]int)
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			k, err := c.KindAt(i, j)
			if err != nil {
				return nil, err
			}
			counts[k.String()]++
		}
	}
	return counts, nil
}

func chartInfo(c *knit.Chart, counts map[string]int) map[string]any {
	return map[string]any{
		"rows":           c.Rows(),
		"cols":           c.Cols(),
		"stitches":       c.Rows() * c.Cols(),
		"palette_colors": c.Palette().Len(),
		"stitch_counts":  counts,
	}
}
