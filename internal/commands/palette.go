package commands

import (
	"fmt"

	"github.com/knitvis/knit"
	"github.com/knitvis/knit/internal/term"
)

type PaletteCmd struct {
	File   string `arg:"" help:"Chart file." type:"existingfile"`
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (p *PaletteCmd) Run(ctx *Context) error {
	chart, err := knit.Load(p.File)
	if err != nil {
		return err
	}
	pal := chart.Palette()

	switch p.Output {
	case "json":
		b, err := toJSON(massagePalette(pal))
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Out, string(b))
	case "yaml":
		b, err := toYAML(massagePalette(pal))
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, string(b))
	default:
		fmt.Fprintln(ctx.Out, term.PaletteTable(pal))
	}
	return nil
}

// massagePalette flattens a palette into one map per entry for structured
// output.
func massagePalette(p *knit.Palette) []map[string]any {
	entries := make([]map[string]any, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		c, _ := p.Color(i)
		name, _ := p.Name(i)
		tag, _ := p.Tag(i)
		entries = append(entries, map[string]any{
			"tag":   tag,
			"name":  name,
			"color": []int{int(c.R), int(c.G), int(c.B)},
			"hex":   c.Hex(),
		})
	}
	return entries
}
