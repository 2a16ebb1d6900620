package term

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/knitvis/knit"
)

const (
	columnSwatch = "swatch"
	columnTag    = "tag"
	columnName   = "name"
	columnColor  = "color"
	columnHex    = "hex"
)

// PaletteTable renders a palette as a bordered table with one row per
// entry: a color swatch, the short tag, the full name, and the RGB value in
// both decimal and hex form.
func PaletteTable(p *knit.Palette) string {
	longestName := 4
	for i := 0; i < p.Len(); i++ {
		name, _ := p.Name(i)
		if len(name) > longestName {
			longestName = len(name)
		}
	}

	columns := []table.Column{
		table.NewColumn(columnSwatch, "", 4),
		table.NewColumn(columnTag, "Tag", 5),
		table.NewColumn(columnName, "Name", longestName+2),
		table.NewColumn(columnColor, "RGB", 15),
		table.NewColumn(columnHex, "Hex", 9),
	}

	rows := make([]table.Row, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		c, _ := p.Color(i)
		name, _ := p.Name(i)
		tag, _ := p.Tag(i)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
		rows = append(rows, table.NewRow(table.RowData{
			columnSwatch: table.NewStyledCell("  ", swatch),
			columnTag:    tag,
			columnName:   name,
			columnColor:  c.String(),
			columnHex:    c.Hex(),
		}))
	}

	return table.New(columns).WithRows(rows).View()
}
