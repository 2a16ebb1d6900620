// Package term renders charts and palettes for terminal display. Cells are
// painted as background-colored blocks carrying the stitch symbol, with the
// text color chosen per cell so symbols stay readable on any yarn.
package term

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/width"

	"github.com/knitvis/knit"
)

// CellWidth is the printed width of one stitch cell. Two columns keep the
// grid close to square on common terminal fonts.
const CellWidth = 2

var (
	textDark  = lipgloss.Color("#000000")
	textLight = lipgloss.Color("#ffffff")
)

// textColor picks black or white text for a background color using its
// relative luminance, the same rule chart images use for symbol overlays.
func textColor(c knit.RGB) lipgloss.Color {
	lum := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	if lum > 128 {
		return textDark
	}
	return textLight
}

// cellStyle paints a cell in its yarn color.
func cellStyle(c knit.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(textColor(c))
}

// glyphWidth reports the number of terminal columns s occupies. East Asian
// wide and fullwidth runes count double; ambiguous-width runes, which cover
// the stitch symbols, count single as on most Western terminals.
func glyphWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// pad right-pads s with spaces to the cell width.
func pad(s string) string {
	if n := CellWidth - glyphWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Grid renders a chart region as a colored stitch grid, one chart row per
// line. Row zero prints first, so the fabric appears the way chart files
// store it.
func Grid(c *knit.Chart, r image.Rectangle) (string, error) {
	symbols, err := c.SymbolicPattern(r)
	if err != nil {
		return "", err
	}
	colors, err := c.Colors(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, row := range symbols {
		for j, sym := range row {
			b.WriteString(cellStyle(colors[i][j]).Render(pad(sym)))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Legend lists every palette entry as a swatch followed by its tag, full
// name, and RGB value.
func Legend(p *knit.Palette) string {
	var b strings.Builder
	for i := 0; i < p.Len(); i++ {
		c, _ := p.Color(i)
		name, _ := p.Name(i)
		tag, _ := p.Tag(i)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
		fmt.Fprintf(&b, "%s %-4s %-8s %s\n", swatch, tag, name, c)
	}
	return b.String()
}

// StitchKey lists every stitch kind as its symbol and name, one per line.
func StitchKey() string {
	var b strings.Builder
	for _, k := range knit.Kinds() {
		fmt.Fprintf(&b, "%s  %s\n", pad(k.Symbol()), k.String())
	}
	return b.String()
}
