// Package commands implements the knitchart subcommands. Each command is a
// kong struct with a Run method; main parses the CLI type and dispatches
// with a Context.
package commands

import "io"

// Context carries runtime dependencies into command Run methods.
type Context struct {
	Out io.Writer
}

// CLI is the root command tree for knitchart.
type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	New      NewCmd      `cmd:"" help:"Create a chart file with a uniform stitch and color."`
	Show     ShowCmd     `cmd:"" help:"Render a chart as a colored stitch grid."`
	Info     InfoCmd     `cmd:"" help:"Print chart dimensions, palette size, and stitch counts."`
	Palette  PaletteCmd  `cmd:"" help:"Show a chart's color palette."`
	Set      SetCmd      `cmd:"" help:"Edit a single stitch in place."`
	Crop     CropCmd     `cmd:"" help:"Cut a chart region into a new file."`
	Paste    PasteCmd    `cmd:"" help:"Paste one chart into another at an offset."`
	Optimize OptimizeCmd `cmd:"" help:"Drop unused palette colors."`
	Export   ExportCmd   `cmd:"" help:"Export a chart as a PNG image."`
}
