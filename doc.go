// Package knit provides a data model for color knitting charts.
//
// # Overview
//
// A knitting chart is a grid of cells. Every cell carries a stitch kind
// (knit, purl, yarn over, and so on) and a yarn color. knit stores the
// stitch kinds as a grid of StitchKind values and the colors as indices
// into a per-chart Palette, which names each color after the nearest
// common yarn color ("White", "Gray2") and gives it a short tag ("W",
// "Gy2") for compact chart listings.
//
// # Quick Start
//
//	import "github.com/knitvis/knit"
//
//	// A 2x2 checkerboard of knit and purl stitches
//	pattern := [][]knit.StitchKind{
//		{knit.Knit, knit.Purl},
//		{knit.Purl, knit.Knit},
//	}
//	chart, err := knit.New(pattern, knit.WithColor(knit.RGB{R: 255}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Inspect and edit cells
//	st, _ := chart.StitchAt(0, 0)
//	_ = chart.SetStitch(1, 1, knit.YarnOver, knit.RGB{B: 255})
//
//	// Persist as a human-readable JSON record
//	if err := chart.Save("checkerboard.json"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Cells are addressed as (row, col) with the origin at the top-left, the
// way charts are printed in written patterns. Region arguments use
// image.Rectangle with x running over columns and y over rows; regions
// are half-open, so chart.Bounds() covers the whole grid. A Chart is also
// an image.Image with one pixel per cell.
//
// # Palette Maintenance
//
// The palette is maintained automatically: recoloring a cell appends new
// colors as needed and compacts the palette when a color falls out of
// use. OptimizePalette performs the compaction on demand.
//
// # File Format
//
// Charts serialize to a JSON record holding the stitch names, the color
// tags, and the palette arrays, with each chart row on its own line so
// the file reads like the chart it stores. See Record.
package knit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
