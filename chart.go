package knit

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"
)

// Stitch is one chart cell: a stitch kind and the yarn color knitted there.
type Stitch struct {
	Kind  StitchKind
	Color RGB
}

// Chart is a knitting chart: a grid of stitch kinds plus a per-cell color,
// stored as indices into an owned color palette. The palette and the index
// grid stay consistent across every mutation; between calls every cell's
// color index is a valid palette index.
//
// Cell addressing is (row, col) with the origin at the top-left. Region
// arguments use image.Rectangle with x addressing columns and y rows, so
// Bounds() is the full-grid region.
//
// A Chart is not safe for concurrent use; callers serialize access.
type Chart struct {
	rows int
	cols int

	// Row-major cell data: index = row*cols + col.
	pattern  []StitchKind
	colorIdx []int

	// Owned exclusively by this chart. Never shared, even between charts
	// that happen to use identical colors.
	palette *Palette
}

// New builds a chart from a pattern grid. All pattern rows must have equal
// length, otherwise New fails with ErrShape. Out-of-vocabulary kind values
// are accepted and render as "Unknown"/"?".
//
// Color information comes from options: WithColors supplies a per-cell
// grid (which must match the pattern's shape), WithColor a uniform color,
// and with no option every cell gets DefaultColor. The distinct cell
// colors, ordered lexicographically by (R, G, B), become the chart's
// palette.
func New(pattern [][]StitchKind, opts ...Option) (*Chart, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows := len(pattern)
	cols := 0
	if rows > 0 {
		cols = len(pattern[0])
	}
	for i, row := range pattern {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: pattern row %d has %d cells, want %d", ErrShape, i, len(row), cols)
		}
	}

	cells, err := o.cellColors(rows, cols)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		rows:    rows,
		cols:    cols,
		pattern: make([]StitchKind, rows*cols),
	}
	for i, row := range pattern {
		copy(c.pattern[i*cols:(i+1)*cols], row)
	}
	c.palette, c.colorIdx = buildPalette(cells)
	return c, nil
}

// cellColors resolves the configured color source into a full rows×cols
// grid, applying DefaultColor when no option was given.
func (o *chartOptions) cellColors(rows, cols int) ([][]RGB, error) {
	if o.cells != nil {
		if len(o.cells) != rows {
			return nil, fmt.Errorf("%w: color grid has %d rows, want %d", ErrShape, len(o.cells), rows)
		}
		for i, row := range o.cells {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: color grid row %d has %d cells, want %d", ErrShape, i, len(row), cols)
			}
		}
		return o.cells, nil
	}

	fill := DefaultColor
	if o.uniform != nil {
		fill = *o.uniform
	}
	cells := make([][]RGB, rows)
	for i := range cells {
		row := make([]RGB, cols)
		for j := range row {
			row[j] = fill
		}
		cells[i] = row
	}
	return cells, nil
}

// buildPalette deduplicates the cell colors into a fresh palette and maps
// every cell to its palette index. Distinct colors are sorted
// lexicographically so the palette order is deterministic for identical
// input regardless of cell order.
func buildPalette(cells [][]RGB) (*Palette, []int) {
	seen := make(map[RGB]struct{})
	distinct := make([]RGB, 0, 8)
	n := 0
	for _, row := range cells {
		n += len(row)
		for _, c := range row {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				distinct = append(distinct, c)
			}
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Less(distinct[j]) })

	lookup := make(map[RGB]int, len(distinct))
	for i, c := range distinct {
		lookup[c] = i
	}

	idx := make([]int, 0, n)
	for _, row := range cells {
		for _, c := range row {
			idx = append(idx, lookup[c])
		}
	}
	return NewPalette(distinct), idx
}

// Rows returns the number of chart rows.
func (c *Chart) Rows() int { return c.rows }

// Cols returns the number of chart columns.
func (c *Chart) Cols() int { return c.cols }

// Palette returns the chart's palette for read access, such as legend
// rendering. Mutation goes through the chart's methods; the palette may be
// replaced wholesale when the chart compacts it.
func (c *Chart) Palette() *Palette { return c.palette }

// Bounds returns the full-grid region, (0,0)-(cols,rows). It also serves
// the image.Image interface with one pixel per cell.
func (c *Chart) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.cols, c.rows)
}

// ColorModel implements the image.Image interface.
func (c *Chart) ColorModel() color.Model { return color.RGBAModel }

// At implements the image.Image interface. Cells outside the chart are
// transparent.
func (c *Chart) At(x, y int) color.Color {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return color.RGBA{}
	}
	return c.colorAt(y*c.cols + x)
}

// colorAt returns the palette color for flat cell index i.
func (c *Chart) colorAt(i int) RGB {
	rgb, _ := c.palette.Color(c.colorIdx[i])
	return rgb
}

// checkCell validates a single-cell address.
func (c *Chart) checkCell(row, col int) error {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return fmt.Errorf("%w: cell (%d, %d) outside %dx%d chart", ErrBounds, row, col, c.rows, c.cols)
	}
	return nil
}

// checkRegion validates that r lies inside the chart. Regions are never
// clamped; an out-of-range region is a caller error.
func (c *Chart) checkRegion(r image.Rectangle) error {
	if !r.In(c.Bounds()) {
		return fmt.Errorf("%w: region %v outside chart bounds %v", ErrBounds, r, c.Bounds())
	}
	return nil
}

// SymbolicPattern returns the stitch glyphs for the cells of r, one slice
// per row. Out-of-vocabulary cells render "?".
func (c *Chart) SymbolicPattern(r image.Rectangle) ([][]string, error) {
	if err := c.checkRegion(r); err != nil {
		return nil, err
	}
	out := make([][]string, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := make([]string, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x-r.Min.X] = c.pattern[y*c.cols+x].Symbol()
		}
		out[y-r.Min.Y] = row
	}
	return out, nil
}

// TextPattern returns the stitch names for the cells of r, one slice per
// row. Out-of-vocabulary cells render "Unknown".
func (c *Chart) TextPattern(r image.Rectangle) ([][]string, error) {
	if err := c.checkRegion(r); err != nil {
		return nil, err
	}
	out := make([][]string, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := make([]string, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x-r.Min.X] = c.pattern[y*c.cols+x].String()
		}
		out[y-r.Min.Y] = row
	}
	return out, nil
}

// Colors returns the cell colors for r, one slice per row, resolved
// through the palette.
func (c *Chart) Colors(r image.Rectangle) ([][]RGB, error) {
	if err := c.checkRegion(r); err != nil {
		return nil, err
	}
	out := make([][]RGB, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := make([]RGB, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x-r.Min.X] = c.colorAt(y*c.cols + x)
		}
		out[y-r.Min.Y] = row
	}
	return out, nil
}

// ColorTags returns the short palette tags for the cells of r, one slice
// per row.
func (c *Chart) ColorTags(r image.Rectangle) ([][]string, error) {
	if err := c.checkRegion(r); err != nil {
		return nil, err
	}
	out := make([][]string, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := make([]string, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			tag, _ := c.palette.Tag(c.colorIdx[y*c.cols+x])
			row[x-r.Min.X] = tag
		}
		out[y-r.Min.Y] = row
	}
	return out, nil
}

// StitchAt returns the stitch kind and color at (row, col).
func (c *Chart) StitchAt(row, col int) (Stitch, error) {
	if err := c.checkCell(row, col); err != nil {
		return Stitch{}, err
	}
	i := row*c.cols + col
	return Stitch{Kind: c.pattern[i], Color: c.colorAt(i)}, nil
}

// KindAt returns the stitch kind at (row, col).
func (c *Chart) KindAt(row, col int) (StitchKind, error) {
	if err := c.checkCell(row, col); err != nil {
		return KindUnknown, err
	}
	return c.pattern[row*c.cols+col], nil
}

// ColorAt returns the cell color at (row, col).
func (c *Chart) ColorAt(row, col int) (RGB, error) {
	if err := c.checkCell(row, col); err != nil {
		return RGB{}, err
	}
	return c.colorAt(row*c.cols + col), nil
}

// SetStitchKind writes the stitch kind at (row, col). Kinds outside the
// vocabulary fail with ErrUnknownStitch and leave the pattern unmodified.
func (c *Chart) SetStitchKind(row, col int, k StitchKind) error {
	if err := c.checkCell(row, col); err != nil {
		return err
	}
	if !k.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownStitch, int(k))
	}
	c.pattern[row*c.cols+col] = k
	return nil
}

// SetStitchColor writes the cell color at (row, col). A color not yet in
// the palette is appended to it. When the write removes the last use of
// the cell's previous color, the palette is compacted.
func (c *Chart) SetStitchColor(row, col int, rgb RGB) error {
	if err := c.checkCell(row, col); err != nil {
		return err
	}
	i := row*c.cols + col
	prev := c.colorIdx[i]

	before := c.palette.Len()
	idx := c.palette.Append(rgb)
	if c.palette.Len() > before {
		Logger().Debug("palette grew", "color", rgb.Hex(), "index", idx)
	}

	c.colorIdx[i] = idx
	if prev != idx && !c.indexUsed(prev) {
		c.OptimizePalette()
	}
	return nil
}

// SetStitch writes both the stitch kind and the cell color at (row, col).
// An out-of-vocabulary kind fails before anything is modified.
func (c *Chart) SetStitch(row, col int, k StitchKind, rgb RGB) error {
	if err := c.SetStitchKind(row, col, k); err != nil {
		return err
	}
	return c.SetStitchColor(row, col, rgb)
}

// indexUsed reports whether any cell references palette index idx.
func (c *Chart) indexUsed(idx int) bool {
	for _, v := range c.colorIdx {
		if v == idx {
			return true
		}
	}
	return false
}

// OptimizePalette drops palette entries no cell references and renumbers
// the survivors, keeping their relative order. Names and tags are
// reassigned by the rebuild, so suffix numbers can shift when an earlier
// entry of the same color family was removed. Reports whether anything
// changed.
func (c *Chart) OptimizePalette() bool {
	used := make([]bool, c.palette.Len())
	n := 0
	for _, idx := range c.colorIdx {
		if !used[idx] {
			used[idx] = true
			n++
		}
	}
	if n == c.palette.Len() {
		return false
	}

	remap := make([]int, c.palette.Len())
	survivors := make([]RGB, 0, n)
	for i, u := range used {
		if u {
			remap[i] = len(survivors)
			rgb, _ := c.palette.Color(i)
			survivors = append(survivors, rgb)
		}
	}
	newIdx := make([]int, len(c.colorIdx))
	for i, idx := range c.colorIdx {
		newIdx[i] = remap[idx]
	}

	removed := c.palette.Len() - n
	c.palette = NewPalette(survivors)
	c.colorIdx = newIdx
	Logger().Debug("palette compacted", "removed", removed, "size", n)
	return true
}

// SubChart returns an independent copy of the cells of r as a new chart
// with its own freshly deduplicated palette. The source chart is left
// untouched.
func (c *Chart) SubChart(r image.Rectangle) (*Chart, error) {
	if err := c.checkRegion(r); err != nil {
		return nil, err
	}
	pattern := make([][]StitchKind, r.Dy())
	cells := make([][]RGB, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		prow := make([]StitchKind, r.Dx())
		crow := make([]RGB, r.Dx())
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*c.cols + x
			prow[x-r.Min.X] = c.pattern[i]
			crow[x-r.Min.X] = c.colorAt(i)
		}
		pattern[y-r.Min.Y] = prow
		cells[y-r.Min.Y] = crow
	}
	return New(pattern, WithColors(cells))
}

// SetSubChart overwrites the cells of r with src, which must have exactly
// r's dimensions. The whole chart is then rebuilt from the composite
// colors, so the palette may grow or shrink and every index can be
// renumbered. On any failure the chart is left untouched.
func (c *Chart) SetSubChart(r image.Rectangle, src *Chart) error {
	if src == nil {
		return ErrNilChart
	}
	if err := c.checkRegion(r); err != nil {
		return err
	}
	if src.rows != r.Dy() || src.cols != r.Dx() {
		return fmt.Errorf("%w: source chart is %dx%d, region wants %dx%d",
			ErrShape, src.rows, src.cols, r.Dy(), r.Dx())
	}

	pattern := make([][]StitchKind, c.rows)
	cells := make([][]RGB, c.rows)
	for y := 0; y < c.rows; y++ {
		prow := make([]StitchKind, c.cols)
		crow := make([]RGB, c.cols)
		for x := 0; x < c.cols; x++ {
			i := y*c.cols + x
			prow[x] = c.pattern[i]
			crow[x] = c.colorAt(i)
		}
		pattern[y] = prow
		cells[y] = crow
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := (y-r.Min.Y)*src.cols + (x - r.Min.X)
			pattern[y][x] = src.pattern[i]
			cells[y][x] = src.colorAt(i)
		}
	}

	rebuilt, err := New(pattern, WithColors(cells))
	if err != nil {
		return err
	}
	*c = *rebuilt
	return nil
}

// String renders the chart the way it prints in a terminal: the symbol
// grid, the color-tag grid, and the palette legend.
func (c *Chart) String() string {
	var b strings.Builder
	b.WriteString("Knitting Chart:\n")
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.pattern[y*c.cols+x].Symbol())
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nColor Chart:\n")
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			tag, _ := c.palette.Tag(c.colorIdx[y*c.cols+x])
			b.WriteString(tag)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nColor Palette:\n")
	for i := 0; i < c.palette.Len(); i++ {
		tag, _ := c.palette.Tag(i)
		rgb, _ := c.palette.Color(i)
		fmt.Fprintf(&b, "  %s: %s\n", tag, rgb)
	}
	return b.String()
}
