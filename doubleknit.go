package knit

import "fmt"

// DoubleKnitOption configures a DoubleKnit during creation.
type DoubleKnitOption func(*doubleKnitOptions)

type doubleKnitOptions struct {
	back      [][]bool
	frontYarn RGB
	backYarn  RGB
}

// WithBackPattern supplies an explicit back-layer pattern instead of the
// default inverse of the front.
func WithBackPattern(back [][]bool) DoubleKnitOption {
	return func(o *doubleKnitOptions) { o.back = back }
}

// WithYarns sets the two yarn colors. A true cell knits in the front yarn,
// a false cell in the back yarn, on both layers.
func WithYarns(front, back RGB) DoubleKnitOption {
	return func(o *doubleKnitOptions) {
		o.frontYarn = front
		o.backYarn = back
	}
}

// DoubleKnit models a two-layer double-knitting project: a boolean motif
// for each layer and a pair of yarn colors. Each layer materializes as an
// all-knit chart, since double knitting is worked in stockinette.
type DoubleKnit struct {
	rows, cols int
	frontYarn  RGB
	backYarn   RGB
	front      *Chart
	back       *Chart
}

// NewDoubleKnit builds a double-knitting project from a front-layer motif.
// All motif rows must have equal length, otherwise construction fails with
// ErrShape. Without WithBackPattern the back layer is the inverse of the
// front, the classic negative-image fabric. Default yarns are white for
// the front and black for the back.
func NewDoubleKnit(front [][]bool, opts ...DoubleKnitOption) (*DoubleKnit, error) {
	o := doubleKnitOptions{
		frontYarn: RGB{255, 255, 255},
		backYarn:  RGB{0, 0, 0},
	}
	for _, opt := range opts {
		opt(&o)
	}

	rows := len(front)
	cols := 0
	if rows > 0 {
		cols = len(front[0])
	}
	for i, row := range front {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: front row %d has %d cells, want %d", ErrShape, i, len(row), cols)
		}
	}

	back := o.back
	if back == nil {
		back = make([][]bool, rows)
		for i, row := range front {
			inv := make([]bool, cols)
			for j, v := range row {
				inv[j] = !v
			}
			back[i] = inv
		}
	} else {
		if len(back) != rows {
			return nil, fmt.Errorf("%w: back pattern has %d rows, front has %d", ErrShape, len(back), rows)
		}
		for i, row := range back {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: back row %d has %d cells, want %d", ErrShape, i, len(row), cols)
			}
		}
	}

	d := &DoubleKnit{
		rows:      rows,
		cols:      cols,
		frontYarn: o.frontYarn,
		backYarn:  o.backYarn,
	}
	var err error
	if d.front, err = d.layerChart(front); err != nil {
		return nil, err
	}
	if d.back, err = d.layerChart(back); err != nil {
		return nil, err
	}
	return d, nil
}

// layerChart renders one boolean layer as an all-knit chart colored by the
// yarn rule. Knit is the zero kind, so a fresh pattern grid is already
// all-knit.
func (d *DoubleKnit) layerChart(layer [][]bool) (*Chart, error) {
	pattern := make([][]StitchKind, d.rows)
	cells := make([][]RGB, d.rows)
	for i, row := range layer {
		pattern[i] = make([]StitchKind, d.cols)
		crow := make([]RGB, d.cols)
		for j, v := range row {
			if v {
				crow[j] = d.frontYarn
			} else {
				crow[j] = d.backYarn
			}
		}
		cells[i] = crow
	}
	return New(pattern, WithColors(cells))
}

// Rows returns the number of motif rows.
func (d *DoubleKnit) Rows() int { return d.rows }

// Cols returns the number of motif columns per layer.
func (d *DoubleKnit) Cols() int { return d.cols }

// FrontChart returns the front layer as a chart.
func (d *DoubleKnit) FrontChart() *Chart { return d.front }

// BackChart returns the back layer as a chart.
func (d *DoubleKnit) BackChart() *Chart { return d.back }

// WorkingChart returns the chart the piece is worked from: both layers
// interleaved into a grid of doubled width, with front-layer stitches in
// the even columns and back-layer stitches in the odd ones.
func (d *DoubleKnit) WorkingChart() (*Chart, error) {
	pattern := make([][]StitchKind, d.rows)
	cells := make([][]RGB, d.rows)
	for i := 0; i < d.rows; i++ {
		prow := make([]StitchKind, 2*d.cols)
		crow := make([]RGB, 2*d.cols)
		for j := 0; j < d.cols; j++ {
			fk, err := d.front.KindAt(i, j)
			if err != nil {
				return nil, err
			}
			fc, err := d.front.ColorAt(i, j)
			if err != nil {
				return nil, err
			}
			bk, err := d.back.KindAt(i, j)
			if err != nil {
				return nil, err
			}
			bc, err := d.back.ColorAt(i, j)
			if err != nil {
				return nil, err
			}
			prow[2*j], crow[2*j] = fk, fc
			prow[2*j+1], crow[2*j+1] = bk, bc
		}
		pattern[i] = prow
		cells[i] = crow
	}
	return New(pattern, WithColors(cells))
}

// ResizePattern scales a boolean motif to rows by cols using
// nearest-neighbor sampling. The motif must be rectangular. Non-positive
// target dimensions yield an empty motif.
func ResizePattern(p [][]bool, rows, cols int) [][]bool {
	srcRows := len(p)
	srcCols := 0
	if srcRows > 0 {
		srcCols = len(p[0])
	}
	if rows <= 0 || cols <= 0 || srcRows == 0 || srcCols == 0 {
		return [][]bool{}
	}
	out := make([][]bool, rows)
	for i := range out {
		row := make([]bool, cols)
		si := i * srcRows / rows
		for j := range row {
			row[j] = p[si][j*srcCols/cols]
		}
		out[i] = row
	}
	return out
}
