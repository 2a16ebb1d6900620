package knit

// Option configures a Chart during creation.
// Use functional options to supply color information.
//
// Example:
//
//	// Every cell gets the default gray
//	chart, err := knit.New(pattern)
//
//	// Uniform background color
//	chart, err := knit.New(pattern, knit.WithColor(knit.RGB{B: 255}))
type Option func(*chartOptions)

// chartOptions holds optional configuration for Chart creation.
type chartOptions struct {
	uniform *RGB
	cells   [][]RGB
}

// defaultOptions returns the default chart options.
func defaultOptions() chartOptions {
	return chartOptions{
		uniform: nil, // DefaultColor is applied when no option is given
		cells:   nil,
	}
}

// WithColor fills every cell of the new chart with a single color.
//
// Example:
//
//	chart, err := knit.New(pattern, knit.WithColor(knit.RGB{R: 255}))
func WithColor(c RGB) Option {
	return func(o *chartOptions) {
		o.uniform = &c
		o.cells = nil
	}
}

// WithColors supplies a per-cell color grid. The grid dimensions must
// match the pattern's, row for row.
//
// Example:
//
//	cells := [][]knit.RGB{
//		{{255, 0, 0}, {0, 128, 0}},
//		{{0, 128, 0}, {255, 0, 0}},
//	}
//	chart, err := knit.New(pattern, knit.WithColors(cells))
func WithColors(cells [][]RGB) Option {
	return func(o *chartOptions) {
		o.cells = cells
		o.uniform = nil
	}
}
