package knit

import "errors"

// Common errors for chart and palette operations.
var (
	// ErrShape is returned when a pattern, color grid, tag grid, or
	// sub-chart does not have the expected dimensions.
	ErrShape = errors.New("knit: shape mismatch")

	// ErrBounds is returned when cell coordinates or a region fall outside
	// the chart.
	ErrBounds = errors.New("knit: out of bounds")

	// ErrUnknownStitch is returned when a mutation is given a stitch kind
	// outside the vocabulary.
	ErrUnknownStitch = errors.New("knit: unknown stitch kind")

	// ErrNilChart is returned when a rectangular write is given a nil
	// source chart.
	ErrNilChart = errors.New("knit: nil source chart")

	// ErrMissingField is returned when a chart record lacks one of the
	// required pattern, color_tags, or palette fields.
	ErrMissingField = errors.New("knit: record missing field")

	// ErrRecordMismatch is returned when a palette record's parallel
	// arrays have unequal lengths.
	ErrRecordMismatch = errors.New("knit: palette record arrays have unequal lengths")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("knit: invalid color")
)
