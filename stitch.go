package knit

// StitchKind identifies a stitch type in the fixed knitting vocabulary.
// Pattern grids store kinds by integer value, so the constant order below
// is part of the chart file format and must not change.
type StitchKind int

// Stitch kind constants in pattern-integer order, named after the standard
// knitting abbreviations: knit, purl, yarn over, knit two together (right
// decrease), slip slip knit (left decrease), cable four front, cable four
// back, bind off, cast on.
const (
	Knit StitchKind = iota
	Purl
	YarnOver
	K2tog
	SSK
	C4F
	C4B
	BindOff
	CastOn
)

// NumKinds is the size of the stitch vocabulary.
const NumKinds = 9

// KindUnknown is returned by ParseKind for names outside the vocabulary.
// Pattern cells may carry it (or any other out-of-range value); such cells
// render as "Unknown" and "?".
const KindUnknown StitchKind = -1

var stitchNames = [NumKinds]string{
	"K", "P", "YO", "K2tog", "SSK", "C4F", "C4B", "BO", "CO",
}

var stitchSymbols = [NumKinds]string{
	"V", "●", "O", "/", "\\", "X", "X", "-", "_",
}

// String returns the canonical short name for the stitch, such as "K" or
// "K2tog". Kinds outside the vocabulary return "Unknown".
func (k StitchKind) String() string {
	if !k.IsValid() {
		return "Unknown"
	}
	return stitchNames[k]
}

// Symbol returns the single-glyph chart symbol for the stitch, such as "V"
// for knit or "●" for purl. Kinds outside the vocabulary return "?".
func (k StitchKind) Symbol() string {
	if !k.IsValid() {
		return "?"
	}
	return stitchSymbols[k]
}

// IsValid reports whether k is one of the vocabulary kinds.
func (k StitchKind) IsValid() bool {
	return k >= 0 && k < NumKinds
}

// ParseKind converts a canonical stitch name to its kind.
// Names outside the vocabulary yield KindUnknown.
func ParseKind(name string) StitchKind {
	for i, n := range stitchNames {
		if n == name {
			return StitchKind(i)
		}
	}
	return KindUnknown
}

// ParseKinds converts a grid of stitch names to a same-shaped grid of
// kinds, mapping unrecognized names to KindUnknown.
func ParseKinds(names [][]string) [][]StitchKind {
	kinds := make([][]StitchKind, len(names))
	for i, row := range names {
		kinds[i] = make([]StitchKind, len(row))
		for j, name := range row {
			kinds[i][j] = ParseKind(name)
		}
	}
	return kinds
}

// Kinds returns the stitch vocabulary in pattern-integer order.
func Kinds() []StitchKind {
	kinds := make([]StitchKind, NumKinds)
	for i := range kinds {
		kinds[i] = StitchKind(i)
	}
	return kinds
}
