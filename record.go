package knit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Record is the serialized form of a chart. The field names and nesting
// are the on-disk file format: stitch names for the pattern, short palette
// tags for the colors, and the palette's parallel arrays.
type Record struct {
	Pattern   [][]string     `json:"pattern"`
	ColorTags [][]string     `json:"color_tags"`
	Palette   *PaletteRecord `json:"palette"`
}

// PaletteRecord is the serialized form of a palette. Colors are stored as
// [r, g, b] integer triples rather than raw bytes so they read as numbers
// in the JSON file.
type PaletteRecord struct {
	Colors    [][3]int `json:"colors"`
	FullNames []string `json:"full_names"`
	ShortTags []string `json:"short_tags"`
}

// ToRecord converts the palette to its serialized form.
func (p *Palette) ToRecord() *PaletteRecord {
	rec := &PaletteRecord{
		Colors:    make([][3]int, len(p.colors)),
		FullNames: slices.Clone(p.fullNames),
		ShortTags: slices.Clone(p.shortTags),
	}
	for i, c := range p.colors {
		rec.Colors[i] = [3]int{int(c.R), int(c.G), int(c.B)}
	}
	return rec
}

// PaletteFromRecord rebuilds a palette from its serialized form, keeping
// the recorded names and tags verbatim rather than regenerating them.
// Missing fields fail with ErrMissingField; parallel arrays of unequal
// length fail with ErrRecordMismatch. Color components are reduced
// modulo 256.
func PaletteFromRecord(rec *PaletteRecord) (*Palette, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: palette", ErrMissingField)
	}
	if rec.Colors == nil {
		return nil, fmt.Errorf("%w: palette.colors", ErrMissingField)
	}
	if rec.FullNames == nil {
		return nil, fmt.Errorf("%w: palette.full_names", ErrMissingField)
	}
	if rec.ShortTags == nil {
		return nil, fmt.Errorf("%w: palette.short_tags", ErrMissingField)
	}
	if len(rec.FullNames) != len(rec.Colors) || len(rec.ShortTags) != len(rec.Colors) {
		return nil, fmt.Errorf("%w: %d colors, %d full names, %d short tags",
			ErrRecordMismatch, len(rec.Colors), len(rec.FullNames), len(rec.ShortTags))
	}

	p := &Palette{
		colors:    make([]RGB, len(rec.Colors)),
		fullNames: slices.Clone(rec.FullNames),
		shortTags: slices.Clone(rec.ShortTags),
	}
	for i, c := range rec.Colors {
		p.colors[i] = RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
	}
	return p, nil
}

// ToRecord converts the chart to its serialized form.
func (c *Chart) ToRecord() *Record {
	names, _ := c.TextPattern(c.Bounds())
	tags, _ := c.ColorTags(c.Bounds())
	return &Record{
		Pattern:   names,
		ColorTags: tags,
		Palette:   c.palette.ToRecord(),
	}
}

// FromRecord rebuilds a chart from its serialized form. The palette is
// restored verbatim, including names, tags, and entry order. Unrecognized
// stitch names become KindUnknown cells; color tags the palette does not
// carry fall back to DefaultColor, which is appended to the palette when
// absent.
//
// Missing top-level fields fail with ErrMissingField. Ragged rows, or
// pattern and color_tags grids of different shapes, fail with ErrShape.
func FromRecord(rec *Record) (*Chart, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: record", ErrMissingField)
	}
	if rec.Pattern == nil {
		return nil, fmt.Errorf("%w: pattern", ErrMissingField)
	}
	if rec.ColorTags == nil {
		return nil, fmt.Errorf("%w: color_tags", ErrMissingField)
	}
	pal, err := PaletteFromRecord(rec.Palette)
	if err != nil {
		return nil, err
	}

	rows := len(rec.Pattern)
	cols := 0
	if rows > 0 {
		cols = len(rec.Pattern[0])
	}
	for i, row := range rec.Pattern {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: pattern row %d has %d cells, want %d", ErrShape, i, len(row), cols)
		}
	}
	if len(rec.ColorTags) != rows {
		return nil, fmt.Errorf("%w: color_tags has %d rows, pattern has %d", ErrShape, len(rec.ColorTags), rows)
	}
	for i, row := range rec.ColorTags {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: color_tags row %d has %d cells, want %d", ErrShape, i, len(row), cols)
		}
	}

	c := &Chart{
		rows:     rows,
		cols:     cols,
		pattern:  make([]StitchKind, 0, rows*cols),
		colorIdx: make([]int, 0, rows*cols),
		palette:  pal,
	}
	for _, row := range rec.Pattern {
		for _, name := range row {
			c.pattern = append(c.pattern, ParseKind(name))
		}
	}
	for _, row := range rec.ColorTags {
		for _, tag := range row {
			idx, ok := pal.indexByTag(tag)
			if !ok {
				idx = pal.Append(DefaultColor)
			}
			c.colorIdx = append(c.colorIdx, idx)
		}
	}
	return c, nil
}

// Encode writes the chart as a JSON record to w. Pattern rows, color-tag
// rows, and palette colors each stay on one line, so the shape of the file
// mirrors the shape of the chart.
func (c *Chart) Encode(w io.Writer) error {
	rec := c.ToRecord()

	var b bytes.Buffer
	b.WriteString("{\n  \"pattern\": ")
	writeGrid(&b, rec.Pattern, "    ", "  ")
	b.WriteString(",\n  \"color_tags\": ")
	writeGrid(&b, rec.ColorTags, "    ", "  ")
	b.WriteString(",\n  \"palette\": {\n    \"colors\": ")
	writeGrid(&b, rec.Palette.Colors, "      ", "    ")
	b.WriteString(",\n    \"full_names\": ")
	writeValue(&b, rec.Palette.FullNames)
	b.WriteString(",\n    \"short_tags\": ")
	writeValue(&b, rec.Palette.ShortTags)
	b.WriteString("\n  }\n}\n")

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("knit: encode chart: %w", err)
	}
	return nil
}

// writeGrid renders a slice of rows one row per line inside a JSON array.
func writeGrid[R any](b *bytes.Buffer, rows []R, rowIndent, closeIndent string) {
	if len(rows) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, row := range rows {
		b.WriteString(rowIndent)
		writeValue(b, row)
		if i < len(rows)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closeIndent)
	b.WriteByte(']')
}

// writeValue marshals v onto one line. The record's value types (string
// slices and small integer arrays) cannot fail to marshal.
func writeValue(b *bytes.Buffer, v any) {
	data, _ := json.Marshal(v)
	b.Write(data)
}

// Decode reads a chart record from r.
func Decode(r io.Reader) (*Chart, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("knit: decode chart: %w", err)
	}
	return FromRecord(&rec)
}

// Save writes the chart to path in the JSON record format.
func (c *Chart) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("knit: create chart file: %w", err)
	}
	if err := c.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Debug("chart saved", "path", path, "rows", c.rows, "cols", c.cols)
	return nil
}

// Load reads a chart written by Save.
func Load(path string) (*Chart, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("knit: open chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save writes the palette to path as indented JSON.
func (p *Palette) Save(path string) error {
	data, err := json.MarshalIndent(p.ToRecord(), "", "  ")
	if err != nil {
		return fmt.Errorf("knit: encode palette: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("knit: write palette file: %w", err)
	}
	return nil
}

// LoadPalette reads a palette written by Palette.Save.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("knit: read palette file: %w", err)
	}
	var rec PaletteRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("knit: decode palette: %w", err)
	}
	return PaletteFromRecord(&rec)
}
