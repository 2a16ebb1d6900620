package knit

import (
	"fmt"
	"strconv"
	"strings"
)

// referenceColor ties a canonical yarn color name and short tag to its
// reference RGB value.
type referenceColor struct {
	name string
	tag  string
	rgb  RGB
}

// referenceColors is the fixed naming table for palette entries. Scan order
// breaks distance ties, so the order is part of the naming contract. The
// tags dodge prefix confusion: Green is "Gr" beside Gray's "Gy", and Blue
// is "Bl" so "B" stays Black.
var referenceColors = [...]referenceColor{
	{"White", "W", RGB{255, 255, 255}},
	{"Black", "B", RGB{0, 0, 0}},
	{"Gray", "Gy", RGB{128, 128, 128}},
	{"Red", "R", RGB{255, 0, 0}},
	{"Orange", "O", RGB{255, 165, 0}},
	{"Yellow", "Y", RGB{255, 255, 0}},
	{"Green", "Gr", RGB{0, 128, 0}},
	{"Blue", "Bl", RGB{0, 0, 255}},
	{"Navy", "N", RGB{0, 0, 128}},
	{"Purple", "P", RGB{128, 0, 128}},
	{"Pink", "Pi", RGB{255, 182, 193}},
	{"Brown", "Br", RGB{165, 42, 42}},
}

// nearestReference returns the index of the reference color closest to c
// by squared Euclidean distance. The earliest entry wins ties.
func nearestReference(c RGB) int {
	best := 0
	bestDist := distanceSq(c, referenceColors[0].rgb)
	for i := 1; i < len(referenceColors); i++ {
		if d := distanceSq(c, referenceColors[i].rgb); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Palette stores the yarn colors of a chart together with generated
// human-readable names and short tags. The three internal slices run
// parallel and grow append-only; charts rebuild the whole palette when
// entries fall out of use.
type Palette struct {
	colors    []RGB
	fullNames []string
	shortTags []string
}

// NewPalette builds a palette from colors in input order, naming each
// entry after its nearest reference color. Repeated base names get a
// numeric suffix in assignment order, so the second near-white color
// becomes "White2" with tag "W2".
func NewPalette(colors []RGB) *Palette {
	p := &Palette{
		colors:    make([]RGB, 0, len(colors)),
		fullNames: make([]string, 0, len(colors)),
		shortTags: make([]string, 0, len(colors)),
	}
	counts := make(map[string]int, len(referenceColors))
	for _, c := range colors {
		ref := referenceColors[nearestReference(c)]
		counts[ref.name]++
		name, tag := ref.name, ref.tag
		if n := counts[ref.name]; n > 1 {
			name += strconv.Itoa(n)
			tag += strconv.Itoa(n)
		}
		p.colors = append(p.colors, c)
		p.fullNames = append(p.fullNames, name)
		p.shortTags = append(p.shortTags, tag)
	}
	return p
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// IndexOf returns the index of the first entry whose color equals c
// exactly, or -1 and false when no entry matches.
func (p *Palette) IndexOf(c RGB) (int, bool) {
	for i, pc := range p.colors {
		if pc == c {
			return i, true
		}
	}
	return -1, false
}

// Color returns the RGB value stored at index i.
func (p *Palette) Color(i int) (RGB, bool) {
	if i < 0 || i >= len(p.colors) {
		return RGB{}, false
	}
	return p.colors[i], true
}

// Name returns the full color name stored at index i, such as "White2".
func (p *Palette) Name(i int) (string, bool) {
	if i < 0 || i >= len(p.fullNames) {
		return "", false
	}
	return p.fullNames[i], true
}

// Tag returns the short color tag stored at index i, such as "W2".
func (p *Palette) Tag(i int) (string, bool) {
	if i < 0 || i >= len(p.shortTags) {
		return "", false
	}
	return p.shortTags[i], true
}

// ColorByName returns the color of the entry with the given full name.
func (p *Palette) ColorByName(name string) (RGB, bool) {
	for i, n := range p.fullNames {
		if n == name {
			return p.colors[i], true
		}
	}
	return RGB{}, false
}

// ColorByTag returns the color of the entry with the given short tag.
func (p *Palette) ColorByTag(tag string) (RGB, bool) {
	if i, ok := p.indexByTag(tag); ok {
		return p.colors[i], true
	}
	return RGB{}, false
}

// indexByTag returns the index of the entry with the given short tag.
// Tags are unique within a palette built by this package; records loaded
// from disk resolve cells through this lookup.
func (p *Palette) indexByTag(tag string) (int, bool) {
	for i, t := range p.shortTags {
		if t == tag {
			return i, true
		}
	}
	return -1, false
}

// Append adds c to the palette and returns its index. A color already
// present keeps its entry and name; the existing index is returned.
func (p *Palette) Append(c RGB) int {
	if i, ok := p.IndexOf(c); ok {
		return i
	}
	ref := referenceColors[nearestReference(c)]
	name, tag := ref.name, ref.tag
	if n := p.countBase(ref.name); n > 0 {
		name += strconv.Itoa(n + 1)
		tag += strconv.Itoa(n + 1)
	}
	p.colors = append(p.colors, c)
	p.fullNames = append(p.fullNames, name)
	p.shortTags = append(p.shortTags, tag)
	return len(p.colors) - 1
}

// countBase counts entries whose full name starts with base. Full names
// are counted rather than tags because tags collide as prefixes ("B"
// prefixes "Bl" and "Br") while reference names never do.
func (p *Palette) countBase(base string) int {
	n := 0
	for _, name := range p.fullNames {
		if strings.HasPrefix(name, base) {
			n++
		}
	}
	return n
}

// String lists the palette one entry per line:
//
//	White    -> W   -> (255, 255, 255)
//	Black    -> B   -> (0, 0, 0)
func (p *Palette) String() string {
	var b strings.Builder
	for i := range p.colors {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-8s -> %-3s -> %s", p.fullNames[i], p.shortTags[i], p.colors[i])
	}
	return b.String()
}
