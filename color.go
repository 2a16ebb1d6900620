package knit

import (
	"fmt"
	"image/color"
)

// RGB represents a yarn color with 8-bit red, green, and blue components.
// It is the palette's native color representation; charts have no alpha.
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the gray used for every cell when a chart is built
// without color information, and the fallback for unresolvable color tags
// during record loading.
var DefaultColor = RGB{128, 128, 128}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// FromColor converts a standard color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String formats the color as "(r, g, b)", the form used by palette
// listings.
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	switch len(s) {
	case 3: // RGB
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Less orders colors lexicographically by (R, G, B). Chart construction
// sorts deduplicated colors with it so palette order is deterministic.
func (c RGB) Less(other RGB) bool {
	if c.R != other.R {
		return c.R < other.R
	}
	if c.G != other.G {
		return c.G < other.G
	}
	return c.B < other.B
}

// distanceSq returns the squared Euclidean distance between two colors.
func distanceSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
