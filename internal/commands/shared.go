package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v2"

	"github.com/knitvis/knit"
)

// parseColor resolves a color flag. It accepts SVG 1.1 color names such as
// "red" or "navy" as well as hex notation ("#rrggbb", "fff").
func parseColor(s string) (knit.RGB, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return knit.RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return knit.ParseHex(s)
}

// parseRange parses a half-open "A:B" index range against an axis of
// length n. Either bound may be omitted, so ":4", "2:", and ":" are all
// valid.
func parseRange(s string, n int) (lo, hi int, err error) {
	before, after, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, fmt.Errorf("range %q must have the form A:B", s)
	}
	lo, hi = 0, n
	if before != "" {
		if lo, err = strconv.Atoi(before); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
	}
	if after != "" {
		if hi, err = strconv.Atoi(after); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
	}
	if lo < 0 || hi > n || lo > hi {
		return 0, 0, fmt.Errorf("range %q out of bounds for length %d", s, n)
	}
	return lo, hi, nil
}

func toJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func toYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
