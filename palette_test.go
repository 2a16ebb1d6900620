package knit

import (
	"strings"
	"testing"
)

// samplePalette builds the palette used across the palette tests: two
// near-white shades, black, and gray, in input order.
func samplePalette() *Palette {
	return NewPalette([]RGB{
		{255, 255, 255},
		{255, 255, 254},
		{0, 0, 0},
		{128, 128, 128},
	})
}

func TestNewPalette_Naming(t *testing.T) {
	p := samplePalette()

	wantNames := []string{"White", "White2", "Black", "Gray"}
	wantTags := []string{"W", "W2", "B", "Gy"}

	if p.Len() != len(wantNames) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(wantNames))
	}
	for i := range wantNames {
		name, ok := p.Name(i)
		if !ok || name != wantNames[i] {
			t.Errorf("Name(%d) = %q, want %q", i, name, wantNames[i])
		}
		tag, ok := p.Tag(i)
		if !ok || tag != wantTags[i] {
			t.Errorf("Tag(%d) = %q, want %q", i, tag, wantTags[i])
		}
	}
}

func TestNewPalette_NearestReference(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{"exact white", RGB{255, 255, 255}, "White"},
		{"exact navy", RGB{0, 0, 128}, "Navy"},
		{"light gray is closer to white", RGB{200, 200, 200}, "White"},
		{"dark gray", RGB{100, 100, 100}, "Gray"},
		{"magenta names as purple", RGB{255, 0, 255}, "Purple"},
		{"orange-ish", RGB{250, 160, 10}, "Orange"},
		// Equidistant from Black and Navy; the earlier table entry wins.
		{"tie goes to first entry", RGB{0, 0, 64}, "Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPalette([]RGB{tt.c})
			name, _ := p.Name(0)
			if name != tt.want {
				t.Errorf("NewPalette(%v) named entry %q, want %q", tt.c, name, tt.want)
			}
		})
	}
}

func TestPalette_ColorByName(t *testing.T) {
	p := samplePalette()

	tests := []struct {
		name string
		want RGB
	}{
		{"White", RGB{255, 255, 255}},
		{"White2", RGB{255, 255, 254}},
		{"Black", RGB{0, 0, 0}},
		{"Gray", RGB{128, 128, 128}},
	}
	for _, tt := range tests {
		got, ok := p.ColorByName(tt.name)
		if !ok {
			t.Errorf("ColorByName(%q) not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorByName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, ok := p.ColorByName("Red"); ok {
		t.Error("ColorByName(\"Red\") found a color in a palette without red")
	}
}

func TestPalette_ColorByTag(t *testing.T) {
	p := samplePalette()

	tests := []struct {
		tag  string
		want RGB
	}{
		{"W", RGB{255, 255, 255}},
		{"W2", RGB{255, 255, 254}},
		{"B", RGB{0, 0, 0}},
		{"Gy", RGB{128, 128, 128}},
	}
	for _, tt := range tests {
		got, ok := p.ColorByTag(tt.tag)
		if !ok {
			t.Errorf("ColorByTag(%q) not found", tt.tag)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorByTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}

	if _, ok := p.ColorByTag("R"); ok {
		t.Error("ColorByTag(\"R\") found a color in a palette without red")
	}
}

func TestPalette_IndexOf(t *testing.T) {
	p := samplePalette()

	if i, ok := p.IndexOf(RGB{0, 0, 0}); !ok || i != 2 {
		t.Errorf("IndexOf(black) = (%d, %v), want (2, true)", i, ok)
	}
	if i, ok := p.IndexOf(RGB{1, 2, 3}); ok || i != -1 {
		t.Errorf("IndexOf(absent) = (%d, %v), want (-1, false)", i, ok)
	}
}

func TestPalette_BoundsChecks(t *testing.T) {
	p := samplePalette()

	for _, i := range []int{-1, p.Len(), 100} {
		if _, ok := p.Color(i); ok {
			t.Errorf("Color(%d) reported ok for out-of-range index", i)
		}
		if _, ok := p.Name(i); ok {
			t.Errorf("Name(%d) reported ok for out-of-range index", i)
		}
		if _, ok := p.Tag(i); ok {
			t.Errorf("Tag(%d) reported ok for out-of-range index", i)
		}
	}
}

func TestPalette_UniqueTags(t *testing.T) {
	p := samplePalette()

	seen := make(map[string]bool)
	for i := 0; i < p.Len(); i++ {
		tag, _ := p.Tag(i)
		if seen[tag] {
			t.Errorf("tag %q assigned twice", tag)
		}
		seen[tag] = true
	}
}

func TestPalette_Append(t *testing.T) {
	p := samplePalette()

	// A brand-new color grows the palette and is named after its nearest
	// reference.
	idx := p.Append(RGB{255, 0, 255})
	if idx != 4 {
		t.Errorf("Append(magenta) = %d, want 4", idx)
	}
	if p.Len() != 5 {
		t.Errorf("Len() = %d after append, want 5", p.Len())
	}
	if name, _ := p.Name(idx); name != "Purple" {
		t.Errorf("appended color named %q, want %q", name, "Purple")
	}

	// An existing color returns its index without growing the palette.
	idx = p.Append(RGB{0, 0, 0})
	if idx != 2 {
		t.Errorf("Append(black) = %d, want existing index 2", idx)
	}
	if p.Len() != 5 {
		t.Errorf("Len() = %d after appending existing color, want 5", p.Len())
	}
}

func TestPalette_AppendSuffixes(t *testing.T) {
	p := samplePalette()

	// White and White2 exist, so further whites continue the sequence.
	idx3 := p.Append(RGB{254, 254, 254})
	idx4 := p.Append(RGB{253, 253, 253})

	name3, _ := p.Name(idx3)
	name4, _ := p.Name(idx4)
	if name3 != "White3" {
		t.Errorf("third white named %q, want %q", name3, "White3")
	}
	if name4 != "White4" {
		t.Errorf("fourth white named %q, want %q", name4, "White4")
	}

	tag3, _ := p.Tag(idx3)
	tag4, _ := p.Tag(idx4)
	if tag3 != "W3" || tag4 != "W4" {
		t.Errorf("tags = %q, %q, want W3, W4", tag3, tag4)
	}
}

func TestPalette_String(t *testing.T) {
	out := samplePalette().String()

	for _, line := range []string{
		"White    -> W   -> (255, 255, 255)",
		"White2   -> W2  -> (255, 255, 254)",
		"Black    -> B   -> (0, 0, 0)",
		"Gray     -> Gy  -> (128, 128, 128)",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("String() missing line %q:\n%s", line, out)
		}
	}
}

func TestNewPalette_Empty(t *testing.T) {
	p := NewPalette(nil)
	if p.Len() != 0 {
		t.Errorf("NewPalette(nil).Len() = %d, want 0", p.Len())
	}
	if p.String() != "" {
		t.Errorf("empty palette String() = %q, want empty", p.String())
	}
}

func BenchmarkNewPalette(b *testing.B) {
	colors := make([]RGB, 64)
	for i := range colors {
		colors[i] = RGB{uint8(i * 4), uint8(255 - i), uint8(i * 3)}
	}
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		NewPalette(colors)
	}
}
