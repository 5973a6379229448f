// Package palette builds random and harmonic color palettes on top of the
// colorspace conversions.
package palette

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prism-palette/api/colorspace"
)

// Palette is an ordered list of canonical #RRGGBB colors.
type Palette []string

const maxColor = 0xFFFFFF

// Generator produces random colors from an injected source. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps src. A nil src is seeded from the current time.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.NewSource(seed))
}

// RandomColor draws uniformly from the whole 24-bit range.
func (g *Generator) RandomColor() string {
	return fmt.Sprintf("#%06X", g.rng.Intn(maxColor+1))
}

// RandomPalette returns count independent colors. Duplicates are allowed.
func (g *Generator) RandomPalette(count int) Palette {
	if count <= 0 {
		return Palette{}
	}
	p := make(Palette, 0, count)
	for i := 0; i < count; i++ {
		p = append(p, g.RandomColor())
	}
	return p
}

// Replace returns a copy of p with the color at index set to color.
func (p Palette) Replace(index int, color string) (Palette, error) {
	if index < 0 || index >= len(p) {
		return nil, fmt.Errorf("index %d out of range for palette of %d colors", index, len(p))
	}
	hex, err := colorspace.ParseHex(color)
	if err != nil {
		return nil, err
	}
	out := make(Palette, len(p))
	copy(out, p)
	out[index] = hex
	return out, nil
}

// Normalize validates every color and returns the canonical palette.
func Normalize(colors []string) (Palette, error) {
	p := make(Palette, 0, len(colors))
	for i, c := range colors {
		hex, err := colorspace.ParseHex(c)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		p = append(p, hex)
	}
	return p, nil
}
