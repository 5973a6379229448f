package palette

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"testing"

	"github.com/prism-palette/api/colorspace"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// fixedSource always yields the same value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (s fixedSource) Seed(int64)   {}

func TestRandomColorFormat(t *testing.T) {
	g := NewSeededGenerator(42)
	for i := 0; i < 1000; i++ {
		c := g.RandomColor()
		if !hexPattern.MatchString(c) {
			t.Fatalf("RandomColor() = %q, not canonical hex", c)
		}
	}
}

func TestRandomColorCoversRange(t *testing.T) {
	if got := NewGenerator(fixedSource(0)).RandomColor(); got != "#000000" {
		t.Errorf("lowest draw = %s, want #000000", got)
	}
	if got := NewGenerator(fixedSource(math.MaxInt64)).RandomColor(); got != "#FFFFFF" {
		t.Errorf("highest draw = %s, want #FFFFFF", got)
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewSeededGenerator(20240101).RandomPalette(5)
	b := NewSeededGenerator(20240101).RandomPalette(5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
	c := NewSeededGenerator(20240102).RandomPalette(5)
	if reflect.DeepEqual(a, c) {
		t.Errorf("different seeds produced identical palettes %v", a)
	}
}

func TestRandomPalette(t *testing.T) {
	g := NewGenerator(nil)
	for _, count := range []int{-3, 0, 1, 5, 12} {
		p := g.RandomPalette(count)
		want := count
		if want < 0 {
			want = 0
		}
		if p == nil || len(p) != want {
			t.Errorf("RandomPalette(%d) = %v, want %d colors", count, p, want)
		}
	}

	dup := NewGenerator(fixedSource(0)).RandomPalette(3)
	if !reflect.DeepEqual(dup, Palette{"#000000", "#000000", "#000000"}) {
		t.Errorf("duplicates should be kept, got %v", dup)
	}
}

func TestPaletteReplace(t *testing.T) {
	p := Palette{"#FF0000", "#00FF00", "#0000FF"}
	got, err := p.Replace(1, "abcdef")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !reflect.DeepEqual(got, Palette{"#FF0000", "#ABCDEF", "#0000FF"}) {
		t.Errorf("Replace = %v", got)
	}
	if p[1] != "#00FF00" {
		t.Errorf("Replace mutated the original palette: %v", p)
	}
	if _, err := p.Replace(3, "#000000"); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := p.Replace(0, "red"); !errors.Is(err, colorspace.ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]string{"ff0000", " #00ff00"})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !reflect.DeepEqual(got, Palette{"#FF0000", "#00FF00"}) {
		t.Errorf("Normalize = %v", got)
	}
	if _, err := Normalize([]string{"#FF0000", "#XYZ"}); !errors.Is(err, colorspace.ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}
}
