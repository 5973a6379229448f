package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prism-palette/api/colorspace"
)

// Scheme names a harmony rule mapping one base color to a palette.
type Scheme string

const (
	Complementary Scheme = "complementary"
	Analogous     Scheme = "analogous"
	Triadic       Scheme = "triadic"
	Tetradic      Scheme = "tetradic"
	Monochromatic Scheme = "monochromatic"
)

// Schemes lists every supported scheme in display order.
var Schemes = []Scheme{Complementary, Analogous, Triadic, Tetradic, Monochromatic}

const (
	analogousAngle       = 30
	DefaultAnalogous     = 2
	DefaultMonochromatic = 5
)

var (
	ErrUnknownScheme   = errors.New("unknown color scheme")
	ErrInvalidProperty = errors.New("invalid property, expected brightness or saturation")
)

func ParseScheme(s string) (Scheme, error) {
	scheme := Scheme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Schemes {
		if scheme == known {
			return scheme, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// Generate dispatches to the scheme function. count is only used by the
// analogous and monochromatic schemes; zero selects their defaults.
func Generate(scheme Scheme, base string, count int) (Palette, error) {
	switch scheme {
	case Complementary:
		return ComplementaryColors(base)
	case Analogous:
		if count == 0 {
			count = DefaultAnalogous
		}
		return AnalogousColors(base, count)
	case Triadic:
		return TriadicColors(base)
	case Tetradic:
		return TetradicColors(base)
	case Monochromatic:
		if count == 0 {
			count = DefaultMonochromatic
		}
		return MonochromaticColors(base, count)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// Rotate shifts the hue of base by degrees, keeping saturation and lightness.
func Rotate(base string, degrees int) (string, error) {
	hsl, err := colorspace.HexToHSL(base)
	if err != nil {
		return "", err
	}
	return rotate(hsl, degrees), nil
}

func rotate(hsl colorspace.HSL, degrees int) string {
	return colorspace.HSLToHex(colorspace.NormalizeHue(hsl.H+degrees), hsl.S, hsl.L)
}

// withRotations returns base followed by base rotated by each offset.
func withRotations(base string, offsets ...int) (Palette, error) {
	hex, err := colorspace.ParseHex(base)
	if err != nil {
		return nil, err
	}
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		return nil, err
	}
	p := Palette{hex}
	for _, offset := range offsets {
		p = append(p, rotate(hsl, offset))
	}
	return p, nil
}

func ComplementaryColors(base string) (Palette, error) {
	return withRotations(base, 180)
}

func TriadicColors(base string) (Palette, error) {
	return withRotations(base, 120, 240)
}

func TetradicColors(base string) (Palette, error) {
	return withRotations(base, 90, 180, 270)
}

// AnalogousColors places rotations of ±30°·i for i in 1..count around the
// base, negative rotations first. A count of one only adds the +30° color.
func AnalogousColors(base string, count int) (Palette, error) {
	hex, err := colorspace.ParseHex(base)
	if err != nil {
		return nil, err
	}
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		return nil, err
	}

	var before, after Palette
	for i := 1; i <= count; i++ {
		after = append(after, rotate(hsl, analogousAngle*i))
		if count > 1 {
			before = append(Palette{rotate(hsl, -analogousAngle*i)}, before...)
		}
	}

	p := make(Palette, 0, len(before)+1+len(after))
	p = append(p, before...)
	p = append(p, hex)
	return append(p, after...), nil
}

// MonochromaticColors keeps hue and saturation and steps lightness by 15
// starting 30 below the base, clamped into [5,95].
func MonochromaticColors(base string, count int) (Palette, error) {
	hsl, err := colorspace.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return Palette{}, nil
	}
	p := make(Palette, 0, count)
	for i := 0; i < count; i++ {
		l := colorspace.Clamp(hsl.L-30+i*15, 5, 95)
		p = append(p, colorspace.HSLToHex(hsl.H, hsl.S, l))
	}
	return p, nil
}

// Property is an HSL component that can be nudged interactively.
type Property string

const (
	Brightness Property = "brightness"
	Saturation Property = "saturation"
)

func ParseProperty(s string) (Property, error) {
	switch Property(strings.ToLower(strings.TrimSpace(s))) {
	case Brightness:
		return Brightness, nil
	case Saturation:
		return Saturation, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProperty, s)
}

// Adjust adds delta to the lightness or saturation of color, clamped into
// [0,100].
func Adjust(color string, property Property, delta int) (string, error) {
	hsl, err := colorspace.HexToHSL(color)
	if err != nil {
		return "", err
	}
	switch property {
	case Brightness:
		hsl.L = colorspace.Clamp(hsl.L+delta, 0, 100)
	case Saturation:
		hsl.S = colorspace.Clamp(hsl.S+delta, 0, 100)
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProperty, property)
	}
	return hsl.Hex(), nil
}
