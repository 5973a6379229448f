// Package colorspace converts colors between hex, RGB and HSL and computes
// WCAG luminance and contrast.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidColorFormat = errors.New("invalid color format, expected 6 hex digits")

// RGB holds 8-bit channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ParseHex validates a color and returns it as uppercase #RRGGBB.
// The leading # is optional and surrounding whitespace is ignored.
func ParseHex(s string) (string, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(clean) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	for _, c := range clean {
		if !isHexDigit(c) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}
	return "#" + strings.ToUpper(clean), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func HexToRGB(hex string) (RGB, error) {
	canonical, err := ParseHex(hex)
	if err != nil {
		return RGB{}, err
	}
	v, err := strconv.ParseUint(canonical[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return RGB{
		R: int(v>>16) & 0xFF,
		G: int(v>>8) & 0xFF,
		B: int(v) & 0xFF,
	}, nil
}

// RGBToHex clamps every channel into [0,255] before encoding.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r, 0, 255), clamp(g, 0, 255), clamp(b, 0, 255))
}

func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

func HexToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}

	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// HSLToHex wraps hue into [0,360) and clamps saturation and lightness into
// [0,100].
func HSLToHex(h, s, l int) string {
	hue := float64(NormalizeHue(h)) / 360
	sat := float64(clamp(s, 0, 100)) / 100
	lig := float64(clamp(l, 0, 100)) / 100

	var r, g, b float64
	if sat == 0 {
		r, g, b = lig, lig, lig
	} else {
		var q float64
		if lig < 0.5 {
			q = lig * (1 + sat)
		} else {
			q = lig + sat - lig*sat
		}
		p := 2*lig - q
		r = hueToRGB(p, q, hue+1.0/3)
		g = hueToRGB(p, q, hue)
		b = hueToRGB(p, q, hue-1.0/3)
	}

	return RGBToHex(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	)
}

func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// NormalizeHue maps any integer angle onto [0,360).
func NormalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp is exported for callers adjusting HSL components.
func Clamp(v, lo, hi int) int {
	return clamp(v, lo, hi)
}
