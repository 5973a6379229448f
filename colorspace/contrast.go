package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// TextSize selects between the normal and large text thresholds.
type TextSize string

const (
	TextNormal TextSize = "normal"
	TextLarge  TextSize = "large"
)

var (
	ErrInvalidLevel    = errors.New("invalid WCAG level, expected AA or AAA")
	ErrInvalidTextSize = errors.New("invalid text size, expected normal or large")
)

// ParseLevel accepts "AA" or "AAA" in any case. An empty string means AA.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case "", LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// ParseTextSize accepts "normal" or "large". An empty string means normal.
func ParseTextSize(s string) (TextSize, error) {
	switch TextSize(strings.ToLower(strings.TrimSpace(s))) {
	case "", TextNormal:
		return TextNormal, nil
	case TextLarge:
		return TextLarge, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTextSize, s)
}

// MinContrast returns the minimum ratio required by level for text of the
// given size.
func MinContrast(level Level, size TextSize) float64 {
	large := size == TextLarge
	if level == LevelAAA {
		if large {
			return 4.5
		}
		return 7
	}
	if large {
		return 3
	}
	return 4.5
}

// Luminance returns the WCAG relative luminance of a color in [0,1].
func Luminance(hex string) (float64, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), nil
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio is symmetric in its arguments and lies in [1,21].
func ContrastRatio(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05), nil
}

func IsAccessible(fg, bg string, level Level, size TextSize) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return ratio >= MinContrast(level, size), nil
}

// Report describes how a foreground/background pair scores against WCAG.
type Report struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	Ratio      float64  `json:"ratio"`
	RatioText  string   `json:"ratioText"`
	Level      Level    `json:"level"`
	TextSize   TextSize `json:"textSize"`
	Passes     bool     `json:"passes"`
	AANormal   bool     `json:"aaNormal"`
	AALarge    bool     `json:"aaLarge"`
	AAANormal  bool     `json:"aaaNormal"`
	AAALarge   bool     `json:"aaaLarge"`
}

func Check(fg, bg string, level Level, size TextSize) (Report, error) {
	fgHex, err := ParseHex(fg)
	if err != nil {
		return Report{}, fmt.Errorf("foreground: %w", err)
	}
	bgHex, err := ParseHex(bg)
	if err != nil {
		return Report{}, fmt.Errorf("background: %w", err)
	}
	ratio, err := ContrastRatio(fgHex, bgHex)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Foreground: fgHex,
		Background: bgHex,
		Ratio:      ratio,
		RatioText:  fmt.Sprintf("%.2f:1", ratio),
		Level:      level,
		TextSize:   size,
		Passes:     ratio >= MinContrast(level, size),
		AANormal:   ratio >= MinContrast(LevelAA, TextNormal),
		AALarge:    ratio >= MinContrast(LevelAA, TextLarge),
		AAANormal:  ratio >= MinContrast(LevelAAA, TextNormal),
		AAALarge:   ratio >= MinContrast(LevelAAA, TextLarge),
	}, nil
}

// ReadableTextColor returns black or white, whichever reads better on top of
// hex, using perceived brightness.
func ReadableTextColor(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	brightness := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	if brightness > 0.5 {
		return "#000000", nil
	}
	return "#FFFFFF", nil
}
