package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Format is an export text format.
type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown export format, expected css, scss or json")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSS:
		return FormatCSS, nil
	case FormatSCSS:
		return FormatSCSS, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForExport renders colors as CSS custom properties, SCSS variables or
// a JSON object keyed color-1..color-n. Colors are written as given.
func FormatForExport(colors []string, format Format) (string, error) {
	switch format {
	case FormatCSS:
		return joinVariables(colors, "--color-"), nil
	case FormatSCSS:
		return joinVariables(colors, "$color-"), nil
	case FormatJSON:
		return orderedJSON(colors)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func joinVariables(colors []string, prefix string) string {
	lines := make([]string, len(colors))
	for i, c := range colors {
		lines[i] = fmt.Sprintf("%s%d: %s;", prefix, i+1, c)
	}
	return strings.Join(lines, "\n")
}

// orderedJSON keeps keys in palette order, which encoding/json maps would
// sort lexically (color-10 before color-2).
func orderedJSON(colors []string) (string, error) {
	if len(colors) == 0 {
		return "{}", nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, c := range colors {
		key, err := json.Marshal(fmt.Sprintf("color-%d", i+1))
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(c)
		if err != nil {
			return "", err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(colors)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String(), nil
}
