package palette

import (
	"math"

	"github.com/prism-palette/api/colorspace"
)

type namedColor struct {
	name string
	rgb  colorspace.RGB
}

var namedColors = []namedColor{
	{"Red", colorspace.RGB{R: 0xFF, G: 0x00, B: 0x00}},
	{"Green", colorspace.RGB{R: 0x00, G: 0xFF, B: 0x00}},
	{"Blue", colorspace.RGB{R: 0x00, G: 0x00, B: 0xFF}},
	{"Yellow", colorspace.RGB{R: 0xFF, G: 0xFF, B: 0x00}},
	{"Cyan", colorspace.RGB{R: 0x00, G: 0xFF, B: 0xFF}},
	{"Magenta", colorspace.RGB{R: 0xFF, G: 0x00, B: 0xFF}},
	{"Orange", colorspace.RGB{R: 0xFF, G: 0xA5, B: 0x00}},
	{"Chartreuse", colorspace.RGB{R: 0x7F, G: 0xFF, B: 0x00}},
	{"Spring Green", colorspace.RGB{R: 0x00, G: 0xFF, B: 0x7F}},
	{"Azure", colorspace.RGB{R: 0x00, G: 0x7F, B: 0xFF}},
	{"Violet", colorspace.RGB{R: 0x7F, G: 0x00, B: 0xFF}},
	{"Rose", colorspace.RGB{R: 0xFF, G: 0x00, B: 0x7F}},
	{"White", colorspace.RGB{R: 0xFF, G: 0xFF, B: 0xFF}},
	{"Silver", colorspace.RGB{R: 0xC0, G: 0xC0, B: 0xC0}},
	{"Gray", colorspace.RGB{R: 0x80, G: 0x80, B: 0x80}},
	{"Black", colorspace.RGB{R: 0x00, G: 0x00, B: 0x00}},
	{"Maroon", colorspace.RGB{R: 0x80, G: 0x00, B: 0x00}},
	{"Olive", colorspace.RGB{R: 0x80, G: 0x80, B: 0x00}},
	{"Navy", colorspace.RGB{R: 0x00, G: 0x00, B: 0x80}},
	{"Purple", colorspace.RGB{R: 0x80, G: 0x00, B: 0x80}},
	{"Teal", colorspace.RGB{R: 0x00, G: 0x80, B: 0x80}},
	{"Brown", colorspace.RGB{R: 0xA5, G: 0x2A, B: 0x2A}},
	{"Coral", colorspace.RGB{R: 0xFF, G: 0x7F, B: 0x50}},
	{"Crimson", colorspace.RGB{R: 0xDC, G: 0x14, B: 0x3C}},
	{"Gold", colorspace.RGB{R: 0xFF, G: 0xD7, B: 0x00}},
	{"Indigo", colorspace.RGB{R: 0x4B, G: 0x00, B: 0x82}},
	{"Lavender", colorspace.RGB{R: 0xE6, G: 0xE6, B: 0xFA}},
	{"Pink", colorspace.RGB{R: 0xFF, G: 0xC0, B: 0xCB}},
	{"Plum", colorspace.RGB{R: 0xDD, G: 0xA0, B: 0xDD}},
	{"Salmon", colorspace.RGB{R: 0xFA, G: 0x80, B: 0x72}},
	{"Sienna", colorspace.RGB{R: 0xA0, G: 0x52, B: 0x2D}},
	{"Tan", colorspace.RGB{R: 0xD2, G: 0xB4, B: 0x8C}},
	{"Turquoise", colorspace.RGB{R: 0x40, G: 0xE0, B: 0xD0}},
	{"Violet", colorspace.RGB{R: 0xEE, G: 0x82, B: 0xEE}},
}

// Name returns the closest entry of the named color table by RGB distance.
// Ties keep the earlier entry.
func Name(hex string) (string, error) {
	c, err := colorspace.HexToRGB(hex)
	if err != nil {
		return "", err
	}

	best := namedColors[0]
	bestDistance := rgbDistance(c, best.rgb)
	for _, candidate := range namedColors[1:] {
		if d := rgbDistance(c, candidate.rgb); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best.name, nil
}

// DetailedName prefixes Name with Dark, Medium or Light based on perceived
// brightness. Achromatic names are returned bare.
func DetailedName(hex string) (string, error) {
	name, err := Name(hex)
	if err != nil {
		return "", err
	}
	switch name {
	case "Black", "White", "Gray", "Silver":
		return name, nil
	}

	c, _ := colorspace.HexToRGB(hex)
	brightness := float64(c.R*299+c.G*587+c.B*114) / 1000
	switch {
	case brightness < 85:
		return "Dark " + name, nil
	case brightness > 170:
		return "Light " + name, nil
	default:
		return "Medium " + name, nil
	}
}

func rgbDistance(a, b colorspace.RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
