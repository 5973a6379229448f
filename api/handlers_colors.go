package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prism-palette/api/colorspace"
	"github.com/prism-palette/api/models"
	"github.com/prism-palette/api/palette"
)

const (
	defaultPaletteCount = 5
	maxPaletteCount     = 64
)

func buildColorInfo(hex string) (models.ColorInfo, error) {
	canonical, err := colorspace.ParseHex(hex)
	if err != nil {
		return models.ColorInfo{}, err
	}
	// canonical input cannot fail the conversions below
	rgb, _ := colorspace.HexToRGB(canonical)
	hsl, _ := colorspace.HexToHSL(canonical)
	luminance, _ := colorspace.Luminance(canonical)
	textColor, _ := colorspace.ReadableTextColor(canonical)
	name, _ := palette.Name(canonical)
	detailed, _ := palette.DetailedName(canonical)

	return models.ColorInfo{
		Hex:          canonical,
		RGB:          rgb,
		HSL:          hsl,
		Name:         name,
		DetailedName: detailed,
		Luminance:    luminance,
		TextColor:    textColor,
	}, nil
}

// queryInt reads an optional integer parameter bounded by [min,max]
func queryInt(r *http.Request, key string, fallback, min, max int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return value, nil
}

// GET /v1/colors/random
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	info, err := buildColorInfo(app.randomColor())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
}

// GET /v1/colors/info?hex=
func (app *Application) getColorInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	hex := r.URL.Query().Get("hex")
	if hex == "" {
		app.badRequest(w, r, errors.New("hex is required"))
		return
	}

	info, err := buildColorInfo(hex)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
}

// POST /v1/colors/adjust
func (app *Application) adjustColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	req := models.AdjustColorRequest{}
	if !decodeAndValidate(app, w, r, &req) {
		return
	}

	original, err := colorspace.ParseHex(req.Color)
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	property, err := palette.ParseProperty(req.Property)
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	adjusted, err := palette.Adjust(original, property, req.Delta)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.AdjustColorResponse{Original: original, Adjusted: adjusted})
}

// GET /v1/palettes/random?count=5
func (app *Application) getRandomPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	count, err := queryInt(r, "count", defaultPaletteCount, 0, maxPaletteCount)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(app.randomPalette(count))
}

// GET /v1/schemes?base=&type=&count=
func (app *Application) getScheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	query := r.URL.Query()
	base, err := colorspace.ParseHex(query.Get("base"))
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	scheme, err := palette.ParseScheme(query.Get("type"))
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	count, err := queryInt(r, "count", 0, 0, maxPaletteCount)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	colors, err := palette.Generate(scheme, base, count)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SchemeResponse{Scheme: string(scheme), Base: base, Colors: colors})
}

// GET /v1/accessibility?fg=&bg=&level=AA&size=normal
func (app *Application) checkAccessibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	query := r.URL.Query()
	level, err := colorspace.ParseLevel(query.Get("level"))
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	size, err := colorspace.ParseTextSize(query.Get("size"))
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	report, err := colorspace.Check(query.Get("fg"), query.Get("bg"), level, size)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

// POST /v1/palettes/export
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	req := models.ExportRequest{}
	if !decodeAndValidate(app, w, r, &req) {
		return
	}

	colors, err := palette.Normalize(req.Colors)
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	format, err := palette.ParseFormat(req.Format)
	if err != nil {
		app.inputError(w, r, err)
		return
	}
	out, err := palette.FormatForExport(colors, format)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	if format == palette.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}
