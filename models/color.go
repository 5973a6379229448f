package models

import "github.com/prism-palette/api/colorspace"

// ColorInfo describes a single color in every representation the API exposes
type ColorInfo struct {
	Hex          string         `json:"hex"`
	RGB          colorspace.RGB `json:"rgb"`
	HSL          colorspace.HSL `json:"hsl"`
	Name         string         `json:"name"`
	DetailedName string         `json:"detailedName"`
	Luminance    float64        `json:"luminance"`
	TextColor    string         `json:"textColor"`
}

type AdjustColorRequest struct {
	Color    string `json:"color" validate:"required"`
	Property string `json:"property" validate:"required,oneof=brightness saturation"`
	Delta    int    `json:"delta" validate:"gte=-100,lte=100"`
}

type AdjustColorResponse struct {
	Original string `json:"original"`
	Adjusted string `json:"adjusted"`
}

type SchemeResponse struct {
	Scheme string   `json:"scheme"`
	Base   string   `json:"base"`
	Colors []string `json:"colors"`
}

type ExportRequest struct {
	Colors []string `json:"colors" validate:"required,min=1,max=64,dive,required"`
	Format string   `json:"format" validate:"required,oneof=css scss json"`
}
