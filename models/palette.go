package models

import "time"

// SavedPalette is a named palette persisted for a user
type SavedPalette struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Colors    []string  `json:"colors"`
	CreatedAt time.Time `json:"createdAt"`
}

type SavePaletteRequest struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Colors []string `json:"colors" validate:"required,min=1,max=64,dive,required"`
}

type RenamePaletteRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type PaletteHistoryRequest struct {
	Colors []string `json:"colors" validate:"required,min=1,max=64,dive,required"`
}
