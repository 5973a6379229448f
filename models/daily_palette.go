package models

import "time"

// DailyPalette is the palette of the day shared by every user
type DailyPalette struct {
	Date      string    `json:"date"`
	Colors    []string  `json:"colors"`
	Names     []string  `json:"names"`
	CreatedAt time.Time `json:"createdAt"`
}
