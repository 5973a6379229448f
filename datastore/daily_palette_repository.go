package datastore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/prism-palette/api/models"
)

const dailyPaletteKey = "prism_daily_palette"

type DailyPaletteRepository interface {
	Create(daily models.DailyPalette) (models.DailyPalette, error)
	GetByDate(date time.Time) (models.DailyPalette, error)
	GetToday() (models.DailyPalette, error)
}

type DailyPaletteStore struct {
	kv KeyValueStore
}

func NewDailyPaletteStore(kv KeyValueStore) DailyPaletteStore {
	return DailyPaletteStore{kv: kv}
}

// DateKey formats date as the YYYY-MM-DD day it falls on
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// Create stores daily under its Date, replacing any palette already there
func (ds DailyPaletteStore) Create(daily models.DailyPalette) (models.DailyPalette, error) {
	raw, err := json.Marshal(daily)
	if err != nil {
		return models.DailyPalette{}, err
	}
	if err := ds.kv.Set(ownerKey(dailyPaletteKey, daily.Date), string(raw)); err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to create daily palette: %v", err)
	}
	return daily, nil
}

// GetByDate returns NoRowsError when nothing was generated for that day
func (ds DailyPaletteStore) GetByDate(date time.Time) (models.DailyPalette, error) {
	key := DateKey(date)
	raw, ok, err := ds.kv.Get(ownerKey(dailyPaletteKey, key))
	if err != nil {
		return models.DailyPalette{}, err
	}
	if !ok {
		return models.DailyPalette{}, NoRowsError{true, fmt.Errorf("no daily palette for %s", key)}
	}

	var daily models.DailyPalette
	if err := json.Unmarshal([]byte(raw), &daily); err != nil {
		return models.DailyPalette{}, fmt.Errorf("corrupt daily palette for %s: %v", key, err)
	}
	return daily, nil
}

func (ds DailyPaletteStore) GetToday() (models.DailyPalette, error) {
	return ds.GetByDate(time.Now())
}
