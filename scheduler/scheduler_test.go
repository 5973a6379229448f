package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/prism-palette/api/datastore"
)

func TestDailySeed(t *testing.T) {
	day := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	if got := DailySeed(day); got != 20241231 {
		t.Errorf("DailySeed = %d, want 20241231", got)
	}
}

func TestGenerateDailyPaletteIsDeterministic(t *testing.T) {
	day := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	a := NewScheduler(datastore.NewDailyPaletteStore(datastore.NewMemoryStore()), 0)
	b := NewScheduler(datastore.NewDailyPaletteStore(datastore.NewMemoryStore()), 0)

	first, err := a.GenerateDailyPalette(day)
	if err != nil {
		t.Fatalf("GenerateDailyPalette: %v", err)
	}
	second, err := b.GenerateDailyPalette(day.Add(6 * time.Hour))
	if err != nil {
		t.Fatalf("GenerateDailyPalette: %v", err)
	}

	if len(first.Colors) != DefaultPaletteSize || len(first.Names) != DefaultPaletteSize {
		t.Fatalf("unexpected palette %+v", first)
	}
	if first.Date != "2024-06-01" || !reflect.DeepEqual(first.Colors, second.Colors) {
		t.Errorf("same day produced %v and %v", first.Colors, second.Colors)
	}
}

func TestGenerateDailyPaletteKeepsExisting(t *testing.T) {
	store := datastore.NewDailyPaletteStore(datastore.NewMemoryStore())
	s := NewScheduler(store, 3)
	day := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	first, _ := s.GenerateDailyPalette(day)
	s.PaletteSize = 7
	again, err := s.GenerateDailyPalette(day)
	if err != nil {
		t.Fatalf("GenerateDailyPalette: %v", err)
	}
	if len(again.Colors) != 3 || !reflect.DeepEqual(first.Colors, again.Colors) {
		t.Errorf("existing palette replaced: %v then %v", first.Colors, again.Colors)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(datastore.NewDailyPaletteStore(datastore.NewMemoryStore()), 0)
	s.Start()
	s.Stop()
	s.Stop()
}
