package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/models"
	"github.com/prism-palette/api/palette"
)

const DefaultPaletteSize = 5

type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	PaletteSize      int
	timer            *time.Timer
	ticker           *time.Ticker
	done             chan struct{}
	stopOnce         sync.Once
	mu               sync.Mutex
}

func NewScheduler(repo datastore.DailyPaletteRepository, size int) *Scheduler {
	if size <= 0 {
		size = DefaultPaletteSize
	}
	return &Scheduler{
		DailyPaletteRepo: repo,
		PaletteSize:      size,
		done:             make(chan struct{}),
	}
}

// Start makes sure today's palette exists, then runs at midnight every day
func (s *Scheduler) Start() {
	if _, err := s.GenerateDailyPalette(time.Now()); err != nil {
		log.Printf("Error generating today's palette: %v", err)
	}

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily palette generation in %v", durationUntilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateDailyPalette(time.Now())

		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		go func() {
			for {
				select {
				case t := <-ticker.C:
					s.GenerateDailyPalette(t)
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler; calling it more than once is a no-op
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.mu.Unlock()
		close(s.done)
		log.Println("Scheduler stopped")
	})
}

// DailySeed maps a calendar day onto a generator seed (YYYYMMDD), so the
// palette for a given day is the same wherever it is generated.
func DailySeed(day time.Time) int64 {
	return int64(day.Year()*10000 + int(day.Month())*100 + day.Day())
}

// GenerateDailyPalette creates the palette for day unless one already exists
func (s *Scheduler) GenerateDailyPalette(day time.Time) (models.DailyPalette, error) {
	key := datastore.DateKey(day)

	existing, err := s.DailyPaletteRepo.GetByDate(day)
	if err == nil {
		log.Printf("Daily palette already exists for %s: %v", key, existing.Colors)
		return existing, nil
	}
	if _, noRows := err.(datastore.NoRowsError); !noRows {
		log.Printf("Error reading daily palette for %s: %v", key, err)
		return models.DailyPalette{}, err
	}

	colors := palette.NewSeededGenerator(DailySeed(day)).RandomPalette(s.PaletteSize)
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i], _ = palette.DetailedName(c)
	}

	daily := models.DailyPalette{
		Date:      key,
		Colors:    colors,
		Names:     names,
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.DailyPaletteRepo.Create(daily)
	if err != nil {
		log.Printf("Error saving daily palette: %v", err)
		return models.DailyPalette{}, err
	}

	log.Printf("Successfully generated daily palette for %s: %v", saved.Date, saved.Colors)
	return saved, nil
}
