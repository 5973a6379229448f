package api

import (
	"sync"

	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/palette"
	"github.com/prism-palette/api/scheduler"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseHost      string
	DatabaseName      string
	SSLMode           string
	SQLitePath        string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AllowedOrigins    []string
	DevMode           bool
	DailyPaletteSize  int
}

type Application struct {
	Config           Config
	UserRepo         datastore.UserRepository
	SavedPaletteRepo datastore.SavedPaletteRepository
	HistoryRepo      datastore.HistoryRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
	Scheduler        *scheduler.Scheduler

	// Generator is shared by every request; guarded by genMu
	Generator *palette.Generator
	genMu     sync.Mutex
}

func (app *Application) randomColor() string {
	app.genMu.Lock()
	defer app.genMu.Unlock()
	return app.Generator.RandomColor()
}

func (app *Application) randomPalette(count int) palette.Palette {
	app.genMu.Lock()
	defer app.genMu.Unlock()
	return app.Generator.RandomPalette(count)
}
