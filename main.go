package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prism-palette/api/api"
	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/migrations"
	"github.com/prism-palette/api/palette"
	"github.com/prism-palette/api/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseHost:      getEnv("DB_HOST", "localhost:5432"),
		DatabaseName:      getEnv("DB_NAME", "prism"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		SQLitePath:        getEnv("SQLITE_PATH", "prism.db"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 86400), // 1 day
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           getEnvBool("DEV_MODE", true),
		DailyPaletteSize:  getEnvInt("DAILY_PALETTE_SIZE", scheduler.DefaultPaletteSize),
	}

	dbConn, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Run database migrations
	fmt.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create user repository
	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	// Palettes live in the kv_store table, or in process memory for DB_TYPE=memory
	var kv datastore.KeyValueStore
	if config.DatabaseType == "memory" {
		kv = datastore.NewMemoryStore()
	} else {
		kvdb, kvErr := datastore.NewKVDatabase(dbConn)
		if kvErr != nil {
			log.Fatalf("Failed to create key value store: %v", kvErr)
		}
		kv = kvdb
	}

	dailyPaletteRepo := datastore.NewDailyPaletteStore(kv)

	// Start scheduler for daily palette generation
	paletteScheduler := scheduler.NewScheduler(dailyPaletteRepo, config.DailyPaletteSize)
	paletteScheduler.Start()
	defer paletteScheduler.Stop()

	// Create application
	app := &api.Application{
		Config:           config,
		UserRepo:         userRepo,
		SavedPaletteRepo: datastore.NewSavedPaletteStore(kv),
		HistoryRepo:      datastore.NewHistoryStore(kv),
		DailyPaletteRepo: dailyPaletteRepo,
		Scheduler:        paletteScheduler,
		Generator:        palette.NewGenerator(nil),
	}

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("Prism Palette API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// openDatabase connects to the configured backend. DB_TYPE=memory still
// needs SQL for accounts, so it gets a private in-memory SQLite database.
func openDatabase(config api.Config) (*sqlx.DB, error) {
	switch config.DatabaseType {
	case "postgres":
		connStr := datastore.BuildDBConnStr(
			config.DatabasePassword,
			config.DatabaseUser,
			config.DatabaseHost,
			config.DatabaseName,
			config.SSLMode,
		)
		return datastore.NewDB("postgres", connStr)
	case "sqlite3":
		return datastore.NewDB("sqlite3", datastore.BuildSQLiteConnStr(config.SQLitePath))
	case "memory":
		return datastore.NewDB("sqlite3", ":memory:")
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q, use postgres, sqlite3 or memory", config.DatabaseType)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
