package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

var fileNamePattern = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.sql$`)

// Migration is one NNN_name.sql file
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func (m Migration) String() string {
	return fmt.Sprintf("%03d_%s", m.Version, m.Name)
}

// AppliedMigration is a row of schema_migrations
type AppliedMigration struct {
	Version   int       `db:"version"`
	Name      string    `db:"name"`
	AppliedAt time.Time `db:"applied_at"`
}

// Status pairs each embedded migration with the time it was applied, if it was
type Status struct {
	Migration Migration
	AppliedAt *time.Time
}

// RunMigrations applies every embedded migration not yet recorded in
// schema_migrations, in version order.
func RunMigrations(db *sqlx.DB) error {
	statuses, err := MigrationStatus(db)
	if err != nil {
		return err
	}

	pending := 0
	for _, status := range statuses {
		if status.AppliedAt != nil {
			continue
		}
		pending++
		log.Printf("Applying migration %s...", status.Migration)
		if err := applyMigration(db, status.Migration); err != nil {
			return fmt.Errorf("failed to apply migration %s: %v", status.Migration, err)
		}
	}

	log.Printf("Migrations complete: %d applied, %d already present", pending, len(statuses)-pending)
	return nil
}

// MigrationStatus reports every embedded migration and whether it has run
func MigrationStatus(db *sqlx.DB) ([]Status, error) {
	if err := createMigrationsTable(db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %v", err)
	}

	applied, err := getAppliedMigrations(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %v", err)
	}

	migrations, err := readMigrationFiles(migrationFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration files: %v", err)
	}

	statuses := make([]Status, len(migrations))
	for i, m := range migrations {
		statuses[i].Migration = m
		if row, ok := applied[m.Version]; ok {
			appliedAt := row.AppliedAt
			statuses[i].AppliedAt = &appliedAt
		}
	}
	return statuses, nil
}

func createMigrationsTable(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

func getAppliedMigrations(db *sqlx.DB) (map[int]AppliedMigration, error) {
	var rows []AppliedMigration
	if err := db.Select(&rows, `SELECT version, name, applied_at FROM schema_migrations`); err != nil {
		return nil, err
	}

	applied := make(map[int]AppliedMigration, len(rows))
	for _, row := range rows {
		applied[row.Version] = row
	}
	return applied, nil
}

// readMigrationFiles loads sql/NNN_name.sql from fsys sorted by version.
// Files that do not follow the naming scheme are ignored; two files with
// the same version are an error.
func readMigrationFiles(fsys fs.FS) ([]Migration, error) {
	paths, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, err
	}

	seen := map[int]string{}
	var migrations []Migration
	for _, p := range paths {
		match := fileNamePattern.FindStringSubmatch(path.Base(p))
		if match == nil {
			log.Printf("Skipping migration file with invalid name: %s", p)
			continue
		}
		version, _ := strconv.Atoi(match[1])
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, other, p)
		}
		seen[version] = p

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %v", p, err)
		}
		migrations = append(migrations, Migration{Version: version, Name: match[2], SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// applyMigration runs the migration and records it in one transaction
func applyMigration(db *sqlx.DB, migration Migration) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return err
	}

	record := tx.Rebind(`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`)
	if _, err := tx.Exec(record, migration.Version, migration.Name, time.Now().UTC()); err != nil {
		return err
	}

	return tx.Commit()
}
