package migrations

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func TestReadMigrationFilesOrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/010_later.sql":  {Data: []byte("SELECT 10;")},
		"sql/002_second.sql": {Data: []byte("SELECT 2;")},
		"sql/notes.txt":      {Data: []byte("ignored")},
		"sql/bad_name.sql":   {Data: []byte("ignored")},
	}

	migrations, err := readMigrationFiles(fsys)
	if err != nil {
		t.Fatalf("readMigrationFiles: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %+v", migrations)
	}
	if migrations[0].Version != 2 || migrations[0].Name != "second" || migrations[1].Version != 10 {
		t.Errorf("unexpected order %+v", migrations)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "prism.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := RunMigrations(db); err != nil {
			t.Fatalf("RunMigrations run %d: %v", i+1, err)
		}
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM schema_migrations`); err != nil {
		t.Fatalf("count: %v", err)
	}
	embedded, _ := readMigrationFiles(migrationFiles)
	if count != len(embedded) {
		t.Errorf("schema_migrations has %d rows, want %d", count, len(embedded))
	}
}

func TestReadMigrationFilesRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/001_users.sql":  {Data: []byte("SELECT 1;")},
		"sql/001_others.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := readMigrationFiles(fsys); err == nil {
		t.Error("expected an error for duplicate versions")
	}
}

func TestMigrationStatus(t *testing.T) {
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "status.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	before, err := MigrationStatus(db)
	if err != nil {
		t.Fatalf("MigrationStatus: %v", err)
	}
	if len(before) == 0 {
		t.Fatal("no embedded migrations")
	}
	for _, s := range before {
		if s.AppliedAt != nil {
			t.Errorf("%s reported applied on a fresh database", s.Migration)
		}
	}

	if err := RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	after, err := MigrationStatus(db)
	if err != nil {
		t.Fatalf("MigrationStatus: %v", err)
	}
	for _, s := range after {
		if s.AppliedAt == nil {
			t.Errorf("%s still pending after RunMigrations", s.Migration)
		}
	}
	if after[0].Migration.String() != "001_create_users" {
		t.Errorf("first migration = %s", after[0].Migration)
	}
}
