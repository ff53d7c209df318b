package migration

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daylearn/migrations"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func file(sql string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(sql)}
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{})

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("CurrentVersion() = %d, want 0", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}
	version, err = runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 5 {
		t.Errorf("CurrentVersion() = %d, want 5", version)
	}
}

func TestMigrationsSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": file("CREATE TABLE b (id INTEGER);"),
		"001_first.sql":  file("CREATE TABLE a (id INTEGER);"),
		"README.md":      file("not a migration"),
	}
	runner := NewRunner(openTestDB(t), fsys)

	got, err := runner.Migrations()
	if err != nil {
		t.Fatalf("Migrations() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Migrations() returned %d entries, want 2", len(got))
	}
	if got[0].Version != 1 || got[0].Name != "first" {
		t.Errorf("first migration = %+v, want version 1 name first", got[0])
	}
	if got[1].Version != 2 || got[1].Name != "second" {
		t.Errorf("second migration = %+v, want version 2 name second", got[1])
	}
}

func TestMigrationsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing underscore",
			fsys:    fstest.MapFS{"001.sql": file("SELECT 1;")},
			wantErr: "invalid migration filename format",
		},
		{
			name:    "non numeric version",
			fsys:    fstest.MapFS{"abc_init.sql": file("SELECT 1;")},
			wantErr: "invalid version number",
		},
		{
			name:    "zero version",
			fsys:    fstest.MapFS{"000_init.sql": file("SELECT 1;")},
			wantErr: "version must be at least 1",
		},
		{
			name: "duplicate version",
			fsys: fstest.MapFS{
				"001_a.sql": file("SELECT 1;"),
				"001_b.sql": file("SELECT 1;"),
			},
			wantErr: "duplicate migration version 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openTestDB(t), tt.fsys)
			_, err := runner.Migrations()
			if err == nil {
				t.Fatal("Migrations() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Migrations() error = %v, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyFromScratchThenIncremental(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_first.sql": file("CREATE TABLE a (id INTEGER);"),
	}
	runner := NewRunner(db, fsys)

	applied, err := runner.Apply()
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 1 {
		t.Errorf("Apply() applied %d, want 1", applied)
	}

	fsys["002_second.sql"] = file("CREATE TABLE b (id INTEGER);")
	applied, err = runner.Apply()
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 1 {
		t.Errorf("incremental Apply() applied %d, want 1", applied)
	}

	applied, err = runner.Apply()
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("no-op Apply() applied %d, want 0", applied)
	}

	version, _ := runner.CurrentVersion()
	if version != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", version)
	}
	for _, table := range []string{"a", "b"} {
		var name string
		if err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name); err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_good.sql": file("CREATE TABLE good (id INTEGER);"),
		"002_bad.sql":  file("CREATE TABLE broken (id INTEGER); THIS IS NOT SQL;"),
	}
	runner := NewRunner(db, fsys)

	applied, err := runner.Apply()
	if err == nil {
		t.Fatal("Apply() expected error for invalid SQL")
	}
	if applied != 1 {
		t.Errorf("Apply() applied %d before failing, want 1", applied)
	}

	version, _ := runner.CurrentVersion()
	if version != 1 {
		t.Errorf("CurrentVersion() after failure = %d, want 1", version)
	}

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='broken'").Scan(&name)
	if err != sql.ErrNoRows {
		t.Errorf("table from failed migration should not exist, err = %v", err)
	}
}

func TestValidateNewerDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), fstest.MapFS{
		"001_first.sql": file("SELECT 1;"),
	})
	if err := runner.SetVersion(3); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}

	err := runner.Validate()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("Validate() error = %v, want newer-schema error", err)
	}
	if _, err := runner.Apply(); err == nil {
		t.Error("Apply() should refuse a newer database")
	}
}

func TestEmbeddedMigrationsApply(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, mustSub(t))

	if _, err := runner.Apply(); err != nil {
		t.Fatalf("Apply() with embedded migrations error = %v", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		t.Fatalf("LatestVersion() error = %v", err)
	}
	current, _ := runner.CurrentVersion()
	if current != latest {
		t.Errorf("CurrentVersion() = %d, want %d", current, latest)
	}
	if _, err := db.Exec("INSERT INTO kv (key, value, updated_at) VALUES ('k', 'v', 'now')"); err != nil {
		t.Errorf("kv table not usable: %v", err)
	}
}

func mustSub(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("failed to open embedded migrations: %v", err)
	}
	return sub
}
