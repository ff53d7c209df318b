package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(dir, "test.db")),
		"json":   NewJSONStore(filepath.Join(dir, "test.json")),
		"memory": NewMemoryStore(),
	}
}

func TestProviderKeyValue(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer p.Close()

			if _, err := p.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := p.Set("currentDay_u1", "3"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := p.Set("currentDay_u1", "4"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			got, err := p.Get("currentDay_u1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != "4" {
				t.Errorf("Get() = %q, want %q", got, "4")
			}

			if err := p.Delete("currentDay_u1"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := p.Get("currentDay_u1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
			}
			if err := p.Delete("currentDay_u1"); err != nil {
				t.Errorf("Delete() of missing key error = %v", err)
			}
		})
	}
}

func TestProviderKeysByPrefix(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer p.Close()

			for _, k := range []string{"account_b@x.io", "account_a@x.io", "accountXa", "currentDay_1"} {
				if err := p.Set(k, "v"); err != nil {
					t.Fatalf("Set(%s) error = %v", k, err)
				}
			}

			keys, err := p.Keys("account_")
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			want := []string{"account_a@x.io", "account_b@x.io"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys() = %v, want %v", keys, want)
			}
		})
	}
}

func TestFileProvidersPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		open func() Provider
	}{
		{"sqlite", func() Provider { return NewSQLiteStore(filepath.Join(dir, "p.db")) }},
		{"json", func() Provider { return NewJSONStore(filepath.Join(dir, "p.json")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.open()
			if err := first.Init(); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			if err := first.Set("learningStats_u1", `{"totalDays":2}`); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			second := tt.open()
			if err := second.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer second.Close()
			got, err := second.Get("learningStats_u1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != `{"totalDays":2}` {
				t.Errorf("Get() = %q", got)
			}
		})
	}
}

func TestLoadUninitialised(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []Provider{
		NewSQLiteStore(filepath.Join(dir, "none.db")),
		NewJSONStore(filepath.Join(dir, "none.json")),
	} {
		if err := p.Load(); err == nil {
			t.Errorf("%T.Load() on missing file expected error", p)
		}
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("Load() of corrupt file expected error")
	}
}

func TestSQLiteSchemaVersion(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "v.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer s.Close()

	current, latest, err := s.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if current != latest || current == 0 {
		t.Errorf("SchemaVersion() = (%d, %d), want equal and non-zero", current, latest)
	}
}

func TestSQLiteUpdatedAtIndex(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "idx.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer s.Close()

	var column string
	err := s.db.QueryRow("SELECT name FROM pragma_index_info('idx_kv_updated_at')").Scan(&column)
	if err != nil {
		t.Fatalf("index lookup error = %v", err)
	}
	if column != "updated_at" {
		t.Errorf("idx_kv_updated_at covers %q, want updated_at", column)
	}
	if _, latest, _ := s.SchemaVersion(); latest != 2 {
		t.Errorf("latest schema version = %d, want 2", latest)
	}
}

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		path      string
		ephemeral bool
		want      string
	}{
		{"/tmp/daylearn.db", false, "*storage.SQLiteStore"},
		{"/tmp/daylearn.json", false, "*storage.JSONStore"},
		{"/tmp/DAYLEARN.JSON", false, "*storage.JSONStore"},
		{"/tmp/daylearn.db", true, "*storage.MemoryStore"},
	}
	for _, tt := range tests {
		got := reflect.TypeOf(New(tt.path, tt.ephemeral)).String()
		if got != tt.want {
			t.Errorf("New(%q, %v) = %s, want %s", tt.path, tt.ephemeral, got, tt.want)
		}
	}
}
