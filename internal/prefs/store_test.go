package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "theme")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(theme) error = %v; want ErrNotFound", err)
			}
		})
	}
}

func TestStore_SetOverwrite(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, v := range []string{"dark", "light", "dark"} {
				if err := s.Set(ctx, "theme", v); err != nil {
					t.Fatalf("Set(theme, %q) error: %v", v, err)
				}
				got, err := s.Get(ctx, "theme")
				if err != nil {
					t.Fatalf("Get(theme) error: %v", err)
				}
				if got != v {
					t.Errorf("Get(theme) = %q; want %q", got, v)
				}
			}
		})
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	if err := s.Set(context.Background(), "theme", "dark"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() error: %v", err)
	}
	defer s.Close()
	got, err := s.Get(context.Background(), "theme")
	if err != nil || got != "dark" {
		t.Errorf("Get(theme) after reopen = %q, %v; want dark", got, err)
	}
}
