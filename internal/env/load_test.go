package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CAMPUSMAP_TEST_A=from-file\nCAMPUSMAP_TEST_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAMPUSMAP_TEST_B", "from-env")
	t.Cleanup(func() { os.Unsetenv("CAMPUSMAP_TEST_A") })

	loaded, err := LoadEnv(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Errorf("LoadEnv() loaded = %v; want [%s]", loaded, path)
	}
	if got := os.Getenv("CAMPUSMAP_TEST_A"); got != "from-file" {
		t.Errorf("CAMPUSMAP_TEST_A = %q; want from-file", got)
	}
	if got := os.Getenv("CAMPUSMAP_TEST_B"); got != "from-env" {
		t.Errorf("CAMPUSMAP_TEST_B = %q; want from-env (existing env wins)", got)
	}
}
