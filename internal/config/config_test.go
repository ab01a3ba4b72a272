package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Missing(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) = %v, want nil", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want origin", cfg.Remote)
	}
	if cfg.ListLimit != 30 {
		t.Errorf("ListLimit = %d, want 30", cfg.ListLimit)
	}
}

func TestLoadFrom_Valid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
remote = "upstream"
protected_branches = ["main", "release"]
list_limit = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom = %v, want nil", err)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want upstream", cfg.Remote)
	}
	if cfg.ListLimit != 50 {
		t.Errorf("ListLimit = %d, want 50", cfg.ListLimit)
	}
	if !cfg.Protected("release") {
		t.Error("Protected(release) = false, want true")
	}
	if cfg.Protected("feature-x") {
		t.Error("Protected(feature-x) = true, want false")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("remote = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(invalid) = nil, want error")
	}
}

func TestLoadFrom_EmptyValuesFallBack(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`remote = ""`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom = %v, want nil", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want origin fallback", cfg.Remote)
	}
}
