package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SettingsKey != DefaultSettingsKey {
		t.Errorf("expected SettingsKey=%q, got %q", DefaultSettingsKey, cfg.SettingsKey)
	}
	if cfg.Indent != DefaultIndent {
		t.Errorf("expected Indent=%d, got %d", DefaultIndent, cfg.Indent)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "settingsKey: myext.hidden\nindent: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SettingsKey != "myext.hidden" {
		t.Errorf("expected SettingsKey=%q, got %q", "myext.hidden", cfg.SettingsKey)
	}
	if cfg.Indent != 2 {
		t.Errorf("expected Indent=2, got %d", cfg.Indent)
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("indent: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SettingsKey != DefaultSettingsKey {
		t.Errorf("unset key should default, got %q", cfg.SettingsKey)
	}
	if cfg.Indent != 8 {
		t.Errorf("expected Indent=8, got %d", cfg.Indent)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("indent: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestDefaultPaths_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WSFOLD_ROOT", dir)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if paths.Root != dir {
		t.Errorf("expected Root=%q, got %q", dir, paths.Root)
	}
	if paths.Config != filepath.Join(dir, "config.yaml") {
		t.Errorf("unexpected Config path: %q", paths.Config)
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
}
