package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/amantham20/aqs-go/internal/domain"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("first load should return defaults (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "history:\n  max_entries: 50\npicker:\n  program: sk\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("MaxEntries = %d, want 50", cfg.History.MaxEntries)
	}
	if cfg.Picker.Program != "sk" {
		t.Errorf("Picker.Program = %q, want sk", cfg.Picker.Program)
	}
	if cfg.Results.Limit != domain.DefaultResultLimit {
		t.Errorf("Results.Limit = %d, want hydrated default %d", cfg.Results.Limit, domain.DefaultResultLimit)
	}
	if cfg.Update.Repository != domain.DefaultUpdateRepository {
		t.Errorf("Update.Repository = %q, want hydrated default", cfg.Update.Repository)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("picker: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}

func TestPathHonorsEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("AQS_CONFIG", custom)

	if got := NewFileLoader("").Path(); got != custom {
		t.Errorf("Path() = %q, want %q", got, custom)
	}
}

func TestSaveBackupReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Results.Limit = 7
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	backupPath, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup error: %v", err)
	}
	original, _ := os.ReadFile(path)
	backup, err := os.ReadFile(backupPath)
	if err != nil || string(original) != string(backup) {
		t.Fatalf("backup does not mirror config: %v", err)
	}

	reset, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), reset); diff != "" {
		t.Errorf("Reset() mismatch (-want +got):\n%s", diff)
	}
	reloaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load after reset error: %v", err)
	}
	if reloaded.Results.Limit != domain.DefaultResultLimit {
		t.Errorf("reset file still carries old limit %d", reloaded.Results.Limit)
	}
}
