package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/filesystem"
	"github.com/amantham20/aqs-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.aqs/config.yaml (overridable via AQS_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with the
// defaults so the first run leaves an editable config behind.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := l.Save(cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file location after override resolution.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("AQS_CONFIG"); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".aqs", "config.yaml")
}

// Save writes the configuration back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Backup copies the current config file next to itself and returns the
// backup path.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backupPath, nil
}

// Reset overwrites the config file with the defaults and returns them.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := DefaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

// DefaultConfig is the configuration written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		History: domain.HistorySettings{
			MaxEntries:       domain.DefaultMaxEntries,
			IncludeBookmarks: true,
		},
		Picker: domain.PickerSettings{
			Program: domain.DefaultPickerProgram,
		},
		Results: domain.ResultSettings{
			Limit: domain.DefaultResultLimit,
		},
		Clipboard: domain.ClipboardSettings{
			Enabled: true,
		},
		Execution: domain.ExecutionSettings{
			Shell:    "auto",
			Announce: true,
		},
		Update: domain.UpdateSettings{
			Check:      true,
			Repository: domain.DefaultUpdateRepository,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.History.MaxEntries <= 0 {
		cfg.History.MaxEntries = domain.DefaultMaxEntries
	}
	if cfg.Picker.Program == "" {
		cfg.Picker.Program = domain.DefaultPickerProgram
	}
	if cfg.Results.Limit <= 0 {
		cfg.Results.Limit = domain.DefaultResultLimit
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = "auto"
	}
	if cfg.Update.Repository == "" {
		cfg.Update.Repository = domain.DefaultUpdateRepository
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
