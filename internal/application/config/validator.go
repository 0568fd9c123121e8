// Package config validates configuration before it is persisted.
package config

import (
	"fmt"
	"strings"

	"github.com/amantham20/aqs-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if err := validatePicker(cfg.Picker); err != nil {
		return err
	}
	if err := validateResults(cfg.Results); err != nil {
		return err
	}
	if err := validateUpdate(cfg.Update); err != nil {
		return err
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be > 0")
	}
	for _, src := range history.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("history.sources must not contain blank paths")
		}
	}
	return nil
}

func validatePicker(picker domain.PickerSettings) error {
	if strings.TrimSpace(picker.Program) == "" {
		return fmt.Errorf("picker.program must be set")
	}
	return nil
}

func validateResults(results domain.ResultSettings) error {
	if results.Limit <= 0 {
		return fmt.Errorf("results.limit must be > 0")
	}
	return nil
}

func validateUpdate(update domain.UpdateSettings) error {
	if !update.Check {
		return nil
	}
	repo := update.Repository
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("update.repository must be owner/name, got %q", repo)
	}
	return nil
}
