package domain_test

import (
	"testing"

	"github.com/amantham20/aqs-go/internal/domain"
)

// TestConfig_WindowSize tests window fallback behavior
func TestConfig_WindowSize(t *testing.T) {
	tests := []struct {
		name   string
		config domain.Config
		want   int
	}{
		{
			name:   "configured value wins",
			config: domain.Config{History: domain.HistorySettings{MaxEntries: 250}},
			want:   250,
		},
		{
			name:   "zero falls back to default",
			config: domain.Config{},
			want:   domain.DefaultMaxEntries,
		},
		{
			name:   "negative falls back to default",
			config: domain.Config{History: domain.HistorySettings{MaxEntries: -5}},
			want:   domain.DefaultMaxEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.WindowSize(); got != tt.want {
				t.Errorf("WindowSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestConfig_PickerProgram tests the default picker binary
func TestConfig_PickerProgram(t *testing.T) {
	cfg := domain.Config{}
	if got := cfg.PickerProgram(); got != "fzf" {
		t.Errorf("PickerProgram() = %q, want %q", got, "fzf")
	}

	cfg.Picker.Program = "sk"
	if got := cfg.PickerProgram(); got != "sk" {
		t.Errorf("PickerProgram() = %q, want %q", got, "sk")
	}
}

// TestConfig_ResultLimit tests the non-interactive cap fallback
func TestConfig_ResultLimit(t *testing.T) {
	cfg := domain.Config{}
	if got := cfg.ResultLimit(); got != domain.DefaultResultLimit {
		t.Errorf("ResultLimit() = %d, want %d", got, domain.DefaultResultLimit)
	}

	cfg.Results.Limit = 7
	if got := cfg.ResultLimit(); got != 7 {
		t.Errorf("ResultLimit() = %d, want 7", got)
	}
}

// TestConfig_UpdateRepository tests the release repository fallback
func TestConfig_UpdateRepository(t *testing.T) {
	cfg := domain.Config{}
	if got := cfg.UpdateRepository(); got != domain.DefaultUpdateRepository {
		t.Errorf("UpdateRepository() = %q, want %q", got, domain.DefaultUpdateRepository)
	}

	cfg.Update.Repository = "someone/fork"
	if got := cfg.UpdateRepository(); got != "someone/fork" {
		t.Errorf("UpdateRepository() = %q, want %q", got, "someone/fork")
	}
}

// TestHealthReport_Healthy tests error detection in reports
func TestHealthReport_Healthy(t *testing.T) {
	report := domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "a", Status: domain.HealthOK},
		{Name: "b", Status: domain.HealthWarn},
	}}
	if !report.Healthy() {
		t.Error("report with only ok/warn checks should be healthy")
	}

	report.Checks = append(report.Checks, domain.HealthCheck{Name: "c", Status: domain.HealthError})
	if report.Healthy() {
		t.Error("report with an error check should not be healthy")
	}
}
