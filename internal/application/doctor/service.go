// Package doctor runs environment diagnostics.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/dustin/go-humanize"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
	"github.com/amantham20/aqs-go/internal/version"
)

// Service checks that everything a search needs is in place: config,
// history files, the picker binary, clipboard, shell hooks, the usage
// store and, when enabled, the latest published release.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	SourceLocator   ports.SourceLocator
	Clipboard       ports.Clipboard
	ShellIntegrator ports.ShellIntegrator
	UsageRecorder   ports.UsageRecorder
	ReleaseChecker  ports.ReleaseChecker
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.sourceChecks(cfg)...)
	checks = append(checks, pickerCheck(cfg.Picker.Program))
	checks = append(checks, s.clipboardCheck(cfg))
	checks = append(checks, s.integrationCheck())
	checks = append(checks, s.usageCheck())

	if cfg.Update.Check && s.ReleaseChecker != nil {
		checks = append(checks, s.releaseCheck(ctx, cfg))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) sourceChecks(cfg domain.Config) []domain.HealthCheck {
	if s.SourceLocator == nil {
		return []domain.HealthCheck{warn("History sources", "locator not initialized")}
	}

	var checks []domain.HealthCheck
	found := 0
	for _, path := range s.SourceLocator.Paths(cfg) {
		info, err := os.Stat(path)
		if err != nil {
			checks = append(checks, warn("History source", fmt.Sprintf("%s not found", path)))
			continue
		}
		found++
		checks = append(checks, ok("History source", fmt.Sprintf("%s (%s, updated %s)",
			path, humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))))
	}
	if found == 0 {
		checks = append(checks, fail("History sources", "no history files found"))
	}
	return checks
}

func pickerCheck(program string) domain.HealthCheck {
	if program == "" {
		program = domain.DefaultPickerProgram
	}
	path, err := exec.LookPath(program)
	if err != nil {
		return fail("Picker", fmt.Sprintf("%s not found on PATH", program))
	}
	return ok("Picker", path)
}

func (s *Service) clipboardCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.Clipboard.Enabled {
		return warn("Clipboard", "disabled in config")
	}
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return warn("Clipboard", "no clipboard tool available")
	}
	return ok("Clipboard", "available")
}

func (s *Service) integrationCheck() domain.HealthCheck {
	if s.ShellIntegrator == nil {
		return warn("Shell integration", "integrator not initialized")
	}
	status := s.ShellIntegrator.Status("")
	switch {
	case status.ScriptExists && status.LinePresent:
		return ok("Shell integration", fmt.Sprintf("%s ready", status.Shell))
	case status.Error != "":
		return warn("Shell integration", status.Error)
	default:
		return warn("Shell integration", "not installed, run: aqs install")
	}
}

func (s *Service) usageCheck() domain.HealthCheck {
	if s.UsageRecorder == nil {
		return warn("Usage store", "recorder not initialized")
	}
	path := s.UsageRecorder.Path()
	info, err := os.Stat(path)
	if err != nil {
		return ok("Usage store", fmt.Sprintf("%s (empty)", path))
	}
	return ok("Usage store", fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size()))))
}

func (s *Service) releaseCheck(ctx context.Context, cfg domain.Config) domain.HealthCheck {
	release, err := s.ReleaseChecker.Latest(ctx, cfg.Update.Repository)
	if err != nil {
		return warn("Update check", err.Error())
	}
	if version.Compare(release.TagName, version.Version) > 0 {
		return warn("Update check", fmt.Sprintf("%s available, installed %s", release.TagName, version.Version))
	}
	return ok("Update check", fmt.Sprintf("up to date (%s)", version.Version))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
