// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application services depend only on these contracts; infrastructure
// adapters (files, subprocesses, SQLite, HTTP) implement them. This keeps the
// search core free of I/O and lets tests substitute stubs for every external
// collaborator.
package ports

import (
	"context"

	"github.com/amantham20/aqs-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.aqs/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SourceProvider resolves and reads the raw history sources for one run.
// Unreadable or missing files are skipped, never reported as errors.
type SourceProvider interface {
	Sources(ctx context.Context, cfg domain.Config) []domain.HistorySource
}

// SourceLocator enumerates the candidate history file paths without reading
// them. The doctor uses it to report on each location.
type SourceLocator interface {
	Paths(cfg domain.Config) []string
}

// Picker presents entries for interactive selection and returns the chosen
// one. preRanked tells the picker to preserve the given order instead of
// applying its own sorting.
type Picker interface {
	Pick(ctx context.Context, items []string, query string, preRanked bool) (string, error)
}

// CommandExecutor runs a selected command in the configured shell with
// inherited stdio.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Clipboard provides cross-platform clipboard integration for copying
// selected commands.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// UsageRecorder persists completed searches so past activity can be listed,
// analyzed and pruned. Recording failures must never break a search.
type UsageRecorder interface {
	Save(record domain.UsageRecord) error
	Records(limit int, search string) ([]domain.UsageRecord, error)
	Clear() error
	ExportJSON(dest string) error
	PruneOlderThan(days int) (int, error)
	Path() string
}

// BookmarkStore appends bookmarks to the per-directory AQC file. Append
// reports whether the file had to be created first.
type BookmarkStore interface {
	Append(bm domain.Bookmark) (created bool, err error)
	Path() string
}

// Prompter reads interactive line input on the terminal.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// ShellIntegrator manages shell integration hooks (zsh, bash, fish).
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// ReleaseChecker fetches the newest published release for the configured
// repository.
type ReleaseChecker interface {
	Latest(ctx context.Context, repository string) (domain.ReleaseInfo, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
