package domain

import "time"

// History constants
const (
	// DefaultMaxEntries is the normalizer recency window over raw history lines.
	DefaultMaxEntries = 1000
	// DefaultResultLimit caps non-interactive search output.
	DefaultResultLimit = 20
	// BookmarkFileName is the per-directory bookmark file.
	BookmarkFileName = ".commands.aqc"
	// FishMarker is the key prefix identifying command lines in fish history.
	FishMarker = "- cmd:"
)

// Picker constants
const (
	// DefaultPickerProgram is the interactive picker binary.
	DefaultPickerProgram = "fzf"
)

// Update constants
const (
	// DefaultUpdateRepository is the GitHub repository checked for releases.
	DefaultUpdateRepository = "amantham20/AQS"
)

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// SharedFilePermissions is the permission for rc files and scripts (rw-r--r--)
	SharedFilePermissions = 0o644
)

// Usage store constants
const (
	// DefaultUsageLimit is the default number of usage records to display
	DefaultUsageLimit = 20
	// DefaultUsageSearchLimit is the default number of search results to return
	DefaultUsageSearchLimit = 50
	// DefaultPruneDays is the default retention horizon for usage records
	DefaultPruneDays = 90
	// MaxUsageAnalysisRecords is the maximum number of records to analyze
	MaxUsageAnalysisRecords = 1000
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
