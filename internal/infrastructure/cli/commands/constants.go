package commands

// CLI-specific constants
const (
	// DefaultEditorCommand is the default editor command
	DefaultEditorCommand = "vi"
)

// Error messages
const (
	ErrSearchServiceUnavailable   = "search service unavailable"
	ErrBookmarkServiceUnavailable = "bookmark service unavailable"
	ErrDoctorServiceUnavailable   = "doctor service unavailable"
	ErrUsageStoreUnavailable      = "usage store unavailable"
	ErrConfigLoaderUnavailable    = "config loader unavailable"
	ErrShellInstallerUnavailable  = "shell installer unavailable"
	ErrReleaseCheckerUnavailable  = "release checker unavailable"
	ErrKeyRequired                = "--key is required"
	ErrQueryRequired              = "--query required"
	ErrInvalidPruneDays           = "--days must be > 0"
)

// User-facing messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoUsageRecorded          = "No searches recorded yet."
	MsgNoHistoryFound           = "No history found."
	MsgMissingPickerHint        = "fzf not found. Install fzf: brew install fzf"
)
