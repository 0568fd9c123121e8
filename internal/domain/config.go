package domain

// Config mirrors ~/.aqs/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	History             HistorySettings   `yaml:"history"`
	Picker              PickerSettings    `yaml:"picker"`
	Results             ResultSettings    `yaml:"results"`
	Clipboard           ClipboardSettings `yaml:"clipboard"`
	Execution           ExecutionSettings `yaml:"execution"`
	Update              UpdateSettings    `yaml:"update"`
}

// HistorySettings controls which history files are read and how many raw
// entries the normalizer window keeps.
type HistorySettings struct {
	MaxEntries       int      `yaml:"max_entries"`
	Sources          []string `yaml:"sources"`
	IncludeBookmarks bool     `yaml:"include_bookmarks"`
}

// PickerSettings configures the interactive picker subprocess.
type PickerSettings struct {
	Program   string   `yaml:"program"`
	ExtraArgs []string `yaml:"extra_args"`
}

// ResultSettings caps non-interactive output.
type ResultSettings struct {
	Limit int `yaml:"limit"`
}

// ClipboardSettings toggles clipboard integration.
type ClipboardSettings struct {
	Enabled bool `yaml:"enabled"`
}

// ExecutionSettings controls how selected commands run.
type ExecutionSettings struct {
	Shell    string `yaml:"shell"`
	Announce bool   `yaml:"announce"`
}

// UpdateSettings configures the release check.
type UpdateSettings struct {
	Check      bool   `yaml:"check"`
	Repository string `yaml:"repository"`
}
