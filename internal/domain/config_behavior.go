package domain

// WindowSize returns the normalizer recency window, falling back to the
// default when unset or invalid.
func (c *Config) WindowSize() int {
	if c.History.MaxEntries <= 0 {
		return DefaultMaxEntries
	}
	return c.History.MaxEntries
}

// ResultLimit returns the non-interactive output cap.
func (c *Config) ResultLimit() int {
	if c.Results.Limit <= 0 {
		return DefaultResultLimit
	}
	return c.Results.Limit
}

// PickerProgram returns the configured picker binary name.
func (c *Config) PickerProgram() string {
	if c.Picker.Program == "" {
		return DefaultPickerProgram
	}
	return c.Picker.Program
}

// UpdateRepository returns the owner/name release repository.
func (c *Config) UpdateRepository() string {
	if c.Update.Repository == "" {
		return DefaultUpdateRepository
	}
	return c.Update.Repository
}

// ClipboardEnabled checks whether clipboard integration is allowed.
func (c *Config) ClipboardEnabled() bool {
	return c.Clipboard.Enabled
}

// ShouldAnnounce checks whether executions print a Running line to stderr.
func (c *Config) ShouldAnnounce() bool {
	return c.Execution.Announce
}

// ShouldCheckUpdates checks whether the release check is enabled.
func (c *Config) ShouldCheckUpdates() bool {
	return c.Update.Check
}
