package domain

import "time"

// SourceFormat selects the line-extraction convention for a history source.
type SourceFormat int

const (
	// FormatPlain treats every non-empty line as a command. Lines wrapped in
	// the zsh extended-history envelope (": <ts>:<elapsed>;command") are
	// unwrapped first.
	FormatPlain SourceFormat = iota
	// FormatKeyPrefixed keeps only lines that, after trimming, start with a
	// marker; the command is the trimmed remainder after the marker.
	FormatKeyPrefixed
)

// HistorySource is one raw history input: its lines, oldest first, plus the
// convention used to extract commands from them.
type HistorySource struct {
	Name   string
	Format SourceFormat
	Marker string
	Lines  []string
}

// PlainSource builds a plain-format source.
func PlainSource(name string, lines []string) HistorySource {
	return HistorySource{Name: name, Format: FormatPlain, Lines: lines}
}

// KeyPrefixedSource builds a key-prefixed source such as fish history.
func KeyPrefixedSource(name, marker string, lines []string) HistorySource {
	return HistorySource{Name: name, Format: FormatKeyPrefixed, Marker: marker, Lines: lines}
}

// UsageRecord captures one completed search for the local usage store.
type UsageRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Query      string    `json:"query"`
	Command    string    `json:"command"`
	Executed   bool      `json:"executed"`
	ExitCode   int       `json:"exit_code"`
	DryRun     bool      `json:"dry_run"`
	DurationMS int64     `json:"duration_ms"`
}
