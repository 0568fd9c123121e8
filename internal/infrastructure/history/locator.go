package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/filesystem"
	"github.com/amantham20/aqs-go/internal/ports"
)

// SourceLocation pairs a candidate history file with its extraction format.
// Bookmark files get their metadata lines stripped before extraction.
type SourceLocation struct {
	Path     string
	Format   domain.SourceFormat
	Marker   string
	Bookmark bool
}

// Locator resolves the history files for one run: the configured explicit
// list when present, otherwise the well-known shell locations plus
// $HISTFILE; the working directory's bookmark file comes last. Paths are
// candidates; readers skip what is missing.
type Locator struct{}

// NewLocator builds a locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the candidate locations in read order, deduplicated.
func (l *Locator) Locate(cfg domain.Config) []SourceLocation {
	seen := make(map[string]bool)
	var locations []SourceLocation
	add := func(path string) {
		if path == "" {
			return
		}
		path = filesystem.ExpandHome(path)
		if seen[path] {
			return
		}
		seen[path] = true
		locations = append(locations, classify(path))
	}

	if len(cfg.History.Sources) > 0 {
		for _, src := range cfg.History.Sources {
			add(src)
		}
	} else {
		home := filesystem.UserHomeDir()
		add(filepath.Join(home, ".bash_history"))
		add(filepath.Join(home, ".zsh_history"))
		add(filepath.Join(home, ".local", "share", "fish", "fish_history"))
		add(os.Getenv("HISTFILE"))
	}
	if cfg.History.IncludeBookmarks {
		if cwd, err := os.Getwd(); err == nil {
			add(filepath.Join(cwd, domain.BookmarkFileName))
		}
	}
	return locations
}

// Paths returns just the candidate file paths, in read order.
func (l *Locator) Paths(cfg domain.Config) []string {
	locations := l.Locate(cfg)
	paths := make([]string, 0, len(locations))
	for _, loc := range locations {
		paths = append(paths, loc.Path)
	}
	return paths
}

func classify(path string) SourceLocation {
	switch {
	case filepath.Base(path) == domain.BookmarkFileName:
		return SourceLocation{Path: path, Format: domain.FormatPlain, Bookmark: true}
	case strings.Contains(path, "fish_history"):
		return SourceLocation{Path: path, Format: domain.FormatKeyPrefixed, Marker: domain.FishMarker}
	default:
		return SourceLocation{Path: path, Format: domain.FormatPlain}
	}
}

var _ ports.SourceLocator = (*Locator)(nil)
