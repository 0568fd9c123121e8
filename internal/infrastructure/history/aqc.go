package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

const aqcHeader = "# AQC Command File\n# Format:\n# command\n# - Name: Description\n# ---\n\n"

// AQCFile appends bookmarks to the bookmark file in a directory.
type AQCFile struct {
	path string
}

// NewAQCFile targets the bookmark file in dir; an empty dir means the
// current working directory.
func NewAQCFile(dir string) *AQCFile {
	if dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		} else {
			dir = "."
		}
	}
	return &AQCFile{path: filepath.Join(dir, domain.BookmarkFileName)}
}

// Append writes one bookmark entry, creating the file with its header
// comment when absent. It reports whether the file was created.
func (a *AQCFile) Append(bm domain.Bookmark) (bool, error) {
	entry := formatEntry(bm)

	if _, err := os.Stat(a.path); os.IsNotExist(err) {
		if err := os.WriteFile(a.path, []byte(aqcHeader+entry), domain.SharedFilePermissions); err != nil {
			return false, err
		}
		return true, nil
	}

	file, err := os.OpenFile(a.path, os.O_APPEND|os.O_WRONLY, domain.SharedFilePermissions)
	if err != nil {
		return false, err
	}
	defer file.Close()
	if _, err := file.WriteString(entry); err != nil {
		return false, err
	}
	return false, nil
}

// Path returns the bookmark file location.
func (a *AQCFile) Path() string {
	return a.path
}

func formatEntry(bm domain.Bookmark) string {
	if bm.Description != "" {
		return fmt.Sprintf("%s\n- %s: %s\n---\n", bm.Command, bm.Name, bm.Description)
	}
	return fmt.Sprintf("%s\n- %s\n---\n", bm.Command, bm.Name)
}

// FilterBookmarkLines strips AQC comments, separators, and metadata lines,
// leaving only the command lines.
func FilterBookmarkLines(lines []string) []string {
	var cmds []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "- ") {
			continue
		}
		cmds = append(cmds, line)
	}
	return cmds
}

var _ ports.BookmarkStore = (*AQCFile)(nil)
