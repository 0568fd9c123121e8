package history

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

// FileSourceProvider reads the located history files into sources. Missing
// or unreadable files are skipped, never reported as errors.
type FileSourceProvider struct {
	locator *Locator
	logger  ports.Logger
}

// NewFileSourceProvider builds a provider over the default locator.
func NewFileSourceProvider(log ports.Logger) *FileSourceProvider {
	return &FileSourceProvider{locator: NewLocator(), logger: log}
}

// Sources implements ports.SourceProvider.
func (p *FileSourceProvider) Sources(_ context.Context, cfg domain.Config) []domain.HistorySource {
	var sources []domain.HistorySource
	for _, loc := range p.locator.Locate(cfg) {
		lines, err := readLines(loc.Path)
		if err != nil {
			if p.logger != nil {
				p.logger.Debug("history source skipped", map[string]interface{}{
					"path":  loc.Path,
					"error": err.Error(),
				})
			}
			continue
		}
		if loc.Bookmark {
			lines = FilterBookmarkLines(lines)
		}
		name := filepath.Base(loc.Path)
		switch loc.Format {
		case domain.FormatKeyPrefixed:
			sources = append(sources, domain.KeyPrefixedSource(name, loc.Marker, lines))
		default:
			sources = append(sources, domain.PlainSource(name, lines))
		}
	}
	return sources
}

// readLines loads a file line by line. The scanner buffer is raised so long
// pasted commands survive intact.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

var _ ports.SourceProvider = (*FileSourceProvider)(nil)
