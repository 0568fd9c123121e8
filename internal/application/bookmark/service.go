// Package bookmark implements the bookmark capture use case backed by the
// per-directory AQC file.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

// AddResult reports where a bookmark landed and whether the file had to be
// created first.
type AddResult struct {
	Created bool
	Path    string
}

// Service provides the candidate list for the picker and persists the
// captured bookmark.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Sources        ports.SourceProvider
	Store          ports.BookmarkStore
	Logger         ports.Logger
}

// Candidates returns the normalized history a bookmark can be picked from.
// Lines that already live in the bookmark file are excluded so the picker
// only offers new commands.
func (s *Service) Candidates(ctx context.Context) ([]string, error) {
	if s.ConfigProvider == nil || s.Sources == nil || s.Logger == nil {
		return nil, errors.New("bookmark.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var history []domain.HistorySource
	for _, src := range s.Sources.Sources(ctx, cfg) {
		if src.Name == domain.BookmarkFileName {
			continue
		}
		history = append(history, src)
	}

	items := domain.Normalize(history, cfg.WindowSize())
	if len(items) == 0 {
		return nil, domain.ErrNoHistory
	}
	return items, nil
}

// Save appends the bookmark to the AQC file in the working directory.
func (s *Service) Save(bm domain.Bookmark) (AddResult, error) {
	if s.Store == nil || s.Logger == nil {
		return AddResult{}, errors.New("bookmark.Service dependencies not satisfied")
	}
	if strings.TrimSpace(bm.Command) == "" {
		return AddResult{}, errors.New("command cannot be empty")
	}
	if strings.TrimSpace(bm.Name) == "" {
		return AddResult{}, errors.New("name cannot be empty")
	}

	created, err := s.Store.Append(bm)
	if err != nil {
		return AddResult{}, fmt.Errorf("write bookmark: %w", err)
	}
	s.Logger.Debug("bookmark saved", map[string]interface{}{
		"name":    bm.Name,
		"path":    s.Store.Path(),
		"created": created,
	})
	return AddResult{Created: created, Path: s.Store.Path()}, nil
}
