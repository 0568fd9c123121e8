// Package search implements the history search use case: normalize the raw
// shell history, rank it against the query, hand the result to the picker,
// then record and optionally execute the selection.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

// Service orchestrates the search lifecycle end-to-end.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Sources        ports.SourceProvider
	Picker         ports.Picker
	Executor       ports.CommandExecutor
	Clipboard      ports.Clipboard
	Usage          ports.UsageRecorder
	Logger         ports.Logger
}

// Run processes a single search invocation. Picker errors (cancel, missing
// binary) pass through unwrapped so the CLI can map them to exit codes.
func (s *Service) Run(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if s.ConfigProvider == nil || s.Sources == nil || s.Picker == nil || s.Executor == nil || s.Logger == nil {
		return domain.SearchResult{}, errors.New("search.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("load config: %w", err)
	}

	sources := s.Sources.Sources(ctx, cfg)
	items := domain.Normalize(sources, cfg.WindowSize())
	s.Logger.Debug("history normalized", map[string]interface{}{
		"sources": len(sources),
		"unique":  len(items),
	})
	if len(items) == 0 {
		return domain.SearchResult{}, domain.ErrNoHistory
	}

	ranked := domain.Rank(req.Query, items)
	result := domain.SearchResult{Query: req.Query, Total: len(items)}

	if !req.Interactive {
		limit := req.Limit
		if limit <= 0 {
			limit = cfg.ResultLimit()
		}
		if limit > len(ranked) {
			limit = len(ranked)
		}
		result.Matches = ranked[:limit]
		return result, nil
	}

	selected, err := s.Picker.Pick(ctx, ranked, req.Query, req.Query != "")
	if err != nil {
		return result, err
	}
	result.Selected = selected

	if req.CopyToClipboard && cfg.ClipboardEnabled() && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(selected); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		} else {
			result.Copied = true
		}
	}

	record := domain.UsageRecord{
		Timestamp: time.Now(),
		Query:     req.Query,
		Command:   selected,
		DryRun:    req.DryRun,
	}

	if req.DryRun {
		s.record(record)
		return result, nil
	}

	execResult, err := s.Executor.Execute(ctx, selected)
	result.Execution = &execResult
	record.Executed = execResult.Ran
	record.ExitCode = execResult.ExitCode
	record.DurationMS = execResult.DurationMS
	s.record(record)
	if err != nil {
		return result, fmt.Errorf("execute command: %w", err)
	}
	return result, nil
}

// record persists the usage entry; bookkeeping failures never fail a search.
func (s *Service) record(rec domain.UsageRecord) {
	if s.Usage == nil {
		return
	}
	if err := s.Usage.Save(rec); err != nil {
		s.Logger.Debug("usage record failed", map[string]interface{}{"error": err.Error()})
	}
}
