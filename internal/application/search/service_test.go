package search

import (
	"context"
	"errors"
	"testing"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/logger"
)

func TestServiceRunExecutesSelection(t *testing.T) {
	picker := &stubPicker{selected: "git status"}
	executor := &stubExecutor{result: domain.ExecutionResult{Ran: true, ExitCode: 0, DurationMS: 12}}
	recorder := &stubRecorder{}

	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls", "git status", "make"}),
		}},
		Picker:   picker,
		Executor: executor,
		Usage:    recorder,
		Logger:   logger.NewStd(false),
	}

	result, err := svc.Run(context.Background(), domain.SearchRequest{Query: "git", Interactive: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Selected != "git status" {
		t.Errorf("Selected = %q, want %q", result.Selected, "git status")
	}
	if !executor.called || executor.gotCommand != "git status" {
		t.Errorf("executor called=%v command=%q, want the selection executed", executor.called, executor.gotCommand)
	}
	if !picker.gotPreRanked {
		t.Error("picker should receive preRanked=true for a non-empty query")
	}
	if len(picker.gotItems) == 0 || picker.gotItems[0] != "git status" {
		t.Errorf("picker items should be ranked, got %v", picker.gotItems)
	}
	if len(recorder.records) != 1 {
		t.Fatalf("expected 1 usage record, got %d", len(recorder.records))
	}
	rec := recorder.records[0]
	if !rec.Executed || rec.Command != "git status" || rec.Query != "git" {
		t.Errorf("unexpected usage record %+v", rec)
	}
}

func TestServiceRunDryRunSkipsExecutor(t *testing.T) {
	executor := &stubExecutor{}
	recorder := &stubRecorder{}

	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls"}),
		}},
		Picker:   &stubPicker{selected: "ls"},
		Executor: executor,
		Usage:    recorder,
		Logger:   logger.NewStd(false),
	}

	result, err := svc.Run(context.Background(), domain.SearchRequest{Interactive: true, DryRun: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if executor.called {
		t.Error("executor must not run in dry-run mode")
	}
	if result.Execution != nil {
		t.Errorf("dry-run should leave Execution nil, got %+v", result.Execution)
	}
	if len(recorder.records) != 1 || !recorder.records[0].DryRun || recorder.records[0].Executed {
		t.Errorf("dry-run record wrong: %+v", recorder.records)
	}
}

func TestServiceRunNoHistory(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources:        stubSources{},
		Picker:         &stubPicker{},
		Executor:       &stubExecutor{},
		Logger:         logger.NewStd(false),
	}

	_, err := svc.Run(context.Background(), domain.SearchRequest{Query: "git", Interactive: true})
	if !errors.Is(err, domain.ErrNoHistory) {
		t.Fatalf("Run() error = %v, want domain.ErrNoHistory", err)
	}
}

func TestServiceRunListsWhenNotInteractive(t *testing.T) {
	picker := &stubPicker{selected: "never"}

	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"alpha", "beta", "gamma", "delta"}),
		}},
		Picker:   picker,
		Executor: &stubExecutor{},
		Logger:   logger.NewStd(false),
	}

	result, err := svc.Run(context.Background(), domain.SearchRequest{Query: "", Interactive: false, Limit: 2})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if picker.called {
		t.Error("picker must not run in non-interactive mode")
	}
	if len(result.Matches) != 2 {
		t.Errorf("Matches = %v, want 2 entries", result.Matches)
	}
	if result.Selected != "" || result.Execution != nil {
		t.Errorf("listing should not select or execute, got %+v", result)
	}
	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
}

func TestServiceRunPassesThroughPickerErrors(t *testing.T) {
	cancel := errors.New("selection cancelled")

	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls"}),
		}},
		Picker:   &stubPicker{err: cancel},
		Executor: &stubExecutor{},
		Logger:   logger.NewStd(false),
	}

	_, err := svc.Run(context.Background(), domain.SearchRequest{Interactive: true})
	if !errors.Is(err, cancel) {
		t.Fatalf("Run() error = %v, want the picker error unwrapped", err)
	}
}

func TestServiceRunCopiesToClipboard(t *testing.T) {
	clip := &stubClipboard{enabled: true}

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{Clipboard: domain.ClipboardSettings{Enabled: true}}},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls"}),
		}},
		Picker:    &stubPicker{selected: "ls"},
		Executor:  &stubExecutor{result: domain.ExecutionResult{Ran: true}},
		Clipboard: clip,
		Logger:    logger.NewStd(false),
	}

	result, err := svc.Run(context.Background(), domain.SearchRequest{Interactive: true, CopyToClipboard: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Copied || len(clip.copied) != 1 || clip.copied[0] != "ls" {
		t.Errorf("clipboard not used as expected: copied=%v result=%+v", clip.copied, result)
	}
}

func TestServiceRunRecorderFailureIsNotFatal(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls"}),
		}},
		Picker:   &stubPicker{selected: "ls"},
		Executor: &stubExecutor{result: domain.ExecutionResult{Ran: true}},
		Usage:    &stubRecorder{err: errors.New("disk full")},
		Logger:   logger.NewStd(false),
	}

	if _, err := svc.Run(context.Background(), domain.SearchRequest{Interactive: true}); err != nil {
		t.Fatalf("Run() error = %v, recorder failures must not fail a search", err)
	}
}

func TestServiceRunEmptyQueryKeepsPickerSorting(t *testing.T) {
	picker := &stubPicker{selected: "ls"}

	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("bash", []string{"ls", "pwd"}),
		}},
		Picker:   picker,
		Executor: &stubExecutor{result: domain.ExecutionResult{Ran: true}},
		Logger:   logger.NewStd(false),
	}

	if _, err := svc.Run(context.Background(), domain.SearchRequest{Interactive: true}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if picker.gotPreRanked {
		t.Error("picker should apply its own sorting when the query is empty")
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubSources struct {
	sources []domain.HistorySource
}

func (s stubSources) Sources(context.Context, domain.Config) []domain.HistorySource {
	return s.sources
}

type stubPicker struct {
	selected     string
	err          error
	called       bool
	gotItems     []string
	gotQuery     string
	gotPreRanked bool
}

func (s *stubPicker) Pick(_ context.Context, items []string, query string, preRanked bool) (string, error) {
	s.called = true
	s.gotItems = items
	s.gotQuery = query
	s.gotPreRanked = preRanked
	return s.selected, s.err
}

type stubExecutor struct {
	result     domain.ExecutionResult
	err        error
	called     bool
	gotCommand string
}

func (s *stubExecutor) Execute(_ context.Context, command string) (domain.ExecutionResult, error) {
	s.called = true
	s.gotCommand = command
	return s.result, s.err
}

type stubClipboard struct {
	enabled bool
	err     error
	copied  []string
}

func (s *stubClipboard) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.copied = append(s.copied, text)
	return nil
}

func (s *stubClipboard) Enabled() bool { return s.enabled }

type stubRecorder struct {
	records []domain.UsageRecord
	err     error
}

func (s *stubRecorder) Save(rec domain.UsageRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *stubRecorder) Records(int, string) ([]domain.UsageRecord, error) { return s.records, nil }
func (s *stubRecorder) Clear() error                                      { return nil }
func (s *stubRecorder) ExportJSON(string) error                           { return nil }
func (s *stubRecorder) PruneOlderThan(int) (int, error)                   { return 0, nil }
func (s *stubRecorder) Path() string                                      { return "" }
