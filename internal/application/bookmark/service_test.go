package bookmark

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/logger"
)

func TestCandidatesExcludesBookmarkSource(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource("zsh", []string{"ls", "make"}),
			domain.PlainSource(domain.BookmarkFileName, []string{"deploy.sh"}),
		}},
		Logger: logger.NewStd(false),
	}

	got, err := svc.Candidates(context.Background())
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	want := []string{"make", "ls"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesNoHistory(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Sources: stubSources{sources: []domain.HistorySource{
			domain.PlainSource(domain.BookmarkFileName, []string{"deploy.sh"}),
		}},
		Logger: logger.NewStd(false),
	}

	if _, err := svc.Candidates(context.Background()); !errors.Is(err, domain.ErrNoHistory) {
		t.Fatalf("Candidates() error = %v, want domain.ErrNoHistory", err)
	}
}

func TestSaveAppendsBookmark(t *testing.T) {
	store := &stubStore{created: true, path: ".commands.aqc"}
	svc := &Service{Store: store, Logger: logger.NewStd(false)}

	result, err := svc.Save(domain.Bookmark{Command: "make test", Name: "tests"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !result.Created || result.Path != ".commands.aqc" {
		t.Errorf("Save() result = %+v, want created at .commands.aqc", result)
	}
	if len(store.appended) != 1 || store.appended[0].Command != "make test" {
		t.Errorf("store received %+v", store.appended)
	}
}

func TestSaveRejectsBlankFields(t *testing.T) {
	svc := &Service{Store: &stubStore{}, Logger: logger.NewStd(false)}

	if _, err := svc.Save(domain.Bookmark{Command: "  ", Name: "x"}); err == nil {
		t.Error("Save() accepted a blank command")
	}
	if _, err := svc.Save(domain.Bookmark{Command: "ls", Name: " "}); err == nil {
		t.Error("Save() accepted a blank name")
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

type stubStore struct {
	appended []domain.Bookmark
	created  bool
	path     string
	err      error
}

func (s *stubStore) Append(bm domain.Bookmark) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.appended = append(s.appended, bm)
	return s.created, nil
}

func (s *stubStore) Path() string { return s.path }
