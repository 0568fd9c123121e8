package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/application/search"
	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/infrastructure/picker"
	"github.com/amantham20/aqs-go/internal/pkg/logger"
	"github.com/amantham20/aqs-go/internal/ports"
)

func overrideTerminal(t *testing.T, isTerminal bool) {
	t.Helper()
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return isTerminal }
	t.Cleanup(func() { stdoutIsTerminal = orig })
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd, &out
}

func searchContainer(history []string, pick ports.Picker, exec ports.CommandExecutor) *app.Container {
	return &app.Container{
		SearchService: &search.Service{
			ConfigProvider: stubConfigProvider{},
			Sources: stubSources{sources: []domain.HistorySource{
				domain.PlainSource("bash", history),
			}},
			Picker:   pick,
			Executor: exec,
			Logger:   logger.NewStd(false),
		},
	}
}

func TestRunSearchListsMatchesWhenPiped(t *testing.T) {
	overrideTerminal(t, false)
	cmd, out := newTestCommand()
	container := searchContainer([]string{"ls", "git status", "make"}, &stubPicker{}, &stubExecutor{})

	if err := RunSearch(cmd, container, "", SearchOptions{}); err != nil {
		t.Fatalf("RunSearch() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 listed matches, got %q", out.String())
	}
	// Normalization is newest first.
	if lines[0] != "make" {
		t.Errorf("first listed match = %q, want %q", lines[0], "make")
	}
}

func TestRunSearchNoHistoryExitCode(t *testing.T) {
	overrideTerminal(t, false)
	cmd, _ := newTestCommand()
	container := searchContainer(nil, &stubPicker{}, &stubExecutor{})

	err := RunSearch(cmd, container, "git", SearchOptions{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunSearch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 2 || exitErr.Message != MsgNoHistoryFound {
		t.Errorf("ExitError = %+v, want code 2 with %q", exitErr, MsgNoHistoryFound)
	}
}

func TestRunSearchDryRunPrintsSelection(t *testing.T) {
	// The shell widgets capture stdout, so dry run must open the picker
	// even without a terminal on stdout.
	overrideTerminal(t, false)
	cmd, out := newTestCommand()
	container := searchContainer([]string{"ls", "git status"}, &stubPicker{selected: "git status"}, &stubExecutor{})

	if err := RunSearch(cmd, container, "git", SearchOptions{DryRun: true}); err != nil {
		t.Fatalf("RunSearch() error = %v", err)
	}
	if got := out.String(); got != "git status\n" {
		t.Errorf("stdout = %q, want the bare selection for command substitution", got)
	}
}

func TestRunSearchExecutedSelectionStaysOffStdout(t *testing.T) {
	overrideTerminal(t, true)
	cmd, out := newTestCommand()
	exec := &stubExecutor{result: domain.ExecutionResult{Ran: true}}
	container := searchContainer([]string{"ls"}, &stubPicker{selected: "ls"}, exec)

	if err := RunSearch(cmd, container, "", SearchOptions{}); err != nil {
		t.Fatalf("RunSearch() error = %v", err)
	}
	if !exec.called {
		t.Error("executor should run the selection")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want it left to the executed command", out.String())
	}
}

func TestRunSearchPropagatesChildExitCode(t *testing.T) {
	overrideTerminal(t, true)
	cmd, _ := newTestCommand()
	exec := &stubExecutor{result: domain.ExecutionResult{Ran: true, ExitCode: 3}}
	container := searchContainer([]string{"false"}, &stubPicker{selected: "false"}, exec)

	err := RunSearch(cmd, container, "", SearchOptions{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunSearch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 3 || exitErr.Message != "" {
		t.Errorf("ExitError = %+v, want a quiet code 3", exitErr)
	}
}

func TestRunSearchMissingPickerHint(t *testing.T) {
	overrideTerminal(t, true)
	cmd, _ := newTestCommand()
	container := searchContainer([]string{"ls"}, &stubPicker{err: picker.ErrPickerNotFound}, &stubExecutor{})

	err := RunSearch(cmd, container, "", SearchOptions{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunSearch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 || exitErr.Message != MsgMissingPickerHint {
		t.Errorf("ExitError = %+v, want code 1 with the install hint", exitErr)
	}
}

func TestRunSearchCancelledPickerExitsQuietly(t *testing.T) {
	overrideTerminal(t, true)
	cmd, out := newTestCommand()
	container := searchContainer([]string{"ls"}, &stubPicker{err: picker.ErrNoSelection}, &stubExecutor{})

	err := RunSearch(cmd, container, "", SearchOptions{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunSearch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 || exitErr.Message != "" {
		t.Errorf("ExitError = %+v, want a silent code 1", exitErr)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing after a cancel", out.String())
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
	selected string
	err      error
}

func (s *stubPicker) Pick(context.Context, []string, string, bool) (string, error) {
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
