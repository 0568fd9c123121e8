package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExecuteSuccess(t *testing.T) {
	e := NewLocalExecutor("/bin/sh", false)

	result, err := e.Execute(context.Background(), "true")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !result.Ran || result.ExitCode != 0 {
		t.Errorf("result = %+v, want ran with exit 0", result)
	}
}

func TestExecutePropagatesExitCode(t *testing.T) {
	e := NewLocalExecutor("/bin/sh", false)

	result, err := e.Execute(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error, got %v", err)
	}
	if !result.Ran || result.ExitCode != 3 {
		t.Errorf("result = %+v, want ran with exit 3", result)
	}
	if result.Err == nil {
		t.Error("result.Err should carry the exit error")
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	e := NewLocalExecutor("/nonexistent/shell", false)

	result, err := e.Execute(context.Background(), "true")
	if err == nil {
		t.Fatal("Execute with a missing shell should fail")
	}
	if result.Ran {
		t.Errorf("result = %+v, want not ran", result)
	}
}

func TestExecuteAnnounces(t *testing.T) {
	var buf bytes.Buffer
	e := NewLocalExecutor("/bin/sh", true)
	e.stderr = &buf

	if _, err := e.Execute(context.Background(), "true"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(buf.String(), "Running: true") {
		t.Errorf("announce line missing, got %q", buf.String())
	}
}
