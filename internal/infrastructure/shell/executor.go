package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

// LocalExecutor runs selected commands through the user's shell with the
// caller's stdio attached, the way the command would have run when typed.
type LocalExecutor struct {
	shell    string
	announce bool
	stderr   io.Writer
}

// NewLocalExecutor builds an executor. An empty or "auto" shell resolves
// through $SHELL, falling back to /bin/sh.
func NewLocalExecutor(shell string, announce bool) *LocalExecutor {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell, announce: announce, stderr: os.Stderr}
}

// Execute implements ports.CommandExecutor. A non-zero exit from the child
// lands in the result so the caller can propagate the code; the error return
// is reserved for failures to start the command at all.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	if e.announce {
		fmt.Fprintf(e.stderr, "Running: %s\n", command)
	}

	c := exec.CommandContext(ctx, e.shell, "-c", command)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{Ran: true, DurationMS: duration}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			result.Err = err
			return result, nil
		}
		result.Ran = false
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
