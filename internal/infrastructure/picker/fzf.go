// Package picker launches the external fuzzy picker and captures the
// selection.
package picker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
)

// ErrPickerNotFound is returned when the picker binary is not on PATH.
var ErrPickerNotFound = errors.New("picker not found")

// ErrNoSelection is returned when the picker closes without a selection.
var ErrNoSelection = errors.New("no selection")

// FzfPicker runs fzf (or a compatible program) as a subprocess. Items go to
// its stdin, the selection comes back on the first stdout line; the finder
// UI renders on the terminal.
type FzfPicker struct {
	program   string
	extraArgs []string
}

// NewFzfPicker builds a picker for the configured program.
func NewFzfPicker(program string, extraArgs []string) *FzfPicker {
	if program == "" {
		program = domain.DefaultPickerProgram
	}
	return &FzfPicker{program: program, extraArgs: extraArgs}
}

// Pick implements ports.Picker. preRanked adds --no-sort so the given order
// survives the picker's own ranking.
func (p *FzfPicker) Pick(ctx context.Context, items []string, query string, preRanked bool) (string, error) {
	path, err := exec.LookPath(p.program)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPickerNotFound, p.program)
	}

	args := []string{"--ansi", "--reverse", "--tiebreak=index"}
	if preRanked {
		args = append(args, "--no-sort")
	}
	if query != "" {
		args = append(args, "--query", query)
	}
	args = append(args, p.extraArgs...)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	if err := cmd.Start(); err != nil {
		return "", err
	}

	go func() {
		for _, item := range items {
			fmt.Fprintln(stdin, item)
		}
		stdin.Close()
	}()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var selected string
	if scanner.Scan() {
		selected = scanner.Text()
	}

	// A cancelled picker exits non-zero with nothing selected; that case
	// is reported through ErrNoSelection instead.
	_ = cmd.Wait()

	selected = strings.TrimSpace(selected)
	if selected == "" {
		return "", ErrNoSelection
	}
	return selected, nil
}

var _ ports.Picker = (*FzfPicker)(nil)
