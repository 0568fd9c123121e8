package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/infrastructure/picker"
)

// SearchOptions holds the flags shared by the root command and `aqs search`.
type SearchOptions struct {
	DryRun   bool
	Copy     bool
	Limit    int
	NoPicker bool
}

// stdoutIsTerminal is a seam for tests. Piped output disables the picker so
// the ranked list lands in the pipe instead.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewSearchCommand creates the explicit `aqs search` form of the root flow.
func NewSearchCommand(container *app.Container) *cobra.Command {
	var opts SearchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Fuzzy search shell history and run the selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSearch(cmd, container, strings.Join(args, " "), opts)
		},
	}

	RegisterSearchFlags(cmd, &opts)
	return cmd
}

// RegisterSearchFlags binds the search flags onto cmd. The root command and
// the search subcommand carry the same set.
func RegisterSearchFlags(cmd *cobra.Command, opts *SearchOptions) {
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "Print the selected command without executing it")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Copy the selected command to the clipboard")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Max results when listing (default from config)")
	cmd.Flags().BoolVar(&opts.NoPicker, "no-picker", false, "Print the ranked list instead of opening the picker")
}

// RunSearch drives one search end to end: rank, pick, then execute or print.
func RunSearch(cmd *cobra.Command, container *app.Container, query string, opts SearchOptions) error {
	if container.SearchService == nil {
		return errors.New(ErrSearchServiceUnavailable)
	}

	// Dry run keeps the picker even when stdout is captured: the shell
	// widgets run `aqs --dry-run` inside command substitution and fzf
	// renders on the terminal regardless.
	req := domain.SearchRequest{
		Query:           query,
		DryRun:          opts.DryRun,
		CopyToClipboard: opts.Copy,
		Interactive:     !opts.NoPicker && (opts.DryRun || stdoutIsTerminal()),
		Limit:           opts.Limit,
	}
	result, err := container.SearchService.Run(cmd.Context(), req)
	switch {
	case errors.Is(err, domain.ErrNoHistory):
		return &ExitError{Code: 2, Message: MsgNoHistoryFound}
	case errors.Is(err, picker.ErrPickerNotFound):
		return &ExitError{Code: 1, Message: MsgMissingPickerHint}
	case errors.Is(err, picker.ErrNoSelection):
		return &ExitError{Code: 1}
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	if !req.Interactive {
		for _, match := range result.Matches {
			fmt.Fprintln(out, match)
		}
		return nil
	}

	if result.Execution == nil {
		// Dry run: the selection is the output, ready for command
		// substitution by the shell widget.
		fmt.Fprintln(out, result.Selected)
		return nil
	}
	if result.Execution.ExitCode != 0 {
		return &ExitError{Code: result.Execution.ExitCode}
	}
	return nil
}
