package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. A bare `aqs` opens the picker
// over all history; `aqs <query>` pre-filters before the picker opens.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	clip := NewClipboard()
	container.SearchService.Clipboard = clip
	container.DoctorService.Clipboard = clip
	container.Prompter = NewPrompter()

	var searchOpts commands.SearchOptions

	root := &cobra.Command{
		Use:   "aqs [query...]",
		Short: "AQS - Aman's Quick Search for shell history",
		Long:  "AQS searches your shell history with tiered relevance ranking and runs the command you pick.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunSearch(cmd, container, strings.Join(args, " "), searchOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.RegisterSearchFlags(root, &searchOpts)

	root.AddCommand(commands.NewSearchCommand(container))
	root.AddCommand(commands.NewAddCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewInstallCommand(container))
	root.AddCommand(commands.NewUninstallCommand(container))
	root.AddCommand(commands.NewUpdateCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

// Execute runs the CLI and maps errors to process exit codes. Exit code 2
// means there was no history to search, 1 covers everything else.
func Execute(ctx context.Context, opts Options) int {
	root, err := NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
