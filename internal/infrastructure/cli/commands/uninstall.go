package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/infrastructure/cli/helpers"
)

// NewUninstallCommand creates the uninstall command for the shell widget
func NewUninstallCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the AQS shell widget",
		Long: `Remove the AQS source line from your shell rc file.

The widget script under ~/.aqs/shell/ is left in place so a later
'aqs install' only has to restore the rc line.

Example:
  aqs uninstall               # Auto-detect shell
  aqs uninstall --shell fish  # Remove from fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd.OutOrStdout(), container, shellFlag)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell to uninstall (zsh|bash|fish|all, auto-detected if not specified)")

	return cmd
}

func runUninstall(out io.Writer, container *app.Container, shellFlag string) error {
	if container.ShellIntegrator == nil {
		return errors.New(ErrShellInstallerUnavailable)
	}

	shells, err := helpers.DetermineTargetShells(shellFlag, container.ShellIntegrator)
	if err != nil {
		return err
	}

	for _, sh := range shells {
		res, err := container.ShellIntegrator.Uninstall(string(sh))
		if err != nil {
			return fmt.Errorf("uninstall for %s: %w", sh, err)
		}
		fmt.Fprintf(out, "Removed the %s source line from %s\n", res.Shell, res.RCFile)
	}

	fmt.Fprintln(out, "The change takes effect in new shell sessions.")
	return nil
}
