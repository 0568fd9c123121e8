package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/infrastructure/cli/helpers"
)

// NewInstallCommand creates the installation command for the shell widget
func NewInstallCommand(container *app.Container) *cobra.Command {
	var shellFlag string
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the AQS shell widget",
		Long: `Install the Alt-R history search widget for your shell.

This command will:
1. Detect your current shell (or use --shell)
2. Write the widget script to ~/.aqs/shell/
3. Add a guarded source line to your shell rc file

Example:
  aqs install               # Auto-detect shell
  aqs install --shell zsh   # Install for zsh
  aqs install --shell all   # Install for zsh, bash and fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.OutOrStdout(), container, shellFlag, force)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell to install (zsh|bash|fish|all, auto-detected if not specified)")
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the rc entry even if present")

	return cmd
}

func runInstall(out io.Writer, container *app.Container, shellFlag string, force bool) error {
	if container.ShellIntegrator == nil {
		return errors.New(ErrShellInstallerUnavailable)
	}

	shells, err := helpers.DetermineTargetShells(shellFlag, container.ShellIntegrator)
	if err != nil {
		return err
	}

	for _, sh := range shells {
		res, err := container.ShellIntegrator.Install(string(sh), force)
		if err != nil {
			return fmt.Errorf("install for %s: %w", sh, err)
		}
		fmt.Fprintf(out, "Installed for %s\n  Script: %s\n  RC file: %s\n", res.Shell, res.ScriptPath, res.RCFile)
	}

	fmt.Fprintln(out, "\nRestart your shell (or source your rc file), then press Alt-R to search.")
	return nil
}
