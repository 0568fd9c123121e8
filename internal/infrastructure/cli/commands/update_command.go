package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/infrastructure/cli/helpers"
	"github.com/amantham20/aqs-go/internal/version"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check GitHub for a newer release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateCheck(cmd, container)
		},
	}
}

// runUpdateCheck queries the releases API and reports whether a newer
// version is published. It never replaces the running binary.
func runUpdateCheck(cmd *cobra.Command, container *app.Container) error {
	if container.ReleaseChecker == nil {
		return errors.New(ErrReleaseCheckerUnavailable)
	}

	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	spin := helpers.NewSpinner(cmd.ErrOrStderr(), "Checking for updates...")
	spin.Start()
	release, err := container.ReleaseChecker.Latest(cmd.Context(), cfg.Update.Repository)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("check releases: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", version.Version)

	if version.Compare(release.TagName, version.Version) <= 0 {
		fmt.Fprintln(out, "You are on the latest release.")
		return nil
	}

	fmt.Fprintf(out, "New release available: %s", release.TagName)
	if release.Name != "" && release.Name != release.TagName {
		fmt.Fprintf(out, " (%s)", release.Name)
	}
	fmt.Fprintln(out)
	if release.URL != "" {
		fmt.Fprintf(out, "Download: %s\n", release.URL)
	}
	return nil
}
