package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/infrastructure/picker"
)

// NewAddCommand creates the bookmark capture command: pick a command from
// history, label it, append it to the AQC file in the working directory.
func NewAddCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Bookmark a command from history into " + domain.BookmarkFileName,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, container)
		},
	}
}

func runAdd(cmd *cobra.Command, container *app.Container) error {
	svc := container.BookmarkService
	if svc == nil {
		return errors.New(ErrBookmarkServiceUnavailable)
	}
	if container.Picker == nil || container.Prompter == nil {
		return errors.New(ErrBookmarkServiceUnavailable)
	}

	candidates, err := svc.Candidates(cmd.Context())
	if errors.Is(err, domain.ErrNoHistory) {
		return &ExitError{Code: 2, Message: MsgNoHistoryFound}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Select a command to add to AQC:")
	selected, err := container.Picker.Pick(cmd.Context(), candidates, "", false)
	switch {
	case errors.Is(err, picker.ErrPickerNotFound):
		return &ExitError{Code: 1, Message: MsgMissingPickerHint}
	case errors.Is(err, picker.ErrNoSelection):
		return &ExitError{Code: 1}
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nSelected command: %s\n", selected)
	fmt.Fprintln(out, "------------------------")

	name, err := container.Prompter.ReadLine("Name (short label): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return &ExitError{Code: 1, Message: "Name cannot be empty."}
	}
	description, err := container.Prompter.ReadLine("Description (optional): ")
	if err != nil {
		return err
	}

	result, err := svc.Save(domain.Bookmark{
		Command:     selected,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}

	file := filepath.Base(result.Path)
	if result.Created {
		fmt.Fprintf(out, "Created %s and added command: %s\n", file, name)
	} else {
		fmt.Fprintf(out, "Added command '%s' to %s\n", name, file)
	}
	return nil
}
