package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/version"
)

// mascot is the project donkey. It ships with every release.
const mascot = `
            __
           / _)
    .-^^^-/ /
 __/       /
<__.|_|-|_|
`

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show AQS version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

// displayVersionInformation displays version and build details
func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "AQS - Aman's Quick Search Tool %s\n", version.Version)
	fmt.Fprintf(out, "%s\n", mascot)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	fmt.Fprintln(out, "Developed by Aman Dhruva Thamminana")
	fmt.Fprintln(out, "Help me with feedback at thammina@msu.edu or contribute at https://github.com/amantham20/AQS")
	return nil
}
