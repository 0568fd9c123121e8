package commands

import "fmt"

// ExitError carries a specific process exit code out of cobra. Message, when
// set, is printed to stderr by the CLI entrypoint; without one the process
// exits quietly, the way a cancelled picker or a failed child command does.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}
