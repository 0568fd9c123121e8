package domain

// SearchRequest captures one search invocation originating from the CLI or
// shell integration.
type SearchRequest struct {
	Query           string
	DryRun          bool
	CopyToClipboard bool
	Interactive     bool
	Limit           int
}

// SearchResult reports what a search run produced.
type SearchResult struct {
	Query     string
	Total     int
	Matches   []string
	Selected  string
	Copied    bool
	Execution *ExecutionResult
}

// ExecutionResult wraps details from the command executor. The child process
// inherits stdio, so only the outcome is captured.
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	DurationMS int64
	Err        error
}
