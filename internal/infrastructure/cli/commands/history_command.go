package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amantham20/aqs-go/internal/app"
	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/infrastructure/cli/helpers"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded searches",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryStatsCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryPruneCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listUsageRecords(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultUsageLimit, "Max entries to show")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recorded searches for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return errors.New(ErrQueryRequired)
			}
			return searchUsageRecords(cmd.OutOrStdout(), container, query, searchLimit)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&searchLimit, "limit", domain.DefaultUsageSearchLimit, "Limit search results")
	return cmd
}

// newHistoryStatsCommand creates the 'history stats' subcommand
func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show success rate and top commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showUsageStats(cmd.OutOrStdout(), container)
		},
	}
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearUsageRecords(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export recorded searches to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportUsageRecords(cmd.OutOrStdout(), container, args[0])
		},
	}
}

// newHistoryPruneCommand creates the 'history prune' subcommand
func newHistoryPruneCommand(container *app.Container) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete recorded searches older than N days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return errors.New(ErrInvalidPruneDays)
			}
			return pruneUsageRecords(cmd.OutOrStdout(), container, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.DefaultPruneDays, "Days of history to keep")
	return cmd
}

// listUsageRecords lists recent searches, newest first
func listUsageRecords(out io.Writer, container *app.Container, limit int) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	records, err := store.Records(limit, "")
	if err != nil {
		return fmt.Errorf("load usage records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoUsageRecorded)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %-8s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			describeOutcome(rec),
			rec.Command)
	}
	return nil
}

// searchUsageRecords filters recorded searches by keyword
func searchUsageRecords(out io.Writer, container *app.Container, query string, limit int) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	records, err := store.Records(limit, query)
	if err != nil {
		return fmt.Errorf("search usage records: %w", err)
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.Command)
	}
	return nil
}

// showUsageStats displays execution counts and top commands
func showUsageStats(out io.Writer, container *app.Container) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	records, err := store.Records(domain.MaxUsageAnalysisRecords, "")
	if err != nil {
		return fmt.Errorf("load usage records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoUsageRecorded)
		return nil
	}

	stats := analyzeUsageRecords(records)
	displayUsageStatistics(out, stats, len(records))
	return nil
}

// clearUsageRecords deletes the usage store after confirmation
func clearUsageRecords(cmd *cobra.Command, container *app.Container, force bool) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	out := cmd.OutOrStdout()
	if !force {
		reader := bufio.NewReader(cmd.InOrStdin())
		if !helpers.PromptForYesNo(out, reader, "Delete all recorded searches?", false) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear usage records: %w", err)
	}
	fmt.Fprintln(out, "Usage history cleared.")
	return nil
}

// exportUsageRecords writes all records to a JSONL file
func exportUsageRecords(out io.Writer, container *app.Container, path string) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	if err := store.ExportJSON(path); err != nil {
		return fmt.Errorf("export usage records to %s: %w", path, err)
	}
	fmt.Fprintf(out, "Exported usage history to %s\n", path)
	return nil
}

// pruneUsageRecords drops records older than the cutoff
func pruneUsageRecords(out io.Writer, container *app.Container, days int) error {
	store := container.UsageStore
	if store == nil {
		return errors.New(ErrUsageStoreUnavailable)
	}

	removed, err := store.PruneOlderThan(days)
	if err != nil {
		return fmt.Errorf("prune usage records: %w", err)
	}
	fmt.Fprintf(out, "Removed %d records older than %d days.\n", removed, days)
	return nil
}

// usageStatistics holds analyzed usage counters
type usageStatistics struct {
	executed    int
	succeeded   int
	dryRuns     int
	commandFreq map[string]int
}

// analyzeUsageRecords computes counters over the recorded searches
func analyzeUsageRecords(records []domain.UsageRecord) usageStatistics {
	stats := usageStatistics{commandFreq: make(map[string]int)}

	for _, rec := range records {
		if rec.DryRun {
			stats.dryRuns++
		}
		if rec.Executed {
			stats.executed++
			if rec.ExitCode == 0 {
				stats.succeeded++
			}
		}
		stats.commandFreq[rec.Command]++
	}
	return stats
}

// displayUsageStatistics renders the analyzed counters
func displayUsageStatistics(out io.Writer, stats usageStatistics, total int) {
	fmt.Fprintf(out, "Searches analyzed: %d\nExecuted: %d\nDry runs: %d\nSuccess rate: %.1f%%\n",
		total,
		stats.executed,
		stats.dryRuns,
		helpers.CalculateSuccessRate(stats.succeeded, stats.executed))

	fmt.Fprintln(out, "Top commands:")
	for _, stat := range helpers.CalculateTopCommands(stats.commandFreq, 5) {
		fmt.Fprintf(out, "  %s (%d)\n", stat.Command, stat.Count)
	}
}

// describeOutcome renders a short status column for one record
func describeOutcome(rec domain.UsageRecord) string {
	switch {
	case rec.DryRun:
		return "dry-run"
	case !rec.Executed:
		return "skipped"
	default:
		return fmt.Sprintf("exit %d", rec.ExitCode)
	}
}
