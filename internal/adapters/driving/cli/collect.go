package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var collectFormat string

var collectCmd = &cobra.Command{
	Use:   "collect [scope]",
	Short: "Download and store disclosure filings",
	Long: `Downloads every filing in the collection window that is not already
stored. The window is a year (2024), a month (2024-03) or a single
day (2024-03-15). A failed download is reported and skipped; it stays
eligible for the next run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVarP(&collectFormat, "format", "f", "XBRL", "file format: XBRL, PDF or CSV")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	criteria, err := buildCriteria(args[0], collectFormat)
	if err != nil {
		return err
	}

	result, err := collectorService.Collect(context.Background(), criteria)
	if err != nil {
		return fmt.Errorf("collect failed: %w", err)
	}

	cmd.Printf("Collected %d of %d filings for %s (%d already stored)\n",
		len(result.Collected), len(result.Available), criteria, len(result.Stored))

	if len(result.Failed) > 0 {
		cmd.Printf("\n%d filings failed:\n", len(result.Failed))
		for _, failure := range result.Failed {
			cmd.Printf("  %s: %v\n", failure.Document.ID, failure.Err)
		}
		return fmt.Errorf("%d of %d filings failed", len(result.Failed), len(result.Available))
	}

	return nil
}
