package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent collection runs",
	Long:  `Shows the most recent list and collect runs, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if runStore == nil {
		return errors.New("run history is disabled")
	}

	runs, err := runStore.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %-7s %s %s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Operation, run.Source, run.Criteria)
		if run.Operation == "collect" {
			cmd.Printf("    %d available, %d stored, %d collected, %d failed\n",
				run.Available, run.Stored, run.Collected, run.Failed)
		} else {
			cmd.Printf("    %d available, %d stored\n", run.Available, run.Stored)
		}
	}

	return nil
}
