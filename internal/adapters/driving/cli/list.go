package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list [scope]",
	Short: "List available disclosure filings",
	Long: `Lists the filings a source advertises for a collection window without
downloading anything. The window is a year (2024), a month (2024-03)
or a single day (2024-03-15). Filings already in storage are marked.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "XBRL", "file format: XBRL, PDF or CSV")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	criteria, err := buildCriteria(args[0], listFormat)
	if err != nil {
		return err
	}

	result, err := collectorService.List(context.Background(), criteria)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(result.Available) == 0 {
		cmd.Printf("No %s filings available for %s.\n", criteria.Format, criteria.Scope)
		return nil
	}

	storedIDs := make(map[domain.DocumentID]bool, len(result.Stored))
	for _, doc := range result.Stored {
		storedIDs[doc.ID] = true
	}

	cmd.Printf("Filings for %s (%s):\n\n", criteria.Scope, criteria.Format)
	for _, doc := range result.Available {
		marker := " "
		if storedIDs[doc.ID] {
			marker = "*"
		}
		name := doc.FilingName
		if name == "" {
			name = doc.DisclosureType.Description()
		}
		cmd.Printf("  %s %s  %s  %s\n", marker, doc.ID, doc.DisclosureDate.Format("2006-01-02"), name)
	}
	cmd.Printf("\n%d available, %d already stored (*)\n", len(result.Available), len(result.Stored))

	return nil
}

func buildCriteria(scopeArg, formatArg string) (domain.SearchCriteria, error) {
	scope, err := parseScope(scopeArg)
	if err != nil {
		return domain.SearchCriteria{}, err
	}
	format, err := parseFormat(formatArg)
	if err != nil {
		return domain.SearchCriteria{}, err
	}
	return domain.NewSearchCriteria(format, scope)
}
