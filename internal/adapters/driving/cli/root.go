// Package cli provides the fino command-line interface.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fino-labs/fino-cli/internal/adapters/driven/blob"
	configfile "github.com/fino-labs/fino-cli/internal/adapters/driven/config/file"
	"github.com/fino-labs/fino-cli/internal/adapters/driven/state/sqlite"
	"github.com/fino-labs/fino-cli/internal/connectors/edinet"
	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
	"github.com/fino-labs/fino-cli/internal/core/ports/driving"
	"github.com/fino-labs/fino-cli/internal/core/services"
	"github.com/fino-labs/fino-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services wired by initServices. Tests inject their own.
var (
	collectorService driving.Collector
	runStore         driven.RunStore
)

var rootCmd = &cobra.Command{
	Use:   "fino",
	Short: "Collect regulatory disclosure filings",
	Long: `fino collects corporate disclosure filings from regulatory sources
such as EDINET, deduplicates them against local or object storage, and
records collection run history.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.fino/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices wires the collector from configuration. Commands that
// need the pipeline call it lazily so that version and help work
// without any config.
func initServices() error {
	if collectorService != nil {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	cfg, err := configfile.Load(path)
	if err != nil {
		return err
	}
	if cfg.EDINET.APIKey == "" {
		return fmt.Errorf("EDINET API key not configured: set edinet.api_key in %s or FINO_EDINET_API_KEY", path)
	}

	var clientOpts []edinet.Option
	if cfg.EDINET.BaseURL != "" {
		clientOpts = append(clientOpts, edinet.WithBaseURL(cfg.EDINET.BaseURL))
	}
	if cfg.EDINET.RequestsPerSecond > 0 {
		clientOpts = append(clientOpts, edinet.WithRateLimit(cfg.EDINET.RequestsPerSecond))
	}
	client := edinet.NewClient(cfg.EDINET.APIKey, clientOpts...)

	metrics := services.NewMetrics()
	source := edinet.New(client, metrics, cfg.Collect.ListWorkers)

	store, err := blob.NewStore(blob.Config{
		Backend:   cfg.Storage.Backend,
		Dir:       cfg.Storage.Dir,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		Prefix:    cfg.Storage.Prefix,
	})
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	repo := services.NewDocumentRepository(store)

	if cfg.Collect.HistoryPath != "off" {
		runs, err := sqlite.NewRunStore(cfg.Collect.HistoryPath)
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}
		runStore = runs
	}

	collectorService = services.NewCollector(source, repo, runStore, metrics, cfg.Collect.Workers)
	return nil
}

// parseScope parses a collection window: "2024", "2024-03" or
// "2024-03-15".
func parseScope(arg string) (domain.TimeScope, error) {
	parts := strings.Split(arg, "-")
	if len(parts) > 3 {
		return domain.TimeScope{}, fmt.Errorf("%w: scope %q, want YYYY, YYYY-MM or YYYY-MM-DD", domain.ErrInvalidInput, arg)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return domain.TimeScope{}, fmt.Errorf("%w: scope %q, want YYYY, YYYY-MM or YYYY-MM-DD", domain.ErrInvalidInput, arg)
		}
		nums[i] = n
	}

	return domain.NewTimeScope(nums[0], nums[1], nums[2])
}

// parseFormat parses the --format flag value.
func parseFormat(arg string) (domain.FormatType, error) {
	return domain.ParseFormatType(strings.ToUpper(arg))
}
