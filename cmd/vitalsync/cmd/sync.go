package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vitalsync/vitalsync/internal/config"
	"github.com/vitalsync/vitalsync/internal/garmin"
	"github.com/vitalsync/vitalsync/internal/notion"
	"github.com/vitalsync/vitalsync/internal/sync"
	"github.com/vitalsync/vitalsync/pkg/errors"
	"github.com/vitalsync/vitalsync/pkg/logging"
)

// newSyncCommand creates the sync command.
func newSyncCommand() *cobra.Command {
	var (
		flagDays   int
		flagDryRun bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync health metrics for the most recent days",
		Long: `Sync fetches HRV, resting heart rate, and VO2 max from Garmin Connect
for each of the most recent N days ending today, and upserts one Notion
record per day. Days are processed sequentially; a failure on one day is
logged and does not abort the rest of the run.

The exit code is non-zero when any day failed.`,
		Example: `  vitalsync sync                 # today only
  vitalsync sync --days 7        # the last week
  vitalsync sync --dry-run       # fetch and map, but write nothing`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("days") {
				cfg.Days = flagDays
			}
			cfg.DryRun = flagDryRun
			return performSync(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&flagDays, "days", 1,
		"Number of most-recent days to process, ending today")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false,
		"Fetch and reconcile without writing to Notion")

	return cmd
}

// performSync validates configuration, authenticates both collaborators,
// and drives the run.
func performSync(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runLogger := logging.With().Logger()
	ctx = logging.WithLogger(ctx, &runLogger)
	ctx = logging.WithRunID(ctx, uuid.NewString())

	log := logging.FromContext(ctx)
	log.Info().Int("days", cfg.Days).Bool("dry_run", cfg.DryRun).Msg("Starting health metrics sync")

	garminClient := garmin.NewClient(cfg.GarminEmail, cfg.GarminPassword)
	if err := garminClient.Login(ctx); err != nil {
		return err
	}

	notionClient := notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID)

	coordinator := sync.NewCoordinator(garminClient, notionClient,
		sync.WithDryRun(cfg.DryRun))

	summary, runErr := coordinator.Run(ctx, cfg.Days)
	if summary != nil {
		if err := printSummary(os.Stdout, summary, flagOutput); err != nil {
			return err
		}
	}
	return runErr
}

// printSummary writes the run summary in the requested format.
func printSummary(w io.Writer, summary *sync.Summary, format string) error {
	switch format {
	case "", "text":
		fmt.Fprintf(w, "Synced: %d days\n", summary.Synced)
		if summary.Skipped > 0 {
			fmt.Fprintf(w, "Skipped (no data): %d days\n", summary.Skipped)
		}
		if summary.Failed > 0 {
			fmt.Fprintf(w, "Errors: %d days\n", summary.Failed)
		}
		for _, day := range summary.Days {
			if day.Error != "" {
				fmt.Fprintf(w, "  %s: %s (%s)\n", day.Day, day.Status, day.Error)
			} else {
				fmt.Fprintf(w, "  %s: %s\n", day.Day, day.Status)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return errors.NewConfigError("output",
			fmt.Sprintf("unknown format %q (want text, json, or yaml)", format), nil)
	}
}

func init() {
	rootCmd.AddCommand(newSyncCommand())
}
