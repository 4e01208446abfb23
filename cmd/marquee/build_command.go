package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/pipeline"
	"marquee/internal/rundir"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var label string
	var minVotes int
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch the datasets and build a full catalog run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("min-votes") {
				if minVotes < 0 {
					return fmt.Errorf("min-votes must not be negative, got %d", minVotes)
				}
				cfg.Catalog.MinVotes = minVotes
			}
			if overwrite {
				cfg.Datasets.Overwrite = true
			}

			if label == "" {
				label = rundir.DefaultLabel(time.Now())
			}
			run, err := rundir.Create(cfg.Paths.OutRoot, label)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, logger)
			result, err := runner.Run(cmd.Context(), run)
			if err != nil {
				return fmt.Errorf("build run: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run directory: %s\n", result.RunDir)
			fmt.Fprintf(out, "Titles parsed: %d (skipped %d)\n", result.TitleStats.Lines, result.TitleStats.Skipped)
			fmt.Fprintf(out, "Ratings parsed: %d (skipped %d)\n", result.RatingStats.Lines, result.RatingStats.Skipped)
			fmt.Fprintf(out, "Catalog entries: %d\n", result.BuildStats.Entries)
			fmt.Fprintf(out, "Catalog CSV: %s\n", result.CatalogCSV)
			if result.FilteredCSV != "" {
				fmt.Fprintf(out, "Filtered CSV (>= %d votes): %s\n", cfg.Catalog.MinVotes, result.FilteredCSV)
			}
			fmt.Fprintf(out, "Database: %s (%d entries, run %s)\n", result.DatabasePath, result.StoredCount, result.RunID)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Run directory label (default: today's date)")
	cmd.Flags().IntVar(&minVotes, "min-votes", 0, "Override the configured minimum-vote threshold")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-download the datasets even when fresh local copies exist")
	return cmd
}
