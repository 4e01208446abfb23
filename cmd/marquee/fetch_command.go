package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/fetch"
	"marquee/internal/rundir"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the IMDb bulk datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target := dir
			if target == "" {
				run, err := rundir.Create(cfg.Paths.OutRoot, rundir.DefaultLabel(time.Now()))
				if err != nil {
					return err
				}
				target = run.Path
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve target directory: %w", err)
				}
				target = expanded
			}

			fetcher := fetch.New(fetcherOptions(cfg, overwrite), logger)
			basics, ratings, err := fetcher.FetchAll(cmd.Context(), target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Basics dataset:  %s\n", basics)
			fmt.Fprintf(out, "Ratings dataset: %s\n", ratings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to download into (default: a dated run directory)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-download even when fresh local copies exist")
	return cmd
}

func fetcherOptions(cfg *config.Config, overwrite bool) fetch.Options {
	return fetch.Options{
		BasicsURL:  cfg.Datasets.BasicsURL,
		RatingsURL: cfg.Datasets.RatingsURL,
		Timeout:    time.Duration(cfg.Datasets.TimeoutSeconds) * time.Second,
		MaxAge:     time.Duration(cfg.Datasets.MaxAgeHours) * time.Hour,
		Overwrite:  overwrite || cfg.Datasets.Overwrite,
	}
}
