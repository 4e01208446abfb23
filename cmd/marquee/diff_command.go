package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/report"
	"marquee/internal/trending"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var oldLabel string
	var newLabel string
	var top int
	var minOldVotes int
	var newTitleMinVotes int
	var printTables bool

	cmd := &cobra.Command{
		Use:   "diff <old-catalog.csv> <new-catalog.csv>",
		Short: "Compare two catalog snapshots and write a trending report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			oldPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve old catalog path: %w", err)
			}
			newPath, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve new catalog path: %w", err)
			}

			oldSnapshot, err := readSnapshotCSV(oldPath)
			if err != nil {
				return err
			}
			newSnapshot, err := readSnapshotCSV(newPath)
			if err != nil {
				return err
			}

			opts := trending.Options{
				Top:                   cfg.Trending.Top,
				MinOldVotesForPercent: cfg.Trending.MinOldVotesForPercent,
				NewTitleMinVotes:      cfg.Trending.NewTitleMinVotes,
			}
			if cmd.Flags().Changed("top") {
				opts.Top = top
			}
			if cmd.Flags().Changed("min-old-votes") {
				opts.MinOldVotesForPercent = minOldVotes
			}
			if cmd.Flags().Changed("new-title-min-votes") {
				opts.NewTitleMinVotes = newTitleMinVotes
			}

			rep := trending.Diff(oldSnapshot, newSnapshot, opts, logger)

			meta := report.Meta{
				OldLabel:    oldLabel,
				NewLabel:    newLabel,
				OldPath:     oldPath,
				NewPath:     newPath,
				GeneratedAt: time.Now(),
			}
			if meta.OldLabel == "" {
				meta.OldLabel = labelFromPath(oldPath)
			}
			if meta.NewLabel == "" {
				meta.NewLabel = labelFromPath(newPath)
			}

			target := outPath
			if target == "" {
				target = defaultDiffOutputPath(newPath, meta.OldLabel, meta.NewLabel)
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve report path: %w", err)
			}
			if err := writeHTMLReport(rep, meta, target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if printTables {
				printReport(out, rep, meta)
			}
			fmt.Fprintf(out, "Report: %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination for the HTML report (default: alongside the new catalog)")
	cmd.Flags().StringVar(&oldLabel, "old-label", "", "Label for the old snapshot (default: derived from the path)")
	cmd.Flags().StringVar(&newLabel, "new-label", "", "Label for the new snapshot (default: derived from the path)")
	cmd.Flags().IntVar(&top, "top", 0, "Maximum rows per report section")
	cmd.Flags().IntVar(&minOldVotes, "min-old-votes", 0, "Old-vote floor for percent-change eligibility")
	cmd.Flags().IntVar(&newTitleMinVotes, "new-title-min-votes", 0, "Minimum votes for the new-titles section")
	cmd.Flags().BoolVar(&printTables, "print", false, "Also print the report sections to the terminal")
	return cmd
}

func writeHTMLReport(rep trending.Report, meta report.Meta, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := report.RenderHTML(file, rep, meta); err != nil {
		file.Close()
		return fmt.Errorf("render report %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
