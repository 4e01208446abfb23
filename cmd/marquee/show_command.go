package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/report"
	"marquee/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show <run-dir-or-database>",
		Short: "Display the top catalog entries stored in a run database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit < 1 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			dbPath, err := resolveDatabasePath(cfg, args[0])
			if err != nil {
				return err
			}

			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := db.TopEntries(cmd.Context(), limit)
			if err != nil {
				return err
			}
			total, err := db.EntryCount(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Catalog is empty")
				return nil
			}

			headers := []string{"#", "Title", "Year", "Type", "Genre", "Rating", "Votes"}
			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rating := entry.Rating
				votes := entry.Votes
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					entry.Title,
					report.FormatYear(entry.Year),
					string(entry.Type),
					entry.PrimaryGenre,
					report.FormatRating(&rating),
					report.FormatInt(&votes),
				})
			}
			aligns := alignmentsForNumericColumns(len(headers), []int{0, 2, 5, 6})
			fmt.Fprintln(out, renderTable(headers, rows, aligns, stdoutIsTerminal()))
			fmt.Fprintf(out, "Showing %d of %d entries from %s\n", len(entries), total, dbPath)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to display")
	return cmd
}

func resolveDatabasePath(cfg *config.Config, arg string) (string, error) {
	path, err := config.ExpandPath(arg)
	if err != nil {
		return "", fmt.Errorf("resolve database path: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, cfg.Database.FileName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("no catalog database at %s: %w", path, err)
		}
	}
	return path, nil
}
