package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/pipeline"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "filter <min-votes>",
		Short: "Filter an existing catalog CSV by minimum vote count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minVotes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minimum vote count %q", args[0])
			}
			if minVotes < 0 {
				return fmt.Errorf("minimum vote count must not be negative, got %d", minVotes)
			}

			inputPath, err := config.ExpandPath(input)
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			snapshot, err := readSnapshotCSV(inputPath)
			if err != nil {
				return err
			}

			filtered := snapshot.FilterMinVotes(minVotes)

			target := output
			if target == "" {
				target = filepath.Join(filepath.Dir(inputPath), pipeline.FilteredFileName(minVotes))
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := writeSnapshotCSV(filtered, target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kept %d of %d entries with at least %d votes\n", len(filtered), len(snapshot), minVotes)
			fmt.Fprintf(out, "Filtered CSV: %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Catalog CSV to filter")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination CSV (default: alongside the input)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readSnapshotCSV(path string) (catalog.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()

	snapshot, err := catalog.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return snapshot, nil
}

func writeSnapshotCSV(snapshot catalog.Snapshot, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog %s: %w", path, err)
	}
	if err := snapshot.WriteCSV(file); err != nil {
		file.Close()
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close catalog %s: %w", path, err)
	}
	return nil
}
