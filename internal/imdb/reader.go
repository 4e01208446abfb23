package imdb

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"marquee/internal/logging"
)

// ReadStats reports what a streaming read observed. Skipped counts malformed
// lines that were dropped, so callers can surface parser health.
type ReadStats struct {
	Lines   int
	Skipped int
}

// ReadTitles consumes a whole title.basics stream. The first line is treated
// as the column header. Malformed lines are skipped and counted, never fatal.
func ReadTitles(r io.Reader, logger *slog.Logger) ([]TitleRecord, ReadStats, error) {
	var records []TitleRecord
	stats, err := readLines(r, logger, "title.basics", func(line string) error {
		record, err := ParseTitle(line)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	return records, stats, err
}

// ReadRatings consumes a whole title.ratings stream, same contract as ReadTitles.
func ReadRatings(r io.Reader, logger *slog.Logger) ([]RatingRecord, ReadStats, error) {
	var records []RatingRecord
	stats, err := readLines(r, logger, "title.ratings", func(line string) error {
		record, err := ParseRating(line)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	return records, stats, err
}

func readLines(r io.Reader, logger *slog.Logger, dataset string, handle func(string) error) (ReadStats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var stats ReadStats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Lines++
		if err := handle(line); err != nil {
			stats.Skipped++
			logger.Debug("skipping malformed line",
				slog.String("dataset", dataset),
				slog.Int("line", stats.Lines+1),
				logging.Error(err),
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read %s: %w", dataset, err)
	}

	if stats.Skipped > 0 {
		logger.Warn("dataset contained malformed lines",
			slog.String("dataset", dataset),
			slog.Int("skipped", stats.Skipped),
			slog.Int("lines", stats.Lines),
		)
	}
	return stats, nil
}
