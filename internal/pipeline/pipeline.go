package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/fetch"
	"marquee/internal/imdb"
	"marquee/internal/logging"
	"marquee/internal/rundir"
	"marquee/internal/store"
)

// CatalogFileName is the unfiltered snapshot CSV inside a run directory.
const CatalogFileName = "media_catalog.csv"

// Result reports what a build run produced.
type Result struct {
	RunDir       string
	CatalogCSV   string
	FilteredCSV  string
	DatabasePath string
	RunID        string
	TitleStats   imdb.ReadStats
	RatingStats  imdb.ReadStats
	BuildStats   catalog.BuildStats
	StoredCount  int
}

// Runner executes build runs for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner constructs a Runner. A nil logger discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logging.NewComponentLogger(logger, "pipeline")}
}

// Run executes the full build inside the given run directory: fetch, parse,
// build, optional vote filter, then CSV and SQLite persistence.
func (r *Runner) Run(ctx context.Context, run rundir.RunDir) (Result, error) {
	result := Result{RunDir: run.Path}

	fetcher := fetch.New(fetch.Options{
		BasicsURL:  r.cfg.Datasets.BasicsURL,
		RatingsURL: r.cfg.Datasets.RatingsURL,
		Timeout:    time.Duration(r.cfg.Datasets.TimeoutSeconds) * time.Second,
		MaxAge:     time.Duration(r.cfg.Datasets.MaxAgeHours) * time.Hour,
		Overwrite:  r.cfg.Datasets.Overwrite,
	}, r.logger)

	basicsPath, ratingsPath, err := fetcher.FetchAll(ctx, run.Path)
	if err != nil {
		return result, err
	}

	titles, titleStats, err := r.readTitles(basicsPath)
	if err != nil {
		return result, err
	}
	result.TitleStats = titleStats

	ratings, ratingStats, err := r.readRatings(ratingsPath)
	if err != nil {
		return result, err
	}
	result.RatingStats = ratingStats

	snapshot, buildStats := catalog.Build(titles, ratings, r.predicate())
	result.BuildStats = buildStats
	r.logger.Info("catalog built",
		slog.Int("titles", buildStats.Titles),
		slog.Int("ratings", buildStats.Ratings),
		slog.Int("entries", buildStats.Entries),
		slog.Int("excluded", buildStats.Excluded),
		slog.Int("title_only", buildStats.TitleOnly),
		slog.Int("rating_only", buildStats.RatingOnly),
	)

	result.CatalogCSV = filepath.Join(run.Path, CatalogFileName)
	if err := writeSnapshotCSV(snapshot, result.CatalogCSV); err != nil {
		return result, err
	}

	stored := snapshot
	if r.cfg.Catalog.MinVotes > 0 {
		stored = snapshot.FilterMinVotes(r.cfg.Catalog.MinVotes)
		result.FilteredCSV = filepath.Join(run.Path, FilteredFileName(r.cfg.Catalog.MinVotes))
		if err := writeSnapshotCSV(stored, result.FilteredCSV); err != nil {
			return result, err
		}
		r.logger.Info("vote filter applied",
			slog.Int("min_votes", r.cfg.Catalog.MinVotes),
			slog.Int("kept", len(stored)),
			slog.Int("dropped", len(snapshot)-len(stored)),
		)
	}

	result.DatabasePath = filepath.Join(run.Path, r.cfg.Database.FileName)
	db, err := store.Open(result.DatabasePath)
	if err != nil {
		return result, err
	}
	defer db.Close()

	runID, err := db.WriteSnapshot(ctx, stored, store.RunInfo{
		Label:       run.Label,
		MinVotes:    r.cfg.Catalog.MinVotes,
		BasicsPath:  basicsPath,
		RatingsPath: ratingsPath,
	})
	if err != nil {
		return result, err
	}
	result.RunID = runID
	result.StoredCount = len(stored)

	r.logger.Info("build run complete",
		slog.String("run_id", runID),
		slog.String("run_dir", run.Path),
		slog.Int("stored", len(stored)),
	)
	return result, nil
}

// FilteredFileName names the filtered snapshot CSV for a threshold.
func FilteredFileName(minVotes int) string {
	return fmt.Sprintf("media_catalog_%d.csv", minVotes)
}

func (r *Runner) readTitles(path string) ([]imdb.TitleRecord, imdb.ReadStats, error) {
	reader, err := fetch.Open(path)
	if err != nil {
		return nil, imdb.ReadStats{}, err
	}
	defer reader.Close()
	return imdb.ReadTitles(reader, r.logger)
}

func (r *Runner) readRatings(path string) ([]imdb.RatingRecord, imdb.ReadStats, error) {
	reader, err := fetch.Open(path)
	if err != nil {
		return nil, imdb.ReadStats{}, err
	}
	defer reader.Close()
	return imdb.ReadRatings(reader, r.logger)
}

// predicate translates the configured category rules into the builder's
// pluggable form. Undated titles are always excluded.
func (r *Runner) predicate() catalog.Predicate {
	types := make([]imdb.TitleType, 0, len(r.cfg.Catalog.AllowedTypes))
	for _, raw := range r.cfg.Catalog.AllowedTypes {
		types = append(types, imdb.TitleType(raw))
	}
	keep := catalog.KeepTypes(types...)
	if !r.cfg.Catalog.IncludeAdult {
		keep = catalog.ExcludeAdult(keep)
	}
	return catalog.RequireYear(keep)
}

func writeSnapshotCSV(snapshot catalog.Snapshot, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog csv: %w", err)
	}
	if err := snapshot.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close catalog csv: %w", err)
	}
	return nil
}
