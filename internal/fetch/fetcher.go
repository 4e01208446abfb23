package fetch

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"marquee/internal/logging"
)

// Canonical dataset file names inside a run directory.
const (
	BasicsFileName  = "title.basics.tsv.gz"
	RatingsFileName = "title.ratings.tsv.gz"
)

const defaultTimeout = 5 * time.Minute

// Options configures a Fetcher.
type Options struct {
	BasicsURL  string
	RatingsURL string
	Timeout    time.Duration
	// MaxAge controls when an existing file counts as fresh enough to
	// reuse. Zero means any existing file is reused.
	MaxAge    time.Duration
	Overwrite bool
}

// Fetcher retrieves the raw datasets for one run directory.
type Fetcher struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
}

// New constructs a Fetcher. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Fetcher{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		logger: logging.NewComponentLogger(logger, "fetch"),
	}
}

// FetchAll downloads both datasets into dir and returns their paths
// (basics first).
func (f *Fetcher) FetchAll(ctx context.Context, dir string) (string, string, error) {
	basics := filepath.Join(dir, BasicsFileName)
	if err := f.fetch(ctx, f.opts.BasicsURL, basics); err != nil {
		return "", "", err
	}
	ratings := filepath.Join(dir, RatingsFileName)
	if err := f.fetch(ctx, f.opts.RatingsURL, ratings); err != nil {
		return "", "", err
	}
	return basics, ratings, nil
}

func (f *Fetcher) fetch(ctx context.Context, url, path string) error {
	if !f.opts.Overwrite {
		if fresh, err := f.isFresh(path); err != nil {
			return err
		} else if fresh {
			f.logger.Info("reusing existing dataset", slog.String("path", path))
			return nil
		}
	}

	f.logger.Info("downloading dataset", slog.String("url", url), slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download dataset: unexpected status %d for %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dataset directory: %w", err)
	}

	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(file, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("write dataset: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace dataset file: %w", err)
	}

	f.logger.Info("dataset downloaded", slog.String("path", path), slog.Int64("bytes", written))
	return nil
}

func (f *Fetcher) isFresh(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat dataset: %w", err)
	}
	if f.opts.MaxAge <= 0 {
		return true, nil
	}
	return time.Since(info.ModTime()) <= f.opts.MaxAge, nil
}

// Open returns a reader over the decompressed contents of a stored dataset.
// Closing it closes both the gzip layer and the underlying file.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	return &gzipFile{Reader: gz, file: file}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	fileErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}
