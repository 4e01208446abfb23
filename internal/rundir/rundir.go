package rundir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// lockFileName sits inside the output root, not inside any run directory.
const lockFileName = ".marquee.lock"

// RunDir identifies one created run directory.
type RunDir struct {
	// Path is the absolute directory path.
	Path string
	// Label is the base name without any collision suffix.
	Label string
}

// DefaultLabel returns today's date in local time, the default directory label.
func DefaultLabel(now time.Time) string {
	return now.Local().Format("2006-01-02")
}

// Create makes a fresh run directory under root named label, or label_2,
// label_3, … when earlier names are taken. The root is created if missing.
// An exclusive lock on the root serializes concurrent callers.
func Create(root, label string) (RunDir, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return RunDir{}, errors.New("run label must not be empty")
	}
	if strings.ContainsAny(label, "/\\") {
		return RunDir{}, fmt.Errorf("run label %q must not contain path separators", label)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return RunDir{}, fmt.Errorf("create output root: %w", err)
	}

	lock := flock.New(filepath.Join(root, lockFileName))
	if err := lock.Lock(); err != nil {
		return RunDir{}, fmt.Errorf("lock output root: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	candidate := filepath.Join(root, label)
	if err := os.Mkdir(candidate, 0o755); err == nil {
		return RunDir{Path: candidate, Label: label}, nil
	} else if !errors.Is(err, os.ErrExist) {
		return RunDir{}, fmt.Errorf("create run directory: %w", err)
	}

	for i := 2; ; i++ {
		candidate = filepath.Join(root, fmt.Sprintf("%s_%d", label, i))
		err := os.Mkdir(candidate, 0o755)
		if err == nil {
			return RunDir{Path: candidate, Label: label}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return RunDir{}, fmt.Errorf("create run directory: %w", err)
		}
	}
}
