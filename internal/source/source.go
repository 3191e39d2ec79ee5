package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"marquee/internal/logging"
	"marquee/internal/normalize"
)

var (
	// ErrNotFound reports a dataset path that does not exist.
	ErrNotFound = errors.New("source dataset not found")
	// ErrUnsupportedFormat reports an unknown dataset format.
	ErrUnsupportedFormat = errors.New("unsupported source format")
)

// Dataset is the raw content of one read.
type Dataset struct {
	Path        string
	Columns     []string
	Rows        []normalize.Row
	Fingerprint string
	ReadAt      time.Time
}

// Reader loads a dataset and reports its fingerprint.
type Reader interface {
	// Fingerprint hashes the current dataset content without parsing it.
	Fingerprint(ctx context.Context) (string, error)
	// Read parses the dataset. The returned fingerprint matches the bytes parsed.
	Read(ctx context.Context) (*Dataset, error)
	// Path returns the dataset location.
	Path() string
}

// Options configures Open.
type Options struct {
	Path        string
	Format      string // "csv" or "sqlite"
	Table       string
	Delimiter   rune
	LockTimeout time.Duration
	Logger      *slog.Logger
}

// Open returns the reader for opts.Format.
func Open(opts Options) (Reader, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 2 * time.Second
	}
	logger := logging.NewComponentLogger(opts.Logger, "source")
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "csv", "":
		delim := opts.Delimiter
		if delim == 0 {
			delim = ','
		}
		return &CSVReader{path: opts.Path, delimiter: delim, lockTimeout: opts.LockTimeout, logger: logger}, nil
	case "sqlite":
		table := strings.TrimSpace(opts.Table)
		if table == "" {
			table = "titles"
		}
		return &SQLiteReader{path: opts.Path, table: table, lockTimeout: opts.LockTimeout, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

func statDataset(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", path)
	}
	return nil
}
