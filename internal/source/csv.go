package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"marquee/internal/logging"
	"marquee/internal/normalize"
)

// CSVReader reads a delimited text dataset with a header row.
type CSVReader struct {
	path        string
	delimiter   rune
	lockTimeout time.Duration
	logger      *slog.Logger
}

// Path returns the dataset location.
func (r *CSVReader) Path() string { return r.path }

// Fingerprint hashes the file content.
func (r *CSVReader) Fingerprint(ctx context.Context) (string, error) {
	if err := statDataset(r.path); err != nil {
		return "", err
	}
	return FingerprintFiles(r.path)
}

// Read parses the file under a shared lock.
func (r *CSVReader) Read(ctx context.Context) (*Dataset, error) {
	if err := statDataset(r.path); err != nil {
		return nil, err
	}

	var data []byte
	err := withReadLock(ctx, r.path, r.lockTimeout, r.logger, func() error {
		var readErr error
		data, readErr = os.ReadFile(r.path)
		return readErr
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("read source: %w", err)
	}

	columns, rows, err := ParseCSV(bytes.NewReader(data), r.delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}

	ds := &Dataset{
		Path:        r.path,
		Columns:     columns,
		Rows:        rows,
		Fingerprint: FingerprintBytes(data),
		ReadAt:      time.Now(),
	}
	r.logger.Debug("read csv dataset",
		logging.String(logging.FieldSource, r.path),
		logging.Int("columns", len(columns)),
		logging.Int("rows", len(rows)),
		logging.String(logging.FieldFingerprint, ds.Fingerprint))
	return ds, nil
}

// ParseCSV reads a header row followed by records. Short records leave the
// trailing columns absent; extra cells beyond the header are ignored.
func ParseCSV(in io.Reader, delimiter rune) ([]string, []normalize.Row, error) {
	reader := csv.NewReader(in)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	copy(columns, header)
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	var rows []normalize.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}
		row := make(normalize.Row, len(columns))
		for i, value := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}
