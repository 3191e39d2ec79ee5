package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"marquee/internal/logging"
	"marquee/internal/normalize"
)

// SQLiteReader reads every row of one table in a SQLite database.
type SQLiteReader struct {
	path        string
	table       string
	lockTimeout time.Duration
	logger      *slog.Logger
}

// Path returns the database location.
func (r *SQLiteReader) Path() string { return r.path }

// Fingerprint hashes the database file and its write-ahead log.
func (r *SQLiteReader) Fingerprint(ctx context.Context) (string, error) {
	if err := statDataset(r.path); err != nil {
		return "", err
	}
	return FingerprintFiles(r.path, r.path+"-wal")
}

// Read loads the configured table.
func (r *SQLiteReader) Read(ctx context.Context) (*Dataset, error) {
	if err := statDataset(r.path); err != nil {
		return nil, err
	}

	var ds *Dataset
	err := withReadLock(ctx, r.path, r.lockTimeout, r.logger, func() error {
		fingerprint, err := FingerprintFiles(r.path, r.path+"-wal")
		if err != nil {
			return err
		}
		columns, rows, err := r.query(ctx)
		if err != nil {
			return err
		}
		ds = &Dataset{
			Path:        r.path,
			Columns:     columns,
			Rows:        rows,
			Fingerprint: fingerprint,
			ReadAt:      time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("read sqlite dataset",
		logging.String(logging.FieldSource, r.path),
		logging.String("table", r.table),
		logging.Int("rows", len(ds.Rows)),
		logging.String(logging.FieldFingerprint, ds.Fingerprint))
	return ds, nil
}

func (r *SQLiteReader) query(ctx context.Context) ([]string, []normalize.Row, error) {
	dsn := (&url.URL{Scheme: "file", Path: r.path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(r.table))
	if err != nil {
		return nil, nil, fmt.Errorf("query table %s: %w", r.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read columns: %w", err)
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var out []normalize.Row
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(normalize.Row, len(columns))
		for i, col := range columns {
			if values[i].Valid {
				row[col] = values[i].String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate rows: %w", err)
	}
	return columns, out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
