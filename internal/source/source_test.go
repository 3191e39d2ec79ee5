package source_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"marquee/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSVHeaderAndShortRows(t *testing.T) {
	in := "\ufefftype,title,duration\nMovie,\"Alpha, Part 1\",90 min\nTV Show,Beta\n"
	columns, rows, err := source.ParseCSV(strings.NewReader(in), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "title", "duration"}, columns)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha, Part 1", rows[0]["title"])
	assert.Equal(t, "90 min", rows[0]["duration"])
	_, ok := rows[1]["duration"]
	assert.False(t, ok, "short record leaves trailing column absent")
}

func TestParseCSVCustomDelimiter(t *testing.T) {
	columns, rows, err := source.ParseCSV(strings.NewReader("a;b\n1;2\n"), ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, columns)
	assert.Equal(t, "2", rows[0]["b"])
}

func TestParseCSVEmptyInput(t *testing.T) {
	columns, rows, err := source.ParseCSV(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, columns)
	assert.Empty(t, rows)
}

func TestCSVReaderReadAndFingerprint(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "titles.csv", "type,title\nMovie,Alpha\n")

	reader, err := source.Open(source.Options{Path: path, Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, path, reader.Path())

	ds, err := reader.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Alpha", ds.Rows[0]["title"])

	fp, err := reader.Fingerprint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ds.Fingerprint, fp)
	assert.Len(t, fp, 16)

	writeFile(t, dir, "titles.csv", "type,title\nMovie,Alpha\nMovie,Beta\n")
	changed, err := reader.Fingerprint(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, fp, changed)
}

func TestReadMissingDataset(t *testing.T) {
	reader, err := source.Open(source.Options{Path: filepath.Join(t.TempDir(), "absent.csv")})
	require.NoError(t, err)

	_, err = reader.Read(context.Background())
	assert.True(t, errors.Is(err, source.ErrNotFound), "got %v", err)

	_, err = reader.Fingerprint(context.Background())
	assert.True(t, errors.Is(err, source.ErrNotFound), "got %v", err)
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	_, err := source.Open(source.Options{Path: "x.parquet", Format: "parquet"})
	assert.True(t, errors.Is(err, source.ErrUnsupportedFormat))
}

func TestSQLiteReaderTreatsNullAsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "titles.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE shows (type TEXT, title TEXT, release_year INTEGER, rating TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO shows VALUES ('Movie', 'Alpha', 2019, NULL), ('TV Show', 'Beta', NULL, 'TV-MA')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reader, err := source.Open(source.Options{Path: path, Format: "sqlite", Table: "shows"})
	require.NoError(t, err)

	ds, err := reader.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "title", "release_year", "rating"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "2019", ds.Rows[0]["release_year"])
	_, ok := ds.Rows[0]["rating"]
	assert.False(t, ok)
	assert.Equal(t, "TV-MA", ds.Rows[1]["rating"])
	assert.NotEmpty(t, ds.Fingerprint)
}

func TestSQLiteReaderMissingTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reader, err := source.Open(source.Options{Path: path, Format: "sqlite", Table: "titles"})
	require.NoError(t, err)
	_, err = reader.Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titles")
}

func TestFingerprintBytesStable(t *testing.T) {
	a := source.FingerprintBytes([]byte("catalog"))
	b := source.FingerprintBytes([]byte("catalog"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, source.FingerprintBytes([]byte("catalog2")))
}
