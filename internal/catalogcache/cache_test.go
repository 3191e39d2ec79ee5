package catalogcache_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/catalogcache"
	"marquee/internal/normalize"
	"marquee/internal/pipeline"
	"marquee/internal/source"
	"marquee/internal/testsupport"
)

type fakeReader struct {
	mu          sync.Mutex
	fingerprint string
	rows        []normalize.Row
	reads       atomic.Int64
	delay       time.Duration
	err         error
}

func (f *fakeReader) set(fingerprint string, rows ...normalize.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fingerprint = fingerprint
	f.rows = rows
}

func (f *fakeReader) Fingerprint(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fingerprint, f.err
}

func (f *fakeReader) Read(context.Context) (*source.Dataset, error) {
	f.reads.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &source.Dataset{Path: "fake", Rows: f.rows, Fingerprint: f.fingerprint}, nil
}

func (f *fakeReader) Path() string { return "fake" }

func TestGetCachesByFingerprint(t *testing.T) {
	reader := &fakeReader{}
	reader.set("a", normalize.Row{"type": "Movie", "title": "Alpha"})
	cache := catalogcache.New(reader, nil, nil)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Catalog.Len())
	assert.NotEmpty(t, first.Generation)

	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), reader.reads.Load())
	assert.Equal(t, catalogcache.Stats{Hits: 1, Builds: 1}, cache.Stats())

	reader.set("b", normalize.Row{"type": "Movie", "title": "Alpha"}, normalize.Row{"type": "TV Show", "title": "Beta"})
	third, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, third.Catalog.Len())
	assert.NotEqual(t, first.Generation, third.Generation)
	assert.Equal(t, "b", third.Fingerprint)
}

func TestInvalidateForcesRebuild(t *testing.T) {
	reader := &fakeReader{}
	reader.set("a", normalize.Row{"title": "Alpha"})
	cache := catalogcache.New(reader, nil, nil)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	cache.Invalidate()
	_, ok := cache.Current()
	assert.False(t, ok)

	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), reader.reads.Load())
}

func TestRebuildIgnoresFingerprint(t *testing.T) {
	reader := &fakeReader{}
	reader.set("a", normalize.Row{"title": "Alpha"})
	cache := catalogcache.New(reader, nil, nil)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	rebuilt, err := cache.Rebuild(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Generation, rebuilt.Generation)

	current, ok := cache.Current()
	require.True(t, ok)
	assert.Same(t, rebuilt, current)
}

func TestConcurrentGetBuildsOnce(t *testing.T) {
	reader := &fakeReader{delay: 50 * time.Millisecond}
	reader.set("a", normalize.Row{"title": "Alpha"})
	cache := catalogcache.New(reader, nil, nil)

	var wg sync.WaitGroup
	entries := make([]*catalogcache.Entry, 8)
	for i := range entries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := cache.Get(context.Background())
			assert.NoError(t, err)
			entries[i] = entry
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), reader.reads.Load())
	for _, e := range entries {
		assert.Same(t, entries[0], e)
	}
}

func TestGetPropagatesSourceErrors(t *testing.T) {
	reader, err := source.Open(source.Options{Path: filepath.Join(t.TempDir(), "missing.csv")})
	require.NoError(t, err)
	cache := catalogcache.New(reader, nil, nil)

	_, err = cache.Get(context.Background())
	assert.True(t, errors.Is(err, source.ErrNotFound), "got %v", err)

	_, err = catalogcache.New(nil, nil, nil).Get(context.Background())
	assert.ErrorIs(t, err, catalogcache.ErrNoSource)
}

func TestGetOverCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.csv")
	testsupport.WriteFile(t, path, testsupport.CatalogCSV)

	reader, err := source.Open(source.Options{Path: path})
	require.NoError(t, err)
	builder := pipeline.New(pipeline.Options{})
	cache := catalogcache.New(reader, builder, nil)

	entry, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, entry.Catalog.Len())
	assert.Equal(t, 100.0, *entry.Catalog.At(0).MovieMinutes)
	assert.Equal(t, path, entry.Source)
	first := entry.Generation

	testsupport.WriteFile(t, path, "type,title,duration\nMovie,Alpha,95 min\n")
	entry, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Catalog.Len())
	assert.NotEqual(t, first, entry.Generation)
}
